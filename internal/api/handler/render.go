package handler

import (
	"storefront/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// render draws a view with the current viewer merged into the data, so every
// page can show login state without each handler threading it through.
func render(c *gin.Context, status int, view string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["user"]; !ok {
		data["user"] = middleware.CurrentUser(c)
	}
	c.HTML(status, view, data)
}
