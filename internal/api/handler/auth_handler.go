package handler

import (
	"net/http"

	"storefront/internal/api/middleware"
	"storefront/internal/api/util"
	"storefront/internal/config"
	"storefront/internal/core/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService service.UserService
	tokens      *util.TokenManager
	cfg         *config.Config
}

func NewAuthHandler(userService service.UserService, tokens *util.TokenManager, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		tokens:      tokens,
		cfg:         cfg,
	}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": nil})
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"error": nil})
}

func (h *AuthHandler) Register(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.userService.Register(name, email, password)
	if err != nil {
		msg := "Error registering user"
		if err == service.ErrEmailTaken {
			msg = "User already exists with this email"
		}
		// Re-show the form with the submitted fields preserved.
		render(c, http.StatusOK, "register.html", gin.H{
			"error": msg,
			"name":  name,
			"email": email,
		})
		return
	}

	if err := h.setTokenCookie(c, user.ID); err != nil {
		render(c, http.StatusOK, "register.html", gin.H{
			"error": "Error registering user",
			"name":  name,
			"email": email,
		})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.userService.Authenticate(email, password)
	if err != nil {
		render(c, http.StatusOK, "login.html", gin.H{
			"error": "Invalid email or password",
			"email": email,
		})
		return
	}

	if err := h.setTokenCookie(c, user.ID); err != nil {
		render(c, http.StatusOK, "login.html", gin.H{
			"error": "Error logging in",
			"email": email,
		})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.cfg.CookieSecure, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Profile(c *gin.Context) {
	viewer := middleware.CurrentUser(c)

	user, err := h.userService.GetProfile(viewer.ID)
	if err != nil {
		render(c, http.StatusOK, "profile.html", gin.H{"profile": nil, "error": "Error loading profile"})
		return
	}
	render(c, http.StatusOK, "profile.html", gin.H{"profile": user, "error": nil})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	viewer := middleware.CurrentUser(c)

	user, err := h.userService.UpdateProfile(
		viewer.ID,
		c.PostForm("name"),
		c.PostForm("email"),
		c.PostForm("password"),
	)
	if err != nil {
		if err == service.ErrNotFound {
			c.Redirect(http.StatusFound, "/auth/login")
			return
		}
		render(c, http.StatusOK, "profile.html", gin.H{
			"profile": viewer,
			"error":   "Error updating profile",
		})
		return
	}

	render(c, http.StatusOK, "profile.html", gin.H{
		"profile": user,
		"error":   nil,
		"message": "Profile updated successfully",
	})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, userID string) error {
	token, err := h.tokens.Issue(userID)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, token, int(h.cfg.TokenTTL.Seconds()), "/", "", h.cfg.CookieSecure, true)
	return nil
}
