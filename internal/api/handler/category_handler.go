package handler

import (
	"net/http"

	"storefront/internal/core/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.Categories()
	if err != nil {
		render(c, http.StatusOK, "catagory.html", gin.H{"catagories": nil, "error": "Error loading categories"})
		return
	}
	render(c, http.StatusOK, "catagory.html", gin.H{"catagories": categories, "error": nil})
}

func (h *CategoryHandler) Products(c *gin.Context) {
	category := c.Param("id")

	products, err := h.categoryService.Products(category)
	if err != nil {
		render(c, http.StatusOK, "products.html", gin.H{"products": nil, "error": "Error loading category products"})
		return
	}
	render(c, http.StatusOK, "products.html", gin.H{
		"products":     products,
		"categoryName": category,
		"error":        nil,
	})
}
