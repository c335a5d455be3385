package handler

import (
	"log"
	"net/http"

	"storefront/internal/core/service"

	"github.com/gin-gonic/gin"
)

const homeProductCount = 6

type HomeHandler struct {
	productService service.ProductService
}

func NewHomeHandler(productService service.ProductService) *HomeHandler {
	return &HomeHandler{
		productService: productService,
	}
}

func (h *HomeHandler) Home(c *gin.Context) {
	products, err := h.productService.Latest(homeProductCount)
	if err != nil {
		log.Printf("Error loading storefront products: %v", err)
		products = nil
	}
	render(c, http.StatusOK, "index.html", gin.H{"products": products})
}
