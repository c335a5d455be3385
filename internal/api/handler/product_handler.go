package handler

import (
	"log"
	"net/http"
	"strconv"

	"storefront/internal/api/middleware"
	"storefront/internal/core/service"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List()
	if err != nil {
		render(c, http.StatusOK, "products.html", gin.H{"products": nil, "error": "Failed to load products"})
		return
	}
	render(c, http.StatusOK, "products.html", gin.H{"products": products})
}

func (h *ProductHandler) Detail(c *gin.Context) {
	product, err := h.productService.Get(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/products")
		return
	}
	render(c, http.StatusOK, "product-detail.html", gin.H{"product": product})
}

func (h *ProductHandler) MyProducts(c *gin.Context) {
	viewer := middleware.CurrentUser(c)

	products, err := h.productService.ListByOwner(viewer.ID)
	if err != nil {
		render(c, http.StatusOK, "my-products.html", gin.H{"products": nil, "error": "Failed to load products"})
		return
	}
	render(c, http.StatusOK, "my-products.html", gin.H{"products": products})
}

// AllProducts is the admin view; owner details stay visible there.
func (h *ProductHandler) AllProducts(c *gin.Context) {
	products, err := h.productService.List()
	if err != nil {
		render(c, http.StatusOK, "all-products.html", gin.H{"products": nil, "error": "Failed to load products"})
		return
	}
	render(c, http.StatusOK, "all-products.html", gin.H{"products": products})
}

func (h *ProductHandler) ShowAddForm(c *gin.Context) {
	render(c, http.StatusOK, "add-product.html", gin.H{"error": nil})
}

func (h *ProductHandler) Add(c *gin.Context) {
	viewer := middleware.CurrentUser(c)

	priceField := c.PostForm("price")
	price, priceErr := strconv.ParseFloat(priceField, 64)
	stock, _ := strconv.Atoi(c.DefaultPostForm("stock", "0"))

	input := service.ProductInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Category:    c.PostForm("category"),
		Image:       c.PostForm("image"),
		Stock:       stock,
	}

	if priceField == "" || priceErr != nil {
		render(c, http.StatusOK, "add-product.html", gin.H{"error": "Failed to add product"})
		return
	}

	if _, err := h.productService.Create(viewer.ID, input); err != nil {
		render(c, http.StatusOK, "add-product.html", gin.H{"error": "Failed to add product"})
		return
	}
	c.Redirect(http.StatusFound, "/products/my-products")
}

func (h *ProductHandler) Delete(c *gin.Context) {
	viewer := middleware.CurrentUser(c)

	// Ownership is checked in the service; every outcome lands back on the
	// caller's product list.
	if err := h.productService.Delete(viewer.ID, viewer.Admin, c.Param("id")); err != nil {
		log.Printf("Error deleting product: %v", err)
	}
	c.Redirect(http.StatusFound, "/products/my-products")
}
