package handler

import (
	"log"
	"net/http"
	"strconv"

	"storefront/internal/api/middleware"
	"storefront/internal/core/service"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) Show(c *gin.Context) {
	viewer := middleware.CurrentUser(c)

	cart, err := h.cartService.GetOrCreate(viewer.ID)
	if err != nil {
		log.Printf("Error fetching cart: %v", err)
		render(c, http.StatusOK, "cart.html", gin.H{"cart": nil, "error": "Error loading cart"})
		return
	}
	render(c, http.StatusOK, "cart.html", gin.H{"cart": cart, "error": nil})
}

// Add puts a product in the viewer's cart. A missing product, bad quantity
// or insufficient stock leaves the cart untouched and lands back on the
// catalog.
func (h *CartHandler) Add(c *gin.Context) {
	viewer := middleware.CurrentUser(c)

	qty, err := strconv.Atoi(c.PostForm("qty"))
	if err != nil {
		c.Redirect(http.StatusFound, "/products")
		return
	}

	if err := h.cartService.AddItem(viewer.ID, c.PostForm("productId"), qty); err != nil {
		c.Redirect(http.StatusFound, "/products")
		return
	}
	c.Redirect(http.StatusFound, "/cart")
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	viewer := middleware.CurrentUser(c)

	qty, err := strconv.Atoi(c.PostForm("qty"))
	if err != nil {
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	if err := h.cartService.UpdateItemQty(viewer.ID, c.Param("itemId"), qty); err != nil {
		log.Printf("Error updating cart: %v", err)
	}
	c.Redirect(http.StatusFound, "/cart")
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	viewer := middleware.CurrentUser(c)

	if err := h.cartService.RemoveItem(viewer.ID, c.Param("itemId")); err != nil {
		log.Printf("Error removing from cart: %v", err)
	}
	c.Redirect(http.StatusFound, "/cart")
}

func (h *CartHandler) Clear(c *gin.Context) {
	viewer := middleware.CurrentUser(c)

	if err := h.cartService.Clear(viewer.ID); err != nil {
		log.Printf("Error clearing cart: %v", err)
		c.Redirect(http.StatusFound, "/cart")
		return
	}
	c.Redirect(http.StatusFound, "/")
}
