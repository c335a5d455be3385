package router

import (
	"storefront/internal/api/handler"
	"storefront/internal/api/middleware"
	"storefront/internal/api/util"
	"storefront/internal/config"
	"storefront/internal/core/repository"
	"storefront/internal/core/service"

	"github.com/gin-gonic/gin"
)

func NewRouter(
	cfg *config.Config,
	userService service.UserService,
	productService service.ProductService,
	cartService service.CartService,
	categoryService service.CategoryService,
	tokens *util.TokenManager,
	userRepo repository.UserRepository,
) *gin.Engine {
	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService, tokens, cfg)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	homeHandler := handler.NewHomeHandler(productService)
	authMiddleware := middleware.NewAuthMiddleware(tokens, userRepo)

	r := gin.Default()
	r.LoadHTMLGlob(cfg.TemplateGlob)

	// Every page gets a best-effort viewer; only guarded routes deny.
	r.Use(authMiddleware.ResolveViewer)

	r.GET("/", homeHandler.Home)

	auth := r.Group("/auth")
	{
		auth.GET("/login", authHandler.ShowLogin)
		auth.POST("/login", authHandler.Login)
		auth.GET("/register", authHandler.ShowRegister)
		auth.POST("/register", authHandler.Register)
		auth.GET("/logout", authHandler.Logout)
		auth.GET("/profile", authMiddleware.RequireAuth, authHandler.Profile)
		auth.PUT("/profile", authMiddleware.RequireAuth, authHandler.UpdateProfile)
	}

	products := r.Group("/products")
	{
		products.GET("", productHandler.List)
		products.GET("/my-products", authMiddleware.RequireAuth, productHandler.MyProducts)
		products.GET("/all-products", authMiddleware.RequireAuth, authMiddleware.RequireAdmin, productHandler.AllProducts)
		products.GET("/add", authMiddleware.RequireAuth, productHandler.ShowAddForm)
		products.POST("/add", authMiddleware.RequireAuth, productHandler.Add)
		products.GET("/delete/:id", authMiddleware.RequireAuth, productHandler.Delete)
		products.GET("/:id", productHandler.Detail)
	}

	cart := r.Group("/cart", authMiddleware.RequireAuth)
	{
		cart.GET("", cartHandler.Show)
		cart.POST("", cartHandler.Add)
		cart.PUT("/:itemId", cartHandler.UpdateItem)
		cart.DELETE("/:itemId", cartHandler.RemoveItem)
		cart.DELETE("", cartHandler.Clear)
	}

	// The original spells this route "catagory"; kept for link compatibility.
	category := r.Group("/catagory")
	{
		category.GET("", categoryHandler.List)
		category.GET("/:id", categoryHandler.Products)
	}

	return r
}
