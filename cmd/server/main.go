package main

import (
	"log"

	"storefront/internal/api/router"
	"storefront/internal/api/util"
	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/core/repository"
	"storefront/internal/core/service"
)

func main() {
	cfg := config.LoadConfig()

	var userRepo repository.UserRepository
	var productRepo repository.ProductRepository
	var cartRepo repository.CartRepository

	if cfg.TestMode {
		log.Println("TEST_MODE enabled, using in-memory stores")
		userRepo = repository.NewInMemoryUserRepository()
		productRepo = repository.NewInMemoryProductRepository()
		cartRepo = repository.NewInMemoryCartRepository()
	} else {
		mongoConfig := config.NewMongoConfig()
		db, err := config.ConnectMongoDB(mongoConfig)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		userRepo = repository.NewMongoUserRepository(db)
		productRepo = repository.NewMongoProductRepository(db)
		cartRepo = repository.NewMongoCartRepository(db)
	}

	productCache := cache.New(cfg.RedisURL)
	defer productCache.Close()

	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, productCache)
	cartService := service.NewCartService(cartRepo, productRepo)
	categoryService := service.NewCategoryService(productRepo)

	tokens := util.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	r := router.NewRouter(cfg, userService, productService, cartService, categoryService, tokens, userRepo)

	addr := cfg.Host + ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
