package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/Aldonvacriates/E-Commerce-API/internal/api"
	"github.com/Aldonvacriates/E-Commerce-API/internal/config"
	"github.com/Aldonvacriates/E-Commerce-API/internal/repository"
	"github.com/Aldonvacriates/E-Commerce-API/internal/service"
	"github.com/Aldonvacriates/E-Commerce-API/migrations"
)

func connectDB(cfg config.Config) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", cfg.DSN())
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB %s", cfg.DBName)
				return db, nil
			}
		}
		log.Printf("Retry %d: Failed to connect to DB %s (%s:%s): %v", i+1, cfg.DBName, cfg.DBHost, cfg.DBPort, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s at %s:%s after retries: %v", cfg.DBName, cfg.DBHost, cfg.DBPort, err)
}

func main() {
	cfg := config.Load()

	db, err := connectDB(cfg)
	if err != nil {
		panic(err)
	}

	if err := migrations.All(db); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo, userRepo, productRepo)

	userHandler := api.NewUserHandler(userService)
	productHandler := api.NewProductHandler(productService)
	orderHandler := api.NewOrderHandler(orderService)
	bootstrapHandler := api.NewBootstrapHandler(db)

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     60,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	e.GET("/users", userHandler.GetUsers)
	e.GET("/users/:id", userHandler.GetUserByID)
	e.POST("/users", userHandler.CreateUser)
	e.PUT("/users/:id", userHandler.UpdateUser)
	e.DELETE("/users/:id", userHandler.DeleteUser)

	e.GET("/products", productHandler.GetProducts)
	e.GET("/products/:id", productHandler.GetProductByID)
	e.POST("/products", productHandler.CreateProduct)
	e.PUT("/products/:id", productHandler.UpdateProduct)
	e.DELETE("/products/:id", productHandler.DeleteProduct)

	e.POST("/orders", orderHandler.CreateOrder)
	e.GET("/orders/user/:user_id", orderHandler.GetOrdersByUser)
	e.GET("/orders/:id", orderHandler.GetOrderByID)
	e.GET("/orders/:id/products", orderHandler.GetOrderProducts)
	e.PUT("/orders/:id/add_product/:product_id", orderHandler.AttachProduct)
	e.DELETE("/orders/:id/remove_product/:product_id", orderHandler.DetachProduct)

	e.POST("/init-db", bootstrapHandler.InitDB)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "e-commerce-api",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(cfg.HTTPAddr))
}
