package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-parts-store/internal/handler"
	"go-parts-store/internal/middleware"
	"go-parts-store/internal/model"
	"go-parts-store/internal/repository"
	"go-parts-store/internal/service"
	"go-parts-store/internal/ws"
	"go-parts-store/pkg/database"
	"go-parts-store/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		// System env may still carry everything we need
	}

	if err := logger.Init(os.Getenv("APP_ENV")); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// 2. Setup Database
	db := database.Connect()
	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Marketplace{},
		&model.ImportJob{},
	); err != nil {
		logger.L().Fatal("auto-migration failed", zap.Error(err))
	}

	// 3. Seed default admin
	seedDefaultAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./public/uploads"
	}

	// 5. Dependency Injection (Wiring Layers)
	txManager := repository.NewTxManager(db)
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	cartRepo := repository.NewCartRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	marketplaceRepo := repository.NewMarketplaceRepo(db)
	importJobRepo := repository.NewImportJobRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(productRepo, categoryRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	orderService := service.NewOrderService(txManager, orderRepo, cartRepo, userRepo, productRepo, wsHub)
	marketplaceService := service.NewMarketplaceService(marketplaceRepo)
	importService := service.NewImportService(importJobRepo, productRepo, wsHub, uploadDir)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(catalogService)
	categoryHandler := handler.NewCategoryHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	marketplaceHandler := handler.NewMarketplaceHandler(marketplaceService)
	uploadHandler := handler.NewUploadHandler(uploadDir)
	importHandler := handler.NewImportHandler(importService, uploadDir)
	stubHandler := handler.NewStubHandler()

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Parts Store API v1.0",
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestLogger())
	app.Use(middleware.Metrics())

	// 7. Routes
	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.RequireAuth(), authHandler.Me)

	api.Get("/products", productHandler.ListProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Get("/categories", categoryHandler.ListCategories)
	api.Get("/categories/:id", categoryHandler.GetCategory)
	api.Get("/marketplaces", marketplaceHandler.List)
	api.Get("/marketplaces/:id", marketplaceHandler.Get)

	// Cart and checkout are keyed by an explicit userId, matching the
	// storefront clients
	api.Get("/cart", cartHandler.ListItems)
	api.Post("/cart", cartHandler.AddItem)
	api.Put("/cart/:id", cartHandler.UpdateItem)
	api.Delete("/cart/:id", cartHandler.RemoveItem)
	api.Post("/cart/clear", cartHandler.Clear)

	api.Post("/orders", orderHandler.Checkout)
	api.Get("/orders", orderHandler.ListOrders)
	api.Get("/orders/:id", orderHandler.GetOrder)

	// ============ ADMIN ROUTES ============
	admin := api.Group("", middleware.RequireAuth(), middleware.RequireAdmin())

	admin.Post("/products", productHandler.CreateProduct)
	admin.Put("/products/:id", productHandler.UpdateProduct)
	admin.Delete("/products/:id", productHandler.DeleteProduct)

	admin.Post("/categories", categoryHandler.CreateCategory)
	admin.Put("/categories/:id", categoryHandler.UpdateCategory)
	admin.Delete("/categories/:id", categoryHandler.DeleteCategory)

	admin.Post("/marketplaces", marketplaceHandler.Create)
	admin.Put("/marketplaces/:id", marketplaceHandler.Update)
	admin.Delete("/marketplaces/:id", marketplaceHandler.Delete)

	admin.Get("/users", userHandler.ListUsers)
	admin.Get("/users/:id", userHandler.GetUser)
	admin.Put("/users/:id", userHandler.UpdateUser)
	admin.Put("/users/:id/approve", userHandler.ApproveUser)
	admin.Delete("/users/:id", userHandler.DeleteUser)

	admin.Put("/orders/:id/status", orderHandler.SetStatus)
	admin.Post("/orders/bulk-delete", orderHandler.BulkDelete)

	admin.Post("/upload", uploadHandler.Upload)

	admin.Post("/import-jobs", importHandler.StartImport)
	admin.Post("/import-jobs/export", importHandler.StartExport)
	admin.Get("/import-jobs", importHandler.ListJobs)
	admin.Get("/import-jobs/:id", importHandler.GetJob)

	// ============ STUB ROUTES ============
	// Contract-only resources: shape preserved, behavior pending
	stubHandler.RegisterRoutes(api.Group("/reviews"))
	stubHandler.RegisterRoutes(api.Group("/shipping"))
	stubHandler.RegisterRoutes(api.Group("/security"))
	stubHandler.RegisterRoutes(api.Group("/analytics"))
	stubHandler.RegisterRoutes(api.Group("/database"))

	// Uploaded files are served straight from the public directory
	app.Static("/uploads", uploadDir)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// WebSocket Route (admin dashboard events)
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			logger.L().Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.L().Fatal("forced shutdown", zap.Error(err))
	}

	logger.L().Info("server exited")
}

// seedDefaultAdmin creates the back-office admin account if it doesn't exist
func seedDefaultAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Email:      email,
		FullName:   "Store Administrator",
		IsAdmin:    true,
		IsApproved: true,
		IsActive:   true,
	}
	if err := admin.SetPassword(password); err != nil {
		logger.L().Warn("failed to hash admin password", zap.Error(err))
		return
	}

	if err := userRepo.Create(admin); err != nil {
		logger.L().Warn("failed to create admin user", zap.Error(err))
		return
	}
	logger.L().Info("admin user created", zap.String("email", email))
}
