package routes

import (
	"github.com/trung2605/bakery-assginment-be/configs"
	"github.com/trung2605/bakery-assginment-be/controllers"
	"github.com/trung2605/bakery-assginment-be/entity"
	"github.com/trung2605/bakery-assginment-be/middlewares"
	"github.com/trung2605/bakery-assginment-be/pkg/logger"
	"github.com/trung2605/bakery-assginment-be/repository"
	"github.com/trung2605/bakery-assginment-be/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers by hand and
// mounts the API.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	cartRepo := repository.NewCartRepository(db)
	idRepo := repository.NewIDRepository()

	// Services
	log := logger.L()
	idSvc := services.NewIDService(idRepo)
	userSvc := services.NewUserService(db, userRepo, cartRepo, idSvc, log)
	cartSvc := services.NewCartService(db, cartRepo, productRepo, idSvc, log)
	productSvc := services.NewProductService(db, productRepo)
	branchSvc := services.NewBranchService(db, branchRepo)
	chatbotSvc := services.NewChatbotService(db, productRepo, branchRepo, cfg.GeminiAPIKey, cfg.GeminiModel, log)

	// Controllers
	authCtl := controllers.NewAuthController(userSvc, cfg.JWTSecret, cfg.JWTTTL)
	userCtl := controllers.NewUserController(userSvc)
	cartCtl := controllers.NewCartController(cartSvc)
	productCtl := controllers.NewProductController(productSvc)
	branchCtl := controllers.NewBranchController(branchSvc)
	chatbotCtl := controllers.NewChatbotController(chatbotSvc, log)

	api := r.Group("/api")

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtl.Me)
	}

	// Users
	users := api.Group("/users")
	{
		users.GET("", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin), userCtl.List)
		users.GET("/:id", middlewares.AuthMiddleware(cfg.JWTSecret), userCtl.Get)
		users.PATCH("/:id", middlewares.AuthMiddleware(cfg.JWTSecret), userCtl.Update)
		users.DELETE("/:id", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin), userCtl.Delete)
	}

	// Products (public reads, admin writes)
	api.GET("/products", productCtl.List)
	api.GET("/products/:id", productCtl.Get)
	adminProducts := api.Group("/products", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		adminProducts.POST("", productCtl.Create)
		adminProducts.PUT("/:id", productCtl.Update)
		adminProducts.DELETE("/:id", productCtl.Delete)
	}

	// Branches (public reads, admin writes)
	api.GET("/branches", branchCtl.List)
	api.GET("/branches/:id", branchCtl.Get)
	adminBranches := api.Group("/branches", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		adminBranches.POST("", branchCtl.Create)
		adminBranches.PUT("/:id", branchCtl.Update)
		adminBranches.DELETE("/:id", branchCtl.Delete)
	}

	// Cart — open to guests, so no auth middleware; possession of the cart id
	// is the capability.
	cart := api.Group("/cart")
	{
		cart.POST("", cartCtl.CreateGuest)
		cart.GET("/:cartId", cartCtl.Get)
		cart.POST("/:cartId/items", cartCtl.AddItem)
		cart.PUT("/:cartId/items/:itemId", cartCtl.UpdateItem)
		cart.DELETE("/:cartId/items/:itemId", cartCtl.RemoveItem)
		cart.DELETE("/:cartId/items", cartCtl.Clear)
	}

	// Chatbot
	chatbot := api.Group("/chatbot")
	{
		chatbot.POST("/message", chatbotCtl.SendMessage)
		chatbot.GET("/greet", chatbotCtl.Greet)
	}
}
