package routes

import (
	"github.com/Hamdan-B/FoodiesHub/configs"
	"github.com/Hamdan-B/FoodiesHub/controllers"
	"github.com/Hamdan-B/FoodiesHub/entity"
	"github.com/Hamdan-B/FoodiesHub/llm"
	"github.com/Hamdan-B/FoodiesHub/middlewares"
	"github.com/Hamdan-B/FoodiesHub/repository"
	"github.com/Hamdan-B/FoodiesHub/services"
	"github.com/Hamdan-B/FoodiesHub/storage"
	"github.com/Hamdan-B/FoodiesHub/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub, llmClient *llm.Client, uploader storage.Uploader) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	riderRepo := repository.NewRiderRepository(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, riderRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(storeRepo, foodRepo)
	storeSvc := services.NewStoreService(storeRepo, foodRepo)
	orderSvc := services.NewOrderService(db, orderRepo, foodRepo, storeRepo, riderRepo, hub)
	riderSvc := services.NewRiderService(riderRepo, userRepo)
	adminSvc := services.NewAdminService(userRepo, storeRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	sellerCtrl := controllers.NewSellerController(storeSvc, orderSvc, userRepo, llmClient)
	riderCtrl := controllers.NewRiderController(riderSvc, orderSvc, userRepo)
	adminCtrl := controllers.NewAdminController(adminSvc, orderSvc)
	aiCtrl := controllers.NewAIController(llmClient)
	uploadCtrl := controllers.NewUploadController(uploader)
	wsHandler := ws.NewHandler(hub, orderRepo, riderRepo)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Public catalog
	r.GET("/stores", catalogCtrl.ListStores)
	r.GET("/stores/:id", catalogCtrl.StoreDetail)
	r.GET("/stores/:id/foods", catalogCtrl.StoreFoods)
	r.GET("/cities", catalogCtrl.Cities)
	r.GET("/reference", catalogCtrl.Reference)
	r.POST("/catalog/filter", catalogCtrl.Filter)

	// Buyer orders
	buyer := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleBuyer))
	{
		buyer.POST("", orderCtrl.Checkout)
		buyer.GET("", orderCtrl.ListForMe)
		buyer.GET("/:id", orderCtrl.Detail)
		buyer.POST("/:id/cancel", orderCtrl.Cancel)
	}

	// Seller
	seller := r.Group("/seller", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleSeller))
	{
		seller.GET("/store", sellerCtrl.MyStore)
		seller.POST("/store", sellerCtrl.CreateStore)
		seller.PATCH("/store", sellerCtrl.UpdateStore)

		seller.GET("/foods", sellerCtrl.ListFoods)
		seller.POST("/foods", sellerCtrl.CreateFood)
		seller.PATCH("/foods/:id", sellerCtrl.UpdateFood)
		seller.DELETE("/foods/:id", sellerCtrl.DeleteFood)
		seller.POST("/foods/nutrition", sellerCtrl.GenerateNutrition)

		seller.GET("/orders", sellerCtrl.ListOrders)
		seller.POST("/orders/:id/accept", sellerCtrl.Accept)
		seller.POST("/orders/:id/reject", sellerCtrl.Reject)
		seller.POST("/orders/:id/preparing", sellerCtrl.Prepare)
		seller.POST("/orders/:id/ready", sellerCtrl.Ready)
	}

	// Rider
	rider := r.Group("/rider", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleRider))
	{
		rider.GET("/me", riderCtrl.Me)
		rider.POST("/status", riderCtrl.SetStatus)
		rider.POST("/availability", riderCtrl.SetAvailability)
		rider.POST("/profile-image", riderCtrl.SetProfileImage)

		rider.GET("/orders", riderCtrl.MyOrders)
		rider.GET("/orders/available", riderCtrl.Available)
		rider.POST("/orders/:id/claim", riderCtrl.Claim)
		rider.POST("/orders/:id/pickup", riderCtrl.StartDelivery)
		rider.POST("/orders/:id/delivered", riderCtrl.Delivered)
	}

	// Live feeds
	r.GET("/ws/orders/:id", middlewares.WSAuthMiddleware(cfg.JWTSecret), wsHandler.HandleOrderSocket)
	r.GET("/ws/rider/available", middlewares.WSAuthMiddleware(cfg.JWTSecret, entity.RoleRider), wsHandler.HandleAvailableSocket)

	// AI assistant
	ai := r.Group("/ai", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		ai.POST("/chat", aiCtrl.Chat)
		ai.POST("/recommendations", aiCtrl.Recommendations)
	}

	// Uploads (any signed-in user)
	r.POST("/uploads/:kind", middlewares.AuthMiddleware(cfg.JWTSecret), uploadCtrl.Upload)

	// Admin
	admin := r.Group("/admin",
		middlewares.AuthMiddleware(cfg.JWTSecret),
		middlewares.AdminMiddleware(cfg.AdminEmail),
	)
	{
		admin.GET("/users", adminCtrl.Users)
		admin.GET("/stores", adminCtrl.Stores)
		admin.GET("/orders", adminCtrl.ListOrders)
		admin.POST("/users/:id/seller-approval", adminCtrl.SellerApproval)
		admin.POST("/users/:id/rider-approval", adminCtrl.RiderApproval)
		admin.POST("/orders/:id/cancel", adminCtrl.CancelOrder)
	}
}
