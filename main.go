package main

import (
	"fmt"

	"github.com/Hamdan-B/FoodiesHub/configs"
	"github.com/Hamdan-B/FoodiesHub/llm"
	"github.com/Hamdan-B/FoodiesHub/middlewares"
	"github.com/Hamdan-B/FoodiesHub/pkg/logger"
	"github.com/Hamdan-B/FoodiesHub/routes"
	"github.com/Hamdan-B/FoodiesHub/storage"
	"github.com/Hamdan-B/FoodiesHub/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	cfg := configs.LoadConfig()
	logger.Init(cfg.Env)
	defer logger.Sync()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	db := configs.DB()

	// Collaborators
	hub := ws.NewOrderHub()
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMModel, cfg.LLMAPIKey)
	uploader := storage.NewDisk(cfg.UploadDir, cfg.PublicBaseURL)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RateLimitMiddleware(rate.Limit(20), 40))

	// serve uploaded images (store logos, food photos, rider avatars)
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, hub, llmClient, uploader)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.L().Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
