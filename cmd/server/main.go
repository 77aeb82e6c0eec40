package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webfitpro/backend/internal/api"
	"webfitpro/backend/internal/config"
	"webfitpro/backend/internal/repository/mongo"
	"webfitpro/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Fatal("could not load config", zap.Error(err))
	}
	logger.Info("configuration loaded", zap.String("address", cfg.Server.Address))

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logger.Fatal("could not connect to MongoDB", zap.Error(err))
	}
	defer func() {
		logger.Info("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logger.Error("failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logger.Info("database connection established", zap.String("database", cfg.Database.Name))

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureUserIndexes(ctx, appDB.Collection("Users")); err != nil {
			logger.Warn("user index creation failed", zap.Error(err))
		}
		if err := mongo.EnsureSessionIndexes(ctx, appDB.Collection("UserSessions")); err != nil {
			logger.Warn("session index creation failed", zap.Error(err))
		}
		if err := mongo.EnsureLikeIndexes(ctx, appDB.Collection("UsersLike")); err != nil {
			logger.Warn("like index creation failed", zap.Error(err))
		}
		if err := mongo.EnsureVideoIndexes(ctx, appDB.Collection("Videos")); err != nil {
			logger.Warn("video index creation failed", zap.Error(err))
		}
		logger.Info("index creation completed")
	}()

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	sessionRepo := mongo.NewMongoSessionRepository(appDB)
	likeRepo := mongo.NewMongoLikeRepository(appDB)
	videoRepo := mongo.NewMongoVideoRepository(appDB)
	quoteRepo := mongo.NewMongoQuoteRepository(appDB)

	// --- Initialize Services ---
	accountService := service.NewAccountService(userRepo, sessionRepo, likeRepo, videoRepo)
	routineService := service.NewRoutineService(sessionRepo, videoRepo, likeRepo)
	catalogService := service.NewCatalogService(videoRepo, likeRepo, quoteRepo)

	// --- Initialize Gin Engine ---
	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	api.SetupRoutes(router, logger, accountService, routineService, catalogService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen and serve error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
