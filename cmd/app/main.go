package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"giveaway-backend/internal/common/cache"
	"giveaway-backend/internal/common/config"
	"giveaway-backend/internal/common/logger"
	"giveaway-backend/internal/common/middleware"
	channelhttp "giveaway-backend/internal/features/channel/delivery/http"
	channelrepo "giveaway-backend/internal/features/channel/repository/postgres"
	channelservice "giveaway-backend/internal/features/channel/service"
	giveawayhttp "giveaway-backend/internal/features/giveaway/delivery/http"
	"giveaway-backend/internal/features/giveaway/notifier"
	giveawayrepo "giveaway-backend/internal/features/giveaway/repository/postgres"
	giveawayservice "giveaway-backend/internal/features/giveaway/service"
	"giveaway-backend/internal/platform/db"
	redisplatform "giveaway-backend/internal/platform/redis"
	"giveaway-backend/internal/platform/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger.Init("giveaway-backend", cfg.Debug)

	gdb, err := db.Open(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close(gdb)

	if err := db.Migrate(gdb); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate schema")
	}

	// The channel cache is optional; without Redis every lookup hits the
	// store.
	var cacheService *cache.Service
	if rdb, err := redisplatform.Open(cfg); err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, channel cache disabled")
	} else {
		defer rdb.Close()
		cacheService = cache.NewService(rdb)
	}

	channelRepository := channelrepo.NewChannelRepository(gdb)
	giveawayRepository := giveawayrepo.NewGiveawayRepository(gdb)

	tgClient := telegram.NewClient(cfg.Telegram.BotToken)

	channelSvc := channelservice.NewChannelService(channelRepository, cacheService)
	giveawaySvc := giveawayservice.NewGiveawayService(
		giveawayRepository,
		channelSvc,
		notifier.NewTelegramNotifier(tgClient),
	)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	corsConfig := cors.DefaultConfig()
	if cfg.Server.Origin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept"}
	router.Use(cors.New(corsConfig))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend is running")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	channelhttp.NewChannelHandler(channelSvc).RegisterRoutes(router)
	giveawayhttp.NewGiveawayHandler(giveawaySvc).RegisterRoutes(router)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server shutdown failed")
	}
	logger.Info().Msg("Server stopped")
}
