package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/redis/go-redis/v9"

	"github.com/example/quickbite/internal/config"
	"github.com/example/quickbite/internal/database"
	"github.com/example/quickbite/internal/handlers"
	"github.com/example/quickbite/internal/routes"
	"github.com/example/quickbite/internal/services"
	"github.com/example/quickbite/internal/store"
	"github.com/example/quickbite/internal/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	checks := map[string]handlers.HealthCheck{}

	var (
		st          store.Store
		db          *gorm.DB
		storageName = "memory"
	)
	if cfg.UseMemoryStore {
		st = store.NewMemoryStore()
		logger.Warn("using in-memory store; data is lost on restart")
	} else {
		var err error
		db, err = database.Connect(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("database connection failed", zap.Error(err))
		}
		st = store.NewDatabaseStore(db)
		storageName = "postgres"
		checks["database"] = func(ctx context.Context) error { return database.Ping(ctx, db) }
	}

	var (
		revoked services.RevocationStore
		rdb     *redis.Client
	)
	if cfg.RedisURL != "" {
		var err error
		rdb, err = database.ConnectRedis(cfg.RedisURL, logger)
		if err != nil {
			logger.Fatal("redis connection failed", zap.Error(err))
		}
		revoked = services.NewRedisRevocationStore(rdb)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	} else {
		revoked = services.NewMemoryRevocationStore()
		logger.Warn("REDIS_URL not set; revoked tokens are kept in memory")
	}

	var sender services.OTPSender
	if twilio := services.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, logger); twilio != nil {
		sender = twilio
	} else if cfg.OTPDeliveryEnabled() {
		logger.Warn("OTP delivery enabled but Twilio is not configured; codes will not be sent")
	}

	var provider services.PaymentIntentProvider
	if stripe := services.NewStripeProvider(cfg.StripeSecretKey); stripe != nil {
		provider = stripe
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set; payment intents are disabled")
	}

	telegram := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat, logger)

	authService := services.NewAuthService(st, revoked, sender, services.AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.TokenExpires,
		DeliverOTP: cfg.OTPDeliveryEnabled(),
	}, logger)

	app := routes.NewApp(logger, routes.Dependencies{
		Auth:     authService,
		Orders:   services.NewOrderService(st, telegram, logger),
		Menus:    services.NewMenuService(st),
		Payments: services.NewPaymentService(provider, cfg.StripePublishableKey, cfg.StripeCurrency, logger),
		Health:   handlers.NewHealthHandler("QuickBite API", storageName, checks),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("starting server",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.Env),
		zap.String("storage", storageName),
	)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		logger.Fatal("fiber.Listen error", zap.Error(err))
	}

	if rdb != nil {
		_ = rdb.Close()
	}
	if db != nil {
		_ = database.Close(db)
	}
	logger.Info("server stopped")
}
