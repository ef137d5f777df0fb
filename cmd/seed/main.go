package main

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/example/quickbite/internal/config"
	"github.com/example/quickbite/internal/database"
	"github.com/example/quickbite/internal/store"
	"github.com/example/quickbite/internal/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	seeder := store.NewSeeder(store.NewDatabaseStore(db), logger)

	if err := seeder.SeedAdmin(ctx, cfg.AdminPhone, cfg.AdminPassword); err != nil {
		if errors.Is(err, store.ErrMissingAdminCredentials) {
			logger.Warn("ADMIN_PHONE or ADMIN_PASSWORD not set; admin not seeded")
		} else {
			logger.Fatal("seeding admin failed", zap.Error(err))
		}
	}

	if err := seeder.SeedMenus(ctx); err != nil {
		logger.Fatal("seeding menus failed", zap.Error(err))
	}

	logger.Info("seeding finished")
}
