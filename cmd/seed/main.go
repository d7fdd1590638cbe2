package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/founditapp/foundit-backend/config"
	"github.com/founditapp/foundit-backend/internal/domain/entity"
	"github.com/founditapp/foundit-backend/internal/infrastructure/kvstore"
	"github.com/founditapp/foundit-backend/pkg/helpers"
)

// Seeds the store with the demo account and the default listing and
// testimonial collections. Safe to re-run: existing users are kept, the
// demo collections are rewritten.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	ctx := context.Background()

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis unreachable: %v", err)
	}
	store := kvstore.NewRedisStore(rdb)

	if err := kvstore.ResetDemoData(ctx, store, cfg.StoreVersion, logger); err != nil {
		log.Fatalf("seed demo collections: %v", err)
	}

	users := kvstore.NewUserRepository(store, logger)
	existing, err := users.GetByUsername(ctx, "demo")
	if err != nil {
		log.Fatalf("load users: %v", err)
	}
	if existing == nil {
		hash, err := helpers.HashPassword("password123")
		if err != nil {
			log.Fatalf("hash demo password: %v", err)
		}
		u := entity.User{
			ID:           uuid.NewString(),
			Username:     "demo",
			PasswordHash: hash,
			CreatedAt:    time.Now(),
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("create demo user: %v", err)
		}
		logger.Info("demo user created (demo / password123)")
	} else {
		logger.Info("demo user already present, skipping")
	}

	logger.Infof("store seeded under version %s", cfg.StoreVersion)
}
