package main

import (
	"context"
	"errors"
	"time"

	"github.com/bgocumlu/menu/internal/env"
	"github.com/bgocumlu/menu/internal/repo"
	"github.com/bgocumlu/menu/internal/seed"
	"github.com/bgocumlu/menu/internal/service"
	"github.com/bgocumlu/menu/internal/store/mongo"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	storage, err := mongo.New(mongo.Config{
		URI:      env.GetString("MONGO_URI", "mongodb://localhost:27017"),
		Database: env.GetString("MONGO_DATABASE", "menu"),
		Timeout:  time.Second * 10,
	})
	if err != nil {
		logger.Fatalw("failed to connect to MongoDB", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	defer func() {
		if err := storage.Close(context.Background()); err != nil {
			logger.Errorw("error closing MongoDB", "error", err)
		}
	}()

	if err := storage.CreateIndexes(ctx); err != nil {
		logger.Fatalw("failed to create indexes", "error", err)
	}

	restaurant := seed.Anatolia()
	if err := restaurant.Validate(); err != nil {
		logger.Fatalw("seed document is invalid", "error", err)
	}

	// the seed is a direct write, not an editor save, so nothing is published
	restaurants := service.NewRestaurantService(mongo.NewRestaurantRepository(storage.Database()), nil, logger)
	if _, err := restaurants.Replace(ctx, restaurant, ""); err != nil {
		logger.Fatalw("failed to seed restaurant", "error", err)
	}
	logger.Infow("restaurant seeded", "restaurant_id", restaurant.ID)

	password := env.GetString("SEED_PASSWORD", "")
	if password == "" {
		logger.Warn("SEED_PASSWORD not set, admin password left untouched")
		return
	}

	credentials := service.NewCredentialService(
		mongo.NewCredentialRepository(storage.Database()),
		env.GetInt("BCRYPT_COST", bcrypt.DefaultCost),
		logger,
	)
	if err := credentials.Create(ctx, password); err != nil {
		if errors.Is(err, repo.ErrCredentialExists) {
			logger.Info("admin password already set")
			return
		}
		logger.Fatalw("failed to set admin password", "error", err)
	}
}
