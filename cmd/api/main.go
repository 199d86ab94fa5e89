package main

import (
	"context"
	"os"
	"time"

	"github.com/bgocumlu/menu/internal/editor"
	"github.com/bgocumlu/menu/internal/env"
	"github.com/bgocumlu/menu/internal/parser"
	"github.com/bgocumlu/menu/internal/preferences"
	"github.com/bgocumlu/menu/internal/queue"
	"github.com/bgocumlu/menu/internal/ratelimiter"
	"github.com/bgocumlu/menu/internal/service"
	"github.com/bgocumlu/menu/internal/store/mongo"
	"github.com/bgocumlu/menu/internal/worker"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const version = "1.0.0"

//	@title			Restaurant Menu
//	@description	API for the bilingual restaurant menu and its editor
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath					/api/v1
//
// @securityDefinitions.apiKey	MenuPassword
// @in							header
// @name						X-Menu-Password
// @description
func main() {
	_ = godotenv.Load()

	cfg := config{
		addr:   env.GetString("ADDR", ":8080"),
		apiURL: env.GetString("EXTERNAL_URL", "localhost:8080"),
		env:    env.GetString("ENV", "development"),
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 20),
			TimeFrame:            time.Second * 5,
			Enabled:              env.GetBool("RATE_LIMITER_ENABLED", true),
		},
		mongo: mongoConfig{
			URI:      env.GetString("MONGO_URI", "mongodb://localhost:27017"),
			Database: env.GetString("MONGO_DATABASE", "menu"),
			Timeout:  time.Second * 10,
		},
		rabbitMQ: rabbitMQConfig{
			URL:           env.GetString("RABBITMQ_URL", ""),
			MaxRetries:    env.GetInt("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay:    time.Second * 2,
			PrefetchCount: env.GetInt("RABBITMQ_PREFETCH_COUNT", 10),
		},
		googleCreds: env.GetString("GOOGLE_CREDENTIALS_PATH", ""),
		editor: editorConfig{
			sessionTTL:       env.GetDuration("EDITOR_SESSION_TTL", 2*time.Hour),
			preferenceMaxAge: time.Hour * 24 * 365,
		},
		bcryptCost: env.GetInt("BCRYPT_COST", bcrypt.DefaultCost),
	}

	// logger
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	// rate limiter
	rateLimiter := ratelimiter.NewTokenBucketLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	// storage
	storage, err := mongo.New(mongo.Config{
		URI:      cfg.mongo.URI,
		Database: cfg.mongo.Database,
		Timeout:  cfg.mongo.Timeout,
	})
	if err != nil {
		logger.Fatalw("failed to connect to MongoDB", "error", err)
	}

	logger.Info("connected to MongoDB")

	// create indexes
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := storage.CreateIndexes(ctx); err != nil {
		logger.Warnw("failed to create indexes", "error", err)
	} else {
		logger.Info("MongoDB indexes created successfully")
	}

	// repos
	restaurantRepo := mongo.NewRestaurantRepository(storage.Database())
	credentialRepo := mongo.NewCredentialRepository(storage.Database())
	auditRepo := mongo.NewMenuSaveAuditRepository(storage.Database())

	app := &application{
		config:      cfg,
		logger:      logger,
		rateLimiter: rateLimiter,
		storage:     storage,
		preferences: preferences.New(cfg.editor.preferenceMaxAge, cfg.env == "production"),
	}

	// rabbitmq broker
	var broker queue.Broker
	if cfg.rabbitMQ.URL != "" {
		rabbit, err := queue.NewRabbitMQBroker(queue.Config{
			URL:           cfg.rabbitMQ.URL,
			MaxRetries:    cfg.rabbitMQ.MaxRetries,
			RetryDelay:    cfg.rabbitMQ.RetryDelay,
			PrefetchCount: cfg.rabbitMQ.PrefetchCount,
		})
		if err != nil {
			logger.Fatalw("failed to connect to RabbitMQ", "error", err)
		}
		broker = rabbit
		app.broker = rabbit

		logger.Info("connected to RabbitMQ")
	} else {
		logger.Warn("RabbitMQ URL not provided, menu saves will not be audited")
	}

	if cfg.googleCreds != "" {
		credsJSON, err := os.ReadFile(cfg.googleCreds)
		if err != nil {
			logger.Fatalw("failed to read Google credentials", "error", err)
		}

		googleParser, err := parser.New(parser.Config{
			CredentialsJSON: credsJSON,
		})
		if err != nil {
			logger.Fatalw("failed to create Google Sheets parser", "error", err)
		}
		app.importer = googleParser
		logger.Info("Google Sheets parser initialized")
	} else {
		logger.Warn("Google credentials not provided, sheet import is disabled")
	}

	restaurantService := service.NewRestaurantService(restaurantRepo, broker, logger)
	credentialService := service.NewCredentialService(credentialRepo, cfg.bcryptCost, logger)
	auditService := service.NewMenuSaveAuditService(auditRepo, logger)

	app.restaurants = restaurantService
	app.credentials = credentialService
	app.audits = auditService
	app.sessions = editor.NewRegistry(restaurantService, credentialService, cfg.editor.sessionTTL, logger)

	if broker != nil {
		app.auditWorker = worker.NewMenuSaveAuditWorker(auditService, broker, logger)
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
