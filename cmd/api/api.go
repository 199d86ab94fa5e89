package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bgocumlu/menu/docs"
	"github.com/bgocumlu/menu/internal/domain"
	"github.com/bgocumlu/menu/internal/editor"
	"github.com/bgocumlu/menu/internal/preferences"
	"github.com/bgocumlu/menu/internal/queue"
	"github.com/bgocumlu/menu/internal/ratelimiter"
	"github.com/bgocumlu/menu/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config      config
	logger      *zap.SugaredLogger
	rateLimiter ratelimiter.Limiter
	storage     storage
	broker      queue.Broker
	restaurants restaurantService
	credentials credentialService
	audits      auditService
	importer    menuImporter
	sessions    *editor.Registry
	preferences *preferences.Store
	auditWorker *worker.MenuSaveAuditWorker
}

type storage interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type restaurantService interface {
	Current(ctx context.Context) (*domain.Restaurant, error)
	Replace(ctx context.Context, restaurant *domain.Restaurant, sessionID string) (*domain.Restaurant, error)
}

type credentialService interface {
	Create(ctx context.Context, password string) error
	Verify(ctx context.Context, candidate string) (bool, error)
}

type auditService interface {
	History(ctx context.Context, restaurantID string, limit int) ([]domain.MenuSaveAudit, error)
}

type menuImporter interface {
	ParseMenu(ctx context.Context, spreadsheetID string, lang domain.Language) ([]domain.CategoryRef, domain.MenuData, error)
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
	googleCreds string
	editor      editorConfig
	bcryptCost  int
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

type editorConfig struct {
	sessionTTL       time.Duration
	preferenceMaxAge time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Get("/menu", app.getMenuHandler)

		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", app.getPreferencesHandler)
			r.Put("/", app.updatePreferencesHandler)
		})

		r.Route("/restaurant", func(r chi.Router) {
			r.Get("/", app.getRestaurantHandler)
			r.Post("/", app.replaceRestaurantHandler)
			r.Get("/saves", app.getSaveHistoryHandler)
		})

		r.Route("/password", func(r chi.Router) {
			r.Post("/", app.createPasswordHandler)
			r.Patch("/", app.verifyPasswordHandler)
		})

		r.Route("/editor/sessions", func(r chi.Router) {
			r.Post("/", app.createSessionHandler)

			r.Route("/{session_id}", func(r chi.Router) {
				r.Use(app.sessionContextMiddleware)

				r.Get("/", app.getSessionHandler)
				r.Delete("/", app.deleteSessionHandler)
				r.Post("/reset", app.resetSessionHandler)
				r.Put("/language", app.setLanguageHandler)
				r.Put("/active-category", app.selectCategoryHandler)
				r.Patch("/restaurant", app.setRestaurantFieldHandler)
				r.Post("/import", app.importLanguageHandler)

				r.Route("/categories", func(r chi.Router) {
					r.Post("/", app.addCategoryHandler)

					r.Route("/{category_id}", func(r chi.Router) {
						r.Patch("/", app.setCategoryFieldHandler)
						r.Delete("/", app.removeCategoryHandler)
						r.Post("/move", app.moveCategoryHandler)
						r.Put("/mapping", app.setCategoryMappingHandler)

						r.Route("/items", func(r chi.Router) {
							r.Post("/", app.addItemHandler)

							r.Route("/{item_index}", func(r chi.Router) {
								r.Patch("/", app.setItemFieldHandler)
								r.Delete("/", app.removeItemHandler)
								r.Post("/move", app.moveItemHandler)
								r.Post("/tags", app.addTagHandler)
								r.Put("/tags/{tag_index}", app.setTagHandler)
								r.Delete("/tags/{tag_index}", app.removeTagHandler)
							})
						})
					})
				})

				r.Route("/save", func(r chi.Router) {
					r.Post("/", app.beginSaveHandler)
					r.Post("/password", app.submitPasswordHandler)
					r.Post("/cancel", app.cancelSaveHandler)
				})
			})
		})

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Restaurant Menu"
	docs.SwaggerInfo.Description = "API for the bilingual restaurant menu and its editor"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// workers
	if app.auditWorker != nil {
		if err := app.auditWorker.Start(); err != nil {
			return fmt.Errorf("failed to start menu save audit worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		// let in-flight saves finish before the stores go away
		err := srv.Shutdown(ctx)

		if app.auditWorker != nil {
			app.auditWorker.Stop()
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		shutdown <- err
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
