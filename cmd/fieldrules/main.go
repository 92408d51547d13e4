package main

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/fieldrules/modules/validation"
	"github.com/dmitrymomot/fieldrules/pkg/config"
	"github.com/dmitrymomot/fieldrules/pkg/httpserver"
	"github.com/dmitrymomot/fieldrules/pkg/i18n"
	"github.com/dmitrymomot/fieldrules/pkg/logger"
	"github.com/dmitrymomot/fieldrules/pkg/model"
	"github.com/dmitrymomot/fieldrules/pkg/requestid"
)

type appConfig struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	ServiceName     string `env:"SERVICE_NAME" envDefault:"fieldrules"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	SchemaDir       string `env:"SCHEMA_DIR" envDefault:"./schemas"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`

	HTTP httpserver.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx := context.Background()

	registry := model.NewRegistry(model.WithRegistryLogger(log))
	if err := registry.Load(ctx, os.DirFS(cfg.SchemaDir), predicates()); err != nil {
		log.Error("failed to load schemas", logger.Error(err))
		os.Exit(1)
	}

	translator, err := i18n.NewTranslator(ctx, i18n.DefaultAdapter(),
		i18n.WithDefaultLanguage(cfg.DefaultLanguage),
		i18n.WithLogger(log),
	)
	if err != nil {
		log.Error("failed to load translations", logger.Error(err))
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, func(context.Context) error {
		if len(registry.Names()) == 0 {
			return model.ErrSchemaNotFound
		}
		return nil
	}))
	r.Mount("/", validation.Router(validation.RouterOptions{
		Registry:   registry,
		Translator: translator,
		Logger:     log,
	}))

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
