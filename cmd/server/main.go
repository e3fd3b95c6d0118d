package main

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/fitrelay/modules/heartrate"
	"github.com/dmitrymomot/fitrelay/pkg/config"
	"github.com/dmitrymomot/fitrelay/pkg/fitbit"
	"github.com/dmitrymomot/fitrelay/pkg/httpserver"
	"github.com/dmitrymomot/fitrelay/pkg/logger"
	"github.com/dmitrymomot/fitrelay/pkg/requestid"
	"github.com/dmitrymomot/fitrelay/pkg/tokenstore"
)

type appConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

func main() {
	var (
		appCfg    appConfig
		fitbitCfg fitbit.Config
		relayCfg  heartrate.Config
		serverCfg httpserver.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&fitbitCfg)
	config.MustLoad(&relayCfg)
	config.MustLoad(&serverCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, "fitrelay"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	client := fitbit.New(fitbitCfg, fitbit.WithLogger(log))
	tokens := tokenstore.New()
	relay := heartrate.NewService(relayCfg, client, tokens, heartrate.WithLogger(log))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Get("/health", httpserver.HealthCheckHandler(context.Background(), log))
	r.Mount("/", relay.Handler())

	log.Info("relay configured",
		logger.Component("main"),
	)

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server terminated", logger.Error(err))
		os.Exit(1)
	}
}
