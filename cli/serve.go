package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/goto/salt/log"
	saltmux "github.com/goto/salt/mux"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/spf13/cobra"

	"github.com/meridianhq/meridian/api"
	"github.com/meridianhq/meridian/asset"
	"github.com/meridianhq/meridian/identity"
	"github.com/meridianhq/meridian/metrics"
	"github.com/meridianhq/meridian/quality"
	"github.com/meridianhq/meridian/store/inmemory"
	"github.com/meridianhq/meridian/store/mongodb"
	"github.com/meridianhq/meridian/store/postgres"
)

// Version of the current build. overridden by the build system.
// see "Makefile" for more information
var (
	Version string
)

func serveCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"server", "start"},
		Short:   "Serve the register HTTP API",
		Long:    heredoc.Doc(`Serve the register HTTP API on the configured host and port.`),
		Example: heredoc.Doc(`
			$ meridian serve
			$ meridian serve -c ./meridian.yaml
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"group:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runServer(cmd.Context(), cfg); err != nil {
				return fmt.Errorf("run server: %w", err)
			}
			return nil
		},
	}
}

func runServer(ctx context.Context, config *Config) error {
	logger := initLogger(config.LogLevel)
	logger.Info("meridian starting", "version", Version)

	newRelicMonitor, err := initNewRelicMonitor(config, logger)
	if err != nil {
		return err
	}
	statsdMonitor, err := initStatsdMonitor(config, logger)
	if err != nil {
		return err
	}

	repository, closeStorage, err := initAssetRepository(ctx, logger, config)
	if err != nil {
		return err
	}
	defer closeStorage()

	// A nil *StatsdMonitor must not end up inside the interface value.
	var inspectionMonitor quality.MetricsMonitor
	if statsdMonitor != nil {
		inspectionMonitor = statsdMonitor
	}

	router := mux.NewRouter()
	router.Use(requestLoggerMiddleware(logger.Writer()))

	api.RegisterRoutes(router, api.Dependencies{
		Logger:            logger,
		AssetService:      asset.NewService(repository),
		QualityService:    quality.NewService(repository, inspectionMonitor),
		Authorizer:        identity.NewStaticAuthorizer(config.Service.Identity.Editors...),
		IdentityHeaderKey: config.Service.Identity.HeaderKey,
	})

	// The monitors wrap the router's not-found handlers, so they attach
	// after route registration.
	if newRelicMonitor != nil {
		newRelicMonitor.MonitorRouter(router)
	}
	if statsdMonitor != nil {
		statsdMonitor.MonitorRouter(router)
	}

	logger.Info("Starting server", "host", config.Service.Host, "port", config.Service.Port)
	if err := saltmux.Serve(
		ctx,
		saltmux.WithHTTPTarget(config.Service.addr(), &http.Server{
			Handler:      handlers.CompressHandler(router),
			ReadTimeout:  60 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		}),
		saltmux.WithGracePeriod(5*time.Second),
	); !errors.Is(err, context.Canceled) {
		logger.Error("mux serve error", "err", err)
	}

	logger.Info("server stopped")
	return nil
}

func initLogger(logLevel string) *log.Logrus {
	logger := log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stdout),
	)
	return logger
}

func initAssetRepository(ctx context.Context, logger log.Logger, config *Config) (asset.Repository, func(), error) {
	switch config.Storage.Provider {
	case "inmemory":
		logger.Info("using in-memory asset repository")
		return inmemory.NewAssetRepository(), func() {}, nil

	case "postgres":
		pgClient, err := postgres.NewClient(config.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("error creating postgres client: %w", err)
		}
		logger.Info("connected to postgres server", "host", config.DB.Host, "port", config.DB.Port)

		repository, err := postgres.NewAssetRepository(pgClient)
		if err != nil {
			return nil, nil, fmt.Errorf("create new asset repository: %w", err)
		}
		return repository, func() {
			logger.Warn("closing db...")
			if err := pgClient.Close(); err != nil {
				logger.Error("error when closing db", "err", err)
			}
			logger.Warn("db closed...")
		}, nil

	case "mongodb":
		mongoClient, err := mongodb.NewClient(ctx, config.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("error creating mongodb client: %w", err)
		}
		logger.Info("connected to mongodb server", "db", config.Mongo.Name)

		repository, err := mongodb.NewAssetRepository(mongoClient)
		if err != nil {
			return nil, nil, fmt.Errorf("create new asset repository: %w", err)
		}
		return repository, func() {
			if err := mongoClient.Close(context.Background()); err != nil {
				logger.Error("error when closing mongodb", "err", err)
			}
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage provider %q", config.Storage.Provider)
	}
}

func initNewRelicMonitor(config *Config, logger log.Logger) (*metrics.NewRelicMonitor, error) {
	if !config.NewRelic.Enabled {
		logger.Info("New Relic monitoring is disabled.")
		return nil, nil
	}
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(config.NewRelic.AppName),
		newrelic.ConfigLicense(config.NewRelic.LicenseKey),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create New Relic Application: %w", err)
	}
	logger.Info("New Relic monitoring is enabled for", "config", config.NewRelic.AppName)

	return metrics.NewNewRelicMonitor(app), nil
}

func initStatsdMonitor(config *Config, logger log.Logger) (*metrics.StatsdMonitor, error) {
	if !config.StatsD.Enabled {
		logger.Info("statsd metrics monitoring is disabled.")
		return nil, nil
	}
	statsdClient, err := metrics.NewStatsdClient(config.StatsD)
	if err != nil {
		return nil, fmt.Errorf("unable to create statsd client: %w", err)
	}
	logger.Info("statsd metrics monitoring is enabled", "statsd address", config.StatsD.Address)

	return metrics.NewStatsdMonitor(statsdClient, config.StatsD.Prefix, config.StatsD.Separator), nil
}

func requestLoggerMiddleware(dst io.Writer) mux.MiddlewareFunc {
	return func(handler http.Handler) http.Handler {
		return handlers.LoggingHandler(dst, handler)
	}
}
