package server

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"PlanetDefense/internal/catalog"
	"PlanetDefense/internal/logging"
	"PlanetDefense/internal/mission"
	"PlanetDefense/internal/observability"
)

type AppConfig struct {
	EngineConfigPath  string
	CatalogConfigPath string
	Overrides         EngineOverrides
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		EngineConfigPath:  "configs/engine.json",
		CatalogConfigPath: "configs/catalog.json",
	}
}

func resolveEngineParams(cfg AppConfig, log logging.Logger) EngineParams {
	params := DefaultEngineParams()
	loaded, err := loadEngineParamsFromFile(cfg.EngineConfigPath, params)
	if err != nil {
		log.Warn(context.Background(), "engine config unreadable, using defaults", logging.Err(err))
	} else {
		params = loaded
	}
	params = applyEngineOverrides(params, cfg.Overrides)
	return SanitizeEngineParams(params)
}

// StartApp wires the catalog, mission director and serving surface together
// and blocks serving HTTP on addr.
func StartApp(addr string, cfg AppConfig) error {
	ctx := context.Background()
	log := logging.NewFromEnv()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Warn(ctx, "tracing disabled", logging.Err(err))
	} else {
		defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)
	}

	metrics, err := observability.NewCollector(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	params := resolveEngineParams(cfg, log)

	cat, err := catalog.Load(cfg.CatalogConfigPath, params.RosterSize, params.RosterSeed)
	if err != nil {
		log.Warn(ctx, "catalog config rejected, using generated defaults", logging.Err(err))
		cat = catalog.Default(params.RosterSize, params.RosterSeed)
	}
	asteroids, strategies := cat.Counts()
	metrics.RosterAsteroids.Set(float64(asteroids))
	metrics.CatalogStrategies.Set(float64(strategies))

	director := mission.NewDirector(params.Mission,
		mission.WithLogger(log),
		mission.WithMetrics(metrics),
	)

	// Periodic sweep of completed missions past their retention window.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if n := director.Sweep(time.Now()); n > 0 {
				log.Debug(context.Background(), "swept finished missions", logging.Int("count", n))
			}
		}
	}()

	h := &handler{
		catalog:  cat,
		director: director,
		metrics:  metrics,
		log:      log,
		tracer:   observability.Tracer("server"),
	}

	log.Info(ctx, "starting web server",
		logging.String("addr", addr),
		logging.Int("asteroids", asteroids),
		logging.Int("strategies", strategies),
		logging.Float("phase_seconds", params.Mission.PhaseDuration.Seconds()),
	)
	return startServer(h, addr)
}
