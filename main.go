package main

import (
	"flag"
	"log"
	"math"

	"PlanetDefense/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on (e.g., 127.0.0.1:8080)")
	engineConfigPath := flag.String("engine-config", "configs/engine.json", "path to engine tuning JSON")
	catalogConfigPath := flag.String("catalog-config", "configs/catalog.json", "path to asteroid/strategy catalog JSON")
	rosterSize := flag.Int("roster-size", -1, "override number of generated asteroids")
	rosterSeed := flag.Int64("roster-seed", 0, "override asteroid generation seed")
	phaseMillis := flag.Int("phase-ms", -1, "override mission phase duration in milliseconds")
	retentionMinutes := flag.Int("retention-min", -1, "override completed-mission retention in minutes")
	successMin := flag.Float64("deflect-success-min", math.NaN(), "override minimum deflection percent on success")
	successMax := flag.Float64("deflect-success-max", math.NaN(), "override maximum deflection percent on success")
	failureMin := flag.Float64("deflect-failure-min", math.NaN(), "override minimum deflection percent on failure")
	failureMax := flag.Float64("deflect-failure-max", math.NaN(), "override maximum deflection percent on failure")
	flag.Parse()

	cfg := server.DefaultAppConfig()
	cfg.EngineConfigPath = *engineConfigPath
	cfg.CatalogConfigPath = *catalogConfigPath

	var overrides server.EngineOverrides

	if *rosterSize >= 0 {
		val := *rosterSize
		overrides.RosterSize = &val
	}
	if *rosterSeed != 0 {
		val := *rosterSeed
		overrides.RosterSeed = &val
	}
	if *phaseMillis >= 0 {
		val := *phaseMillis
		overrides.PhaseMillis = &val
	}
	if *retentionMinutes >= 0 {
		val := *retentionMinutes
		overrides.RetentionMinutes = &val
	}
	if !math.IsNaN(*successMin) {
		val := *successMin
		overrides.SuccessMin = &val
	}
	if !math.IsNaN(*successMax) {
		val := *successMax
		overrides.SuccessMax = &val
	}
	if !math.IsNaN(*failureMin) {
		val := *failureMin
		overrides.FailureMin = &val
	}
	if !math.IsNaN(*failureMax) {
		val := *failureMax
		overrides.FailureMax = &val
	}

	cfg.Overrides = overrides

	if err := server.StartApp(*addr, cfg); err != nil {
		log.Fatal(err)
	}
}
