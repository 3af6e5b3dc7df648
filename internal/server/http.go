package server

import (
	_ "embed"
	"encoding/json"
	"errors"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"PlanetDefense/internal/catalog"
	"PlanetDefense/internal/logging"
	"PlanetDefense/internal/mission"
	"PlanetDefense/internal/observability"
	"PlanetDefense/internal/sim"
)

/* ------------------------------ Embeds ------------------------------ */

//go:embed web/index.html
var htmlIndex []byte

/* ------------------------------- HTTP ------------------------------- */

type handler struct {
	catalog  *catalog.Catalog
	director *mission.Director
	metrics  *observability.Collector
	log      logging.Logger
	tracer   trace.Tracer
}

func newMux(h *handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(htmlIndex)
	})

	api := func(route string, fn http.HandlerFunc) {
		var next http.Handler = fn
		if h.metrics != nil {
			next = h.metrics.InstrumentHandler(route, next)
		}
		mux.Handle(route, next)
	}

	api("GET /api/asteroids", h.listAsteroids)
	api("GET /api/asteroids/{id}/assessment", h.assessAsteroid)
	api("GET /api/asteroids/{id}/plan/{strategyID}", h.planMission)
	api("GET /api/strategies", h.listStrategies)
	api("POST /api/missions", h.launchMission)
	api("GET /api/missions/{id}", h.getMission)
	api("GET /healthz", h.healthz)

	if h.metrics != nil {
		mux.Handle("GET /metrics", h.metrics.Handler())
	}

	// The websocket upgrade hijacks the connection, so it bypasses the
	// metrics middleware.
	mux.HandleFunc("GET /ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(h, w, r)
	})

	return mux
}

func (h *handler) listAsteroids(w http.ResponseWriter, r *http.Request) {
	roster := h.catalog.Asteroids()
	out := make([]asteroidDTO, 0, len(roster))
	for _, a := range roster {
		out = append(out, asteroidToDTO(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) assessAsteroid(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "assess_asteroid")
	defer span.End()

	a, err := h.catalog.Asteroid(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	span.SetAttributes(attribute.String("asteroid.id", a.ID))
	est := sim.EstimateDamage(a.MassKg, a.VelocityKmS)
	h.log.Debug(ctx, "assessment served",
		logging.String("asteroid", a.ID),
		logging.Float("energy_mt", est.ImpactEnergyMT),
	)
	writeJSON(w, http.StatusOK, assessmentToDTO(*a, est))
}

func (h *handler) listStrategies(w http.ResponseWriter, r *http.Request) {
	all := h.catalog.Strategies()
	out := make([]strategyDTO, 0, len(all))
	for _, s := range all {
		out = append(out, strategyToDTO(s))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) planMission(w http.ResponseWriter, r *http.Request) {
	a, err := h.catalog.Asteroid(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	s, err := h.catalog.Strategy(r.PathValue("strategyID"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	plan, err := mission.BuildPlan(a, s)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, planToDTO(a.ID, s.ID, plan))
}

func (h *handler) launchMission(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "launch_mission")
	defer span.End()

	var req launchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("malformed launch request"))
		return
	}
	a, err := h.catalog.Asteroid(req.AsteroidID)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	s, err := h.catalog.Strategy(req.StrategyID)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	m, err := h.director.Launch(ctx, a, s)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	span.SetAttributes(
		attribute.String("mission.id", m.ID),
		attribute.String("asteroid.id", a.ID),
		attribute.String("strategy.id", s.ID),
	)
	writeJSON(w, http.StatusCreated, missionToDTO(m))
}

func (h *handler) getMission(w http.ResponseWriter, r *http.Request) {
	m, err := h.director.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, missionToDTO(m))
}

func (h *handler) healthz(w http.ResponseWriter, r *http.Request) {
	asteroids, strategies := h.catalog.Counts()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"asteroids":  asteroids,
		"strategies": strategies,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorDTO{Error: err.Error()})
}

func startServer(h *handler, addr string) error {
	return http.ListenAndServe(addr, newMux(h))
}
