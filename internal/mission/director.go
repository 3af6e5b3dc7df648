package mission

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"PlanetDefense/internal/catalog"
	"PlanetDefense/internal/logging"
	"PlanetDefense/internal/observability"
	"PlanetDefense/internal/sim"

	"github.com/google/uuid"
)

// Params tunes mission pacing and the randomized outcome draw.
type Params struct {
	// PhaseDuration is the wall-clock length of each scripted phase. Four
	// phases at the default 300ms give the ~1.2s mission runtime.
	PhaseDuration time.Duration
	// Retention is how long a completed mission stays queryable before the
	// janitor sweeps it.
	Retention time.Duration
	// Outcome bounds the deflection percentage draws.
	Outcome sim.OutcomeParams
}

// DefaultParams returns the stock mission pacing.
func DefaultParams() Params {
	return Params{
		PhaseDuration: 300 * time.Millisecond,
		Retention:     30 * time.Minute,
		Outcome:       sim.DefaultOutcomeParams(),
	}
}

// SanitizeParams repairs nonsensical pacing values.
func SanitizeParams(p Params) Params {
	defaults := DefaultParams()
	if p.PhaseDuration < 0 {
		p.PhaseDuration = defaults.PhaseDuration
	}
	if p.Retention <= 0 {
		p.Retention = defaults.Retention
	}
	p.Outcome = sim.SanitizeOutcomeParams(p.Outcome)
	return p
}

// Director owns every in-flight and recently completed mission. All mission
// state transitions happen under its lock; the formula pipeline itself stays
// pure.
type Director struct {
	mu          sync.Mutex
	missions    map[string]*Mission
	subscribers map[string][]chan Update

	params  Params
	rng     func() float64
	log     logging.Logger
	metrics *observability.Collector
}

// Option configures a Director.
type Option func(*Director)

// WithRand injects the uniform [0,1) source used for outcome draws. Tests
// pass a seeded or scripted source for determinism.
func WithRand(rng func() float64) Option {
	return func(d *Director) { d.rng = rng }
}

// WithLogger attaches a structured logger.
func WithLogger(log logging.Logger) Option {
	return func(d *Director) { d.log = log }
}

// WithMetrics attaches the mission counters and gauges.
func WithMetrics(m *observability.Collector) Option {
	return func(d *Director) { d.metrics = m }
}

// NewDirector constructs a Director with sanitized params.
func NewDirector(params Params, opts ...Option) *Director {
	d := &Director{
		missions:    make(map[string]*Mission),
		subscribers: make(map[string][]chan Update),
		params:      SanitizeParams(params),
		rng:         rand.Float64,
		log:         logging.Noop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Launch starts a new mission against the asteroid with the chosen strategy.
// The plan is computed up front; the scripted run advances in a goroutine and
// always terminates in a report.
func (d *Director) Launch(ctx context.Context, a *catalog.Asteroid, s *catalog.Strategy) (Mission, error) {
	plan, err := BuildPlan(a, s)
	if err != nil {
		return Mission{}, fmt.Errorf("launch mission: %w", err)
	}

	m := &Mission{
		ID:        uuid.NewString(),
		Asteroid:  *a,
		Strategy:  *s,
		Plan:      plan,
		Status:    StatusRunning,
		Phase:     PhaseLaunch,
		StartedAt: time.Now().UTC(),
	}

	d.mu.Lock()
	d.missions[m.ID] = m
	active := d.countRunningLocked()
	d.mu.Unlock()

	if d.metrics != nil {
		d.metrics.MissionsStarted.Inc()
		d.metrics.ActiveMissions.Set(float64(active))
	}
	d.log.Info(ctx, "mission launched",
		logging.String("mission_id", m.ID),
		logging.String("asteroid", a.ID),
		logging.String("strategy", s.ID),
		logging.Float("success_probability", plan.SuccessProbability),
	)

	go d.run(m.ID)
	return *m, nil
}

// run advances the scripted phases and lands the terminal report. The
// running to complete transition is unconditional; a failed deflection is a
// PARTIAL result, not an error.
func (d *Director) run(id string) {
	for i, phase := range phaseOrder {
		if d.params.PhaseDuration > 0 {
			time.Sleep(d.params.PhaseDuration)
		}

		last := i == len(phaseOrder)-1
		if !last {
			progress := float64(i+1) / float64(len(phaseOrder))
			d.mu.Lock()
			if m, ok := d.missions[id]; ok && m.Status == StatusRunning {
				m.Phase = phase
				m.Progress = progress
			}
			d.mu.Unlock()
			d.publish(id, Update{
				MissionID: id,
				Status:    StatusRunning,
				Phase:     phase,
				Progress:  progress,
			})
			continue
		}
		d.complete(id)
	}
}

func (d *Director) complete(id string) {
	d.mu.Lock()
	m, ok := d.missions[id]
	if !ok || m.Status != StatusRunning {
		d.mu.Unlock()
		return
	}
	outcome := sim.SimulateOutcome(m.Strategy.SuccessRate, d.params.Outcome, d.rng)
	m.Report = buildReport(m, outcome)
	m.Status = StatusComplete
	m.Phase = PhaseAssessment
	m.Progress = 1
	now := time.Now().UTC()
	m.FinishedAt = &now
	report := m.Report
	active := d.countRunningLocked()
	d.mu.Unlock()

	if d.metrics != nil {
		d.metrics.MissionCompleted(resultLabel(report.Result))
		d.metrics.ActiveMissions.Set(float64(active))
	}
	d.log.Info(context.Background(), "mission complete",
		logging.String("mission_id", id),
		logging.String("result", string(report.Result)),
		logging.Float("deflection_percent", report.Outcome.DeflectionPercent),
	)

	d.publish(id, Update{
		MissionID: id,
		Status:    StatusComplete,
		Phase:     PhaseAssessment,
		Progress:  1,
		Report:    report,
	})
	d.closeSubscribers(id)
}

func resultLabel(r Result) string {
	if r == ResultDeflected {
		return "deflected"
	}
	return "partial"
}

// Get returns a snapshot of the mission.
func (d *Director) Get(id string) (Mission, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	m, ok := d.missions[id]
	if !ok {
		return Mission{}, fmt.Errorf("mission not found: %s", id)
	}
	return *m, nil
}

// Subscribe returns a channel of progress updates for the mission plus a
// cancel function. A mission that already completed yields its terminal
// update immediately.
func (d *Director) Subscribe(id string) (<-chan Update, func(), error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	m, ok := d.missions[id]
	if !ok {
		return nil, nil, fmt.Errorf("mission not found: %s", id)
	}

	ch := make(chan Update, len(phaseOrder)+1)
	if m.Status == StatusComplete {
		ch <- Update{
			MissionID: id,
			Status:    StatusComplete,
			Phase:     PhaseAssessment,
			Progress:  1,
			Report:    m.Report,
		}
		close(ch)
		return ch, func() {}, nil
	}

	d.subscribers[id] = append(d.subscribers[id], ch)
	cancel := func() { d.unsubscribe(id, ch) }
	return ch, cancel, nil
}

func (d *Director) unsubscribe(id string, ch chan Update) {
	d.mu.Lock()
	defer d.mu.Unlock()
	subs := d.subscribers[id]
	for i, sub := range subs {
		if sub == ch {
			d.subscribers[id] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// publish fans an update out without blocking on slow subscribers.
func (d *Director) publish(id string, update Update) {
	d.mu.Lock()
	subs := append([]chan Update(nil), d.subscribers[id]...)
	d.mu.Unlock()
	for _, ch := range subs {
		select {
		case ch <- update:
		default:
		}
	}
}

func (d *Director) closeSubscribers(id string) {
	d.mu.Lock()
	subs := d.subscribers[id]
	delete(d.subscribers, id)
	d.mu.Unlock()
	for _, ch := range subs {
		close(ch)
	}
}

// Sweep drops completed missions older than the retention window and returns
// how many were removed. Called from the janitor ticker.
func (d *Director) Sweep(now time.Time) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	removed := 0
	for id, m := range d.missions {
		if m.Status != StatusComplete || m.FinishedAt == nil {
			continue
		}
		if now.Sub(*m.FinishedAt) >= d.params.Retention {
			delete(d.missions, id)
			removed++
		}
	}
	return removed
}

func (d *Director) countRunningLocked() int {
	n := 0
	for _, m := range d.missions {
		if m.Status == StatusRunning {
			n++
		}
	}
	return n
}
