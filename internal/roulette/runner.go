package roulette

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// EventKind classifies a Runner notification.
type EventKind int

const (
	EventStarted EventKind = iota
	EventStepped
	EventStopped
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventStepped:
		return "stepped"
	default:
		return "stopped"
	}
}

// Event is delivered to the observer after every state change. Tick is only
// meaningful for EventStepped.
type Event struct {
	Kind  EventKind
	Tick  Tick
	State State
}

// Observer receives events in mutation order. It runs with the Runner locked
// and must not call back into it.
type Observer func(Event)

// Runner drives an Animator with one re-armed timer on a clock.Clock.
type Runner struct {
	mu       sync.Mutex
	anim     *Animator
	clock    clock.Clock
	scale    float64
	observer Observer
	logger   *slog.Logger

	timer *clock.Timer
	gen   uint64
	done  chan struct{}
	err   error
}

type RunnerOption func(*Runner)

// WithClock replaces the wall clock, typically with clock.NewMock().
func WithClock(c clock.Clock) RunnerOption {
	return func(r *Runner) { r.clock = c }
}

// WithTimeScale multiplies every step delay by scale.
func WithTimeScale(scale float64) RunnerOption {
	return func(r *Runner) {
		if scale > 0 {
			r.scale = scale
		}
	}
}

func WithObserver(o Observer) RunnerOption {
	return func(r *Runner) { r.observer = o }
}

func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewRunner(anim *Animator, opts ...RunnerOption) *Runner {
	r := &Runner{
		anim:   anim,
		clock:  clock.New(),
		scale:  1,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns a snapshot of the animator state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.anim.State()
}

// Trigger starts a run. While a run is in progress it does nothing and
// returns false.
func (r *Runner) Trigger() bool {
	return r.trigger(func() (time.Duration, bool) { return r.anim.Trigger() })
}

// TriggerPlan starts a run with a predetermined outcome.
func (r *Runner) TriggerPlan(p Plan) bool {
	return r.trigger(func() (time.Duration, bool) { return r.anim.TriggerPlan(p) })
}

func (r *Runner) trigger(start func() (time.Duration, bool)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	delay, ok := start()
	if !ok {
		r.logger.Debug("trigger ignored", "animating", r.anim.state.Animating)
		return false
	}
	r.gen++
	r.done = make(chan struct{})
	r.err = nil

	plan := r.anim.Plan()
	r.logger.Debug("run started", "run", r.gen, "steps", plan.TotalSteps)
	r.notify(Event{Kind: EventStarted, State: r.anim.State()})
	r.arm(r.gen, delay)
	return true
}

func (r *Runner) arm(gen uint64, d time.Duration) {
	r.timer = r.clock.AfterFunc(r.scaled(d), func() { r.step(gen) })
}

func (r *Runner) scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) * r.scale)
}

func (r *Runner) step(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen || !r.anim.state.Animating {
		return
	}
	tick := r.anim.Step()
	r.notify(Event{Kind: EventStepped, Tick: tick, State: r.anim.State()})
	if !tick.Done {
		r.arm(gen, tick.Next)
		return
	}

	r.timer = nil
	sel := r.anim.state.Selected
	r.logger.Debug("run finished", "run", gen, "steps", tick.Counter, "id", sel.ID, "name", sel.Name)
	close(r.done)
}

// Stop cancels the pending timer. A run in progress is abandoned and its
// waiters receive ErrStopped; a finished selection is kept. Stop is
// idempotent.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	if !r.anim.state.Animating {
		return
	}
	r.logger.Debug("run stopped", "run", r.gen, "steps", r.anim.counter)
	r.gen++
	r.anim.Reset()
	r.err = ErrStopped
	close(r.done)
	r.notify(Event{Kind: EventStopped, State: r.anim.State()})
}

// Done is closed when the latest run finalizes or is stopped. Before any
// run it returns a closed channel.
func (r *Runner) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return r.done
}

// Wait blocks until the latest run ends and returns the selected item. It
// returns ErrStopped for a stopped run and ErrNoRun when nothing was ever
// triggered.
func (r *Runner) Wait(ctx context.Context) (Item, error) {
	select {
	case <-r.Done():
	case <-ctx.Done():
		return Item{}, ctx.Err()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return Item{}, r.err
	}
	if r.anim.state.Selected == nil {
		return Item{}, ErrNoRun
	}
	return *r.anim.state.Selected, nil
}

func (r *Runner) notify(ev Event) {
	if r.observer != nil {
		r.observer(ev)
	}
}
