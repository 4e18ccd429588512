package roulette

import "time"

// Animator is the selection state machine. It never sleeps or schedules;
// the caller waits out each returned delay and then calls Step.
type Animator struct {
	items   []Item
	picker  Picker
	state   State
	plan    Plan
	counter int
	speed   time.Duration
}

func NewAnimator(items []Item, picker Picker) (*Animator, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if picker == nil {
		picker = NewPicker(0)
	}
	cp := make([]Item, len(items))
	copy(cp, items)
	return &Animator{
		items:  cp,
		picker: picker,
		state:  State{CurrentIndex: NoIndex},
	}, nil
}

// Items returns a copy of the item list.
func (a *Animator) Items() []Item {
	cp := make([]Item, len(a.items))
	copy(cp, a.items)
	return cp
}

// State returns a snapshot that shares no memory with the animator.
func (a *Animator) State() State {
	s := a.state
	if s.Selected != nil {
		sel := *s.Selected
		s.Selected = &sel
	}
	return s
}

// Plan is the outcome drawn by the latest Trigger.
func (a *Animator) Plan() Plan { return a.plan }

// Progress is the fraction of the current run's steps already emitted.
func (a *Animator) Progress() float64 {
	if a.plan.TotalSteps == 0 {
		return 0
	}
	if !a.state.Animating && a.state.Selected != nil {
		return 1
	}
	return float64(a.counter) / float64(a.plan.TotalSteps)
}

// Phase is the deceleration phase the current run is in.
func (a *Animator) Phase() Phase {
	return PhaseAt(a.counter, a.plan.TotalSteps)
}

// Trigger starts a run and returns the delay before its first step. It is a
// no-op returning false while a run is in progress.
func (a *Animator) Trigger() (time.Duration, bool) {
	if a.state.Animating {
		return 0, false
	}
	return a.start(NewPlan(a.picker, len(a.items))), true
}

// TriggerPlan starts a run with a predetermined outcome.
func (a *Animator) TriggerPlan(p Plan) (time.Duration, bool) {
	if a.state.Animating {
		return 0, false
	}
	if p.FinalIndex < 0 || p.FinalIndex >= len(a.items) || p.TotalSteps <= 0 {
		return 0, false
	}
	return a.start(p), true
}

func (a *Animator) start(p Plan) time.Duration {
	a.plan = p
	a.counter = 0
	a.speed = InitialDelay
	a.state.Animating = true
	a.state.Selected = nil
	return a.speed
}

// Tick reports one emitted step.
type Tick struct {
	// Index is the emitted cycling index.
	Index int
	// Counter is the number of steps emitted so far in the run.
	Counter int
	// Next is the delay before the following step; zero when Done.
	Next time.Duration
	// Done is set on the step that finalized the run.
	Done bool
}

// Step emits the next cycling index. The step that completes the run also
// finalizes it. Calling Step while idle returns a Done tick with NoIndex.
func (a *Animator) Step() Tick {
	if !a.state.Animating {
		return Tick{Index: NoIndex, Counter: a.counter, Done: true}
	}
	idx := a.counter % len(a.items)
	a.state.CurrentIndex = idx
	a.counter++
	a.speed += DecelerationStep(a.counter, a.plan.TotalSteps)

	if a.counter < a.plan.TotalSteps {
		return Tick{Index: idx, Counter: a.counter, Next: a.speed}
	}
	a.finalize()
	return Tick{Index: idx, Counter: a.counter, Done: true}
}

func (a *Animator) finalize() {
	sel := a.items[a.plan.FinalIndex]
	a.state.CurrentIndex = a.plan.FinalIndex
	a.state.Selected = &sel
	a.state.Animating = false
}

// Reset abandons any run in progress and returns to idle.
func (a *Animator) Reset() {
	a.state = State{CurrentIndex: NoIndex}
	a.counter = 0
	a.speed = 0
}
