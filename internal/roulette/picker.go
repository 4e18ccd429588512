package roulette

import (
	"math/rand/v2"
	"time"
)

// Picker draws uniform integers in [0, n). *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

// NewPicker returns a PCG-backed picker. A zero seed draws one from the clock.
func NewPicker(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// Plan is the outcome of a run, fixed at trigger time.
type Plan struct {
	FinalIndex int
	TotalSteps int
}

// NewPlan draws a final index in [0, n) and a run length in [MinSteps, MaxSteps).
func NewPlan(p Picker, n int) Plan {
	return Plan{
		FinalIndex: p.IntN(n),
		TotalSteps: MinSteps + p.IntN(MaxSteps-MinSteps),
	}
}
