package roulette

import "time"

const (
	// InitialDelay is the wait before the first step of a run.
	InitialDelay = 50 * time.Millisecond

	// MinSteps and MaxSteps bound the run length; MaxSteps is exclusive.
	MinSteps = 30
	MaxSteps = 50

	slowPhaseSteps = 10
	midPhaseSteps  = 20
)

// Phase names one segment of the deceleration profile.
type Phase int

const (
	PhaseFast Phase = iota
	PhaseMid
	PhaseSlow
)

func (p Phase) String() string {
	switch p {
	case PhaseMid:
		return "mid"
	case PhaseSlow:
		return "slow"
	default:
		return "fast"
	}
}

// PhaseAt reports the phase after counter steps of a run of total steps.
func PhaseAt(counter, total int) Phase {
	remaining := total - counter
	switch {
	case remaining < slowPhaseSteps:
		return PhaseSlow
	case remaining < midPhaseSteps:
		return PhaseMid
	default:
		return PhaseFast
	}
}

// DecelerationStep is the amount added to the inter-step delay once counter
// steps of a run of total steps have been emitted.
func DecelerationStep(counter, total int) time.Duration {
	switch PhaseAt(counter, total) {
	case PhaseSlow:
		return 30 * time.Millisecond
	case PhaseMid:
		return 15 * time.Millisecond
	default:
		return 2 * time.Millisecond
	}
}

// DelaySchedule returns the delay preceding each of the total steps of a run.
func DelaySchedule(total int) []time.Duration {
	if total <= 0 {
		return nil
	}
	delays := make([]time.Duration, total)
	delays[0] = InitialDelay
	for counter := 1; counter < total; counter++ {
		delays[counter] = delays[counter-1] + DecelerationStep(counter, total)
	}
	return delays
}

// RunDuration is the wall time a run of total steps takes at scale 1.
func RunDuration(total int) time.Duration {
	var sum time.Duration
	for _, d := range DelaySchedule(total) {
		sum += d
	}
	return sum
}
