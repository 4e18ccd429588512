package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/san-kum/roulette/internal/roulette"
)

var phaseFill = map[roulette.Phase]string{
	roulette.PhaseFast: "#0d1f2d",
	roulette.PhaseMid:  "#2d250d",
	roulette.PhaseSlow: "#2d0d14",
}

// ProfileSVG draws the delay schedule of a run of total steps as a line over
// shaded deceleration phases.
func ProfileSVG(total, width, height int, strokeColor string) string {
	delays := roulette.DelaySchedule(total)
	if len(delays) < 2 || width <= 0 || height <= 0 {
		return ""
	}

	maxDelay := delays[len(delays)-1]
	minDelay := delays[0]
	rangeY := float64(maxDelay - minDelay)
	if rangeY == 0 {
		rangeY = 1
	}
	pad := float64(height) * 0.1
	plotH := float64(height) - 2*pad
	stepW := float64(width) / float64(len(delays)-1)

	x := func(i int) float64 { return float64(i) * stepW }
	y := func(d time.Duration) float64 {
		return pad + plotH - float64(d-minDelay)/rangeY*plotH
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// one band per phase run, in step order
	start := 0
	for i := 1; i <= len(delays); i++ {
		if i < len(delays) && roulette.PhaseAt(i, total) == roulette.PhaseAt(start, total) {
			continue
		}
		end := i
		if end > len(delays)-1 {
			end = len(delays) - 1
		}
		phase := roulette.PhaseAt(start, total)
		sb.WriteString(fmt.Sprintf(`<rect class="%s" x="%.1f" y="0" width="%.1f" height="%d" fill="%s"/>
`, phase, x(start), x(end)-x(start), height, phaseFill[phase]))
		start = i
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))
	for i, d := range delays {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x(i), y(d)))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x(i), y(d)))
		}
	}
	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
