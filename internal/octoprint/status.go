package octoprint

import (
	"fmt"
	"strings"
	"time"
)

const idleText = "Idle"

// Status is the printer state reduced to what the status endpoint shows.
type Status struct {
	Idle          bool // printer not operational (HTTP 409)
	Printing      bool
	StateText     string
	FileName      string
	Completion    *float64
	PrintTime     *int
	PrintTimeLeft *int
}

// String renders the status line uploaded alongside the snapshot, e.g.
// "Printing benchy.gcode: 42% complete, 1h2m3s elapsed, 12m0s left".
func (s Status) String() string {
	if s.Idle || !s.Printing {
		text := strings.TrimSpace(s.StateText)
		if s.Idle || text == "" || strings.EqualFold(text, "Operational") {
			return idleText
		}
		return text
	}

	var parts []string
	if s.Completion != nil {
		parts = append(parts, fmt.Sprintf("%.0f%% complete", clampPercent(*s.Completion)))
	}
	if s.PrintTime != nil && *s.PrintTime >= 0 {
		parts = append(parts, seconds(*s.PrintTime).String()+" elapsed")
	}
	if s.PrintTimeLeft != nil && *s.PrintTimeLeft >= 0 {
		parts = append(parts, seconds(*s.PrintTimeLeft).String()+" left")
	}

	var b strings.Builder
	b.WriteString("Printing")
	if s.FileName != "" {
		b.WriteString(" ")
		b.WriteString(s.FileName)
	}
	if len(parts) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(parts, ", "))
	}
	return b.String()
}

func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
