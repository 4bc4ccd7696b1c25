package analytics

import "time"

// Window is a concrete [Start, End] query interval
type Window struct {
	Start time.Time
	End   time.Time
}

// Duration returns the window length
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// ResolveWindow converts a symbolic range label into a concrete window ending
// at now. Unrecognized labels silently behave as "7d": default-and-continue
// is the contract, callers wanting strict validation check the label first.
func ResolveWindow(label string, now time.Time) Window {
	var span time.Duration

	switch label {
	case "1d":
		span = 24 * time.Hour
	case "30d":
		span = 30 * 24 * time.Hour
	default: // "7d" and everything else
		span = 7 * 24 * time.Hour
	}

	return Window{
		Start: now.Add(-span),
		End:   now,
	}
}
