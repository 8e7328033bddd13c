// Package synth decides which template variant each monitor receives and
// materializes the per-monitor configuration bytes.
package synth

import (
	"errors"

	"github.com/omynix/waybar-manager/internal/compositor"
	"github.com/omynix/waybar-manager/internal/template"
)

// ErrNoMonitors is returned by Assign for an empty monitor set.
var ErrNoMonitors = errors.New("no monitors to assign")

// Assignment pairs a monitor with the variant it receives.
type Assignment struct {
	Monitor compositor.Monitor
	Variant template.VariantName
}

// Assign maps each monitor to a variant, in enumeration order.
//
// A sole monitor always receives the full variant; the preferred setting
// is meaningless with no alternative. With multiple monitors the
// preferred one receives full and the rest simple. When the preferred
// monitor is not connected the first monitor in enumeration order
// receives full instead; fellBack reports that this fallback fired so
// the caller can warn. Exactly one assignment is full in every case.
func Assign(monitors []compositor.Monitor, preferred string) (assignments []Assignment, fellBack bool, err error) {
	if len(monitors) == 0 {
		return nil, false, ErrNoMonitors
	}
	if len(monitors) == 1 {
		return []Assignment{{Monitor: monitors[0], Variant: template.Full}}, false, nil
	}

	fullIdx := 0
	fellBack = true
	for i, m := range monitors {
		if m.Name == preferred {
			fullIdx = i
			fellBack = false
			break
		}
	}

	assignments = make([]Assignment, len(monitors))
	for i, m := range monitors {
		variant := template.Simple
		if i == fullIdx {
			variant = template.Full
		}
		assignments[i] = Assignment{Monitor: m, Variant: variant}
	}
	return assignments, fellBack, nil
}
