package compositor

import (
	"context"
	"regexp"
)

type niri struct{}

func (n *niri) Kind() Kind { return Niri }

// `niri msg outputs` prints a quoted human-readable model name followed
// by the connector in parentheses: Output "Some Panel" (eDP-1).
var niriOutputRe = regexp.MustCompile(`(?m)^Output\s+"[^"]*"\s+\(([^)]+)\)`)

func (n *niri) Monitors(ctx context.Context) ([]Monitor, error) {
	out, err := introspect(ctx, "niri", "msg", "outputs")
	if err != nil {
		return nil, err
	}
	return parseNiriOutputs(out)
}

func parseNiriOutputs(out []byte) ([]Monitor, error) {
	var monitors []Monitor
	for _, m := range niriOutputRe.FindAllSubmatch(out, -1) {
		monitors = append(monitors, Monitor{Name: string(m[1]), Position: len(monitors)})
	}
	if len(monitors) == 0 {
		return nil, ErrNoOutputs
	}
	return monitors, nil
}
