package compositor

import (
	"bufio"
	"bytes"
	"context"
	"strings"
)

type mango struct{}

func (m *mango) Kind() Kind { return Mango }

func (m *mango) Monitors(ctx context.Context) ([]Monitor, error) {
	out, err := introspect(ctx, "mmsg", "-g")
	if err != nil {
		return nil, err
	}
	return parseMangoMonitors(out)
}

// parseMangoMonitors reads `mmsg -g` output. Each monitor contributes a
// block of status lines prefixed with its name; the selmon line appears
// exactly once per monitor.
func parseMangoMonitors(out []byte) ([]Monitor, error) {
	var monitors []Monitor
	seen := map[string]bool{}
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, "selmon") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 || seen[fields[0]] {
			continue
		}
		name := fields[0]
		seen[name] = true
		monitors = append(monitors, Monitor{Name: name, Position: len(monitors)})
	}
	if len(monitors) == 0 {
		return nil, ErrNoOutputs
	}
	return monitors, nil
}
