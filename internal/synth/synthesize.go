package synth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/alt"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/omynix/waybar-manager/internal/compositor"
	"github.com/omynix/waybar-manager/internal/template"
)

// ErrSentinelLost reports that a variant body no longer carries the
// output sentinel at synthesis time. The parser guarantees it is there,
// so this is an invariant breach, not a user error.
var ErrSentinelLost = errors.New("output sentinel not present at synthesis time")

// GeneratedConfig is one materialized per-monitor configuration.
type GeneratedConfig struct {
	FileName string
	Content  []byte
}

var outputExpr, _ = jp.ParseString("$." + template.OutputField)

// serializeOptions fixes key order and whitespace so that the same
// logical input always yields byte-identical output. The reconciler's
// change detection depends on this.
var serializeOptions = ojg.Options{Sort: true, Indent: 2}

// Synthesize instantiates a variant body for one monitor: the output
// sentinel is replaced by the monitor name and nothing else is altered.
// The shared body is deep-copied, never mutated.
func Synthesize(doc *template.Document, a Assignment, kind compositor.Kind) (GeneratedConfig, error) {
	body := doc.Body(a.Variant)

	got := outputExpr.Get(body)
	if len(got) != 1 {
		return GeneratedConfig{}, fmt.Errorf("%s variant for %s: %w", a.Variant, a.Monitor.Name, ErrSentinelLost)
	}
	if s, ok := got[0].(string); !ok || s != template.Sentinel {
		return GeneratedConfig{}, fmt.Errorf("%s variant for %s: %w", a.Variant, a.Monitor.Name, ErrSentinelLost)
	}

	clone, ok := alt.Dup(body).(map[string]any)
	if !ok {
		return GeneratedConfig{}, fmt.Errorf("%s variant for %s: %w", a.Variant, a.Monitor.Name, ErrSentinelLost)
	}
	if err := outputExpr.Set(clone, a.Monitor.Name); err != nil {
		return GeneratedConfig{}, fmt.Errorf("substitute output for %s: %w", a.Monitor.Name, err)
	}

	return GeneratedConfig{
		FileName: FileName(kind, a.Monitor.Name, a.Variant),
		Content:  []byte(oj.JSON(clone, &serializeOptions) + "\n"),
	}, nil
}

// SynthesizeAll materializes every assignment against the same document.
func SynthesizeAll(doc *template.Document, assignments []Assignment, kind compositor.Kind) ([]GeneratedConfig, error) {
	configs := make([]GeneratedConfig, 0, len(assignments))
	for _, a := range assignments {
		cfg, err := Synthesize(doc, a, kind)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// FileName is the deterministic name of a generated config:
// <kind>_<monitor>_<variant>.json.
func FileName(kind compositor.Kind, monitor string, v template.VariantName) string {
	return fmt.Sprintf("%s_%s_%s.json", kind, monitor, v)
}

// ParseFileName splits a generated-config name back into monitor and
// variant. It returns ok=false for names that do not follow the naming
// convention for the given kind, so files belonging to other compositors
// or unrelated files are left alone during garbage collection.
func ParseFileName(kind compositor.Kind, name string) (monitor string, v template.VariantName, ok bool) {
	prefix := kind.String() + "_"
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".json") {
		return "", 0, false
	}
	rest := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".json")
	i := strings.LastIndex(rest, "_")
	if i <= 0 {
		return "", 0, false
	}
	monitor = rest[:i]
	switch rest[i+1:] {
	case template.Full.String():
		v = template.Full
	case template.Simple.String():
		v = template.Simple
	default:
		return "", 0, false
	}
	return monitor, v, true
}
