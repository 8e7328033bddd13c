package template

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/ohler55/ojg/oj"
	"github.com/tailscale/hujson"
)

const markerPrefix = "TPL:"

// Parse reads a JSONC template document and extracts its variants.
//
// The document must be a top-level array; a line comment of the form
// // TPL:FULL or // TPL:SIMPLE immediately preceding an element names
// the variant that element defines. hujson keeps comments attached to
// the value they precede, so the marker-to-element pairing is positional
// rather than a fragile index correlation. Elements without a marker are
// not variants and are ignored.
//
// Pure transformation; no side effects.
func Parse(raw []byte) (*Document, error) {
	root, err := hujson.Parse(raw)
	if err != nil {
		return nil, &SyntaxError{Err: err}
	}
	arr, ok := root.Value.(*hujson.Array)
	if !ok {
		return nil, &SyntaxError{Err: fmt.Errorf("top-level value is not an array")}
	}

	bodies := make(map[VariantName]map[string]any, len(Variants))
	for i := range arr.Elements {
		name, marked, err := markerIn(arr.Elements[i].BeforeExtra)
		if err != nil {
			return nil, err
		}
		if !marked {
			continue
		}
		if _, dup := bodies[name]; dup {
			return nil, &DuplicateVariantError{Name: name}
		}

		elem := arr.Elements[i].Clone()
		elem.Standardize()
		node, err := oj.Parse(elem.Pack())
		if err != nil {
			return nil, &SyntaxError{Err: fmt.Errorf("%s variant: %w", name, err)}
		}
		body, ok := node.(map[string]any)
		if !ok {
			return nil, &SyntaxError{Err: fmt.Errorf("%s variant body is not an object", name)}
		}
		if out, ok := body[OutputField].(string); !ok || out != Sentinel {
			return nil, fmt.Errorf("%s variant: %w", name, ErrMissingSentinel)
		}
		bodies[name] = body
	}

	for _, name := range Variants {
		if _, ok := bodies[name]; !ok {
			return nil, &MissingVariantError{Name: name}
		}
	}

	return &Document{Bodies: bodies}, nil
}

// markerIn scans the comment bytes preceding an array element for a TPL
// marker. At most one marker may precede an element; an unrecognized TPL
// tag is a syntax error, any other comment text is ignored.
func markerIn(extra []byte) (VariantName, bool, error) {
	var name VariantName
	found := false
	sc := bufio.NewScanner(bytes.NewReader(extra))
	for sc.Scan() {
		line := sc.Text()
		i := strings.Index(line, "//")
		if i < 0 {
			continue
		}
		comment := strings.TrimSpace(line[i+2:])
		if !strings.HasPrefix(comment, markerPrefix) {
			continue
		}
		tag := strings.TrimPrefix(comment, markerPrefix)
		if j := strings.IndexAny(tag, " \t"); j >= 0 {
			tag = tag[:j]
		}
		if found {
			return 0, false, &SyntaxError{Err: fmt.Errorf("element carries more than one TPL marker")}
		}
		switch tag {
		case "FULL":
			name = Full
		case "SIMPLE":
			name = Simple
		default:
			return 0, false, &SyntaxError{Err: fmt.Errorf("unknown variant marker %s%s", markerPrefix, tag)}
		}
		found = true
	}
	return name, found, nil
}
