// Package template interprets the per-compositor waybar template
// document: a JSONC file holding a top-level array of bar configurations,
// where a comment marker before each element names the variant it
// defines. Parsing is two-phase: hujson standardizes the JSONC into plain
// JSON, then ojg parses the result into a generic tree. Markers are
// collected in a separate line scan so a malformed document still reports
// which variant was being read.
package template

import (
	"errors"
	"fmt"
)

// Sentinel is the placeholder value of each variant's top-level "output"
// field. Synthesis replaces it with a real monitor name.
const Sentinel = "CONFIGURED_FROM_SCRIPT"

// OutputField is the one field the synthesizer is allowed to rewrite.
const OutputField = "output"

// VariantName identifies one of the two bar configurations a template
// must define.
type VariantName int

const (
	Full VariantName = iota
	Simple
)

func (v VariantName) String() string {
	if v == Full {
		return "full"
	}
	return "simple"
}

// Variants lists every variant a well-formed template defines, in
// document order.
var Variants = []VariantName{Full, Simple}

// Document is a parsed template: one JSON object body per variant, each
// still carrying the output sentinel.
type Document struct {
	Bodies map[VariantName]map[string]any
}

// Body returns the variant's configuration object.
func (d *Document) Body(v VariantName) map[string]any {
	return d.Bodies[v]
}

// SyntaxError wraps a comment-stripping or structural parsing failure.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string { return fmt.Sprintf("malformed template: %v", e.Err) }
func (e *SyntaxError) Unwrap() error { return e.Err }

// MissingVariantError reports a template without a required marker.
type MissingVariantError struct {
	Name VariantName
}

func (e *MissingVariantError) Error() string {
	return fmt.Sprintf("template is missing the %s variant (no TPL:%s marker)", e.Name, upper(e.Name))
}

// DuplicateVariantError reports a marker that appears more than once.
type DuplicateVariantError struct {
	Name VariantName
}

func (e *DuplicateVariantError) Error() string {
	return fmt.Sprintf("template declares the %s variant more than once", e.Name)
}

// ErrMissingSentinel is returned when a variant body lacks the output
// field or its value is not the sentinel.
var ErrMissingSentinel = errors.New(`variant has no "output" field set to the sentinel ` + Sentinel)

func upper(v VariantName) string {
	if v == Full {
		return "FULL"
	}
	return "SIMPLE"
}
