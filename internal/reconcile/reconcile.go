// Package reconcile brings the generated-output directory in line with
// the desired set of configurations: it writes only files whose content
// differs from what is on disk and removes generated files that no
// longer correspond to a connected monitor. Files named for other
// compositors are never touched.
package reconcile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/omynix/waybar-manager/internal/compositor"
	"github.com/omynix/waybar-manager/internal/fsutil"
	"github.com/omynix/waybar-manager/internal/synth"
)

// Action classifies the outcome of reconciling one file.
type Action int

const (
	Written Action = iota
	Unchanged
	Deleted
	Failed
)

func (a Action) String() string {
	switch a {
	case Written:
		return "written"
	case Unchanged:
		return "unchanged"
	case Deleted:
		return "deleted"
	default:
		return "failed"
	}
}

// Outcome records what happened to a single file.
type Outcome struct {
	FileName string
	Action   Action
	Err      error
}

// Report aggregates per-file outcomes. Failures never abort sibling
// files; they are collected here instead.
type Report struct {
	Outcomes []Outcome
}

func (r *Report) add(name string, action Action, err error) {
	r.Outcomes = append(r.Outcomes, Outcome{FileName: name, Action: action, Err: err})
}

// Count returns how many outcomes carry the given action.
func (r *Report) Count(a Action) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Action == a {
			n++
		}
	}
	return n
}

// Failures returns the outcomes that carry an error.
func (r *Report) Failures() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Action == Failed {
			failed = append(failed, o)
		}
	}
	return failed
}

// Err returns a combined error if any file failed, nil otherwise. Every
// file was still attempted.
func (r *Report) Err() error {
	failed := r.Failures()
	if len(failed) == 0 {
		return nil
	}
	errs := make([]error, 0, len(failed))
	for _, o := range failed {
		errs = append(errs, fmt.Errorf("%s: %w", o.FileName, o.Err))
	}
	return fmt.Errorf("%d file(s) failed: %w", len(failed), errors.Join(errs...))
}

// Reconcile writes the desired configs under dir and garbage-collects
// stale generated files belonging to kind. Each file is an independent
// resource; one failure does not stop the rest.
func Reconcile(dir string, kind compositor.Kind, desired []synth.GeneratedConfig) *Report {
	return run(dir, kind, desired, false)
}

// Plan reports what Reconcile would do without performing any writes or
// deletions.
func Plan(dir string, kind compositor.Kind, desired []synth.GeneratedConfig) *Report {
	return run(dir, kind, desired, true)
}

func run(dir string, kind compositor.Kind, desired []synth.GeneratedConfig, dryRun bool) *Report {
	report := &Report{}

	if !dryRun {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			for _, d := range desired {
				report.add(d.FileName, Failed, err)
			}
			return report
		}
	}

	want := make(map[string]bool, len(desired))
	for _, d := range desired {
		want[d.FileName] = true
		path := filepath.Join(dir, d.FileName)

		existing, readErr := os.ReadFile(path)
		if readErr == nil && bytes.Equal(existing, d.Content) {
			report.add(d.FileName, Unchanged, nil)
			continue
		}
		if readErr != nil && !os.IsNotExist(readErr) {
			report.add(d.FileName, Failed, readErr)
			continue
		}
		if dryRun {
			report.add(d.FileName, Written, nil)
			continue
		}
		if err := fsutil.WriteFileAtomic(path, d.Content, 0o644); err != nil {
			report.add(d.FileName, Failed, err)
			continue
		}
		report.add(d.FileName, Written, nil)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			report.add(dir, Failed, err)
		}
		return report
	}
	for _, entry := range entries {
		if entry.IsDir() || want[entry.Name()] {
			continue
		}
		if _, _, ok := synth.ParseFileName(kind, entry.Name()); !ok {
			continue
		}
		if dryRun {
			report.add(entry.Name(), Deleted, nil)
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			report.add(entry.Name(), Failed, err)
			continue
		}
		report.add(entry.Name(), Deleted, nil)
	}

	return report
}
