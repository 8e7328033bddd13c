package reconcile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omynix/waybar-manager/internal/compositor"
	"github.com/omynix/waybar-manager/internal/synth"
)

func desired(names ...string) []synth.GeneratedConfig {
	out := make([]synth.GeneratedConfig, len(names))
	for i, n := range names {
		out[i] = synth.GeneratedConfig{FileName: n, Content: []byte(`{"output": "` + n + `"}` + "\n")}
	}
	return out
}

func TestReconcileWritesIntoFreshDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "generated")
	want := desired("niri_eDP-1_full.json", "niri_HDMI-A-1_simple.json")

	report := Reconcile(dir, compositor.Niri, want)
	require.NoError(t, report.Err())
	assert.Equal(t, 2, report.Count(Written))
	assert.Equal(t, 0, report.Count(Unchanged))

	for _, d := range want {
		raw, err := os.ReadFile(filepath.Join(dir, d.FileName))
		require.NoError(t, err)
		assert.Equal(t, d.Content, raw)
	}
}

func TestReconcileRerunIsNoOp(t *testing.T) {
	dir := t.TempDir()
	want := desired("niri_eDP-1_full.json", "niri_HDMI-A-1_simple.json")

	first := Reconcile(dir, compositor.Niri, want)
	require.NoError(t, first.Err())

	second := Reconcile(dir, compositor.Niri, want)
	require.NoError(t, second.Err())
	assert.Equal(t, 0, second.Count(Written))
	assert.Equal(t, 2, second.Count(Unchanged))
	assert.Equal(t, 0, second.Count(Deleted))
}

func TestReconcileWritesExactlyTheChangedFiles(t *testing.T) {
	dir := t.TempDir()
	want := desired("niri_eDP-1_full.json", "niri_HDMI-A-1_simple.json")
	require.NoError(t, Reconcile(dir, compositor.Niri, want).Err())

	want[1].Content = []byte(`{"output": "HDMI-A-1", "position": "bottom"}` + "\n")
	report := Reconcile(dir, compositor.Niri, want)
	require.NoError(t, report.Err())
	assert.Equal(t, 1, report.Count(Written))
	assert.Equal(t, 1, report.Count(Unchanged))
}

func TestReconcileDeletesStaleFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Reconcile(dir, compositor.Niri, desired("niri_eDP-1_full.json", "niri_DP-2_simple.json")).Err())

	// DP-2 was unplugged.
	report := Reconcile(dir, compositor.Niri, desired("niri_eDP-1_full.json"))
	require.NoError(t, report.Err())
	assert.Equal(t, 1, report.Count(Deleted))

	_, err := os.Stat(filepath.Join(dir, "niri_DP-2_simple.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestReconcileLeavesOtherKindsAndForeignFilesAlone(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "hyprland_eDP-1_full.json")
	require.NoError(t, os.WriteFile(other, []byte("{}"), 0o644))
	notes := filepath.Join(dir, "NOTES.txt")
	require.NoError(t, os.WriteFile(notes, []byte("keep me"), 0o644))

	report := Reconcile(dir, compositor.Niri, desired("niri_eDP-1_full.json"))
	require.NoError(t, report.Err())
	assert.Equal(t, 0, report.Count(Deleted))

	_, err := os.Stat(other)
	assert.NoError(t, err)
	_, err = os.Stat(notes)
	assert.NoError(t, err)
}

func TestReconcileOneFailureDoesNotBlockSiblings(t *testing.T) {
	dir := t.TempDir()
	// A directory squatting on a target path makes that one write fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "niri_eDP-1_full.json"), 0o755))

	want := desired("niri_eDP-1_full.json", "niri_HDMI-A-1_simple.json")
	report := Reconcile(dir, compositor.Niri, want)

	assert.Equal(t, 1, report.Count(Failed))
	assert.Equal(t, 1, report.Count(Written))
	require.Error(t, report.Err())
	assert.Contains(t, report.Err().Error(), "niri_eDP-1_full.json")

	raw, err := os.ReadFile(filepath.Join(dir, "niri_HDMI-A-1_simple.json"))
	require.NoError(t, err)
	assert.Equal(t, want[1].Content, raw)
}

func TestPlanPerformsNoWrites(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "niri_DP-2_simple.json")
	require.NoError(t, os.WriteFile(stale, []byte("{}"), 0o644))

	plan := Plan(dir, compositor.Niri, desired("niri_eDP-1_full.json"))
	require.NoError(t, plan.Err())
	assert.Equal(t, 1, plan.Count(Written))
	assert.Equal(t, 1, plan.Count(Deleted))

	// Nothing actually happened on disk.
	_, err := os.Stat(filepath.Join(dir, "niri_eDP-1_full.json"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(stale)
	assert.NoError(t, err)
}

func TestPlanOnMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never-created")
	plan := Plan(dir, compositor.Niri, desired("niri_eDP-1_full.json"))
	require.NoError(t, plan.Err())
	assert.Equal(t, 1, plan.Count(Written))

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}
