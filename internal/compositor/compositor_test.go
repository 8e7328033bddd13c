package compositor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hyprctlFixture = `Monitor eDP-1 (ID 0):
	1920x1080@60.00000 at 0x0
	description: BOE 0x095F
	make: BOE
	active workspace: 1 (1)
	focused: yes
Monitor HDMI-A-1 (ID 1):
	2560x1440@59.95100 at 1920x0
	description: Dell Inc. DELL U2719D
	focused: no
`

const niriFixture = `Output "BOE 0x095F" (eDP-1)
  Current mode: 1920x1080 @ 60.000 Hz
  Scale: 1
  Logical position: 0, 0
Output "Dell Inc. DELL U2719D J7MYV03" (HDMI-A-1)
  Current mode: 2560x1440 @ 59.951 Hz
  Scale: 1
`

const mangoFixture = `eDP-1 title leftwm
eDP-1 selmon 1
eDP-1 tags 1 0 0 0
HDMI-A-1 title
HDMI-A-1 selmon 0
HDMI-A-1 tags 2 0 0 0
`

func names(monitors []Monitor) []string {
	out := make([]string, len(monitors))
	for i, m := range monitors {
		out[i] = m.Name
	}
	return out
}

func TestParseHyprlandMonitors(t *testing.T) {
	monitors, err := parseHyprlandMonitors([]byte(hyprctlFixture))
	require.NoError(t, err)
	assert.Equal(t, []string{"eDP-1", "HDMI-A-1"}, names(monitors))
	assert.Equal(t, 0, monitors[0].Position)
	assert.Equal(t, 1, monitors[1].Position)
}

func TestParseHyprlandMonitorsEmpty(t *testing.T) {
	_, err := parseHyprlandMonitors([]byte("no monitors here\n"))
	require.ErrorIs(t, err, ErrNoOutputs)
}

func TestParseNiriOutputs(t *testing.T) {
	monitors, err := parseNiriOutputs([]byte(niriFixture))
	require.NoError(t, err)
	assert.Equal(t, []string{"eDP-1", "HDMI-A-1"}, names(monitors))
}

func TestParseNiriOutputsEmpty(t *testing.T) {
	_, err := parseNiriOutputs(nil)
	require.ErrorIs(t, err, ErrNoOutputs)
}

func TestParseMangoMonitorsDeduplicates(t *testing.T) {
	monitors, err := parseMangoMonitors([]byte(mangoFixture + mangoFixture))
	require.NoError(t, err)
	assert.Equal(t, []string{"eDP-1", "HDMI-A-1"}, names(monitors))
}

func TestParseMangoMonitorsEmpty(t *testing.T) {
	_, err := parseMangoMonitors([]byte("eDP-1 title something\n"))
	require.ErrorIs(t, err, ErrNoOutputs)
}

func stubProcesses(t *testing.T, running ...string) {
	t.Helper()
	prev := processRunning
	t.Cleanup(func() { processRunning = prev })
	processRunning = func(name string) bool {
		for _, r := range running {
			if r == name {
				return true
			}
		}
		return false
	}
}

func TestDetectHyprlandFromEnv(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "abc123")
	t.Setenv("NIRI_SOCKET", "")
	stubProcesses(t)

	comp, err := Detect()
	require.NoError(t, err)
	assert.Equal(t, Hyprland, comp.Kind())
}

func TestDetectNiriFromSocketEnv(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")
	t.Setenv("NIRI_SOCKET", "/run/user/1000/niri.sock")
	stubProcesses(t)

	comp, err := Detect()
	require.NoError(t, err)
	assert.Equal(t, Niri, comp.Kind())
}

func TestDetectNiriFromProcessList(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")
	t.Setenv("NIRI_SOCKET", "")
	stubProcesses(t, "niri")

	comp, err := Detect()
	require.NoError(t, err)
	assert.Equal(t, Niri, comp.Kind())
}

func TestDetectMango(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")
	t.Setenv("NIRI_SOCKET", "")
	stubProcesses(t, "mango")

	comp, err := Detect()
	require.NoError(t, err)
	assert.Equal(t, Mango, comp.Kind())
}

func TestDetectUnknown(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")
	t.Setenv("NIRI_SOCKET", "")
	stubProcesses(t)

	_, err := Detect()
	require.ErrorIs(t, err, ErrUnknown)
}

func TestIntrospectRetriesTransientFailures(t *testing.T) {
	prev := commandOutput
	t.Cleanup(func() { commandOutput = prev })

	calls := 0
	commandOutput = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("socket not ready")
		}
		return []byte(hyprctlFixture), nil
	}

	h := &hyprland{}
	monitors, err := h.Monitors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, monitors, 2)
}

func TestIntrospectGivesUpAfterAttempts(t *testing.T) {
	prev := commandOutput
	t.Cleanup(func() { commandOutput = prev })

	calls := 0
	commandOutput = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		calls++
		return nil, errors.New("down for good")
	}

	n := &niri{}
	_, err := n.Monitors(context.Background())
	require.Error(t, err)
	assert.Equal(t, enumAttempts, calls)
}

func TestFakeCompositor(t *testing.T) {
	f := &Fake{FakeKind: Niri, Names: []string{"eDP-1", "HDMI-A-1"}}
	monitors, err := f.Monitors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"eDP-1", "HDMI-A-1"}, names(monitors))

	empty := &Fake{FakeKind: Niri}
	_, err = empty.Monitors(context.Background())
	require.ErrorIs(t, err, ErrNoOutputs)
}
