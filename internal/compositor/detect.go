package compositor

import (
	"errors"
	"os"
	"os/exec"
)

// ErrUnknown is returned when no supported compositor is detected.
var ErrUnknown = errors.New("no supported compositor detected (niri, hyprland, mango)")

// ErrNoOutputs is returned when the compositor reports zero monitors.
var ErrNoOutputs = errors.New("compositor reported no outputs")

// processRunning is swapped in tests.
var processRunning = func(name string) bool {
	err := exec.Command("pgrep", "-x", name).Run()
	return err == nil
}

// Detect identifies the active compositor from environment state and the
// process list. Hyprland exports an instance signature; niri exports its
// IPC socket path. Mango is only visible as a running process.
func Detect() (Compositor, error) {
	if os.Getenv("HYPRLAND_INSTANCE_SIGNATURE") != "" {
		return &hyprland{}, nil
	}
	if os.Getenv("NIRI_SOCKET") != "" || processRunning("niri") {
		return &niri{}, nil
	}
	if processRunning("mango") {
		return &mango{}, nil
	}
	return nil, ErrUnknown
}
