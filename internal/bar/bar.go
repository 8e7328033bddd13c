// Package bar spawns and stops waybar processes. The synthesis pipeline
// itself never touches processes; this is the external collaborator the
// launch command calls after reconciliation.
package bar

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"time"
)

const spawnStagger = 200 * time.Millisecond

// StylesheetExists reports whether the shared user-authored stylesheet
// is present. The file is referenced, never generated.
func StylesheetExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Running reports whether any waybar process exists.
func Running() bool {
	return exec.Command("pgrep", "-x", "waybar").Run() == nil
}

// StopAll terminates every running waybar instance so the freshly
// generated configs take effect. Individual kill failures are ignored;
// a stubborn instance only means a duplicate bar, not a broken run.
func StopAll() error {
	out, err := exec.Command("pidof", "waybar").Output()
	if err != nil {
		// pidof exits non-zero when no process matches.
		return nil
	}
	self := os.Getpid()
	for _, field := range strings.Fields(string(out)) {
		pid, err := strconv.Atoi(field)
		if err != nil || pid == self {
			continue
		}
		_ = syscall.Kill(pid, syscall.SIGTERM)
	}
	return nil
}

// Spawn starts one detached waybar instance with the given generated
// config and shared stylesheet. Instances are staggered slightly so the
// compositor is not hit with simultaneous layer-shell registrations.
func Spawn(configPath, stylePath string) error {
	cmd := exec.Command("waybar", "-c", configPath, "-s", stylePath)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch waybar for %s: %w", configPath, err)
	}
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("detach waybar process: %w", err)
	}
	time.Sleep(spawnStagger)
	return nil
}
