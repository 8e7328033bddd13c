package compositor

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/codeGROOVE-dev/retry"
)

const (
	enumAttempts   = 3
	enumDelay      = 200 * time.Millisecond
	enumMaxDelay   = 2 * time.Second
	commandTimeout = 5 * time.Second
)

// commandOutput is swapped in tests.
var commandOutput = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// introspect runs the compositor's status command with bounded retry.
// At session launch the compositor IPC endpoint may not be accepting
// commands yet.
func introspect(ctx context.Context, name string, args ...string) ([]byte, error) {
	var out []byte
	err := retry.Do(func() error {
		cctx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()
		var runErr error
		out, runErr = commandOutput(cctx, name, args...)
		return runErr
	}, retry.Attempts(enumAttempts), retry.Delay(enumDelay), retry.MaxDelay(enumMaxDelay))
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", name, err)
	}
	return out, nil
}
