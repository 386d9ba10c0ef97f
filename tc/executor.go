package tc

import (
	"context"
	"fmt"
	"os/exec"
)

// Executor runs tc commands. Implementations return the tool's combined
// output; an error means the tool could not be run or exited non-zero. A nil
// error does not mean the kernel accepted the configuration.
type Executor interface {
	Run(ctx context.Context, cmd Command) (string, error)
}

// ExecExecutor runs commands with the tc binary on the host. Execution is
// blocking with no timeout beyond what the caller's context imposes.
type ExecExecutor struct {
	// Binary overrides the tc binary path. Empty means "tc" from PATH.
	Binary string
}

func (e ExecExecutor) Run(ctx context.Context, cmd Command) (string, error) {
	bin := e.Binary
	if bin == "" {
		bin = "tc"
	}
	out, err := exec.CommandContext(ctx, bin, cmd.Args...).CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("%s: %w", cmd, err)
	}
	return string(out), nil
}
