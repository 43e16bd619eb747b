package launcher

import (
	"context"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"sync"

	"go.uber.org/zap"

	"github.com/cataggar/configur/errors"
)

// RunExternal runs the module with the installed runtime as a child process.
// The child's stdout and stderr are relayed as they arrive, each on its own
// goroutine, and the child's exit status is returned once both streams close.
func RunExternal(ctx context.Context, plan *Plan, host Host, cfg Config) (int, error) {
	if _, err := os.Stat(plan.ModulePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 1, errors.NotFound(errors.PhaseLoad, "module", plan.ModulePath)
		}
		return 1, errors.Load("stat module", err)
	}

	args := plan.ExternalArgs()
	host.logger().Debug("starting external runtime",
		zap.String("command", cfg.RuntimeCommand),
		zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, cfg.RuntimeCommand, args...)
	cmd.Env = plan.Env
	cmd.Stdin = host.Stdin

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 1, errors.Spawn(cfg.RuntimeCommand, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return 1, errors.Spawn(cfg.RuntimeCommand, err)
	}

	if err := cmd.Start(); err != nil {
		return 1, errors.Spawn(cfg.RuntimeCommand, err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go relay(&wg, host.stdout(), stdout)
	go relay(&wg, host.stderr(), stderr)
	wg.Wait()

	err = cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Terminated by a signal.
			code = 1
		}
		host.logger().Debug("external runtime exited", zap.Int("code", code))
		return code, nil
	}
	return 1, errors.Wrap(errors.PhaseSpawn, errors.KindInstantiation, err, "wait for "+cfg.RuntimeCommand)
}

// relay copies src to dst until src closes. If dst fails, src is still
// drained so the child never blocks on a full pipe.
func relay(wg *sync.WaitGroup, dst io.Writer, src io.Reader) {
	defer wg.Done()
	if _, err := io.Copy(dst, src); err != nil {
		_, _ = io.Copy(io.Discard, src)
	}
}
