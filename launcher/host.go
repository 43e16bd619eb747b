package launcher

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"

	"github.com/cataggar/configur/errors"
)

// Host is the process state the launcher reads. It is captured once by
// CurrentHost and passed explicitly, so tests can substitute any value.
type Host struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// GOOS identifies the host platform for backend selection.
	GOOS string

	// Cwd is the directory relative --ev2 values resolve against.
	Cwd string

	// InstallDir is the directory holding the launcher executable. The
	// module path resolves against it.
	InstallDir string

	// Environ is forwarded to the module unmodified.
	Environ []string

	// Logger receives launcher debug logs. Nil falls back to the package
	// logger.
	Logger *zap.Logger
}

// CurrentHost captures the running process's host state.
func CurrentHost() (Host, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Host{}, errors.Wrap(errors.PhaseResolve, errors.KindNotFound, err, "current directory")
	}

	exe, err := os.Executable()
	if err != nil {
		return Host{}, errors.Wrap(errors.PhaseResolve, errors.KindNotFound, err, "launcher executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return Host{
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		GOOS:       runtime.GOOS,
		Cwd:        cwd,
		InstallDir: filepath.Dir(exe),
		Environ:    os.Environ(),
	}, nil
}

func (h Host) stdout() io.Writer {
	if h.Stdout == nil {
		return io.Discard
	}
	return h.Stdout
}

func (h Host) stderr() io.Writer {
	if h.Stderr == nil {
		return io.Discard
	}
	return h.Stderr
}

func (h Host) logger() *zap.Logger {
	if h.Logger == nil {
		return Logger()
	}
	return h.Logger
}
