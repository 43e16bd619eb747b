package launcher

import (
	"path/filepath"

	"github.com/cataggar/configur/errors"
)

// Backend selects how the module is executed.
type Backend int

const (
	// BackendEmbedded instantiates the module in-process through wazero.
	BackendEmbedded Backend = iota
	// BackendExternal runs the module with an installed runtime as a child process.
	BackendExternal
)

func (b Backend) String() string {
	switch b {
	case BackendEmbedded:
		return "embedded"
	case BackendExternal:
		return "external"
	default:
		return "unknown"
	}
}

// SelectBackend picks the backend for a run. --wasmtime forces the external
// runtime; otherwise it is used only on the platform named by
// cfg.ExternalOnlyOS.
func SelectBackend(opts Options, goos string, cfg Config) Backend {
	if opts.Wasmtime || goos == cfg.ExternalOnlyOS {
		return BackendExternal
	}
	return BackendEmbedded
}

// Plan is a resolved invocation. Every path in it is absolute.
type Plan struct {
	Options Options

	// Root is the host directory exposed to the module. Empty in usage mode.
	Root string

	// ModulePath is the module bytecode file.
	ModulePath string

	// Env is forwarded to the module.
	Env []string

	Backend Backend

	// Usage marks a help-only run: no directory is exposed and the module
	// receives only --help.
	Usage bool
}

// Resolve validates opts against the host and builds the plan for one run.
// In usage mode the --ev2 value is never examined.
func Resolve(opts Options, host Host, cfg Config) (*Plan, error) {
	modulePath, err := absPath(cfg.ModulePath, host.InstallDir)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Options:    opts,
		ModulePath: modulePath,
		Env:        host.Environ,
		Backend:    SelectBackend(opts, host.GOOS, cfg),
		Usage:      opts.UsageMode(),
	}
	if plan.Usage {
		return plan, nil
	}

	root, err := absPath(opts.EV2, host.Cwd)
	if err != nil {
		return nil, err
	}
	plan.Root = root
	return plan, nil
}

// absPath returns p unchanged when it is already absolute and joined to base
// otherwise.
func absPath(p, base string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	joined := filepath.Join(base, p)
	if !filepath.IsAbs(joined) {
		return "", errors.New(errors.PhaseResolve, errors.KindInvalidInput).
			Value(p).
			Detail("cannot make %q absolute against %q", p, base).
			Build()
	}
	return joined, nil
}

// ModuleArgs translates the pass-through options into module flags, with
// ev2 as the --ev2 value. Absent options are omitted.
func ModuleArgs(opts Options, ev2 string) []string {
	args := []string{"--ev2", ev2}
	if opts.Environments != "" {
		args = append(args, "--environments", opts.Environments)
	}
	if opts.Scratch != "" {
		args = append(args, "--scratch", opts.Scratch)
	}
	return args
}

// EmbeddedArgs is the guest argv for the embedded backend: the program name
// followed by the module flags. --ev2 carries the host root, which the guest
// filesystem exposes at cfg.MountPoint.
func (p *Plan) EmbeddedArgs(cfg Config) []string {
	if p.Usage {
		return []string{cfg.ProgramName, "--help"}
	}
	return append([]string{cfg.ProgramName}, ModuleArgs(p.Options, p.Root)...)
}

// ExternalArgs is the runtime command line for the external backend. The
// runtime maps the root at its own host path.
func (p *Plan) ExternalArgs() []string {
	args := []string{"run"}
	if p.Usage {
		return append(args, p.ModulePath, "--", "--help")
	}
	args = append(args, "--dir", p.Root, p.ModulePath, "--")
	return append(args, ModuleArgs(p.Options, p.Root)...)
}
