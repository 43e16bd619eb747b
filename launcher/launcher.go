package launcher

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cataggar/configur/errors"
)

// Run performs one launch from the raw process arguments and returns the
// exit status for the process. Local failures are reported as a single line
// on host.Stderr with status 1; otherwise the module's status is returned.
func Run(ctx context.Context, raw []string, host Host) int {
	cfg := LoadConfig(host.Environ)

	code, err := run(ctx, raw, host, cfg)
	switch {
	case err == nil:
	case errors.IsUsage(err):
		fmt.Fprintf(host.stderr(), "%s: %v (see %s --help)\n", cfg.ProgramName, err, cfg.ProgramName)
		code = 1
	default:
		fmt.Fprintf(host.stderr(), "%s: %v\n", cfg.ProgramName, err)
		if code == 0 {
			code = 1
		}
	}
	return code
}

func run(ctx context.Context, raw []string, host Host, cfg Config) (int, error) {
	args, err := ExtractArgs(raw, cfg.LauncherNames)
	if err != nil {
		return 1, err
	}

	opts, err := ParseOptions(args)
	if err != nil {
		return 1, err
	}
	if opts.Verbose {
		host.Logger = newConsoleLogger(host.stderr())
		defer func() { _ = host.Logger.Sync() }()
	}
	log := host.logger()
	log.Debug("parsed options",
		zap.Strings("args", args),
		zap.Bool("help", opts.Help),
		zap.Bool("wasmtime", opts.Wasmtime),
		zap.String("ev2", opts.EV2),
		zap.String("environments", opts.Environments),
		zap.String("scratch", opts.Scratch))

	plan, err := Resolve(opts, host, cfg)
	if err != nil {
		return 1, err
	}
	log.Debug("resolved plan",
		zap.Stringer("backend", plan.Backend),
		zap.Bool("usage", plan.Usage),
		zap.String("root", plan.Root),
		zap.String("module", plan.ModulePath))

	if plan.Usage {
		PrintUsage(host.stdout(), cfg)
	}

	switch plan.Backend {
	case BackendExternal:
		return RunExternal(ctx, plan, host, cfg)
	default:
		return RunEmbedded(ctx, plan, host, cfg)
	}
}
