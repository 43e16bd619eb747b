package launcher

import (
	"context"
	"crypto/rand"
	"io/fs"
	"os"
	"strings"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"
	"go.uber.org/zap"

	"github.com/cataggar/configur/errors"
)

// RunEmbedded instantiates the module in-process with WASI preview1 and
// blocks until it exits. The returned code is the guest's exit status.
func RunEmbedded(ctx context.Context, plan *Plan, host Host, cfg Config) (int, error) {
	wasm, err := readModule(plan.ModulePath)
	if err != nil {
		return 1, err
	}

	r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig())
	defer r.Close(ctx)

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		return 1, errors.Wrap(errors.PhaseRuntime, errors.KindInstantiation, err, "instantiate WASI preview1")
	}

	compiled, err := r.CompileModule(ctx, wasm)
	if err != nil {
		return 1, errors.Load("compile module", err)
	}

	args := plan.EmbeddedArgs(cfg)
	host.logger().Debug("instantiating module",
		zap.String("module", plan.ModulePath),
		zap.Strings("args", args),
		zap.String("root", plan.Root),
		zap.String("mount", cfg.MountPoint))

	mod, err := r.InstantiateModule(ctx, compiled, moduleConfig(plan, host, cfg, args))
	if err != nil {
		var exitErr *sys.ExitError
		if errors.As(err, &exitErr) {
			return int(exitErr.ExitCode()), nil
		}
		return 1, errors.Instantiation(err)
	}
	// _start returned without calling proc_exit.
	_ = mod.Close(ctx)
	return 0, nil
}

func moduleConfig(plan *Plan, host Host, cfg Config, args []string) wazero.ModuleConfig {
	modCfg := wazero.NewModuleConfig().
		WithArgs(args...).
		WithStdout(host.stdout()).
		WithStderr(host.stderr()).
		WithSysWalltime().
		WithSysNanotime().
		WithRandSource(rand.Reader)
	if host.Stdin != nil {
		modCfg = modCfg.WithStdin(host.Stdin)
	}

	for _, kv := range plan.Env {
		k, v, ok := strings.Cut(kv, "=")
		// Windows keeps per-drive cwd entries such as "=C:=C:\".
		if !ok || k == "" {
			continue
		}
		modCfg = modCfg.WithEnv(k, v)
	}

	if !plan.Usage {
		modCfg = modCfg.WithFSConfig(wazero.NewFSConfig().WithDirMount(plan.Root, cfg.MountPoint))
	}
	return modCfg
}

func readModule(path string) ([]byte, error) {
	wasm, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFound(errors.PhaseLoad, "module", path)
		}
		return nil, errors.Load("read module", err)
	}
	return wasm, nil
}
