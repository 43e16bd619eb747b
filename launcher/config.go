package launcher

import "strings"

const (
	// DefaultModulePath is the module bytecode location relative to the
	// launcher's install directory.
	DefaultModulePath = "target/wasm32-wasi/release/configur.wasm"

	// DefaultProgramName is the argv[0] handed to the guest module.
	DefaultProgramName = "configur"

	// DefaultMountPoint is where the exposed root appears inside the guest.
	DefaultMountPoint = "/ev2"

	// DefaultRuntimeCommand is the external runtime executable.
	DefaultRuntimeCommand = "wasmtime"

	// DefaultExternalOnlyOS is the platform whose embedded WASI filesystem
	// support is incomplete, so the external runtime is used by default.
	DefaultExternalOnlyOS = "windows"
)

// Environment variables read from the host environment.
const (
	EnvModulePath     = "CONFIGUR_WASM"
	EnvRuntimeCommand = "CONFIGUR_WASMTIME"
)

// Config holds the launcher settings that are not user flags.
type Config struct {
	ModulePath     string
	ProgramName    string
	MountPoint     string
	RuntimeCommand string
	ExternalOnlyOS string

	// LauncherNames are the accepted spellings of the launcher's own name,
	// searched in order when extracting arguments.
	LauncherNames []string
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		ModulePath:     DefaultModulePath,
		ProgramName:    DefaultProgramName,
		MountPoint:     DefaultMountPoint,
		RuntimeCommand: DefaultRuntimeCommand,
		ExternalOnlyOS: DefaultExternalOnlyOS,
		LauncherNames:  []string{DefaultProgramName + ".exe", DefaultProgramName},
	}
}

// LoadConfig returns DefaultConfig with overrides applied from environ,
// a list of KEY=VALUE pairs as returned by os.Environ.
func LoadConfig(environ []string) Config {
	cfg := DefaultConfig()
	if v, ok := lookupEnv(environ, EnvModulePath); ok && v != "" {
		cfg.ModulePath = v
	}
	if v, ok := lookupEnv(environ, EnvRuntimeCommand); ok && v != "" {
		cfg.RuntimeCommand = v
	}
	return cfg
}

// lookupEnv finds key in environ. Later entries win, as with exec.Cmd.Env.
func lookupEnv(environ []string, key string) (string, bool) {
	var (
		value string
		found bool
	)
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok && k == key {
			value, found = v, true
		}
	}
	return value, found
}
