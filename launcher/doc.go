// Package launcher runs the configur WebAssembly module.
//
// A launch is a straight pipeline:
//
//	ExtractArgs -> ParseOptions -> Resolve -> RunEmbedded | RunExternal
//
// ExtractArgs finds where the launcher's own arguments start in the raw
// process arguments. ParseOptions parses the fixed flag set. Resolve makes
// the --ev2 root and the module path absolute and picks a Backend once.
//
// The embedded backend instantiates the module in-process through wazero
// with WASI preview1, mounting the root at /ev2. The external backend runs
// `wasmtime run --dir <root> <module> -- <args>` and relays its output.
//
// Without --ev2, or with --help, the run is in usage mode: the launcher
// prints its usage and the module is invoked with --help only, with no
// directory exposed.
//
// Process state (working directory, platform, environment, streams) is read
// once into a Host by CurrentHost and passed explicitly from there on.
package launcher
