package launcher

import (
	"os"
	"path/filepath"
	"testing"
)

// wasiImport is a wasi_snapshot_preview1 function taking and returning i32s.
type wasiImport struct {
	name    string
	params  int
	results int
}

var (
	importProcExit     = wasiImport{"proc_exit", 1, 0}
	importArgsSizesGet = wasiImport{"args_sizes_get", 2, 1}
	importEnvSizesGet  = wasiImport{"environ_sizes_get", 2, 1}
	importFdPrestatGet = wasiImport{"fd_prestat_get", 2, 1}
)

const (
	opI32Const byte = 0x41
	opCall     byte = 0x10
	opDrop     byte = 0x1a
	opI32Load  byte = 0x28
	opI32Add   byte = 0x6a
	opI32Mul   byte = 0x6c
	opEnd      byte = 0x0b
)

// wasiModule assembles a core module that imports fns, exports one page of
// memory and runs body as _start. Imported functions are indexed in order.
// Every section must stay under 128 bytes.
func wasiModule(fns []wasiImport, body []byte) []byte {
	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

	types := []byte{byte(len(fns) + 1)}
	for _, fn := range fns {
		types = append(types, 0x60, byte(fn.params))
		for i := 0; i < fn.params; i++ {
			types = append(types, 0x7f)
		}
		types = append(types, byte(fn.results))
		for i := 0; i < fn.results; i++ {
			types = append(types, 0x7f)
		}
	}
	types = append(types, 0x60, 0x00, 0x00)
	out = appendSection(out, 1, types)

	imports := []byte{byte(len(fns))}
	for i, fn := range fns {
		imports = appendName(imports, "wasi_snapshot_preview1")
		imports = appendName(imports, fn.name)
		imports = append(imports, 0x00, byte(i))
	}
	out = appendSection(out, 2, imports)

	out = appendSection(out, 3, []byte{0x01, byte(len(fns))})
	out = appendSection(out, 5, []byte{0x01, 0x00, 0x01})

	exports := []byte{0x02}
	exports = appendName(exports, "_start")
	exports = append(exports, 0x00, byte(len(fns)))
	exports = appendName(exports, "memory")
	exports = append(exports, 0x02, 0x00)
	out = appendSection(out, 7, exports)

	fn := append([]byte{0x00}, body...)
	fn = append(fn, opEnd)
	code := append([]byte{0x01, byte(len(fn))}, fn...)
	return appendSection(out, 10, code)
}

func appendSection(out []byte, id byte, content []byte) []byte {
	out = append(out, id, byte(len(content)))
	return append(out, content...)
}

func appendName(out []byte, name string) []byte {
	out = append(out, byte(len(name)))
	return append(out, name...)
}

// exitModule exits with code.
func exitModule(code byte) []byte {
	return wasiModule([]wasiImport{importProcExit}, []byte{
		opI32Const, code,
		opCall, 0,
	})
}

// returnModule returns from _start without calling proc_exit.
func returnModule() []byte {
	return wasiModule(nil, nil)
}

// countModule exits with the first i32 written by a *_sizes_get call, i.e.
// the number of args or environment entries.
func countModule(sizesGet wasiImport) []byte {
	return wasiModule([]wasiImport{importProcExit, sizesGet}, []byte{
		opI32Const, 0,
		opI32Const, 4,
		opCall, 1,
		opDrop,
		opI32Const, 0,
		opI32Load, 0x02, 0x00,
		opCall, 0,
	})
}

// preopenModule exits with errno*16 + name length of fd 3's preopen, so a
// directory mounted at "/ev2" yields 4 and a missing preopen yields EBADF*16.
func preopenModule() []byte {
	return wasiModule([]wasiImport{importProcExit, importFdPrestatGet}, []byte{
		opI32Const, 3,
		opI32Const, 0,
		opCall, 1,
		opI32Const, 16,
		opI32Mul,
		opI32Const, 0,
		opI32Load, 0x02, 0x04,
		opI32Add,
		opCall, 0,
	})
}

// writeModule stores wasm under dir at the default module path and returns
// its absolute location.
func writeModule(t *testing.T, dir string, wasm []byte) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(DefaultModulePath))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, wasm, 0o644); err != nil {
		t.Fatalf("write module: %v", err)
	}
	return path
}
