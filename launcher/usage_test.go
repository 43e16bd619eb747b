package launcher

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf, DefaultConfig())
	out := buf.String()

	for _, want := range []string{
		"Usage: configur --ev2 <directory> [flags]",
		"-h, --help",
		"-v, --verbose",
		"-w, --wasmtime",
		"--ev2 directory",
		"-e, --environments path",
		"-s, --scratch path",
		EnvModulePath,
		EnvRuntimeCommand,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("usage written to a buffer should not be styled")
	}
}
