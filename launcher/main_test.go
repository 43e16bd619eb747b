package launcher

import (
	"fmt"
	"os"
	"strconv"
	"testing"
)

// When fakeRuntimeEnv is set, the test binary acts as the external runtime.
const (
	fakeRuntimeEnv = "CONFIGUR_TEST_FAKE_RUNTIME"
	fakeExitEnv    = "CONFIGUR_TEST_FAKE_EXIT"
)

func TestMain(m *testing.M) {
	if os.Getenv(fakeRuntimeEnv) == "1" {
		os.Exit(fakeRuntime(os.Args[1:]))
	}
	os.Exit(m.Run())
}

// fakeRuntime prints each argument on its own stdout line, one line on
// stderr, and exits with the code in fakeExitEnv.
func fakeRuntime(args []string) int {
	for _, arg := range args {
		fmt.Fprintln(os.Stdout, arg)
	}
	fmt.Fprintln(os.Stderr, "fake runtime stderr")
	code, _ := strconv.Atoi(os.Getenv(fakeExitEnv))
	return code
}

// fakeRuntimeConfig points the external backend at the test binary.
func fakeRuntimeConfig(t *testing.T) Config {
	t.Helper()
	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("os.Executable: %v", err)
	}
	cfg := DefaultConfig()
	cfg.RuntimeCommand = exe
	return cfg
}

func fakeRuntimeEnviron(exitCode int) []string {
	return append(os.Environ(),
		fakeRuntimeEnv+"=1",
		fakeExitEnv+"="+strconv.Itoa(exitCode),
	)
}
