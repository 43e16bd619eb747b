package launcher

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	flagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// PrintUsage writes the launcher's usage to w. Styling is applied only when
// w is a terminal.
func PrintUsage(w io.Writer, cfg Config) {
	styled := isTerminal(w)
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	fs := newFlagSet(&Options{})

	fmt.Fprintln(w, render(titleStyle, "Usage: "+cfg.ProgramName+" --ev2 <directory> [flags]"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Runs the "+cfg.ProgramName+" module with <directory> as its only visible root.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	for _, line := range strings.Split(strings.TrimRight(fs.FlagUsages(), "\n"), "\n") {
		fmt.Fprintln(w, render(flagStyle, line))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, render(helpStyle, fmt.Sprintf(
		"Module: %s (override with %s). External runtime: %s (override with %s).",
		cfg.ModulePath, EnvModulePath, cfg.RuntimeCommand, EnvRuntimeCommand)))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
