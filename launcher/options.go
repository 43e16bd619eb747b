package launcher

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/cataggar/configur/errors"
)

// Options are the parsed launcher flags. Empty string options are absent.
type Options struct {
	EV2          string
	Environments string
	Scratch      string
	Help         bool
	Verbose      bool
	Wasmtime     bool
}

// UsageMode reports whether the run degenerates to a help request.
func (o Options) UsageMode() bool {
	return o.Help || o.EV2 == ""
}

func newFlagSet(o *Options) *flag.FlagSet {
	fs := flag.NewFlagSet(DefaultProgramName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.BoolVarP(&o.Help, "help", "h", false, "show usage and ask the module for its help")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "log launcher decisions to stderr")
	fs.BoolVarP(&o.Wasmtime, "wasmtime", "w", false, "run the module with the installed wasmtime runtime")
	fs.StringVar(&o.EV2, "ev2", "", "root `directory` exposed to the module")
	fs.StringVarP(&o.Environments, "environments", "e", "", "environments `path` passed to the module")
	fs.StringVarP(&o.Scratch, "scratch", "s", "", "scratch `path` passed to the module")
	return fs
}

// ParseOptions parses the launcher's arguments. Any error is a usage error
// and no partially parsed options are returned with it.
func ParseOptions(args []string) (Options, error) {
	var o Options
	fs := newFlagSet(&o)

	if err := checkStrict(fs, args); err != nil {
		return Options{}, err
	}
	if err := fs.Parse(args); err != nil {
		return Options{}, parseError(err)
	}
	if rest := fs.Args(); len(rest) > 0 {
		return Options{}, errors.InvalidInput(errors.PhaseValidate, fmt.Sprintf("unexpected argument %q", rest[0]))
	}
	return o, nil
}

// checkStrict rejects two forms pflag accepts: an explicit value on a bool
// flag, and a string flag followed by a token that looks like another flag.
// The = form still takes any value, so --ev2=-dir is allowed.
func checkStrict(fs *flag.FlagSet, args []string) error {
	for i, arg := range args {
		switch {
		case arg == "--":
			return nil
		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if isBoolFlag(f) && hasValue {
				return errors.InvalidInput(errors.PhaseParse, fmt.Sprintf("flag %q does not take a value", "--"+name))
			}
			if !isBoolFlag(f) && !hasValue && flagLike(args, i+1) {
				return errors.FieldMissing(errors.PhaseParse, arg)
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			// shorthands may be grouped: -wv, -we path, -epath
			for j := 1; j < len(arg); j++ {
				f := fs.ShorthandLookup(arg[j : j+1])
				if f == nil {
					break
				}
				if isBoolFlag(f) {
					if j+1 < len(arg) && arg[j+1] == '=' {
						return errors.InvalidInput(errors.PhaseParse, fmt.Sprintf("flag %q does not take a value", "-"+f.Shorthand))
					}
					continue
				}
				if j+1 == len(arg) && flagLike(args, i+1) {
					return errors.FieldMissing(errors.PhaseParse, "-"+f.Shorthand)
				}
				break
			}
		}
	}
	return nil
}

func isBoolFlag(f *flag.Flag) bool {
	return f.Value.Type() == "bool"
}

// flagLike reports whether args[i] exists and would be read as a flag.
func flagLike(args []string, i int) bool {
	return i < len(args) && strings.HasPrefix(args[i], "-") && args[i] != "-"
}

// parseError maps pflag's plain-text errors onto the structured taxonomy.
func parseError(err error) error {
	msg := err.Error()
	_, subject, _ := strings.Cut(msg, ": ")
	switch {
	case strings.HasPrefix(msg, "unknown"):
		return errors.FieldUnknown(errors.PhaseParse, subject)
	case strings.HasPrefix(msg, "flag needs an argument"):
		return errors.FieldMissing(errors.PhaseParse, subject)
	default:
		return errors.InvalidInput(errors.PhaseParse, msg)
	}
}
