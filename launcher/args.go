package launcher

import (
	"slices"
	"strings"

	"github.com/cataggar/configur/errors"
)

// Separator marks the start of the launcher's arguments when it is run
// through a wrapper such as `go run . --`.
const Separator = "--"

// ExtractArgs returns the part of raw that belongs to the launcher.
//
// The boundary is the first element ending in Separator; failing that, the
// first element ending in names[0], then names[1], and so on. Everything
// after the boundary is returned. Without a boundary the call fails rather
// than treating raw[0] as a launcher argument.
func ExtractArgs(raw []string, names []string) ([]string, error) {
	idx := slices.IndexFunc(raw, func(arg string) bool {
		return strings.HasSuffix(arg, Separator)
	})
	for _, name := range names {
		if idx >= 0 {
			break
		}
		idx = slices.IndexFunc(raw, func(arg string) bool {
			return strings.HasSuffix(arg, name)
		})
	}
	if idx < 0 {
		return nil, errors.NoBoundary(names)
	}
	return slices.Clone(raw[idx+1:]), nil
}
