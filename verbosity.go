// Package verbosity provides a set-once global verbosity level for
// command-line tools.
//
// A command parses its requested level once at startup, installs it with
// [Verbosity.SetAsGlobal], and the rest of the program consults [Level],
// [IsTerse] and [IsVerbose] to decide how much diagnostic output to
// produce. The global can only be set once; every later attempt is
// silently ignored.
package verbosity

import (
	"fmt"
)

// Verbosity defines an amount of reporting that a command should produce.
//
// Levels are totally ordered: Quite < Terse < Verbose.
type Verbosity int

// Verbosity levels that are defined:
const (
	// Quite is the no-output level.
	//
	// The token "quite" is a historical misspelling of "quiet",
	// kept as is for compatibility with existing callers.
	Quite Verbosity = iota

	// Terse is the minimal reporting level.
	Terse

	// Verbose is the extended reporting level.
	Verbose
)

// String returns the canonical lowercase name of the level.
func (v Verbosity) String() string {
	switch v {
	case Quite:
		return "quite"
	case Terse:
		return "terse"
	case Verbose:
		return "verbose"
	}

	return fmt.Sprintf("verbosity(%d)", int(v))
}

// InvalidLevelError reports an input string that does not name a
// verbosity level.
type InvalidLevelError struct {
	Input string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("%q is not a valid verbosity", e.Input)
}

// Parse maps one of the canonical names "quite", "terse" or "verbose"
// to its level. Matching is exact: no trimming, no case folding.
//
// Any other input returns an *InvalidLevelError carrying the input.
func Parse(s string) (Verbosity, error) {
	switch s {
	case "quite":
		return Quite, nil
	case "terse":
		return Terse, nil
	case "verbose":
		return Verbose, nil
	}

	return Quite, &InvalidLevelError{Input: s}
}
