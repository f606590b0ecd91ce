package verbosity_test

import (
	"fmt"
	"os"

	"github.com/puellanivis/verbosity"
)

func ExampleParse() {
	level, err := verbosity.Parse("terse")
	if err != nil {
		level = verbosity.Quite
	}

	fmt.Println(level)
	// Output: terse
}

func ExampleParse_invalid() {
	if _, err := verbosity.Parse("loud"); err != nil {
		fmt.Println(err)
	}
	// Output: "loud" is not a valid verbosity
}

// SetAsGlobal spends the one set allowed per process, so this example
// is not executed.
func ExampleVerbosity_SetAsGlobal() {
	level := verbosity.Quite

	if args := os.Args[1:]; len(args) > 0 {
		if v, err := verbosity.Parse(args[len(args)-1]); err == nil {
			level = v
		}
	}

	level.SetAsGlobal()

	switch verbosity.Level() {
	case verbosity.Quite:
	case verbosity.Terse:
		fmt.Println("terse message")
	case verbosity.Verbose:
		fmt.Println("overly verbose message for some command")
	}
}
