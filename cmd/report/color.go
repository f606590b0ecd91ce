package main

import (
	"fmt"
	"log"

	"github.com/puellanivis/verbosity"
)

func withColor(color, context string, a []any) string {
	var prefix, msg string = "", context

	if len(a) > 0 {
		if context != "" {
			prefix = context + ": "
		}
		msg = fmt.Sprint(a...)
	}

	if !colorize {
		return prefix + msg
	}

	return prefix + "\x1b[0;" + color + ";1m" + msg + "\x1b[m"
}

// Verbose prints a message in white on black, only at the verbose level.
func Verbose(context string, a ...any) {
	if verbosity.IsVerbose() {
		log.Print(withColor("37", context, a))
	}
}

// OK prints a message in green on black, unless reporting is quite.
func OK(context string, a ...any) {
	if verbosity.IsTerse() {
		log.Print(withColor("92", context, a))
	}
}

// Info prints a message in blue on black, unless reporting is quite.
func Info(context string, a ...any) {
	if verbosity.IsTerse() {
		log.Print(withColor("94", context, a))
	}
}

// Error prints a message in red on black, at any level.
func Error(context any, a ...any) {
	log.Print(withColor("91", fmt.Sprint(context), a))
}
