package main

import (
	"log"

	flag "github.com/puellanivis/breton/lib/gnuflag"

	"github.com/puellanivis/verbosity"
)

var (
	level    = verbosity.Quite
	colorize bool
)

func init() {
	flag.BoolFunc("quite", "no reporting", func() { level = verbosity.Quite })
	flag.BoolFunc("terse", "minimal reporting", func() { level = verbosity.Terse })
	flag.BoolFunc("verbose", "extended reporting", func() { level = verbosity.Verbose })
	flag.BoolFunc("color", "colorize reporting", func() { colorize = true })
}

func main() {
	log.SetFlags(0)

	flag.Parse()

	if args := flag.Args(); len(args) > 0 {
		v, err := verbosity.Parse(args[len(args)-1])
		if err != nil {
			Error("report", err)
			v = verbosity.Quite
		}

		level = v
	}

	level.SetAsGlobal()

	Info("report", "level: ", verbosity.Level())
	OK("report", "terse message")
	Verbose("report", "overly verbose message for some command")
}
