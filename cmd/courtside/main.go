package main

import (
	"flag"
	"fmt"
	"os"

	"courtside/internal/cli"
	"courtside/internal/page"
	"courtside/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	groupByStatus := flag.Bool("group", false, "group output by live/upcoming/completed")
	theme := flag.String("theme", "classic", "output theme: classic|neon|mono")
	noColor := flag.Bool("no-color", false, "disable ANSI colors")
	debug := flag.Bool("debug", false, "print the startup trace to stderr")
	flag.Parse()

	ui.SetTheme(*theme)
	if *noColor {
		ui.SetColorForcing(false, true)
	}
	if *debug {
		page.Trace = ui.Trace
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Group: *groupByStatus,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
