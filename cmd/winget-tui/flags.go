// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --installed, --upgrades, --search, --sources, --source, --verbose, --version

package main

import "flag"

type cliArgs struct {
	installed bool
	upgrades  bool
	search    string
	sources   bool
	source    string
	view      string
	verbose   bool
	version   bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.BoolVar(&args.installed, "installed", false, "Print installed packages and exit")
	flag.BoolVar(&args.upgrades, "upgrades", false, "Print upgradable packages and exit")
	flag.StringVar(&args.search, "search", "", "Print search results for a query and exit")
	flag.BoolVar(&args.sources, "sources", false, "Print configured sources and exit")
	flag.StringVar(&args.source, "source", "", "Source filter: all, winget, or msstore")
	flag.StringVar(&args.view, "view", "", "Startup tab: installed, upgrades, or search")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging to stderr")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// printMode reports whether any one-shot output flag was given.
func (a cliArgs) printMode() bool {
	return a.installed || a.upgrades || a.search != "" || a.sources
}
