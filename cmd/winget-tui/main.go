// ABOUTME: CLI entry point for winget-tui
// ABOUTME: Parses flags, loads config, dispatches to interactive or print mode

package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/shanselman/winget-tui/internal/config"
	wlog "github.com/shanselman/winget-tui/internal/log"
	"github.com/shanselman/winget-tui/internal/mode/interactive"
	"github.com/shanselman/winget-tui/internal/mode/print"
	"github.com/shanselman/winget-tui/internal/winget"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("winget-tui %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration and dispatches to the selected mode.
func run(args cliArgs) error {
	settings, err := config.Load(config.SettingsFile())
	if err != nil {
		return err
	}

	if args.verbose || settings.Verbose {
		wlog.SetLevel(wlog.LevelDebug)
	}

	// User locale tables extend the built-in parser tables additively.
	winget.ExtendColumnAliases(settings.Locale.Columns)
	winget.ExtendDetailAliases(settings.Locale.DetailKeys)

	source, err := resolveSource(args, settings)
	if err != nil {
		return err
	}

	backend := winget.NewCLI()

	// One-shot flags, or stdout not being a terminal, select print mode.
	if args.printMode() || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runPrint(args, backend, source)
	}

	keys, err := config.LoadKeybindings(config.KeybindingsFile())
	if err != nil {
		return err
	}

	// Stderr writes would corrupt the alternate screen, so verbose logging
	// goes to a file for the duration of the interactive session.
	if wlog.GetLevel() <= wlog.LevelDebug {
		if f, err := openLogFile(); err == nil {
			prev := wlog.SetOutput(f)
			defer func() {
				wlog.SetOutput(prev)
				f.Close()
			}()
		}
	}

	tab, err := resolveTab(args, settings)
	if err != nil {
		return err
	}

	return interactive.Run(interactive.Deps{
		Backend: backend,
		Keys:    keys,
		Tab:     tab,
		Source:  source,
	})
}

func openLogFile() (*os.File, error) {
	if err := os.MkdirAll(config.Dir(), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(config.LogFile(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func runPrint(args cliArgs, backend winget.Backend, source winget.SourceFilter) error {
	ctx := context.Background()
	opts := print.Options{Backend: backend, Out: os.Stdout, Source: source}

	switch {
	case args.installed:
		return print.Installed(ctx, opts)
	case args.upgrades:
		return print.Upgrades(ctx, opts)
	case args.search != "":
		return print.Search(ctx, opts, args.search)
	case args.sources:
		return print.Sources(ctx, opts)
	default:
		return print.Summary(ctx, opts)
	}
}

// resolveSource applies the flag over the configured default.
func resolveSource(args cliArgs, settings *config.Settings) (winget.SourceFilter, error) {
	value := settings.DefaultSource
	if args.source != "" {
		value = args.source
	}
	return winget.ParseSourceFilter(value)
}

// resolveTab applies the flag over the configured default view.
func resolveTab(args cliArgs, settings *config.Settings) (interactive.Tab, error) {
	value := settings.DefaultView
	if args.view != "" {
		value = args.view
	}
	switch value {
	case "", "installed":
		return interactive.TabInstalled, nil
	case "upgrades":
		return interactive.TabUpgrades, nil
	case "search":
		return interactive.TabSearch, nil
	}
	return interactive.TabInstalled, fmt.Errorf("unknown view %q (want installed, upgrades, or search)", value)
}
