// ABOUTME: One-shot plain text output for non-interactive use (pipes, scripts)
// ABOUTME: Renders aligned tables; the summary fetches its lists concurrently

package print

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/shanselman/winget-tui/internal/winget"
	"github.com/shanselman/winget-tui/pkg/tui/width"
)

// Options wires a print-mode run.
type Options struct {
	Backend winget.Backend
	Out     io.Writer
	Source  winget.SourceFilter
}

// Installed prints the installed package table.
func Installed(ctx context.Context, opts Options) error {
	pkgs, err := opts.Backend.ListInstalled(ctx, opts.Source)
	if err != nil {
		return err
	}
	return writeTable(opts.Out, pkgs, false)
}

// Upgrades prints the packages with an available upgrade.
func Upgrades(ctx context.Context, opts Options) error {
	pkgs, err := opts.Backend.ListUpgrades(ctx, opts.Source)
	if err != nil {
		return err
	}
	return writeTable(opts.Out, pkgs, true)
}

// Search prints remote search results for query.
func Search(ctx context.Context, opts Options, query string) error {
	pkgs, err := opts.Backend.Search(ctx, query, opts.Source)
	if err != nil {
		return err
	}
	return writeTable(opts.Out, pkgs, false)
}

// Sources prints the configured winget sources.
func Sources(ctx context.Context, opts Options) error {
	sources, err := opts.Backend.ListSources(ctx)
	if err != nil {
		return err
	}
	nameW := width.String("Name")
	for _, s := range sources {
		if w := width.String(s.Name); w > nameW {
			nameW = w
		}
	}
	fmt.Fprintln(opts.Out, width.Pad("Name", nameW+2)+"Argument")
	for _, s := range sources {
		fmt.Fprintln(opts.Out, width.Pad(s.Name, nameW+2)+s.URL)
	}
	return nil
}

// Summary prints installed and upgradable counts plus the upgrade table.
// The two lists are independent, so they are fetched concurrently.
func Summary(ctx context.Context, opts Options) error {
	var installed, upgrades []winget.Package

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		installed, err = opts.Backend.ListInstalled(gctx, opts.Source)
		return err
	})
	g.Go(func() error {
		var err error
		upgrades, err = opts.Backend.ListUpgrades(gctx, opts.Source)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(opts.Out, "%d packages installed, %d upgradable\n", len(installed), len(upgrades))
	if len(upgrades) == 0 {
		return nil
	}
	fmt.Fprintln(opts.Out)
	return writeTable(opts.Out, upgrades, true)
}

// writeTable renders packages as an aligned table. Column widths follow the
// content; alignment is by display width, not byte length.
func writeTable(out io.Writer, pkgs []winget.Package, showAvailable bool) error {
	if len(pkgs) == 0 {
		_, err := fmt.Fprintln(out, "no packages")
		return err
	}

	headers := []string{"Name", "Id", "Version"}
	if showAvailable {
		headers = append(headers, "Available")
	}
	headers = append(headers, "Source")

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = width.String(h)
	}
	rows := make([][]string, 0, len(pkgs))
	for _, p := range pkgs {
		row := []string{p.Name, p.ID, p.Version}
		if showAvailable {
			row = append(row, p.Available)
		}
		row = append(row, p.Source)
		for i, cell := range row {
			if w := width.String(cell); w > widths[i] {
				widths[i] = w
			}
		}
		rows = append(rows, row)
	}

	writeRow := func(cells []string) error {
		line := ""
		for i, cell := range cells {
			if i == len(cells)-1 {
				line += cell
			} else {
				line += width.Pad(cell, widths[i]+2)
			}
		}
		_, err := fmt.Fprintln(out, line)
		return err
	}

	if err := writeRow(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}
	return nil
}
