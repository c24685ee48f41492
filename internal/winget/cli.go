// ABOUTME: Production Backend adapter invoking the winget executable
// ABOUTME: Builds subcommand argv, applies exit policy, feeds output to parsers

package winget

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/shanselman/winget-tui/internal/log"
)

// runFunc executes winget with args and returns captured stdout/stderr and
// the exit code. A start failure (executable missing) returns a non-nil err.
type runFunc func(ctx context.Context, args []string) (stdout, stderr []byte, exitCode int, err error)

// CLI is the production Backend over the winget executable.
type CLI struct {
	run runFunc
}

// NewCLI returns a Backend that shells out to winget.
func NewCLI() *CLI {
	return &CLI{run: runWinget}
}

// runWinget invokes the real executable. Output is captured whole: winget is
// non-interactive under --accept-source-agreements and its progress noise is
// resolved later by the normalizer.
func runWinget(ctx context.Context, args []string) ([]byte, []byte, int, error) {
	cmd := exec.CommandContext(ctx, "winget", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.Bytes(), stderr.Bytes(), exitErr.ExitCode(), nil
		}
		return nil, nil, -1, err
	}
	return stdout.Bytes(), stderr.Bytes(), 0, nil
}

// invoke runs winget and resolves the output under the given exit policy.
func (c *CLI) invoke(ctx context.Context, policy ExitPolicy, args ...string) (string, error) {
	log.Debug("winget %v", args)
	stdout, stderr, code, err := c.run(ctx, args)
	if err != nil {
		return "", &ProcessFailure{ExitCode: -1, Message: "failed to run winget: " + err.Error() + ". Is it installed?"}
	}
	return Resolve(stdout, stderr, code, policy)
}

func withSource(args []string, source SourceFilter) []string {
	if s := source.Arg(); s != "" {
		args = append(args, "--source", s)
	}
	return args
}

// Search implements Backend.
func (c *CLI) Search(ctx context.Context, query string, source SourceFilter) ([]Package, error) {
	args := withSource([]string{"search", query, "--accept-source-agreements"}, source)
	out, err := c.invoke(ctx, ExitLenient, args...)
	if err != nil {
		return nil, err
	}
	return ParseTable(out), nil
}

// ListInstalled implements Backend.
func (c *CLI) ListInstalled(ctx context.Context, source SourceFilter) ([]Package, error) {
	args := withSource([]string{"list", "--accept-source-agreements"}, source)
	out, err := c.invoke(ctx, ExitLenient, args...)
	if err != nil {
		return nil, err
	}
	return ParseTable(out), nil
}

// ListUpgrades implements Backend.
func (c *CLI) ListUpgrades(ctx context.Context, source SourceFilter) ([]Package, error) {
	args := withSource([]string{"upgrade", "--accept-source-agreements"}, source)
	out, err := c.invoke(ctx, ExitLenient, args...)
	if err != nil {
		return nil, err
	}
	return ParseTable(out), nil
}

// Show implements Backend.
func (c *CLI) Show(ctx context.Context, id string) (PackageDetail, error) {
	out, err := c.invoke(ctx, ExitLenient,
		"show", "--id", id, "--exact", "--accept-source-agreements")
	if err != nil {
		return PackageDetail{}, err
	}
	return ParseDetail(out), nil
}

// Install implements Backend.
func (c *CLI) Install(ctx context.Context, id, version string) (string, error) {
	args := []string{"install", "--id", id,
		"--accept-source-agreements", "--accept-package-agreements"}
	if version != "" {
		args = append(args, "--version", version)
	}
	return c.invoke(ctx, ExitStrict, args...)
}

// Uninstall implements Backend.
func (c *CLI) Uninstall(ctx context.Context, id string) (string, error) {
	return c.invoke(ctx, ExitStrict,
		"uninstall", "--id", id, "--accept-source-agreements")
}

// Upgrade implements Backend.
func (c *CLI) Upgrade(ctx context.Context, id string) (string, error) {
	return c.invoke(ctx, ExitStrict,
		"upgrade", "--id", id,
		"--accept-source-agreements", "--accept-package-agreements")
}

// ListSources implements Backend.
func (c *CLI) ListSources(ctx context.Context) ([]Source, error) {
	out, err := c.invoke(ctx, ExitLenient, "source", "list")
	if err != nil {
		return nil, err
	}
	return ParseSources(out), nil
}
