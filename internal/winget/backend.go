// ABOUTME: Backend interface abstracting the winget tool for the UI layers
// ABOUTME: One production CLI adapter; tests substitute a fake implementation

package winget

import "context"

// Backend is the capability set the UI consumes. Every operation may fail
// with a textual error; list results may legitimately be empty.
type Backend interface {
	// Search queries remote sources for packages matching query.
	Search(ctx context.Context, query string, source SourceFilter) ([]Package, error)

	// ListInstalled lists installed packages.
	ListInstalled(ctx context.Context, source SourceFilter) ([]Package, error)

	// ListUpgrades lists installed packages with an available upgrade.
	ListUpgrades(ctx context.Context, source SourceFilter) ([]Package, error)

	// Show fetches detailed info for one package ID.
	Show(ctx context.Context, id string) (PackageDetail, error)

	// Install installs a package, optionally pinning a version.
	Install(ctx context.Context, id, version string) (string, error)

	// Uninstall removes a package.
	Uninstall(ctx context.Context, id string) (string, error)

	// Upgrade upgrades a single package.
	Upgrade(ctx context.Context, id string) (string, error)

	// ListSources lists configured winget sources.
	ListSources(ctx context.Context) ([]Source, error)
}
