package app

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/zix/internal/core/domain"
	"go.trai.ch/zix/internal/ui/style"
)

// List shows the profiles, the declared packages of the current profile and,
// when the active environment was built by zix, what is installed and how it
// differs from the manifest.
func (a *App) List(ctx context.Context) error {
	m, err := a.store.Load()
	if err != nil {
		return err
	}
	current := m.CurrentProfile

	a.logger.Info("Current profile: " + current)
	a.blank()

	a.logger.Info("Available profiles:")
	for _, name := range m.ProfileNames() {
		a.printf("%s%s (%d packages)\n", marker(name == current), name, len(m.Profiles[name].Packages))
	}
	a.blank()

	declared := m.Current().Packages
	a.logger.Info(fmt.Sprintf("Manifest packages for '%s':", current))
	a.printPackages(declared)
	if len(declared) == 0 {
		a.printf("  (none)\n")
	}
	a.blank()

	installed := a.inspector.InstalledPackages(ctx)
	if !installed.Available() {
		a.logger.Info("Apply using: zix apply")
		return nil
	}

	names := installed.Names()
	a.logger.Info(fmt.Sprintf("Installed packages (%d):", len(names)))
	a.printPackages(names)
	a.blank()

	a.printDiff(domain.Diff(declared, names))
	return nil
}

func (a *App) printPackages(pkgs []string) {
	for _, pkg := range pkgs {
		a.printf("  %s %s\n", style.Bullet, pkg)
	}
}

func (a *App) printDiff(report domain.SyncReport) {
	if report.InSync() {
		a.logger.Ok("Environment is in sync with manifest")
		return
	}

	a.logger.Warn("Out of sync!")
	if len(report.Missing) > 0 {
		a.printf("  Missing packages: %s\n", strings.Join(report.Missing, ", "))
	}
	if len(report.Extra) > 0 {
		a.printf("  Extra packages: %s\n", strings.Join(report.Extra, ", "))
	}
	a.blank()
	a.logger.Info("Sync using: zix apply")
}
