package app

import (
	"errors"
	"fmt"

	"go.trai.ch/zix/internal/core/domain"
)

// AddPackages adds each package to the current profile. A rejected package
// is reported and the remaining ones are still processed.
func (a *App) AddPackages(pkgs []string) error {
	for _, pkg := range pkgs {
		if err := a.addPackage(pkg); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) addPackage(pkg string) error {
	if err := domain.ValidatePackageName(pkg); err != nil {
		a.logger.Error(err)
		return nil
	}

	var profile string
	err := a.store.Update(func(m *domain.Manifest) error {
		profile = m.CurrentProfile
		return m.AddPackage(profile, pkg)
	})

	switch {
	case err == nil:
		a.logger.Ok(fmt.Sprintf("Added %s to profile '%s'.", pkg, profile))
	case errors.Is(err, domain.ErrPackageExists):
		a.logger.Warn(fmt.Sprintf("%s already present in profile '%s'.", pkg, profile))
	default:
		return err
	}
	return nil
}

// RemovePackages removes each package from the current profile.
func (a *App) RemovePackages(pkgs []string) error {
	for _, pkg := range pkgs {
		if err := a.removePackage(pkg); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) removePackage(pkg string) error {
	var profile string
	err := a.store.Update(func(m *domain.Manifest) error {
		profile = m.CurrentProfile
		return m.RemovePackage(profile, pkg)
	})

	switch {
	case err == nil:
		a.logger.Ok(fmt.Sprintf("Removed %s from profile '%s'.", pkg, profile))
	case errors.Is(err, domain.ErrPackageNotFound):
		a.logger.Warn(fmt.Sprintf("%s not in profile '%s'.", pkg, profile))
	default:
		return err
	}
	return nil
}
