package app

import (
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/zix/internal/core/domain"
	"go.trai.ch/zix/internal/ui/style"
)

// CreateProfile adds an empty profile.
func (a *App) CreateProfile(name string) error {
	err := a.store.Update(func(m *domain.Manifest) error {
		return m.CreateProfile(name)
	})

	switch {
	case err == nil:
		a.logger.Ok(fmt.Sprintf("Created profile '%s'.", name))
	case errors.Is(err, domain.ErrEmptyProfileName):
		a.report("Profile name cannot be empty")
	case errors.Is(err, domain.ErrProfileExists):
		a.logger.Warn(fmt.Sprintf("Profile '%s' already exists.", name))
	default:
		return err
	}
	return nil
}

// SwitchProfile makes name the current profile.
func (a *App) SwitchProfile(name string) error {
	var available []string
	err := a.store.Update(func(m *domain.Manifest) error {
		available = m.ProfileNames()
		return m.SwitchProfile(name)
	})

	switch {
	case err == nil:
		a.logger.Ok(fmt.Sprintf("Switched to profile '%s'.", name))
		a.logger.Info("Run 'zix apply' to install packages for this profile.")
	case errors.Is(err, domain.ErrProfileNotFound):
		a.report("Profile '%s' does not exist.", name)
		a.logger.Info("Available profiles: " + strings.Join(available, ", "))
		a.logger.Info("Create it with: zix profile create " + name)
	default:
		return err
	}
	return nil
}

// RemoveProfile deletes a profile. The default profile is protected and
// removing the current profile switches to default first.
func (a *App) RemoveProfile(name string) error {
	if name == domain.DefaultProfile {
		a.report("Cannot remove the default profile.")
		return nil
	}

	var switched bool
	err := a.store.Update(func(m *domain.Manifest) error {
		var err error
		switched, err = m.RemoveProfile(name)
		return err
	})

	switch {
	case err == nil:
		if switched {
			a.logger.Info(fmt.Sprintf("Switched to default profile before removing '%s'.", name))
		}
		a.logger.Ok(fmt.Sprintf("Removed profile '%s'.", name))
	case errors.Is(err, domain.ErrDefaultProfileProtected):
		a.report("Cannot remove the default profile.")
	case errors.Is(err, domain.ErrProfileNotFound):
		a.report("Profile '%s' does not exist.", name)
	default:
		return err
	}
	return nil
}

// ListProfiles prints every profile with its packages.
func (a *App) ListProfiles() error {
	m, err := a.store.Load()
	if err != nil {
		return err
	}

	a.logger.Info("Current profile: " + m.CurrentProfile)
	a.blank()

	for _, name := range m.ProfileNames() {
		a.printf("%s%s:\n", marker(name == m.CurrentProfile), name)
		pkgs := m.Profiles[name].Packages
		for _, pkg := range pkgs {
			a.printf("      %s %s\n", style.Bullet, pkg)
		}
		if len(pkgs) == 0 {
			a.printf("      (empty)\n")
		}
		a.blank()
	}
	return nil
}

func marker(current bool) string {
	if current {
		return " " + style.Current + " "
	}
	return "   "
}
