package domain

import (
	"fmt"
	"regexp"

	"go.trai.ch/zerr"
)

var validPackageNameRegex = regexp.MustCompile(`^[A-Za-z0-9_.+-]+$`)

// ValidatePackageName checks that name is a non-empty Nix attribute name made only of
// alphanumerics, '.', '_', '+' and '-'.
func ValidatePackageName(name string) error {
	if !validPackageNameRegex.MatchString(name) {
		return zerr.Wrap(ErrInvalidPackageName, fmt.Sprintf("invalid package name %q", name))
	}
	return nil
}
