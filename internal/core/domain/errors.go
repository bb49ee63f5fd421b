package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidPackageName is returned when a package name is empty or contains characters
	// outside [A-Za-z0-9_.+-].
	ErrInvalidPackageName = zerr.New("package name must match [A-Za-z0-9_.+-] (no spaces)")

	// ErrEmptyProfileName is returned when a profile name is empty.
	ErrEmptyProfileName = zerr.New("profile name cannot be empty")

	// ErrPackageExists is returned when adding a package that is already part of a profile.
	ErrPackageExists = zerr.New("package already present in profile")

	// ErrPackageNotFound is returned when removing a package that is not part of a profile.
	ErrPackageNotFound = zerr.New("package not in profile")

	// ErrProfileExists is returned when creating a profile that already exists.
	ErrProfileExists = zerr.New("profile already exists")

	// ErrProfileNotFound is returned when a profile does not exist in the manifest.
	ErrProfileNotFound = zerr.New("profile does not exist")

	// ErrDefaultProfileProtected is returned when attempting to remove the default profile.
	ErrDefaultProfileProtected = zerr.New("cannot remove the default profile")

	// ErrManifestInvalid is returned when normalization finds content it cannot repair.
	// It is fatal: persisting the document would make it inconsistent.
	ErrManifestInvalid = zerr.New("manifest validation error")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestDecodeFailed is returned when the manifest file is not a JSON object.
	ErrManifestDecodeFailed = zerr.New("failed to decode manifest")

	// ErrManifestMarshalFailed is returned when the manifest cannot be marshaled.
	ErrManifestMarshalFailed = zerr.New("failed to marshal manifest")

	// ErrManifestWriteFailed is returned when the manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrManifestLockFailed is returned when the advisory manifest lock cannot be acquired.
	ErrManifestLockFailed = zerr.New("failed to lock manifest")

	// ErrConfigDirFailed is returned when the configuration directory cannot be determined or created.
	ErrConfigDirFailed = zerr.New("failed to prepare configuration directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrFlakeWriteFailed is returned when the flake cannot be written.
	ErrFlakeWriteFailed = zerr.New("failed to write flake")

	// ErrSymlinkFailed is returned when the packages.json symlink cannot be maintained.
	ErrSymlinkFailed = zerr.New("failed to update packages.json symlink")

	// ErrCommandNotFound is returned when an external command binary cannot be found.
	ErrCommandNotFound = zerr.New("command not found")

	// ErrCommandStartFailed is returned when an external command cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrProfileQueryFailed is returned when installed packages cannot be queried.
	ErrProfileQueryFailed = zerr.New("could not query installed packages")
)

// ExitCodeNotFound is the conventional shell exit code for a missing command.
const ExitCodeNotFound = 127

// ExitError reports a non-zero exit of an external command.
// The process exit code of zix mirrors Code.
type ExitError struct {
	Command string
	Code    int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("command failed (exit %d): %s", e.Code, e.Command)
}
