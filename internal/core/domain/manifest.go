// Package domain contains the core domain models of zix: the manifest, its profiles
// and the rules that keep them consistent.
package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// DefaultProfile is the name of the profile that always exists and can never be removed.
const DefaultProfile = "default"

// Profile is a named set of package attribute names.
type Profile struct {
	Packages []string `json:"packages"`
}

// Manifest is the persisted document describing all profiles and the active one.
type Manifest struct {
	CurrentProfile string              `json:"current_profile"`
	Profiles       map[string]*Profile `json:"profiles"`
}

// NewManifest returns the canonical empty manifest: one empty default profile, which is current.
func NewManifest() *Manifest {
	return &Manifest{
		CurrentProfile: DefaultProfile,
		Profiles: map[string]*Profile{
			DefaultProfile: {Packages: []string{}},
		},
	}
}

// Clone returns a deep copy of the manifest.
func (m *Manifest) Clone() *Manifest {
	c := &Manifest{
		CurrentProfile: m.CurrentProfile,
		Profiles:       make(map[string]*Profile, len(m.Profiles)),
	}
	for name, p := range m.Profiles {
		if p == nil {
			c.Profiles[name] = nil
			continue
		}
		c.Profiles[name] = &Profile{Packages: slices.Clone(p.Packages)}
	}
	return c
}

// Current returns the active profile.
func (m *Manifest) Current() *Profile {
	return m.Profiles[m.CurrentProfile]
}

// ProfileNames returns the profile names in lexicographic order.
func (m *Manifest) ProfileNames() []string {
	return slices.Sorted(maps.Keys(m.Profiles))
}

// HasProfile reports whether a profile with the given name exists.
func (m *Manifest) HasProfile(name string) bool {
	_, ok := m.Profiles[name]
	return ok
}

// Normalize repairs the manifest in place so that every invariant holds:
// the default profile exists, no profile has an empty name, package lists are
// trimmed, deduplicated and sorted, and the current profile names an existing profile.
// It returns the warnings produced while repairing. A package entry that is not a valid
// name makes the manifest invalid and is reported as ErrManifestInvalid.
func (m *Manifest) Normalize() ([]string, error) {
	if m.Profiles == nil {
		m.Profiles = make(map[string]*Profile)
	}

	var warnings []string
	for name, p := range m.Profiles {
		if name == "" {
			warnings = append(warnings, emptyProfileWarning)
			delete(m.Profiles, name)
			continue
		}
		var raw []string
		if p != nil {
			raw = p.Packages
		}
		pkgs, err := cleanPackages(name, raw)
		if err != nil {
			return nil, err
		}
		m.Profiles[name] = &Profile{Packages: pkgs}
	}

	if _, ok := m.Profiles[DefaultProfile]; !ok {
		m.Profiles[DefaultProfile] = &Profile{Packages: []string{}}
	}

	if _, ok := m.Profiles[m.CurrentProfile]; !ok {
		warnings = append(warnings, currentProfileWarning(m.CurrentProfile))
		m.CurrentProfile = DefaultProfile
	}

	return warnings, nil
}

// Normalize builds a manifest from a raw decoded JSON document, enforcing every invariant.
//
// Missing keys are added, a profile that is not an object or whose packages field is not an
// array becomes empty, non-string and blank entries are dropped, a profile with an empty
// name is dropped, and an unknown current profile is reset to default with a warning. The transformation is idempotent.
//
// It fails with ErrManifestInvalid when profiles is not an object or a package entry is not
// a valid package name.
func Normalize(doc map[string]any) (*Manifest, []string, error) {
	m := &Manifest{
		CurrentProfile: DefaultProfile,
		Profiles:       make(map[string]*Profile),
	}

	var warnings []string
	if rawProfiles, ok := doc["profiles"]; ok && rawProfiles != nil {
		profiles, isObject := rawProfiles.(map[string]any)
		if !isObject {
			return nil, nil, zerr.Wrap(ErrManifestInvalid, "profiles must be an object")
		}
		for name, rawProfile := range profiles {
			if name == "" {
				warnings = append(warnings, emptyProfileWarning)
				continue
			}
			pkgs, err := cleanPackages(name, rawPackageStrings(rawProfile))
			if err != nil {
				return nil, nil, err
			}
			m.Profiles[name] = &Profile{Packages: pkgs}
		}
	}

	if _, ok := m.Profiles[DefaultProfile]; !ok {
		m.Profiles[DefaultProfile] = &Profile{Packages: []string{}}
	}

	if rawCurrent, ok := doc["current_profile"]; ok {
		current, isString := rawCurrent.(string)
		switch {
		case !isString:
			warnings = append(warnings, currentProfileWarning(fmt.Sprint(rawCurrent)))
		case !m.HasProfile(current):
			warnings = append(warnings, currentProfileWarning(current))
		default:
			m.CurrentProfile = current
		}
	}

	return m, warnings, nil
}

// rawPackageStrings extracts the string entries of a raw profile's packages array.
// Anything that is not shaped like {"packages": [...]} yields no entries.
func rawPackageStrings(rawProfile any) []string {
	profile, ok := rawProfile.(map[string]any)
	if !ok {
		return nil
	}
	items, ok := profile["packages"].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, isString := item.(string); isString {
			out = append(out, s)
		}
	}
	return out
}

func cleanPackages(profile string, raw []string) ([]string, error) {
	cleaned := make([]string, 0, len(raw))
	for _, p := range raw {
		s := strings.TrimSpace(p)
		if s == "" {
			continue
		}
		if err := ValidatePackageName(s); err != nil {
			return nil, zerr.Wrap(
				zerr.Wrap(ErrManifestInvalid, fmt.Sprintf("profile %q", profile)),
				err.Error(),
			)
		}
		cleaned = append(cleaned, s)
	}
	slices.Sort(cleaned)
	return slices.Compact(cleaned), nil
}

const emptyProfileWarning = "Dropped a profile with an empty name"

func currentProfileWarning(name string) string {
	return fmt.Sprintf("Current profile '%s' doesn't exist, switching to '%s'", name, DefaultProfile)
}

// AddPackage adds pkg to the named profile.
func (m *Manifest) AddPackage(profile, pkg string) error {
	if err := ValidatePackageName(pkg); err != nil {
		return err
	}
	p, ok := m.Profiles[profile]
	if !ok {
		return ErrProfileNotFound
	}
	if slices.Contains(p.Packages, pkg) {
		return ErrPackageExists
	}
	p.Packages = append(p.Packages, pkg)
	slices.Sort(p.Packages)
	return nil
}

// RemovePackage removes pkg from the named profile.
func (m *Manifest) RemovePackage(profile, pkg string) error {
	p, ok := m.Profiles[profile]
	if !ok {
		return ErrProfileNotFound
	}
	idx := slices.Index(p.Packages, pkg)
	if idx < 0 {
		return ErrPackageNotFound
	}
	p.Packages = slices.Delete(p.Packages, idx, idx+1)
	return nil
}

// CreateProfile adds a new empty profile.
func (m *Manifest) CreateProfile(name string) error {
	if name == "" {
		return ErrEmptyProfileName
	}
	if m.HasProfile(name) {
		return ErrProfileExists
	}
	m.Profiles[name] = &Profile{Packages: []string{}}
	return nil
}

// SwitchProfile makes the named profile current.
func (m *Manifest) SwitchProfile(name string) error {
	if !m.HasProfile(name) {
		return ErrProfileNotFound
	}
	m.CurrentProfile = name
	return nil
}

// RemoveProfile deletes the named profile. The default profile is protected.
// When the removed profile is current, the manifest switches to default first and
// switched is true.
func (m *Manifest) RemoveProfile(name string) (switched bool, err error) {
	if name == DefaultProfile {
		return false, ErrDefaultProfileProtected
	}
	if !m.HasProfile(name) {
		return false, ErrProfileNotFound
	}
	if m.CurrentProfile == name {
		m.CurrentProfile = DefaultProfile
		switched = true
	}
	delete(m.Profiles, name)
	return switched, nil
}
