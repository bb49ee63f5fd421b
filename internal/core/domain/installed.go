package domain

import "slices"

// InstalledSet is the result of querying the active Nix environment.
// An unavailable set (no zix environment, or the query failed) is distinct from an
// available but empty one.
type InstalledSet struct {
	names     []string
	available bool
}

// Unavailable returns an InstalledSet signalling that the installed packages are unknown.
func Unavailable() InstalledSet {
	return InstalledSet{}
}

// NewInstalledSet returns an available set holding the given names, sorted and deduplicated.
func NewInstalledSet(names []string) InstalledSet {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	return InstalledSet{names: slices.Compact(sorted), available: true}
}

// Available reports whether the installed packages could be determined.
func (s InstalledSet) Available() bool {
	return s.available
}

// Names returns the installed package names in lexicographic order.
func (s InstalledSet) Names() []string {
	return slices.Clone(s.names)
}

// SyncReport describes how the declared packages differ from the installed ones.
type SyncReport struct {
	// Missing are declared but not installed.
	Missing []string
	// Extra are installed but not declared.
	Extra []string
}

// InSync reports whether declared and installed packages are the same set.
func (r SyncReport) InSync() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0
}

// Diff compares declared and installed package names. Both result lists are sorted.
func Diff(declared, installed []string) SyncReport {
	return SyncReport{
		Missing: difference(declared, installed),
		Extra:   difference(installed, declared),
	}
}

func difference(a, b []string) []string {
	out := []string{}
	for _, name := range a {
		if !slices.Contains(b, name) && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}
