package nix

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/zerr"
	"go.trai.ch/zix/internal/core/domain"
	"go.trai.ch/zix/internal/core/ports"
)

var (
	storeNamePattern = regexp.MustCompile(`/nix/store/[^/]+-([a-zA-Z0-9._+-]+?)-[\d.]+(?:-|$)`)
	hashPrefix       = regexp.MustCompile(`^[^-]+-`)
	versionSuffix    = regexp.MustCompile(`-[0-9][^-]*$`)
)

// ProfileInspector implements ports.ProfileInspector by reading the derivation
// behind the active Nix profile.
type ProfileInspector struct {
	executor ports.Executor
	log      ports.Logger
	link     string
	marker   string
	nix      string
	nixStore string
}

// NewProfileInspector creates a ProfileInspector for the layout described by cfg.
func NewProfileInspector(cfg *domain.Config, executor ports.Executor, log ports.Logger) *ProfileInspector {
	return &ProfileInspector{
		executor: executor,
		log:      log,
		link:     cfg.ProfileLink,
		marker:   cfg.ProfileMarker,
		nix:      cfg.NixBinary,
		nixStore: cfg.NixStoreBinary,
	}
}

// InstalledPackages reports the packages of the active environment. Every
// failure is logged and yields domain.Unavailable().
func (p *ProfileInspector) InstalledPackages(ctx context.Context) domain.InstalledSet {
	resolved, err := filepath.EvalSymlinks(p.link)
	if err != nil || resolved == "" {
		p.log.Info("No nix environment currently active")
		return domain.Unavailable()
	}

	p.log.Info("Current environment: " + filepath.Base(resolved))

	if !strings.Contains(resolved, p.marker) {
		p.log.Info("Not a zix environment")
		return domain.Unavailable()
	}

	names, err := p.query(ctx, resolved)
	if err != nil {
		p.log.Warn(domain.ErrProfileQueryFailed.Error() + ": " + err.Error())
		return domain.Unavailable()
	}

	return domain.NewInstalledSet(names)
}

func (p *ProfileInspector) query(ctx context.Context, envPath string) ([]string, error) {
	out, err := p.executor.Output(ctx, domain.Command{
		Name: p.nixStore,
		Args: []string{"--query", "--deriver", envPath},
	})
	if err != nil {
		return nil, err
	}

	drv := strings.TrimSpace(string(out))
	if drv == "" || drv == "unknown-deriver" {
		return nil, zerr.With(errors.New("no deriver recorded"), "path", envPath)
	}

	show, err := p.executor.Output(ctx, domain.Command{
		Name: p.nix,
		Args: []string{"derivation", "show", drv},
	})
	if err != nil {
		return nil, err
	}

	if names := ExtractStoreNames(string(show)); len(names) > 0 {
		return names, nil
	}

	return ParseDerivationPackages(show)
}

// ExtractStoreNames applies the store-path name pattern to raw derivation text.
func ExtractStoreNames(text string) []string {
	matches := storeNamePattern.FindAllStringSubmatch(text, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// derivation is the part of "nix derivation show" output zix reads.
type derivation struct {
	Env map[string]any `json:"env"`
}

type buildEnvEntry struct {
	Paths []string `json:"paths"`
}

// ParseDerivationPackages reads the buildEnv package list from the first
// derivation in the document and derives bare package names from its paths.
func ParseDerivationPackages(data []byte) ([]string, error) {
	drv, err := firstDerivation(data)
	if err != nil {
		return nil, err
	}

	rawPkgs, ok := drv.Env["pkgs"].(string)
	if !ok {
		return nil, errors.New("derivation has no env.pkgs")
	}

	var entries []buildEnvEntry
	if err := json.Unmarshal([]byte(rawPkgs), &entries); err != nil {
		return nil, zerr.Wrap(err, "failed to decode env.pkgs")
	}

	var names []string
	for _, entry := range entries {
		for _, path := range entry.Paths {
			name := hashPrefix.ReplaceAllString(filepath.Base(path), "")
			names = append(names, versionSuffix.ReplaceAllString(name, ""))
		}
	}
	return names, nil
}

// firstDerivation decodes the value of the first key of the top-level object,
// preserving document order.
func firstDerivation(data []byte) (*derivation, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to decode derivation")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("derivation output is not an object")
	}
	if !dec.More() {
		return nil, errors.New("derivation output is empty")
	}
	if _, err := dec.Token(); err != nil {
		return nil, zerr.Wrap(err, "failed to decode derivation")
	}

	var drv derivation
	if err := dec.Decode(&drv); err != nil {
		return nil, zerr.Wrap(err, "failed to decode derivation")
	}
	return &drv, nil
}
