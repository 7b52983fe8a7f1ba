// Package resolver locates the on-disk directory for each installed workload
// manifest. A Resolver is built once from static configuration (manifest
// roots, feature band, known-id ordering, pins) and is immutable afterward;
// resolution itself is a pure query over the current filesystem state.
package resolver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/fbkclanna/workloadq/internal/band"
)

const (
	// ManifestFileName is the descriptor file each manifest directory carries.
	// Pin and fallback resolution require it to exist; bulk scanning does not.
	ManifestFileName = "WorkloadManifest.json"

	// EnvManifestRoots names the lookup key for extra manifest roots,
	// separated by the platform path list separator. They take precedence
	// over every other root, in their given order.
	EnvManifestRoots = "WORKLOADQ_MANIFEST_ROOTS"

	// EnvIgnoreDefaultRoots names the boolean lookup key that suppresses the
	// default install and user roots.
	EnvIgnoreDefaultRoots = "WORKLOADQ_IGNORE_DEFAULT_ROOTS"

	manifestsDirName = "sdk-manifests"
)

// KnownFileNames are the known-id list filenames probed under
// <sdkRoot>/sdk/<sdkVersion>/, in preference order.
var KnownFileNames = []string{
	"KnownWorkloadManifests.txt",
	"IncludedWorkloadManifests.txt",
}

// ErrInvalidArgument marks construction failures caused by bad caller input.
var ErrInvalidArgument = errors.New("invalid argument")

// PinNotFoundError is returned when an explicit pin cannot be located in any
// manifest root. Pins are a strong caller contract, so this is fatal to the
// resolution call.
type PinNotFoundError struct {
	Specifier Specifier
}

func (e *PinNotFoundError) Error() string {
	return fmt.Sprintf("pinned manifest %s not found in any manifest root", e.Specifier)
}

// Specifier is an explicit (id, version, band) pin that bypasses directory
// discovery. A zero Band means the resolver's own band.
type Specifier struct {
	ID      string
	Version string
	Band    band.FeatureBand
}

func (s Specifier) String() string {
	return fmt.Sprintf("%s@%s/%s", s.ID, s.Version, s.Band)
}

// ParseSpecifier parses the "id@version" or "id@version@band" flag form.
func ParseSpecifier(s string) (Specifier, error) {
	parts := strings.Split(s, "@")
	switch len(parts) {
	case 2, 3:
	default:
		return Specifier{}, fmt.Errorf("invalid pin %q: expected id@version or id@version@band", s)
	}
	spec := Specifier{ID: strings.TrimSpace(parts[0]), Version: strings.TrimSpace(parts[1])}
	if spec.ID == "" || spec.Version == "" {
		return Specifier{}, fmt.Errorf("invalid pin %q: id and version are required", s)
	}
	if len(parts) == 3 {
		b, err := band.Parse(parts[2])
		if err != nil {
			return Specifier{}, fmt.Errorf("invalid pin %q: %w", s, err)
		}
		spec.Band = b
	}
	return spec, nil
}

// Resolved is one manifest id mapped to its resolved directory.
type Resolved struct {
	ID  string `json:"id"`
	Dir string `json:"dir"`
}

// Root is a manifest root with the policy step that produced it.
type Root struct {
	Path   string `json:"path"`
	Origin string `json:"origin"` // "env", "config", "user" or "install"
}

// Options configures a Resolver. SdkRoot and SdkVersion are required.
type Options struct {
	// SdkRoot is the SDK installation root.
	SdkRoot string
	// SdkVersion is the full SDK version; its feature band namespaces all
	// manifest lookups.
	SdkVersion string
	// UserHome, when set and when the installation is user-local, contributes
	// the user's sdk-manifests directory ahead of the install one.
	UserHome string
	// ExtraRoots are prepended ahead of the default roots, below the
	// environment-supplied ones.
	ExtraRoots []string
	// IgnoreDefaultRoots suppresses the install and user roots, as does the
	// EnvIgnoreDefaultRoots lookup key.
	IgnoreDefaultRoots bool
	// Pins are explicit version pins. Later entries overwrite earlier ones
	// with the same id, case-insensitively.
	Pins []Specifier
	// Outdated ids are excluded from directory-scan discovery only.
	Outdated []string
	// Lookup supplies environment-style configuration. Nil disables
	// environment overrides entirely.
	Lookup func(string) string
	// Logger receives debug traces of resolution decisions. Nil discards.
	Logger *log.Logger
}

// Resolver resolves workload manifest directories. Safe for concurrent use:
// it holds no mutable state and performs only filesystem reads.
type Resolver struct {
	roots    []Root
	band     band.FeatureBand
	known    KnownOrder
	outdated map[string]struct{}
	pins     []Specifier
	logger   *log.Logger
}

// New builds a Resolver, evaluating the root-list policy and loading the
// known-manifest ordering once.
func New(opts Options) (*Resolver, error) {
	if strings.TrimSpace(opts.SdkRoot) == "" {
		return nil, fmt.Errorf("%w: sdk root must not be empty", ErrInvalidArgument)
	}
	if strings.TrimSpace(opts.SdkVersion) == "" {
		return nil, fmt.Errorf("%w: sdk version must not be empty", ErrInvalidArgument)
	}
	b, err := band.Parse(opts.SdkVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: sdk version: %v", ErrInvalidArgument, err)
	}

	lookup := opts.Lookup
	if lookup == nil {
		lookup = func(string) string { return "" }
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := &Resolver{
		band:     b,
		outdated: foldSet(opts.Outdated),
		logger:   logger,
	}
	r.roots = buildRoots(opts, b, lookup)
	for _, root := range r.roots {
		logger.Debug("manifest root", "path", root.Path, "origin", root.Origin)
	}

	known, err := loadKnownOrder(opts.SdkRoot, opts.SdkVersion, logger)
	if err != nil {
		return nil, err
	}
	r.known = known

	r.pins = normalizePins(opts.Pins, b)

	return r, nil
}

// buildRoots evaluates the root-list construction policy: environment roots
// first, then caller-supplied extra roots, then the user root (user-local
// installs only), then the install root.
func buildRoots(opts Options, b band.FeatureBand, lookup func(string) string) []Root {
	var roots []Root

	if raw := lookup(EnvManifestRoots); raw != "" {
		for _, p := range filepath.SplitList(raw) {
			if p != "" {
				roots = append(roots, Root{Path: p, Origin: "env"})
			}
		}
	}

	for _, p := range opts.ExtraRoots {
		if p != "" {
			roots = append(roots, Root{Path: p, Origin: "config"})
		}
	}

	if opts.IgnoreDefaultRoots || boolish(lookup(EnvIgnoreDefaultRoots)) {
		return roots
	}

	if opts.UserHome != "" && isUserLocal(opts.SdkRoot, b) {
		userRoot := filepath.Join(opts.UserHome, manifestsDirName)
		if dirExists(userRoot) {
			roots = append(roots, Root{Path: userRoot, Origin: "user"})
		}
	}
	roots = append(roots, Root{Path: filepath.Join(opts.SdkRoot, manifestsDirName), Origin: "install"})

	return roots
}

// isUserLocal reports whether the installation carries the user-local marker
// file for the given band.
func isUserLocal(sdkRoot string, b band.FeatureBand) bool {
	return fileExists(filepath.Join(sdkRoot, "metadata", "workloads", b.String(), "userlocal"))
}

// loadKnownOrder reads the known-manifest id list from the SDK's own tree.
// A missing file is not an error: the resolver degrades to pure alphabetical
// ordering.
func loadKnownOrder(sdkRoot, sdkVersion string, logger *log.Logger) (KnownOrder, error) {
	for _, name := range KnownFileNames {
		path := filepath.Join(sdkRoot, "sdk", sdkVersion, name)
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return KnownOrder{}, fmt.Errorf("reading known manifests list %s: %w", path, err)
		}
		defer f.Close()

		var ids []string
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line != "" {
				ids = append(ids, line)
			}
		}
		if err := sc.Err(); err != nil {
			return KnownOrder{}, fmt.Errorf("reading known manifests list %s: %w", path, err)
		}
		logger.Debug("known manifests list loaded", "path", path, "ids", len(ids))
		return NewKnownOrder(ids), nil
	}
	logger.Debug("no known manifests list found", "sdkRoot", sdkRoot, "sdkVersion", sdkVersion)
	return KnownOrder{}, nil
}

// normalizePins deduplicates pins case-insensitively (later entries win) and
// fills zero bands with the resolver's band.
func normalizePins(pins []Specifier, b band.FeatureBand) []Specifier {
	var out []Specifier
	index := make(map[string]int, len(pins))
	for _, p := range pins {
		if p.Band.IsZero() {
			p.Band = b
		}
		key := fold(p.ID)
		if i, ok := index[key]; ok {
			out[i] = p
			continue
		}
		index[key] = len(out)
		out = append(out, p)
	}
	return out
}

// Band returns the resolver's feature band.
func (r *Resolver) Band() band.FeatureBand {
	return r.band
}

// Roots returns the effective manifest roots, highest precedence first.
func (r *Resolver) Roots() []Root {
	out := make([]Root, len(r.roots))
	copy(out, r.roots)
	return out
}

// Known returns the known-manifest ordering, if any.
func (r *Resolver) Known() KnownOrder {
	return r.known
}

// Pins returns the normalized pin list.
func (r *Resolver) Pins() []Specifier {
	out := make([]Specifier, len(r.pins))
	copy(out, r.pins)
	return out
}

// fold canonicalizes manifest ids for case-insensitive map keys and ordinal
// case-insensitive comparison.
func fold(id string) string {
	return strings.ToLower(id)
}

func foldSet(ids []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			m[fold(id)] = struct{}{}
		}
	}
	return m
}

func boolish(s string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && v
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
