package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/fbkclanna/workloadq/internal/band"
)

// GetManifestDirectories resolves one directory per installed manifest id,
// in known-order rank then case-insensitive alphabetical order.
//
// Resolution runs in four phases: scan every root's feature-band directory
// (higher-precedence roots win on id collisions), overlay explicit pins
// (which always win and are never filtered as outdated), fill known ids that
// are still missing via the cross-band fallback search, then sort.
func (r *Resolver) GetManifestDirectories() ([]Resolved, error) {
	found := make(map[string]Resolved)

	// Scan phase. Roots are visited in reverse precedence order so that a
	// later, higher-priority write overwrites an earlier one.
	for i := len(r.roots) - 1; i >= 0; i-- {
		bandDir := filepath.Join(r.roots[i].Path, r.band.String())
		entries, err := os.ReadDir(bandDir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("scanning manifest root %s: %w", bandDir, err)
		}
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			id := e.Name()
			if _, outdated := r.outdated[fold(id)]; outdated {
				r.logger.Debug("skipping outdated manifest", "id", id, "root", r.roots[i].Path)
				continue
			}
			found[fold(id)] = Resolved{ID: id, Dir: filepath.Join(bandDir, id)}
		}
	}

	// Pin phase. Pins overwrite anything discovered by scanning.
	for _, pin := range r.pins {
		dir, err := r.resolvePin(pin)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("pin resolved", "pin", pin, "dir", dir)
		found[fold(pin.ID)] = Resolved{ID: pin.ID, Dir: dir}
	}

	// Fallback phase. Known ids still missing may resolve from an older band
	// in the lowest-precedence root; ids that don't are silently omitted.
	if r.known.Present() && len(r.roots) > 0 {
		fallbackRoot := r.roots[len(r.roots)-1].Path
		for _, id := range r.known.IDs() {
			if _, ok := found[fold(id)]; ok {
				continue
			}
			dir, err := r.fallbackSearch(fallbackRoot, id)
			if err != nil {
				return nil, err
			}
			if dir == "" {
				continue
			}
			r.logger.Debug("fallback resolved", "id", id, "dir", dir)
			found[fold(id)] = Resolved{ID: id, Dir: dir}
		}
	}

	out := make([]Resolved, 0, len(found))
	for _, m := range found {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := r.rankOf(out[i].ID), r.rankOf(out[j].ID)
		if ri != rj {
			return ri < rj
		}
		return fold(out[i].ID) < fold(out[j].ID)
	})
	return out, nil
}

func (r *Resolver) rankOf(id string) int {
	if rank, ok := r.known.Rank(id); ok {
		return rank
	}
	return math.MaxInt
}

// resolvePin probes each root in precedence order for
// root/band/id/version/WorkloadManifest.json and takes the first hit.
func (r *Resolver) resolvePin(pin Specifier) (string, error) {
	for _, root := range r.roots {
		dir := filepath.Join(root.Path, pin.Band.String(), pin.ID, pin.Version)
		if fileExists(filepath.Join(dir, ManifestFileName)) {
			return dir, nil
		}
	}
	return "", &PinNotFoundError{Specifier: pin}
}

// fallbackSearch looks for id under an older feature band within the single
// fallback root. Candidate bands must be older than the current band, or
// share its prerelease-stripped form, which lets a prerelease band fall back
// to its own released directory. Among candidates that actually hold the
// manifest, the most recent band wins. Returns "" when nothing qualifies;
// that is not an error.
func (r *Resolver) fallbackSearch(root, id string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("scanning fallback root %s: %w", root, err)
	}

	var best band.FeatureBand
	var bestDir string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		b, err := band.Parse(e.Name())
		if err != nil {
			continue
		}
		if !b.Less(r.band) && !b.WithoutPrerelease().Equal(r.band.WithoutPrerelease()) {
			continue
		}
		dir := filepath.Join(root, e.Name(), id)
		if !fileExists(filepath.Join(dir, ManifestFileName)) {
			continue
		}
		if bestDir == "" || best.Less(b) {
			best, bestDir = b, dir
		}
	}
	return bestDir, nil
}
