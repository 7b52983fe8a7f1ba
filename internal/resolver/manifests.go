package resolver

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fbkclanna/workloadq/internal/manifest"
)

// Entry is one resolved manifest with deferred content access. Resolution is
// separated from opening so callers can skip manifests they don't need.
type Entry struct {
	// ID is the leaf name of the resolved directory.
	ID string
	// Dir is the resolved manifest directory.
	Dir string
	// ManifestPath is the WorkloadManifest.json path inside Dir. The file is
	// not guaranteed to exist for scan-discovered entries.
	ManifestPath string
	// Open opens the manifest JSON for reading.
	Open func() (io.ReadCloser, error)
	// OpenCatalog opens the localization catalog for the given locale tag.
	// When no catalog exists the error satisfies errors.Is(err, fs.ErrNotExist).
	OpenCatalog func(locale string) (io.ReadCloser, error)
}

// Manifests resolves manifest directories and wraps each in an Entry with
// lazily-invoked openers.
func (r *Resolver) Manifests() ([]Entry, error) {
	resolved, err := r.GetManifestDirectories()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(resolved))
	for _, m := range resolved {
		dir := m.Dir
		path := filepath.Join(dir, ManifestFileName)
		entries = append(entries, Entry{
			ID:           filepath.Base(dir),
			Dir:          dir,
			ManifestPath: path,
			Open: func() (io.ReadCloser, error) {
				return os.Open(path)
			},
			OpenCatalog: func(locale string) (io.ReadCloser, error) {
				p, ok := manifest.CatalogPath(dir, locale)
				if !ok {
					return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrNotExist}
				}
				return os.Open(p)
			},
		})
	}
	return entries, nil
}
