package manifest

import (
	"os"
	"path/filepath"
	"strings"
)

// CatalogPath returns the localization catalog path for a manifest directory
// and locale tag, probing the exact tag first and then its language prefix
// (pt-BR falls back to pt). The second return value reports whether a
// catalog file exists.
func CatalogPath(dir, locale string) (string, bool) {
	for _, tag := range localeCandidates(locale) {
		path := filepath.Join(dir, "localize", "WorkloadManifest."+tag+".json")
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func localeCandidates(locale string) []string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return nil
	}
	candidates := []string{locale}
	if i := strings.IndexByte(locale, '-'); i > 0 {
		candidates = append(candidates, locale[:i])
	}
	return candidates
}
