// Package testutil builds SDK installation layouts under temp directories
// for resolver and command tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// Fixture is a throwaway SDK installation with a separate user home.
type Fixture struct {
	t *testing.T

	// SdkRoot is the SDK installation root.
	SdkRoot string
	// SdkVersion is the full version the fixture was created with.
	SdkVersion string
	// Home is the user profile directory.
	Home string
}

// NewSDK creates an SDK root with a sdk/<version> directory, an empty
// sdk-manifests install root, and a user home.
func NewSDK(t *testing.T, version string) *Fixture {
	t.Helper()
	f := &Fixture{
		t:          t,
		SdkRoot:    t.TempDir(),
		SdkVersion: version,
		Home:       t.TempDir(),
	}
	mkdir(t, filepath.Join(f.SdkRoot, "sdk", version))
	mkdir(t, filepath.Join(f.SdkRoot, "sdk-manifests"))
	return f
}

// InstallRoot returns the installation's sdk-manifests directory.
func (f *Fixture) InstallRoot() string {
	return filepath.Join(f.SdkRoot, "sdk-manifests")
}

// UserRoot returns the user's sdk-manifests directory, creating it.
func (f *Fixture) UserRoot() string {
	f.t.Helper()
	dir := filepath.Join(f.Home, "sdk-manifests")
	mkdir(f.t, dir)
	return dir
}

// ExtraRoot creates a standalone manifest root outside the installation.
func (f *Fixture) ExtraRoot() string {
	f.t.Helper()
	return f.t.TempDir()
}

// AddManifest creates root/band/id/WorkloadManifest.json with the given
// content, or a minimal descriptor when content is empty.
func (f *Fixture) AddManifest(root, band, id, content string) string {
	f.t.Helper()
	dir := filepath.Join(root, band, id)
	mkdir(f.t, dir)
	if content == "" {
		content = ManifestJSON("1.0.0", id)
	}
	write(f.t, filepath.Join(dir, "WorkloadManifest.json"), content)
	return dir
}

// AddManifestDir creates root/band/id without a manifest file. Scan-phase
// discovery accepts such directories; pin and fallback resolution do not.
func (f *Fixture) AddManifestDir(root, band, id string) string {
	f.t.Helper()
	dir := filepath.Join(root, band, id)
	mkdir(f.t, dir)
	return dir
}

// AddPinned creates root/band/id/version/WorkloadManifest.json.
func (f *Fixture) AddPinned(root, band, id, version string) string {
	f.t.Helper()
	dir := filepath.Join(root, band, id, version)
	mkdir(f.t, dir)
	write(f.t, filepath.Join(dir, "WorkloadManifest.json"), ManifestJSON(version, id))
	return dir
}

// AddCatalog creates a localization catalog for an existing manifest dir.
func (f *Fixture) AddCatalog(manifestDir, locale string) string {
	f.t.Helper()
	dir := filepath.Join(manifestDir, "localize")
	mkdir(f.t, dir)
	path := filepath.Join(dir, "WorkloadManifest."+locale+".json")
	write(f.t, path, `{"description":"localized"}`)
	return path
}

// WriteKnown writes a known-manifests list file under sdk/<version>.
func (f *Fixture) WriteKnown(filename string, ids ...string) {
	f.t.Helper()
	var body string
	for _, id := range ids {
		body += id + "\n"
	}
	write(f.t, filepath.Join(f.SdkRoot, "sdk", f.SdkVersion, filename), body)
}

// MarkUserLocal drops the user-local marker file for the given band.
func (f *Fixture) MarkUserLocal(band string) {
	f.t.Helper()
	dir := filepath.Join(f.SdkRoot, "metadata", "workloads", band)
	mkdir(f.t, dir)
	write(f.t, filepath.Join(dir, "userlocal"), "")
}

// ManifestJSON renders a minimal valid WorkloadManifest.json body.
func ManifestJSON(version, description string) string {
	return fmt.Sprintf(`{"version": %q, "description": %q}`, version, description)
}

func mkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating %s: %v", dir, err)
	}
}

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
