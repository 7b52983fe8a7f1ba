package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fbkclanna/workloadq/internal/manifest"
	"github.com/fbkclanna/workloadq/internal/resolver"
	"github.com/fbkclanna/workloadq/internal/ui"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the manifest layout for common issues",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	checks := ui.NewChecklist(out)

	ctx, err := loadContext(cmd)
	if err != nil {
		checks.Fail("load installation context: %v", err)
		checks.Summary()
		return fmt.Errorf("doctor checks failed")
	}
	checks.Pass("feature band %s derived from SDK version %s", ctx.Band, ctx.SdkVersion)

	if info, statErr := os.Stat(ctx.SdkRoot); statErr == nil && info.IsDir() {
		checks.Pass("sdk root %s exists", ctx.SdkRoot)
	} else {
		checks.Fail("sdk root %s is not a directory", ctx.SdkRoot)
	}

	if ctx.Config != nil {
		checks.Pass("config %s loaded", ctx.ConfigPath)
	} else {
		checks.Info("no config at %s", ctx.ConfigPath)
	}
	if ctx.Pins != nil {
		checks.Pass("pins file %s loaded (%d pins)", ctx.PinsPath, len(ctx.Pins.Pins))
	}

	checkKnownFile(checks, ctx.SdkRoot, ctx.SdkVersion)

	r, err := buildResolver(cmd)
	if err != nil {
		checks.Fail("build resolver: %v", err)
		checks.Summary()
		return fmt.Errorf("doctor checks failed")
	}

	band := r.Band().String()
	for _, root := range r.Roots() {
		bandDir := filepath.Join(root.Path, band)
		if info, statErr := os.Stat(bandDir); statErr == nil && info.IsDir() {
			checks.Pass("%s root has band directory %s", root.Origin, bandDir)
		} else {
			checks.Info("%s root %s has no %s directory", root.Origin, root.Path, band)
		}
	}

	entries, err := r.Manifests()
	if err != nil {
		checks.Fail("resolution: %v", err)
	} else {
		checks.Pass("resolved %d manifest directories", len(entries))
		for _, e := range entries {
			checkManifestParses(checks, e)
		}
	}

	checks.Summary()
	if !checks.OK() {
		return fmt.Errorf("doctor checks failed")
	}
	return nil
}

func checkKnownFile(checks *ui.Checklist, sdkRoot, sdkVersion string) {
	for _, name := range resolver.KnownFileNames {
		path := filepath.Join(sdkRoot, "sdk", sdkVersion, name)
		if _, err := os.Stat(path); err == nil {
			checks.Pass("known-id list %s found", path)
			return
		}
	}
	checks.Info("no known-id list under %s (ordering and fallback disabled)",
		filepath.Join(sdkRoot, "sdk", sdkVersion))
}

func checkManifestParses(checks *ui.Checklist, e resolver.Entry) {
	rc, err := e.Open()
	if err != nil {
		checks.Fail("%s: %v", e.ID, err)
		return
	}
	defer rc.Close()

	m, err := manifest.Read(rc)
	if err != nil {
		checks.Fail("%s: %v", e.ID, err)
		return
	}
	checks.Pass("%s %s parses (%d workloads, %d packs)", e.ID, m.Version, len(m.Workloads), len(m.Packs))
}
