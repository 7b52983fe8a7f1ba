package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fbkclanna/workloadq/internal/install"
	"github.com/fbkclanna/workloadq/internal/manifest"
	"github.com/fbkclanna/workloadq/internal/resolver"
	"github.com/fbkclanna/workloadq/internal/ui"
)

// loadContext reads the persistent flags into an installation context.
func loadContext(cmd *cobra.Command) (*install.Context, error) {
	sdkRoot, _ := cmd.Flags().GetString("sdk-root")
	sdkVersion, _ := cmd.Flags().GetString("sdk-version")
	userHome, _ := cmd.Flags().GetString("user-home")
	configPath, _ := cmd.Flags().GetString("config")

	if sdkRoot == "" {
		return nil, fmt.Errorf("--sdk-root is required")
	}
	if sdkVersion == "" {
		return nil, fmt.Errorf("--sdk-version is required")
	}
	if userHome == "" {
		userHome, _ = os.UserHomeDir()
	}

	return install.Load(sdkRoot, sdkVersion, userHome, configPath)
}

// buildResolver assembles the resolver from the installation context, flag
// pins, and the process environment.
func buildResolver(cmd *cobra.Command) (*resolver.Resolver, error) {
	ctx, err := loadContext(cmd)
	if err != nil {
		return nil, err
	}

	rawPins, _ := cmd.Flags().GetStringArray("pin")
	flagPins := make([]resolver.Specifier, 0, len(rawPins))
	for _, raw := range rawPins {
		spec, err := resolver.ParseSpecifier(raw)
		if err != nil {
			return nil, err
		}
		flagPins = append(flagPins, spec)
	}

	opts, err := ctx.ResolverOptions(flagPins)
	if err != nil {
		return nil, err
	}
	opts.Lookup = os.Getenv
	opts.Logger = newLogger(cmd)

	return resolver.New(opts)
}

func newLogger(cmd *cobra.Command) *log.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return log.New(io.Discard)
	}
	return log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Level: log.DebugLevel})
}

// findEntry locates a resolved manifest by id, case-insensitively, matching
// both the resolved id and the directory leaf name.
func findEntry(r *resolver.Resolver, id string) (resolver.Entry, error) {
	resolved, err := r.GetManifestDirectories()
	if err != nil {
		return resolver.Entry{}, err
	}
	entries, err := r.Manifests()
	if err != nil {
		return resolver.Entry{}, err
	}
	for i, m := range resolved {
		if strings.EqualFold(m.ID, id) || strings.EqualFold(entries[i].ID, id) {
			return entries[i], nil
		}
	}
	return resolver.Entry{}, fmt.Errorf("manifest %q is not installed", id)
}

// printManifestDetail renders the full detail view used by show and browse.
func printManifestDetail(out io.Writer, e resolver.Entry, locale string) error {
	rc, err := e.Open()
	if err != nil {
		return fmt.Errorf("opening manifest %s: %w", e.ID, err)
	}
	defer rc.Close()

	m, err := manifest.Read(rc)
	if err != nil {
		return fmt.Errorf("manifest %s: %w", e.ID, err)
	}

	fmt.Fprintf(out, "Manifest:  %s\n", e.ID)
	fmt.Fprintf(out, "Version:   %s\n", m.Version)
	if m.Description != "" {
		fmt.Fprintf(out, "About:     %s\n", m.Description)
	}
	fmt.Fprintf(out, "Directory: %s\n", e.Dir)

	if len(m.DependsOn) > 0 {
		fmt.Fprintln(out, "\nDepends on:")
		for _, id := range sortedKeys(m.DependsOn) {
			fmt.Fprintf(out, "  %s %s\n", id, m.DependsOn[id])
		}
	}

	if len(m.Workloads) > 0 {
		fmt.Fprintln(out, "\nWorkloads:")
		tbl := ui.NewTable(out, "  NAME", "KIND", "PACKS", "DESCRIPTION")
		for _, name := range sortedKeys(m.Workloads) {
			wl := m.Workloads[name]
			kind := wl.Kind
			if wl.Abstract {
				kind = "abstract"
			}
			tbl.Row("  "+name, kind, len(wl.Packs), wl.Description)
		}
		if err := tbl.Flush(); err != nil {
			return err
		}
	}

	if len(m.Packs) > 0 {
		fmt.Fprintln(out, "\nPacks:")
		tbl := ui.NewTable(out, "  NAME", "KIND", "VERSION")
		for _, name := range sortedKeys(m.Packs) {
			p := m.Packs[name]
			tbl.Row("  "+name, p.Kind, p.Version)
		}
		if err := tbl.Flush(); err != nil {
			return err
		}
	}

	if locale != "" {
		if path, ok := manifest.CatalogPath(e.Dir, locale); ok {
			fmt.Fprintf(out, "\nLocalization (%s): %s\n", locale, path)
		} else {
			fmt.Fprintf(out, "\nLocalization (%s): no catalog\n", locale)
		}
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
