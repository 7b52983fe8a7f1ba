package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/fbkclanna/workloadq/internal/manifest"
	"github.com/fbkclanna/workloadq/internal/resolver"
	"github.com/fbkclanna/workloadq/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed workload manifests",
		RunE:  runList,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type listItem struct {
	ID        string `json:"id"`
	Version   string `json:"version,omitempty"`
	Workloads int    `json:"workloads"`
	Dir       string `json:"dir"`
}

func runList(cmd *cobra.Command, _ []string) error {
	r, err := buildResolver(cmd)
	if err != nil {
		return err
	}

	entries, err := r.Manifests()
	if err != nil {
		return err
	}

	items := make([]listItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, collectItem(e))
	}

	out := cmd.OutOrStdout()

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	tbl := ui.NewTable(out, "ID", "VERSION", "WORKLOADS", "DIRECTORY")
	for _, it := range items {
		version := it.Version
		if version == "" {
			version = "-"
		}
		tbl.Row(it.ID, version, it.Workloads, it.Dir)
	}
	return tbl.Flush()
}

// collectItem reads a manifest lazily; entries whose manifest file is absent
// or malformed still list, with the version left empty.
func collectItem(e resolver.Entry) listItem {
	it := listItem{ID: e.ID, Dir: e.Dir}

	rc, err := e.Open()
	if err != nil {
		return it
	}
	defer rc.Close()

	m, err := manifest.Read(rc)
	if err != nil {
		return it
	}
	it.Version = m.Version.String()
	it.Workloads = len(m.Workloads)
	return it
}
