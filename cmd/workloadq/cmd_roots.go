package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/fbkclanna/workloadq/internal/ui"
)

func newRootsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roots",
		Short: "Show the effective manifest roots in precedence order",
		RunE:  runRoots,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

func runRoots(cmd *cobra.Command, _ []string) error {
	r, err := buildResolver(cmd)
	if err != nil {
		return err
	}

	roots := r.Roots()
	out := cmd.OutOrStdout()

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(roots)
	}

	tbl := ui.NewTable(out, "PRECEDENCE", "ORIGIN", "PATH")
	for i, root := range roots {
		tbl.Row(i, root.Origin, root.Path)
	}
	return tbl.Flush()
}
