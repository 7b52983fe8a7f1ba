package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print resolved manifest directories in order",
		RunE:  runResolve,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

func runResolve(cmd *cobra.Command, _ []string) error {
	r, err := buildResolver(cmd)
	if err != nil {
		return err
	}

	resolved, err := r.GetManifestDirectories()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resolved)
	}

	for _, m := range resolved {
		fmt.Fprintln(out, m.Dir)
	}
	return nil
}
