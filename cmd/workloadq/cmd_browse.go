package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactively filter and inspect resolved manifests",
		RunE:  runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("browse requires a TTY; use list or show instead")
	}

	r, err := buildResolver(cmd)
	if err != nil {
		return err
	}

	entries, err := r.Manifests()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no manifests resolved")
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}

	idx, err := promptFilter("Select a manifest", ids)
	if err != nil {
		return err
	}
	if idx < 0 {
		return nil
	}

	return printManifestDetail(cmd.OutOrStdout(), entries[idx], "")
}
