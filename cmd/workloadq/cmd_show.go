package main

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the parsed contents of one manifest",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	cmd.Flags().String("locale", "", "Report the localized description catalog for this locale")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	r, err := buildResolver(cmd)
	if err != nil {
		return err
	}

	entry, err := findEntry(r, args[0])
	if err != nil {
		return err
	}

	locale, _ := cmd.Flags().GetString("locale")
	return printManifestDetail(cmd.OutOrStdout(), entry, locale)
}
