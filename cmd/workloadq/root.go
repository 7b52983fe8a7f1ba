package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workloadq",
		Short:   "Resolve and inspect installed SDK workload manifests",
		Version: version,
	}

	cmd.PersistentFlags().String("sdk-root", "", "SDK installation root")
	cmd.PersistentFlags().String("sdk-version", "", "Full SDK version (determines the feature band)")
	cmd.PersistentFlags().String("user-home", "", "User profile directory (defaults to the current user's home)")
	cmd.PersistentFlags().String("config", "", "Tool config path (defaults to <sdk-root>/workloadq.yaml)")
	cmd.PersistentFlags().StringArray("pin", nil, "Pin a manifest: id@version or id@version@band (repeatable)")
	cmd.PersistentFlags().Bool("verbose", false, "Trace resolution decisions to stderr")

	cmd.AddCommand(
		newRootsCmd(),
		newListCmd(),
		newResolveCmd(),
		newShowCmd(),
		newBrowseCmd(),
		newDoctorCmd(),
		newInitCmd(),
	)

	return cmd
}
