package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fbkclanna/workloadq/internal/config"
	"github.com/fbkclanna/workloadq/internal/install"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a workloadq.yaml config next to the SDK root",
		RunE:  runInit,
	}
	cmd.Flags().StringArray("manifest-root", nil, "Additional manifest root (repeatable, highest first)")
	cmd.Flags().Bool("ignore-default-roots", false, "Skip the default install and user roots")
	cmd.Flags().StringArray("outdated", nil, "Manifest id to exclude from scanning (repeatable)")
	cmd.Flags().Bool("force", false, "Overwrite an existing config")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	sdkRoot, _ := cmd.Flags().GetString("sdk-root")
	configPath, _ := cmd.Flags().GetString("config")
	if sdkRoot == "" && configPath == "" {
		return fmt.Errorf("--sdk-root or --config is required")
	}
	if configPath == "" {
		abs, err := filepath.Abs(sdkRoot)
		if err != nil {
			return fmt.Errorf("resolving sdk root: %w", err)
		}
		configPath = filepath.Join(abs, install.ConfigFileName)
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(configPath); err == nil && !force {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("config %s already exists (use --force to overwrite)", configPath)
		}
		overwrite, err := promptConfirm(fmt.Sprintf("Overwrite %s?", configPath))
		if err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("aborted")
		}
	}

	roots, _ := cmd.Flags().GetStringArray("manifest-root")
	ignore, _ := cmd.Flags().GetBool("ignore-default-roots")
	outdated, _ := cmd.Flags().GetStringArray("outdated")

	cf := &config.File{
		Version:            1,
		Roots:              roots,
		IgnoreDefaultRoots: ignore,
		Outdated:           outdated,
	}
	if err := config.Save(configPath, cf); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", configPath)
	return nil
}
