package main

import (
	"os"

	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/installer"

	"github.com/spf13/cobra"
)

var initOpts installer.Options

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write only the config artifacts (.env and zeme.yml)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initOpts.SiteTitle, "title", "", "blog title")
	initCmd.Flags().StringVar(&initOpts.SiteDescription, "description", "", "blog description")
	initCmd.Flags().StringVar(&initOpts.Theme, "theme", "default", "site theme recorded in zeme.yml")
	initCmd.Flags().BoolVar(&initOpts.EnableComments, "comments", false, "enable the comments feature flag in zeme.yml")
	initCmd.Flags().BoolVar(&initOpts.Force, "force", false, "overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		initOpts.TargetDir = args[0]
	}
	promptMissing(cmd, &initOpts)
	initOpts.Out = os.Stdout
	return installer.Init(initOpts)
}
