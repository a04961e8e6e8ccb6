package main

import (
	"os"

	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/installer"

	"github.com/spf13/cobra"
)

var installOpts installer.Options

var installCmd = &cobra.Command{
	Use:   "install [dir]",
	Short: "Scaffold a complete Zeme blog project",
	Long: `Scaffold a complete project in the given directory (default: current
directory): a Go host program embedding the blog API, .env, zeme.yml,
a docker-compose stack for Postgres/Redis/MinIO and all page components.

Existing files are left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)

	installCmd.Flags().StringVar(&installOpts.ModulePath, "module", "", "Go module path for the generated project")
	installCmd.Flags().StringVar(&installOpts.SiteTitle, "title", "", "blog title")
	installCmd.Flags().StringVar(&installOpts.SiteDescription, "description", "", "blog description")
	installCmd.Flags().StringVar(&installOpts.ServiceURL, "service-url", "", "base URL of the blog API")
	installCmd.Flags().BoolVar(&installOpts.EnableComments, "comments", false, "enable the comments feature flag in zeme.yml")
	installCmd.Flags().BoolVar(&installOpts.Force, "force", false, "overwrite existing files")
	installCmd.Flags().BoolVar(&installOpts.SkipDeps, "skip-deps", false, "skip running go mod tidy in the target")
}

func runInstall(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		installOpts.TargetDir = args[0]
	}
	promptMissing(cmd, &installOpts)
	installOpts.Out = os.Stdout
	return installer.Install(installOpts)
}
