package main

import (
	"os"

	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/installer"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "zeme",
	Short: "Scaffold and manage Zeme blog projects",
	Long: `Zeme is a self-hostable blog backend. This CLI scaffolds new projects
that embed it and manages their components.

Quick Start:
  zeme install my-blog        Scaffold a complete project
  zeme init                   Write only .env and zeme.yml
  zeme add content-page       Copy a single component into the project`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// promptMissing fills in any option the user did not pass as a flag.
func promptMissing(cmd *cobra.Command, opts *installer.Options) {
	p := installer.NewPrompter(os.Stdin, os.Stdout)
	if f := cmd.Flags().Lookup("module"); f != nil && !f.Changed {
		opts.ModulePath = p.String("Module path", installer.DefaultModulePath(opts.TargetDir))
	}
	if f := cmd.Flags().Lookup("title"); f != nil && !f.Changed {
		opts.SiteTitle = p.String("Blog title", "Zeme Blog")
	}
	if f := cmd.Flags().Lookup("description"); f != nil && !f.Changed {
		opts.SiteDescription = p.String("Blog description", "")
	}
	if f := cmd.Flags().Lookup("service-url"); f != nil && !f.Changed {
		opts.ServiceURL = p.String("Service URL", "http://localhost:8080")
	}
	if f := cmd.Flags().Lookup("comments"); f != nil && !f.Changed {
		opts.EnableComments = p.Bool("Enable comments", false)
	}
}
