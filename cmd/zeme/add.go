package main

import (
	"os"
	"strings"

	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/installer"

	"github.com/spf13/cobra"
)

var addOpts installer.Options

var addCmd = &cobra.Command{
	Use:   "add <component> [dir]",
	Short: "Copy a single named component into the project",
	Long: `Copy a single named component into the given directory (default:
current directory).

Available components: ` + strings.Join(installer.Components(), ", "),
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: installer.Components(),
	RunE:      runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().BoolVar(&addOpts.Force, "force", false, "overwrite existing files")
	addCmd.Flags().StringVar(&addOpts.ServiceURL, "service-url", "", "base URL of the blog API")
	addCmd.Flags().StringVar(&addOpts.SiteTitle, "title", "", "blog title")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if len(args) == 2 {
		addOpts.TargetDir = args[1]
	}
	promptMissing(cmd, &addOpts)
	addOpts.Out = os.Stdout
	return installer.AddComponent(addOpts, args[0])
}
