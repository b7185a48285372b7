package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sitegen",
		Short: "Render and export the Topic List static pages",
		Long: `sitegen renders the static pages of the Topic List site without running the server.

Available commands:
  render     Print the HTML of one page
  export     Write every page and the sitemap to a directory
  version    Print the version number

Use "sitegen [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd(), newExportCmd(), newVersionCmd())
	return root
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
