package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cp-topic-list/site/site"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [path]",
		Short: "Print the HTML of a page (default /about)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/about"
			if len(args) == 1 {
				path = args[0]
			}

			page, err := site.Lookup(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return page.Node().Render(cmd.OutOrStdout())
		},
	}
}
