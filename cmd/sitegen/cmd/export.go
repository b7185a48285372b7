package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/cp-topic-list/site/config"
	"github.com/cp-topic-list/site/export"
	"github.com/cp-topic-list/site/site"
)

// exportFs is swapped for an in-memory filesystem in tests.
var exportFs afero.Fs = afero.NewOsFs()

func newExportCmd() *cobra.Command {
	var outDir, baseURL string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write every static page and the sitemap to a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL == "" {
				cfg, err := config.FromEnv()
				if err != nil {
					return err
				}
				baseURL = cfg.BaseURL
			}

			written, err := export.New(exportFs, outDir, baseURL).Export(cmd.Context(), site.Pages())
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	exportCmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")
	exportCmd.Flags().StringVar(&baseURL, "base-url", "", "site URL used in the sitemap (defaults to BASE_URL)")
	return exportCmd
}
