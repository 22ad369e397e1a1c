package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"aura_server/internal/bundle"
	"aura_server/internal/export"
	"aura_server/internal/site"
	"aura_server/internal/types"
)

type generateFlags struct {
	name       string
	siteType   string
	theme      string
	pages      []string
	out        string
	publishCmd string
}

func newGenerateCmd() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a site from the local templates and write it to a folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := site.Normalize(types.Specification{
				Name:  flags.name,
				Type:  flags.siteType,
				Theme: flags.theme,
				Pages: flags.pages,
			})
			if flags.theme != "" && !site.Exists(flags.theme) {
				fmt.Fprintf(cmd.ErrOrStderr(), "unknown theme %q, using %s\n", flags.theme, spec.Theme)
			}

			out := flags.out
			if out == "" {
				out = site.Slug(spec.Name)
			}

			generated := site.NewGenerator().Generate(spec)
			exporter := export.NewExporter(out, strings.Fields(flags.publishCmd)...)
			dir, err := exporter.WriteFiles(cmd.Context(), bundle.Files(generated))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s site %q to %s\n", spec.Theme, spec.Name, dir)

			url, err := exporter.Publish(cmd.Context(), dir)
			if err != nil {
				return err
			}
			if url != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Published: %s\n", url)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.name, "name", "", "site name (default \"My Website\")")
	cmd.Flags().StringVar(&flags.siteType, "type", "", "site type (default \"Business\")")
	cmd.Flags().StringVar(&flags.theme, "theme", site.DefaultTheme, "color theme: blue, purple, green or red")
	cmd.Flags().StringSliceVar(&flags.pages, "pages", nil, "pages to include, comma separated")
	cmd.Flags().StringVar(&flags.out, "out", "", "output directory (default: folder named after the site)")
	cmd.Flags().StringVar(&flags.publishCmd, "publish", "", "command run with the output directory as last argument, e.g. \"netlify deploy --prod --dir\"")
	return cmd
}
