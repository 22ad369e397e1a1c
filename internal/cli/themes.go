package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"aura_server/internal/site"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(site.List()); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
