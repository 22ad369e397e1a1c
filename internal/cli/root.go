// Package cli wires the aura command line: the HTTP server and offline
// generation helpers.
package cli

import (
	"github.com/spf13/cobra"
)

type rootState struct {
	configDir string
}

func NewRootCmd(version string) *cobra.Command {
	state := &rootState{}

	cmd := &cobra.Command{
		Use:          "aura",
		Short:        "AURA website builder: generate complete static websites from a short description",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, state, version)
		},
	}
	cmd.PersistentFlags().StringVar(&state.configDir, "config", ".", "directory containing config.yaml")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd, state, version)
			},
		},
		newGenerateCmd(),
		newThemesCmd(),
	)
	return cmd
}
