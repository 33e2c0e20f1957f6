package cli

import (
	"github.com/spf13/cobra"

	"knlang-arcade/internal/config"
	"knlang-arcade/internal/world"
)

// NewWorldCmd groups world file tooling.
func NewWorldCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "world",
		Short: "Inspect adventure worlds",
	}

	var worldFile string
	export := &cobra.Command{
		Use:   "export",
		Short: "Validate a world and print it as INI (the builtin world by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			w, err := loadWorld(cfg, worldFile)
			if err != nil {
				return err
			}
			return world.WriteINI(w, cmd.OutOrStdout())
		},
	}
	export.Flags().StringVar(&worldFile, "world", "", "INI world file to validate and normalize")
	cmd.AddCommand(export)
	return cmd
}
