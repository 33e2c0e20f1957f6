package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	port       string
	configPath string
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arcade",
		Short: "The KN-Lang text adventure and Quiz Master, in a terminal or over the network",
	}

	cmd.PersistentFlags().StringVar(&port, "port", os.Getenv("PORT"), "port to listen on (overrides config)")
	cmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("ARCADE_CONFIG"), "path to YAML config (optional)")
	cmd.AddCommand(NewAdventureCmd(&configPath))
	cmd.AddCommand(NewQuizCmd(&configPath))
	cmd.AddCommand(NewServeCmd(&configPath, &port))
	cmd.AddCommand(NewMigrateCmd(&configPath))
	cmd.AddCommand(NewWorldCmd(&configPath))
	return cmd
}
