package cli

import (
	"os"

	"github.com/spf13/cobra"

	"knlang-arcade/internal/app"
	"knlang-arcade/internal/config"
	"knlang-arcade/internal/prompt"
)

// NewAdventureCmd plays the text adventure on the terminal.
func NewAdventureCmd(configPath *string) *cobra.Command {
	var (
		worldFile string
		name      string
		plain     bool
	)
	cmd := &cobra.Command{
		Use:   "adventure",
		Short: "Explore the Mysterious Land of KN-Lang",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			w, err := loadWorld(cfg, worldFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var in prompt.Prompter
			if plain {
				in = prompt.NewLineReader(cmd.InOrStdin(), out)
			} else {
				in = prompt.NewTerminal(os.Stdin, out, cfg.Adventure.History)
			}
			return app.NewAdventureSession(w, name, in, out).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&worldFile, "world", "", "INI world file (defaults to the builtin world)")
	cmd.Flags().StringVar(&name, "name", "", "hero name")
	cmd.Flags().BoolVar(&plain, "plain", false, "read plain lines without the line editor")
	return cmd
}
