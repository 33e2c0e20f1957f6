package cli

import (
	"log"

	"github.com/spf13/cobra"

	"knlang-arcade/internal/config"
	"knlang-arcade/internal/prompt"
)

// NewQuizCmd plays one Quiz Master round on the terminal.
func NewQuizCmd(configPath *string) *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Play a round of Quiz Master",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			b, err := openBackends(ctx, cfg)
			if err != nil {
				return err
			}
			defer b.Close()

			out := cmd.OutOrStdout()
			service := quizService(cfg, b.questionRepository(cfg), seed)
			result, err := service.NewSession(prompt.NewLineReader(cmd.InOrStdin(), out), out).Run(ctx)
			if err != nil {
				return err
			}
			log.Printf("quiz finished: player=%s score=%d tier=%s", result.Player, result.Score, result.Tier)
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "fix the question order (0 picks a random order)")
	return cmd
}
