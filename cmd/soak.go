package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"cerke/experiments"
	"cerke/experiments/metrics"
	"cerke/meta"
)

func Soak(cfg *meta.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "soak",
		Short: "Play random games and check the field invariants",
		Long: heredoc.Doc(`soak plays games between two random players that pick any
			move or parachute the field accepts. After every step it checks
			that exactly one Tam2 is on the board and that no piece was
			lost. Game and move records are written as CSV under the data
			directory unless --no-write is given.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			games, _ := cmd.Flags().GetInt("games")
			seed, _ := cmd.Flags().GetUint64("seed")
			maxMoves, _ := cmd.Flags().GetInt("max-moves")
			noWrite, _ := cmd.Flags().GetBool("no-write")
			if maxMoves <= 0 {
				maxMoves = cfg.MaxMoves
			}

			var w *metrics.Writer
			if !noWrite {
				var err error
				w, err = metrics.NewWriter(filepath.Join(cfg.DataDir, "experiments"))
				if err != nil {
					return err
				}
			}

			records, err := experiments.RunSoak(experiments.SoakConfig{Games: games, MaxMoves: maxMoves, Seed: seed}, w)
			if err != nil {
				return err
			}

			total := 0
			for _, r := range records {
				total += r.TotalMoves
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d games, %d moves, invariants held\n", len(records), total)
			if w != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "records written to %s\n", w.Dir())
			}
			return nil
		},
	}

	cmd.Flags().IntP("games", "g", 10, "Number of games to play")
	cmd.Flags().Uint64("seed", 1, "Seed of the first game")
	cmd.Flags().Int("max-moves", 0, "Moves per game, defaults to CERKE_MAX_MOVES")
	cmd.Flags().Bool("no-write", false, "Don't store the records")
	return cmd
}
