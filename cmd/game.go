package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"cerke/absolute"
	"cerke/game"
	"cerke/meta"
	"cerke/perspective"
)

func New(cfg *meta.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new game from the initial position",
		Long: heredoc.Doc(`new replaces the saved game with the initial position, Tam2
			on ZO and both hop1zuo1 empty. The side to move first defaults
			to CERKE_FIRST.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			first := cfg.First
			if raw, _ := cmd.Flags().GetString("first"); raw != "" {
				side, err := game.ParseAbsoluteSide(raw)
				if err != nil {
					return err
				}
				first = side
			}

			g := savedGame{Turn: first, Field: absolute.InitialField()}
			if err := saveGame(cfg, g); err != nil {
				return err
			}
			printGame(cmd.OutOrStdout(), g, cfg.Perspective)
			return nil
		},
	}

	cmd.Flags().String("first", "", "Side making the first move (IASide or ASide)")
	return cmd
}

func Show(cfg *meta.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved game",
		Long: heredoc.Doc(`show prints the board of the saved game as seen from a
			perspective, followed by both hop1zuo1. Pieces pointing up
			belong to the viewer.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := perspectiveFlag(cmd, cfg)
			if err != nil {
				return err
			}
			g, err := loadGame(cfg)
			if err != nil {
				return err
			}
			printGame(cmd.OutOrStdout(), g, p)
			return nil
		},
	}

	cmd.Flags().StringP("perspective", "p", "", "IaIsDownAndPointsUpward or IaIsUpAndPointsDownward")
	return cmd
}

func Move(cfg *meta.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move src dest",
		Short: "Move a non-Tam2 piece",
		Long: heredoc.Doc(`move moves the piece on src to dest, capturing whatever
			opponent piece stands there into the mover's hop1zuo1.
			Coordinates are column then row, e.g. "LIA". Only the
			endpoints are checked: the route is the players' business.
		`),
		Example: heredoc.Doc(`
			$ cerke move KAI KU
			$ cerke move ZI ZY --step ZU
		`),
		Args: cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := absolute.ParseCoord(args[0])
			if err != nil {
				return err
			}
			dest, err := absolute.ParseCoord(args[1])
			if err != nil {
				return err
			}

			var move game.Move[absolute.Coord] = game.NonTamMoveSrcDst[absolute.Coord]{Src: src, Dest: dest}
			if raw, _ := cmd.Flags().GetString("step"); raw != "" {
				step, err := absolute.ParseCoord(raw)
				if err != nil {
					return err
				}
				move = game.NonTamMoveSrcStepDstFinite[absolute.Coord]{Src: src, Step: step, Dest: dest}
			}

			side, err := sideFlag(cmd)
			if err != nil {
				return err
			}
			g, err := play(cfg, move, side)
			if err != nil {
				return err
			}
			printGame(cmd.OutOrStdout(), g, cfg.Perspective)
			return nil
		},
	}

	cmd.Flags().String("step", "", "Square stepped over on the way")
	cmd.Flags().String("side", "", "Fail unless this side (IASide or ASide) is to move")
	return cmd
}

func Parachute(cfg *meta.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parachute color prof dest",
		Short: "Drop a piece from hop1zuo1 onto the board",
		Long: heredoc.Doc(`parachute takes a piece of the given color and profession
			out of the mover's hop1zuo1 and places it on the empty square
			dest. Colors and professions accept names or glyphs.
		`),
		Example: heredoc.Doc(`
			$ cerke parachute Huok2 Kauk2 KO
			$ cerke parachute 黒 兵 KO
		`),
		Args: cobra.ExactArgs(3),

		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := game.ParseColor(args[0])
			if err != nil {
				return err
			}
			prof, err := game.ParseProfession(args[1])
			if err != nil {
				return err
			}
			dest, err := absolute.ParseCoord(args[2])
			if err != nil {
				return err
			}

			side, err := sideFlag(cmd)
			if err != nil {
				return err
			}
			move := game.NonTamMoveFromHopZuo[absolute.Coord]{Color: color, Prof: prof, Dest: dest}
			g, err := play(cfg, move, side)
			if err != nil {
				return err
			}
			printGame(cmd.OutOrStdout(), g, cfg.Perspective)
			return nil
		},
	}

	cmd.Flags().String("side", "", "Fail unless this side (IASide or ASide) is to move")
	return cmd
}

// sideFlag reads --side. The saved game decides who moves; the flag only
// guards against moving for the wrong side.
func sideFlag(cmd *cobra.Command) (*game.AbsoluteSide, error) {
	raw, _ := cmd.Flags().GetString("side")
	if raw == "" {
		return nil, nil
	}
	side, err := game.ParseAbsoluteSide(raw)
	if err != nil {
		return nil, fmt.Errorf("--side: %w", err)
	}
	return &side, nil
}

func perspectiveFlag(cmd *cobra.Command, cfg *meta.Config) (perspective.Perspective, error) {
	raw, _ := cmd.Flags().GetString("perspective")
	if raw == "" {
		return cfg.Perspective, nil
	}
	return perspective.Parse(raw)
}
