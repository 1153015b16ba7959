package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"cerke/absolute"
	"cerke/communication"
	"cerke/game"
	"cerke/gamemaster"
	"cerke/meta"
	"cerke/perspective"
	"cerke/relative"
)

var (
	ErrNoGame      = errors.New("no saved game, run `cerke new` first")
	ErrCorruptSave = errors.New("corrupt save file")
)

// savedGame is the on-disk form of a game in progress.
type savedGame struct {
	Turn  game.AbsoluteSide           `json:"turn"`
	Field absolute.Field              `json:"field"`
	Moves []communication.MoveRequest `json:"moves"`
}

func loadGame(cfg *meta.Config) (savedGame, error) {
	b, err := os.ReadFile(cfg.SavePath())
	if errors.Is(err, fs.ErrNotExist) {
		return savedGame{}, ErrNoGame
	}
	if err != nil {
		return savedGame{}, err
	}
	var g savedGame
	if err := json.Unmarshal(b, &g); err != nil {
		return savedGame{}, fmt.Errorf("%s: %w: %w", cfg.SavePath(), ErrCorruptSave, err)
	}
	if g.Field.Board == nil {
		g.Field.Board = absolute.NewBoard()
	}
	if n := g.Field.Board.CountTam2(); n != 1 {
		return savedGame{}, fmt.Errorf("%s: %d Tam2 on board: %w", cfg.SavePath(), n, ErrCorruptSave)
	}
	return g, nil
}

func saveGame(cfg *meta.Config, g savedGame) error {
	if err := cfg.EnsureDataDir(); err != nil {
		return err
	}
	b, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	tmp := cfg.SavePath() + ".tmp"
	if err := os.WriteFile(tmp, b, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, cfg.SavePath())
}

// play replays the saved position into an engine, applies move for the side
// to move and saves the result. A non-nil side that is not to move is
// rejected with gamemaster.ErrNotYourTurn.
func play(cfg *meta.Config, move game.Move[absolute.Coord], side *game.AbsoluteSide) (savedGame, error) {
	g, err := loadGame(cfg)
	if err != nil {
		return savedGame{}, err
	}
	mover := g.Turn
	if side != nil {
		mover = *side
	}

	e := gamemaster.NewLocalEngine(g.Turn)
	e.InitFrom(g.Field, g.Turn)
	if err := e.Play(move, mover); err != nil {
		return savedGame{}, err
	}

	g.Field = e.Field()
	g.Turn = e.Turn()
	g.Moves = append(g.Moves, communication.NewMoveRequest(move, mover))
	return g, saveGame(cfg, g)
}

func printGame(w io.Writer, g savedGame, p perspective.Perspective) {
	rf := communication.NewRelativeField(g.Field, p)
	for _, row := range rf.Rows {
		fmt.Fprintln(w, row)
	}
	fmt.Fprintf(w, "%v hop1zuo1: %s\n", perspective.ToAbsoluteSide(relative.Upward, p), handString(rf.UpwardHand))
	fmt.Fprintf(w, "%v hop1zuo1: %s\n", perspective.ToAbsoluteSide(relative.Downward, p), handString(rf.DownwardHand))
	fmt.Fprintf(w, "%d moves played, %v to move\n", len(g.Moves), g.Turn)
}

func handString(h game.Hand) string {
	if h.Len() == 0 {
		return "-"
	}
	parts := make([]string, 0, h.Len())
	for _, cp := range h {
		parts = append(parts, cp.String())
	}
	return strings.Join(parts, " ")
}
