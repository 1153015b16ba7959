package absolute

import (
	"fmt"
	"strings"

	"cerke/game"
)

// The y1 huap1 standard layout: a black king on ZIA, a red king on ZA and
// Tam2 on ZO. "." is an empty square.
var initialRows = [...]struct {
	row  Row
	side game.AbsoluteSide
	line string
}{
	{A, game.ASide, "黒筆 黒馬 黒車 黒将 赤王 赤将 赤車 赤馬 赤筆"},
	{E, game.ASide, "赤巫 赤弓 . 赤虎 . 黒虎 . 黒弓 黒巫"},
	{I, game.ASide, "黒兵 赤兵 黒兵 赤兵 赤船 赤兵 黒兵 赤兵 黒兵"},
	{AI, game.IASide, "黒兵 赤兵 黒兵 赤兵 黒船 赤兵 黒兵 赤兵 黒兵"},
	{AU, game.IASide, "黒巫 黒弓 . 黒虎 . 赤虎 . 赤弓 赤巫"},
	{IA, game.IASide, "赤筆 赤馬 赤車 赤将 黒王 黒将 黒車 黒馬 黒筆"},
}

// InitialBoard returns the starting position.
func InitialBoard() Board {
	b := NewBoard()
	b.Put(Coord{O, Z}, Tam2)
	for _, r := range initialRows {
		tokens := strings.Fields(r.line)
		if len(tokens) != len(columnTokens) {
			panic(fmt.Sprintf("initial row %v has %d squares", r.row, len(tokens)))
		}
		for i, tok := range tokens {
			if tok == "." {
				continue
			}
			cp, err := parseGlyphs(tok)
			if err != nil {
				panic(err)
			}
			b.Put(Coord{r.row, Column(i)}, NewPiece(cp.Color, cp.Prof, r.side))
		}
	}
	return b
}

// InitialField returns the starting position with both hop1zuo1 empty.
func InitialField() Field {
	return Field{
		Board:      InitialBoard(),
		ASideHand:  game.Hand{},
		IASideHand: game.Hand{},
	}
}

func parseGlyphs(tok string) (game.ColorAndProf, error) {
	runes := []rune(tok)
	if len(runes) != 2 {
		return game.ColorAndProf{}, fmt.Errorf("bad piece token %q", tok)
	}
	color, err := game.ParseColor(string(runes[0]))
	if err != nil {
		return game.ColorAndProf{}, err
	}
	prof, err := game.ParseProfession(string(runes[1]))
	if err != nil {
		return game.ColorAndProf{}, err
	}
	return game.ColorAndProf{Color: color, Prof: prof}, nil
}
