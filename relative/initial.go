package relative

import "cerke/game"

const initialBlackKingUpward = `
黒筆↓ 黒馬↓ 黒車↓ 黒将↓ 赤王↓ 赤将↓ 赤車↓ 赤馬↓ 赤筆↓
赤巫↓ 赤弓↓ . 赤虎↓ . 黒虎↓ . 黒弓↓ 黒巫↓
黒兵↓ 赤兵↓ 黒兵↓ 赤兵↓ 赤船↓ 赤兵↓ 黒兵↓ 赤兵↓ 黒兵↓
. . . . . . . . .
. . . . 皇 . . . .
. . . . . . . . .
黒兵↑ 赤兵↑ 黒兵↑ 赤兵↑ 黒船↑ 赤兵↑ 黒兵↑ 赤兵↑ 黒兵↑
黒巫↑ 黒弓↑ . 黒虎↑ . 赤虎↑ . 赤弓↑ 赤巫↑
赤筆↑ 赤馬↑ 赤車↑ 赤将↑ 黒王↑ 黒将↑ 黒車↑ 黒馬↑ 黒筆↑
`

// InitialBoardBlackKingUpward is the starting position seen by the player
// holding the black king.
func InitialBoardBlackKingUpward() Board {
	b, err := ParseBoard(initialBlackKingUpward)
	if err != nil {
		panic(err)
	}
	return b
}

// InitialBoardRedKingUpward is the starting position seen by the player
// holding the red king.
func InitialBoardRedKingUpward() Board {
	return Rotate(InitialBoardBlackKingUpward())
}

// InitialField returns the starting position with the black king pointing
// upward and both hop1zuo1 empty.
func InitialField() Field {
	return Field{
		Board:        InitialBoardBlackKingUpward(),
		UpwardHand:   game.Hand{},
		DownwardHand: game.Hand{},
	}
}
