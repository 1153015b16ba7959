package game

import "cerke/utils"

// ColorAndProf identifies a non-Tam2 piece without its owner.
type ColorAndProf struct {
	Color Color      `json:"color"`
	Prof  Profession `json:"prof"`
}

func (cp ColorAndProf) String() string {
	return cp.Color.Glyph() + cp.Prof.Glyph()
}

// Hand is a hop1zuo1: the unordered pool of pieces a side has captured and may
// parachute back onto the board. Duplicates are legal. Methods that change the
// contents return a new Hand and never write to the receiver's backing array.
type Hand []ColorAndProf

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Clone() Hand {
	if h == nil {
		return Hand{}
	}
	return utils.Appended(h)
}

func (h Hand) Insert(cp ColorAndProf) Hand {
	return utils.Appended(h, cp)
}

func (h Hand) Contains(cp ColorAndProf) bool {
	return utils.FindIndex(h, cp) >= 0
}

func (h Hand) Count(cp ColorAndProf) int {
	return utils.Count(h, cp)
}

// Remove drops one entry equal to cp. The entries are value-equal, so which
// one goes is unobservable.
func (h Hand) Remove(cp ColorAndProf) (Hand, bool) {
	i := utils.FindIndex(h, cp)
	if i < 0 {
		return h, false
	}
	return utils.WithoutIndex(h, i), true
}

// Equal compares hands as multisets.
func (h Hand) Equal(other Hand) bool {
	if len(h) != len(other) {
		return false
	}
	counts := make(map[ColorAndProf]int, len(h))
	for _, cp := range h {
		counts[cp]++
	}
	for _, cp := range other {
		counts[cp]--
		if counts[cp] < 0 {
			return false
		}
	}
	return true
}
