package game

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownColor      = errors.New("unknown color")
	ErrUnknownProfession = errors.New("unknown profession")
)

// Color of a non-Tam2 piece.
type Color uint8

const (
	Kok1  Color = iota // red
	Huok2              // black
)

var colorNames = [...]string{"Kok1", "Huok2"}
var colorGlyphs = [...]string{"赤", "黒"}

// Colors lists both colors in declaration order.
func Colors() []Color {
	return []Color{Kok1, Huok2}
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Glyph returns the single-character name used on physical pieces.
func (c Color) Glyph() string {
	if int(c) < len(colorGlyphs) {
		return colorGlyphs[c]
	}
	return "?"
}

func (c Color) MarshalText() ([]byte, error) {
	if int(c) >= len(colorNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, uint8(c))
	}
	return []byte(colorNames[c]), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor accepts either the romanized name ("Kok1") or the glyph ("赤").
func ParseColor(s string) (Color, error) {
	for i := range colorNames {
		if s == colorNames[i] || s == colorGlyphs[i] {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// Profession of a non-Tam2 piece.
type Profession uint8

const (
	Nuak1 Profession = iota // vessel
	Kauk2                   // pawn
	Gua2                    // rook
	Kaun1                   // bishop
	Dau2                    // tiger
	Maun1                   // horse
	Kua2                    // clerk
	Tuk2                    // shaman
	Uai1                    // general
	Io                      // king
)

var profNames = [...]string{"Nuak1", "Kauk2", "Gua2", "Kaun1", "Dau2", "Maun1", "Kua2", "Tuk2", "Uai1", "Io"}
var profGlyphs = [...]string{"船", "兵", "弓", "車", "虎", "馬", "筆", "巫", "将", "王"}

// Professions lists the closed set of professions in declaration order.
func Professions() []Profession {
	out := make([]Profession, len(profNames))
	for i := range profNames {
		out[i] = Profession(i)
	}
	return out
}

func (p Profession) String() string {
	if int(p) < len(profNames) {
		return profNames[p]
	}
	return fmt.Sprintf("Profession(%d)", uint8(p))
}

func (p Profession) Glyph() string {
	if int(p) < len(profGlyphs) {
		return profGlyphs[p]
	}
	return "?"
}

func (p Profession) MarshalText() ([]byte, error) {
	if int(p) >= len(profNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProfession, uint8(p))
	}
	return []byte(profNames[p]), nil
}

func (p *Profession) UnmarshalText(b []byte) error {
	parsed, err := ParseProfession(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParseProfession accepts either the romanized name ("Uai1") or the glyph ("将").
func ParseProfession(s string) (Profession, error) {
	for i := range profNames {
		if s == profNames[i] || s == profGlyphs[i] {
			return Profession(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProfession, s)
}
