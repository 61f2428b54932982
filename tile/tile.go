package tile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	_ int = iota
	MAN
	PIN
	SOU
	HONOR
)

var ErrInvalidTile = errors.New("invalid tile")

var suitLetters = map[int]byte{
	MAN:   'm',
	PIN:   'p',
	SOU:   's',
	HONOR: 'z',
}

var suitColors = map[int]*color.Color{
	MAN:   color.New(color.FgHiRed),
	PIN:   color.New(color.FgHiCyan),
	SOU:   color.New(color.FgHiGreen),
	HONOR: color.New(color.FgHiYellow),
}

// Tile is suit*10 + rank, so ranks of one suit are consecutive integers
// and suits never touch.
type Tile int

func New(suit, rank int) (Tile, error) {
	if suit < MAN || suit > HONOR {
		return 0, fmt.Errorf("%w: suit %d", ErrInvalidTile, suit)
	}
	if rank < 1 || rank > maxRank(suit) {
		return 0, fmt.Errorf("%w: rank %d", ErrInvalidTile, rank)
	}
	return Tile(suit*10 + rank), nil
}

// MustParse is for literals in tests and tables.
func MustParse(token string) Tile {
	t, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse reads the canonical "<rank><suit>" form, e.g. "5p" or "7z".
func Parse(token string) (Tile, error) {
	token = strings.TrimSpace(token)
	if len(token) != 2 {
		return 0, fmt.Errorf("%w: '%s'", ErrInvalidTile, token)
	}
	rank := int(token[0] - '0')
	letter := strings.ToLower(token[1:])[0]
	for suit, l := range suitLetters {
		if l == letter {
			t, err := New(suit, rank)
			if err != nil {
				return 0, fmt.Errorf("%w: '%s'", ErrInvalidTile, token)
			}
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: '%s'", ErrInvalidTile, token)
}

func ParseAll(tokens []string) ([]Tile, error) {
	tiles := make([]Tile, 0, len(tokens))
	for _, token := range tokens {
		t, err := Parse(token)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

func (t Tile) Suit() int {
	return int(t) / 10
}

func (t Tile) Rank() int {
	return int(t) % 10
}

func (t Tile) Valid() bool {
	suit := t.Suit()
	return suit >= MAN && suit <= HONOR && t.Rank() >= 1 && t.Rank() <= maxRank(suit)
}

func (t Tile) IsSuited() bool {
	return t.Valid() && t.Suit() != HONOR
}

func (t Tile) String() string {
	if !t.Valid() {
		return "??"
	}
	return fmt.Sprintf("%d%c", t.Rank(), suitLetters[t.Suit()])
}

// Paint renders the tile in its suit colour.
func (t Tile) Paint() string {
	c, ok := suitColors[t.Suit()]
	if !ok {
		return t.String()
	}
	return c.Sprint(t.String())
}

func ToTileString(tiles []Tile) string {
	ret := make([]string, 0, len(tiles))
	for _, t := range tiles {
		ret = append(ret, t.Paint())
	}
	return strings.Join(ret, " ")
}

func maxRank(suit int) int {
	if suit == HONOR {
		return 7
	}
	return 9
}
