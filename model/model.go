package model

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/mahjong/game"
	"github.com/ratel-online/mahjong/tile"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Seat is the saved state a human seat can be resumed from.
type Seat struct {
	Name  string   `json:"name"`
	Hand  []string `json:"hand"`
	River []string `json:"river"`
}

func NewSeat(player game.Player) Seat {
	return Seat{
		Name:  player.Name(),
		Hand:  tokens(player.Hand().Tiles()),
		River: tokens(player.River().Tiles()),
	}
}

func ReadSeat(reader io.Reader) (Seat, error) {
	seat := Seat{}
	if err := json.NewDecoder(reader).Decode(&seat); err != nil {
		return Seat{}, fmt.Errorf("decode seat: %w", err)
	}
	return seat, nil
}

func (s Seat) Write(writer io.Writer) error {
	return json.NewEncoder(writer).Encode(s)
}

// Without drops one copy of t from the saved hand.
func (s Seat) Without(t tile.Tile) Seat {
	hand := make([]string, 0, len(s.Hand))
	removed := false
	for _, token := range s.Hand {
		if !removed && token == t.String() {
			removed = true
			continue
		}
		hand = append(hand, token)
	}
	s.Hand = hand
	return s
}

// State parses the saved tokens back into a hand and river.
func (s Seat) State() (*game.Hand, *game.River, error) {
	hand, err := tile.ParseAll(s.Hand)
	if err != nil {
		return nil, nil, fmt.Errorf("seat %s hand: %w", s.Name, err)
	}
	river, err := tile.ParseAll(s.River)
	if err != nil {
		return nil, nil, fmt.Errorf("seat %s river: %w", s.Name, err)
	}
	return game.NewHand(hand...), game.NewRiver(river...), nil
}

func tokens(tiles []tile.Tile) []string {
	ret := make([]string, 0, len(tiles))
	for _, t := range tiles {
		ret = append(ret, t.String())
	}
	return ret
}
