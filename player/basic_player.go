package player

import (
	"github.com/ratel-online/mahjong/game"
)

type basicPlayer struct {
	name  string
	hand  *game.Hand
	river *game.River
}

// newBasicPlayer starts from empty state when hand or river is nil.
func newBasicPlayer(name string, hand *game.Hand, river *game.River) basicPlayer {
	if hand == nil {
		hand = game.NewHand()
	}
	if river == nil {
		river = game.NewRiver()
	}
	return basicPlayer{name: name, hand: hand, river: river}
}

func (p basicPlayer) Name() string {
	return p.name
}

func (p basicPlayer) Hand() *game.Hand {
	return p.hand
}

func (p basicPlayer) River() *game.River {
	return p.river
}
