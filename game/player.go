package game

import (
	"context"

	"github.com/ratel-online/mahjong/tile"
)

// Player is one seat's decision surface. Hand and River belong to the seat;
// only the engine mutates them, acting on the decisions returned here.
type Player interface {
	Name() string
	Hand() *Hand
	River() *River
	// ChooseToDiscard returns a tile held in Hand at the time of return.
	ChooseToDiscard(ctx context.Context) (tile.Tile, error)
	ChooseToTsumo(ctx context.Context) (bool, error)
	ChooseToRon(ctx context.Context) (bool, error)
	NotifyTilesDrawn(drawnTiles []tile.Tile)
}
