package player

import (
	"context"

	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/game"
	"github.com/ratel-online/mahjong/tile"
)

// naivePlayer throws away whatever it just drew and takes every win offered.
type naivePlayer struct {
	basicPlayer
	lastDrawn tile.Tile
}

func NewNaivePlayer(name string) game.Player {
	return &naivePlayer{basicPlayer: newBasicPlayer(name, nil, nil)}
}

func (p *naivePlayer) ChooseToDiscard(ctx context.Context) (tile.Tile, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if p.lastDrawn != 0 && p.hand.Contains(p.lastDrawn) {
		return p.lastDrawn, nil
	}
	tiles := p.hand.Tiles()
	if len(tiles) == 0 {
		return 0, consts.ErrorsTileNotInHand
	}
	return tiles[len(tiles)-1], nil
}

func (p *naivePlayer) ChooseToTsumo(ctx context.Context) (bool, error) {
	return true, ctx.Err()
}

func (p *naivePlayer) ChooseToRon(ctx context.Context) (bool, error) {
	return true, ctx.Err()
}

func (p *naivePlayer) NotifyTilesDrawn(drawnTiles []tile.Tile) {
	if len(drawnTiles) > 0 {
		p.lastDrawn = drawnTiles[len(drawnTiles)-1]
	}
}
