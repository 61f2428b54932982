package game

import (
	"context"
	"fmt"

	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/event"
	"github.com/ratel-online/mahjong/tile"
	"github.com/ratel-online/mahjong/win"
	log "github.com/sirupsen/logrus"
)

type PlayerController struct {
	player    Player
	discarded *event.TileDiscardedEmitter
}

func NewPlayerController(player Player, discarded *event.TileDiscardedEmitter) *PlayerController {
	if discarded == nil {
		discarded = event.NewTileDiscardedEmitter()
	}
	return &PlayerController{
		player:    player,
		discarded: discarded,
	}
}

func (c *PlayerController) Name() string {
	return c.player.Name()
}

func (c *PlayerController) Player() Player {
	return c.player
}

func (c *PlayerController) Hand() []tile.Tile {
	return c.player.Hand().Tiles()
}

func (c *PlayerController) AddTiles(tiles []tile.Tile) {
	c.player.Hand().AddTiles(tiles)
	c.player.NotifyTilesDrawn(tiles)
}

func (c *PlayerController) TryTopDecking(wall *Wall) (tile.Tile, error) {
	drawn, err := wall.DrawOne()
	if err != nil {
		return 0, err
	}
	c.AddTiles([]tile.Tile{drawn})
	return drawn, nil
}

// Discard asks the player for a tile, checks it is really held, then moves it
// from Hand to River.
func (c *PlayerController) Discard(ctx context.Context) (tile.Tile, error) {
	selected, err := c.player.ChooseToDiscard(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s discard: %w", c.Name(), err)
	}
	if !c.player.Hand().RemoveTile(selected) {
		log.Errorf("Cheat detected! Tile %s is not in %s's hand!", selected, c.Name())
		return 0, fmt.Errorf("%s discard %s: %w", c.Name(), selected, consts.ErrorsTileNotInHand)
	}
	c.player.River().Add(selected)
	c.discarded.Emit(event.TileDiscardedPayload{
		PlayerName: c.Name(),
		Tile:       selected,
	})
	return selected, nil
}

// Tsumo only asks when the hand is complete.
func (c *PlayerController) Tsumo(ctx context.Context) (bool, error) {
	if !win.CanWin(c.Hand()) {
		return false, nil
	}
	declared, err := c.player.ChooseToTsumo(ctx)
	if err != nil {
		return false, fmt.Errorf("%s tsumo: %w", c.Name(), err)
	}
	return declared, nil
}

// Ron only asks when the discard completes the hand.
func (c *PlayerController) Ron(ctx context.Context, discarded tile.Tile) (bool, error) {
	if !win.CanWin(append(c.Hand(), discarded)) {
		return false, nil
	}
	declared, err := c.player.ChooseToRon(ctx)
	if err != nil {
		return false, fmt.Errorf("%s ron: %w", c.Name(), err)
	}
	return declared, nil
}
