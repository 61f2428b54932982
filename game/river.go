package game

import (
	"sync"

	"github.com/ratel-online/mahjong/tile"
)

// River is a seat's discard history, oldest first. It only grows.
type River struct {
	sync.RWMutex
	tiles []tile.Tile
}

func NewRiver(tiles ...tile.Tile) *River {
	r := &River{tiles: make([]tile.Tile, 0, 24)}
	r.tiles = append(r.tiles, tiles...)
	return r
}

func (r *River) Add(t tile.Tile) {
	r.Lock()
	defer r.Unlock()
	r.tiles = append(r.tiles, t)
}

func (r *River) Tiles() []tile.Tile {
	r.RLock()
	defer r.RUnlock()
	tiles := make([]tile.Tile, len(r.tiles))
	copy(tiles, r.tiles)
	return tiles
}

// Top is the most recent discard, or zero when nothing was discarded.
func (r *River) Top() tile.Tile {
	r.RLock()
	defer r.RUnlock()
	if len(r.tiles) == 0 {
		return 0
	}
	return r.tiles[len(r.tiles)-1]
}

func (r *River) Size() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.tiles)
}

func (r *River) String() string {
	return tile.ToTileString(r.Tiles())
}
