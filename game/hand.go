package game

import (
	"sort"
	"sync"

	"github.com/ratel-online/mahjong/tile"
)

type Hand struct {
	sync.RWMutex
	tiles []tile.Tile
}

func NewHand(tiles ...tile.Tile) *Hand {
	h := &Hand{tiles: make([]tile.Tile, 0, 14)}
	h.AddTiles(tiles)
	return h
}

func (h *Hand) AddTiles(tiles []tile.Tile) {
	h.Lock()
	defer h.Unlock()
	h.tiles = append(h.tiles, tiles...)
	sort.Slice(h.tiles, func(i, j int) bool { return h.tiles[i] < h.tiles[j] })
}

// Tiles returns a sorted copy.
func (h *Hand) Tiles() []tile.Tile {
	h.RLock()
	defer h.RUnlock()
	tiles := make([]tile.Tile, len(h.tiles))
	copy(tiles, h.tiles)
	return tiles
}

func (h *Hand) Contains(t tile.Tile) bool {
	h.RLock()
	defer h.RUnlock()
	for _, tileInHand := range h.tiles {
		if tileInHand == t {
			return true
		}
	}
	return false
}

func (h *Hand) Count(t tile.Tile) int {
	h.RLock()
	defer h.RUnlock()
	count := 0
	for _, tileInHand := range h.tiles {
		if tileInHand == t {
			count++
		}
	}
	return count
}

func (h *Hand) Empty() bool {
	return h.Size() == 0
}

// RemoveTile removes a single copy and reports whether one was found.
func (h *Hand) RemoveTile(t tile.Tile) bool {
	h.Lock()
	defer h.Unlock()
	for index, tileInHand := range h.tiles {
		if tileInHand == t {
			h.tiles = append(h.tiles[:index], h.tiles[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	h.RLock()
	defer h.RUnlock()
	return len(h.tiles)
}

func (h *Hand) String() string {
	return tile.ToTileString(h.Tiles())
}
