package game

import (
	"math/rand"

	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/tile"
)

// Wall is the shuffled stock tiles are drawn from.
type Wall struct {
	tiles []tile.Tile
}

func NewWall(seed int64) *Wall {
	wall := &Wall{}
	fillWall(wall)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(wall.tiles), func(i, j int) { wall.tiles[i], wall.tiles[j] = wall.tiles[j], wall.tiles[i] })
	return wall
}

// NewStackedWall draws tiles in the given order.
func NewStackedWall(tiles []tile.Tile) *Wall {
	return &Wall{tiles: append([]tile.Tile{}, tiles...)}
}

func (w *Wall) NoTiles() bool {
	return len(w.tiles) == 0
}

func (w *Wall) Size() int {
	return len(w.tiles)
}

func (w *Wall) DrawOne() (tile.Tile, error) {
	tiles, err := w.Draw(1)
	if err != nil {
		return 0, err
	}
	return tiles[0], nil
}

func (w *Wall) Draw(amount int) ([]tile.Tile, error) {
	if amount > len(w.tiles) {
		return nil, consts.ErrorsWallExhausted
	}
	tiles := w.tiles[0:amount]
	w.tiles = w.tiles[amount:]
	return tiles, nil
}

func fillWall(wall *Wall) {
	tiles := make([]tile.Tile, 0, 136)
	generate := func(suit, num, count int) []tile.Tile {
		ret := make([]tile.Tile, 0, num*count)
		for i := 0; i < count; i++ {
			for j := 1; j <= num; j++ {
				t, _ := tile.New(suit, j)
				ret = append(ret, t)
			}
		}
		return ret
	}
	tiles = append(tiles, generate(tile.MAN, 9, 4)...)
	tiles = append(tiles, generate(tile.PIN, 9, 4)...)
	tiles = append(tiles, generate(tile.SOU, 9, 4)...)
	tiles = append(tiles, generate(tile.HONOR, 7, 4)...)
	wall.tiles = tiles
}

// Withdraw takes tiles that are already held elsewhere out of the stock.
func (w *Wall) Withdraw(tiles []tile.Tile) {
	for _, t := range tiles {
		for index, candidate := range w.tiles {
			if candidate == t {
				w.tiles = append(w.tiles[:index], w.tiles[index+1:]...)
				break
			}
		}
	}
}
