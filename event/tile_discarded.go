package event

import (
	"sync"

	"github.com/ratel-online/mahjong/tile"
)

type TileDiscardedPayload struct {
	PlayerName string
	Tile       tile.Tile
}

type TileDiscardedListener interface {
	OnTileDiscarded(TileDiscardedPayload)
}

// TileDiscardedEmitter fans a discard out to every seat at one table.
type TileDiscardedEmitter struct {
	sync.Mutex
	listeners []TileDiscardedListener
}

func NewTileDiscardedEmitter() *TileDiscardedEmitter {
	return &TileDiscardedEmitter{}
}

func (e *TileDiscardedEmitter) AddListener(listener TileDiscardedListener) {
	e.Lock()
	defer e.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *TileDiscardedEmitter) Emit(payload TileDiscardedPayload) {
	e.Lock()
	listeners := append([]TileDiscardedListener{}, e.listeners...)
	e.Unlock()
	for _, listener := range listeners {
		listener.OnTileDiscarded(payload)
	}
}
