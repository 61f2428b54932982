package event

import (
	"sync"

	"github.com/ratel-online/mahjong/tile"
)

type WinDeclaredPayload struct {
	PlayerName string
	Tile       tile.Tile
	Tsumo      bool
}

type WinDeclaredListener interface {
	OnWinDeclared(WinDeclaredPayload)
}

type WinDeclaredEmitter struct {
	sync.Mutex
	listeners []WinDeclaredListener
}

func NewWinDeclaredEmitter() *WinDeclaredEmitter {
	return &WinDeclaredEmitter{}
}

func (e *WinDeclaredEmitter) AddListener(listener WinDeclaredListener) {
	e.Lock()
	defer e.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *WinDeclaredEmitter) Emit(payload WinDeclaredPayload) {
	e.Lock()
	listeners := append([]WinDeclaredListener{}, e.listeners...)
	e.Unlock()
	for _, listener := range listeners {
		listener.OnWinDeclared(payload)
	}
}
