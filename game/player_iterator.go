package game

import "github.com/ratel-online/mahjong/event"

type PlayerIterator struct {
	players map[string]*PlayerController
	cycler  *Cycler
}

func newPlayerIterator(players []Player, discarded *event.TileDiscardedEmitter) *PlayerIterator {
	names := make([]string, 0, len(players))
	playerMap := make(map[string]*PlayerController, len(players))
	for _, player := range players {
		names = append(names, player.Name())
		playerMap[player.Name()] = NewPlayerController(player, discarded)
	}
	return &PlayerIterator{
		players: playerMap,
		cycler:  NewCycler(names),
	}
}

func (i *PlayerIterator) Current() *PlayerController {
	return i.players[i.cycler.Current()]
}

func (i *PlayerIterator) Next() *PlayerController {
	return i.players[i.cycler.Next()]
}

// ForEach visits seats in turn order starting from the first seat.
func (i *PlayerIterator) ForEach(function func(player *PlayerController)) {
	i.cycler.ForEach(func(name string) {
		function(i.players[name])
	})
}

// Others lists the seats after current, in turn order.
func (i *PlayerIterator) Others(current *PlayerController) []*PlayerController {
	names := i.cycler.elements
	start := 0
	for index, name := range names {
		if name == current.Name() {
			start = index
			break
		}
	}
	others := make([]*PlayerController, 0, len(names)-1)
	for offset := 1; offset < len(names); offset++ {
		others = append(others, i.players[names[(start+offset)%len(names)]])
	}
	return others
}
