package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/event"
	"github.com/ratel-online/mahjong/tile"
	log "github.com/sirupsen/logrus"
)

type Result struct {
	Winner string
	Tile   tile.Tile
	Tsumo  bool
	// Exhausted is set when the wall ran out without a winner.
	Exhausted bool
	Turns     int
}

func (r Result) String() string {
	switch {
	case r.Exhausted:
		return fmt.Sprintf("Wall exhausted after %d turns, no winner.", r.Turns)
	case r.Tsumo:
		return fmt.Sprintf("%s wins by TSUMO on %s!", r.Winner, r.Tile)
	default:
		return fmt.Sprintf("%s wins by RON on %s!", r.Winner, r.Tile)
	}
}

type Game struct {
	players   *PlayerIterator
	wall      *Wall
	discarded *event.TileDiscardedEmitter
	declared  *event.WinDeclaredEmitter
}

func New(players []Player, wall *Wall) (*Game, error) {
	if len(players) < consts.MinSeats || len(players) > consts.MaxSeats {
		return nil, consts.ErrorsSeatsInvalid
	}
	seen := make(map[string]bool, len(players))
	for _, player := range players {
		if seen[player.Name()] {
			return nil, fmt.Errorf("duplicate seat name %q: %w", player.Name(), consts.ErrorsSeatsInvalid)
		}
		seen[player.Name()] = true
		if player.Hand().Size() > consts.HandSize {
			return nil, fmt.Errorf("seat %q holds %d tiles: %w", player.Name(), player.Hand().Size(), consts.ErrorsSeatsInvalid)
		}
		wall.Withdraw(player.Hand().Tiles())
		wall.Withdraw(player.River().Tiles())
	}
	discarded := event.NewTileDiscardedEmitter()
	return &Game{
		players:   newPlayerIterator(players, discarded),
		wall:      wall,
		discarded: discarded,
		declared:  event.NewWinDeclaredEmitter(),
	}, nil
}

func (g *Game) Players() *PlayerIterator {
	return g.players
}

func (g *Game) Wall() *Wall {
	return g.wall
}

func (g *Game) Discarded() *event.TileDiscardedEmitter {
	return g.discarded
}

func (g *Game) Declared() *event.WinDeclaredEmitter {
	return g.declared
}

// DealStartingTiles tops every seat up to a full hand. Resumed seats keep
// what they already hold.
func (g *Game) DealStartingTiles() error {
	var err error
	g.players.ForEach(func(player *PlayerController) {
		missing := consts.HandSize - player.Player().Hand().Size()
		if err != nil || missing <= 0 {
			return
		}
		var hand []tile.Tile
		hand, err = g.wall.Draw(missing)
		if err == nil {
			player.AddTiles(hand)
		}
	})
	return err
}

// Run plays turns until a seat wins, the wall runs out, or a seat fails to
// decide.
func (g *Game) Run(ctx context.Context) (Result, error) {
	turns := 0
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		turns++
		p := g.players.Current()
		drawn, err := p.TryTopDecking(g.wall)
		if errors.Is(err, consts.ErrorsWallExhausted) {
			log.Infof("[Game.Run] wall exhausted after %d turns", turns-1)
			return Result{Exhausted: true, Turns: turns - 1}, nil
		}
		if err != nil {
			return Result{}, err
		}
		log.Debugf("[Game.Run] turn %d: %s drew %s, wall %d", turns, p.Name(), drawn, g.wall.Size())

		tsumo, err := p.Tsumo(ctx)
		if err != nil {
			return Result{}, err
		}
		if tsumo {
			return g.declare(Result{Winner: p.Name(), Tile: drawn, Tsumo: true, Turns: turns}), nil
		}

		discarded, err := p.Discard(ctx)
		if err != nil {
			return Result{}, err
		}
		log.Debugf("[Game.Run] turn %d: %s discarded %s", turns, p.Name(), discarded)

		for _, other := range g.players.Others(p) {
			ron, err := other.Ron(ctx, discarded)
			if err != nil {
				return Result{}, err
			}
			if ron {
				return g.declare(Result{Winner: other.Name(), Tile: discarded, Turns: turns}), nil
			}
		}
		g.players.Next()
	}
}

func (g *Game) declare(result Result) Result {
	log.Infof("[Game.Run] %s", result)
	g.declared.Emit(event.WinDeclaredPayload{
		PlayerName: result.Winner,
		Tile:       result.Tile,
		Tsumo:      result.Tsumo,
	})
	return result
}
