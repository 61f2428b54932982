package service

import (
	"context"
	"io"
	"time"

	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/game"
	"github.com/ratel-online/mahjong/model"
	"github.com/ratel-online/mahjong/player"
	"github.com/ratel-online/mahjong/render"
	"github.com/ratel-online/mahjong/ui"
	log "github.com/sirupsen/logrus"
)

const defaultName = "Player"

type Config struct {
	Name        string
	Seats       int
	Seed        int64
	Timeout     time.Duration
	MaxAttempts int
	// Resume seats the human with a saved hand and river.
	Resume *model.Seat
	// Wall replaces the seeded wall, mostly for replays.
	Wall *game.Wall
	// Save receives the human seat when the table stops without a result.
	Save func(model.Seat) error
}

// Play runs one table where the human seat talks over in and out.
func Play(ctx context.Context, cfg Config, in io.Reader, out io.Writer) (game.Result, error) {
	if cfg.Seats < consts.MinSeats || cfg.Seats > consts.MaxSeats {
		return game.Result{}, consts.ErrorsSeatsInvalid
	}
	var hand *game.Hand
	var river *game.River
	name := cfg.Name
	if cfg.Resume != nil {
		var err error
		hand, river, err = cfg.Resume.State()
		if err != nil {
			return game.Result{}, err
		}
		if name == "" {
			name = cfg.Resume.Name
		}
	}
	if name == "" {
		name = defaultName
	}
	human := player.ResumeHumanPlayer(name, hand, river, in, out, player.HumanOptions{
		Timeout:     cfg.Timeout,
		MaxAttempts: cfg.MaxAttempts,
	})
	defer human.Close()

	wall := cfg.Wall
	if wall == nil {
		wall = game.NewWall(cfg.Seed)
	}
	mahjong, err := game.New(player.CreatePlayers(cfg.Seats, human, cfg.Seed), wall)
	if err != nil {
		return game.Result{}, err
	}
	mahjong.Discarded().AddListener(human)
	mahjong.Declared().AddListener(human)

	output := ui.NewOutput(out)
	output.Println(render.Welcome(name))
	if err := mahjong.DealStartingTiles(); err != nil {
		return game.Result{}, err
	}
	log.Infof("[Play] %s seated with %d seats, wall %d", name, cfg.Seats, mahjong.Wall().Size())

	result, err := mahjong.Run(ctx)
	if err != nil {
		log.Errorf("[Play] %s: %v", name, err)
		if cfg.Save != nil {
			if saveErr := cfg.Save(human.Snapshot()); saveErr != nil {
				log.Errorf("[Play] save %s: %v", name, saveErr)
			} else {
				log.Infof("[Play] %s saved", name)
			}
		}
		return game.Result{}, err
	}
	output.Println(result.String())
	return result, nil
}
