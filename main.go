package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/logs"
	"github.com/ratel-online/mahjong/model"
	"github.com/ratel-online/mahjong/network"
	"github.com/ratel-online/mahjong/service"
	log "github.com/sirupsen/logrus"
)

type options struct {
	mode     string
	addr     string
	logLevel string
	resume   string
	save     string
	cfg      service.Config
}

func parseFlags(args []string) (options, error) {
	opts := options{}
	fs := flag.NewFlagSet("mahjong", flag.ContinueOnError)
	fs.StringVar(&opts.mode, "mode", consts.ModeLocal, "local, tcp or ws")
	fs.StringVar(&opts.addr, "addr", consts.DefaultAddr, "listen address for tcp and ws")
	fs.StringVar(&opts.logLevel, "log-level", "info", "logrus level")
	fs.StringVar(&opts.resume, "resume", "", "seat snapshot to resume the human seat from")
	fs.StringVar(&opts.save, "save", "", "where local mode saves the human seat when play stops early")
	fs.StringVar(&opts.cfg.Name, "name", "", "human seat name in local mode")
	fs.IntVar(&opts.cfg.Seats, "seats", consts.DefaultSeats, "seats at the table, human included")
	fs.Int64Var(&opts.cfg.Seed, "seed", time.Now().UnixNano(), "wall shuffle seed")
	fs.DurationVar(&opts.cfg.Timeout, "timeout", 0, "per-decision timeout, 0 picks the mode default")
	fs.IntVar(&opts.cfg.MaxAttempts, "max-attempts", 0, "rejected discards allowed per decision, 0 is unlimited")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	switch opts.mode {
	case consts.ModeLocal:
	case consts.ModeTcp, consts.ModeWebsocket:
		if opts.cfg.Timeout == 0 {
			opts.cfg.Timeout = consts.DecisionTimeout
		}
	default:
		return options{}, fmt.Errorf("%q: %w", opts.mode, consts.ErrorsModeInvalid)
	}
	if opts.cfg.Seats < consts.MinSeats || opts.cfg.Seats > consts.MaxSeats {
		return options{}, consts.ErrorsSeatsInvalid
	}
	return opts, nil
}

func loadSeat(path string) (*model.Seat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	seat, err := model.ReadSeat(f)
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func saveSeat(path string) func(model.Seat) error {
	return func(seat model.Seat) error {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return seat.Write(f)
	}
}

func run(opts options) error {
	if opts.resume != "" {
		seat, err := loadSeat(opts.resume)
		if err != nil {
			return err
		}
		opts.cfg.Resume = seat
	}
	switch opts.mode {
	case consts.ModeTcp:
		return network.NewTcpServer(opts.addr, opts.cfg).Serve()
	case consts.ModeWebsocket:
		return network.NewWebsocketServer(opts.addr, opts.cfg).Serve()
	}
	if opts.save != "" {
		opts.cfg.Save = saveSeat(opts.save)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	_, err := service.Play(ctx, opts.cfg, os.Stdin, os.Stdout)
	return err
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			async.PrintStackTrace(err)
			os.Exit(1)
		}
	}()
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := logs.Setup(opts.logLevel, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
