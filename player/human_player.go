package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/event"
	"github.com/ratel-online/mahjong/game"
	"github.com/ratel-online/mahjong/model"
	"github.com/ratel-online/mahjong/render"
	"github.com/ratel-online/mahjong/tile"
	"github.com/ratel-online/mahjong/ui"
	log "github.com/sirupsen/logrus"
)

type HumanOptions struct {
	// Timeout bounds each decision; zero waits forever.
	Timeout time.Duration
	// MaxAttempts caps rejected discard tokens per decision; zero is unbounded.
	MaxAttempts int
}

type HumanPlayer struct {
	basicPlayer
	input   *ui.Input
	output  *ui.Output
	options HumanOptions
	drawn   tile.Tile
}

func NewHumanPlayer(name string, input io.Reader, output io.Writer, options HumanOptions) *HumanPlayer {
	return ResumeHumanPlayer(name, nil, nil, input, output, options)
}

// ResumeHumanPlayer seats a human with an existing hand and river.
func ResumeHumanPlayer(name string, hand *game.Hand, river *game.River, input io.Reader, output io.Writer, options HumanOptions) *HumanPlayer {
	return &HumanPlayer{
		basicPlayer: newBasicPlayer(name, hand, river),
		input:       ui.NewInput(input),
		output:      ui.NewOutput(output),
		options:     options,
	}
}

func (p *HumanPlayer) ChooseToDiscard(ctx context.Context) (tile.Tile, error) {
	decision, cancel := p.decisionContext(ctx)
	defer cancel()
	for attempts := 1; ; attempts++ {
		p.output.Prompt(consts.PromptDiscard)
		token, err := p.next(ctx, decision)
		if err != nil {
			return 0, err
		}
		selected, err := tile.Parse(token)
		if err != nil {
			log.WithField("player", p.name).
				WithError(fmt.Errorf("%w%w", consts.ErrorsInputInvalid, err)).
				Debug("unparsable discard")
			p.output.Warnfln(consts.RejectInvalid, token)
		} else if p.hand.Contains(selected) {
			return selected, nil
		} else {
			log.WithField("player", p.name).WithField("tile", selected.String()).Debug("discard not in hand")
			p.output.Warnfln(consts.RejectNotInHand)
		}
		if p.options.MaxAttempts > 0 && attempts >= p.options.MaxAttempts {
			return 0, consts.ErrorsTooManyAttempts
		}
	}
}

func (p *HumanPlayer) ChooseToTsumo(ctx context.Context) (bool, error) {
	return p.confirm(ctx, consts.PromptTsumo)
}

func (p *HumanPlayer) ChooseToRon(ctx context.Context) (bool, error) {
	return p.confirm(ctx, consts.PromptRon)
}

func (p *HumanPlayer) NotifyTilesDrawn(drawnTiles []tile.Tile) {
	if len(drawnTiles) > 0 {
		p.drawn = drawnTiles[len(drawnTiles)-1]
	}
	p.output.Printfln("You drew %s", tile.ToTileString(drawnTiles))
	p.output.Println(render.Seat(p.name, p.hand.Tiles(), p.river.Tiles()))
}

func (p *HumanPlayer) OnTileDiscarded(payload event.TileDiscardedPayload) {
	if payload.PlayerName == p.name {
		return
	}
	p.output.Printfln("%s discarded %s", payload.PlayerName, payload.Tile.Paint())
}

func (p *HumanPlayer) OnWinDeclared(payload event.WinDeclaredPayload) {
	how := "RON"
	if payload.Tsumo {
		how = "TSUMO"
	}
	p.output.Printfln("%s declared %s on %s!", payload.PlayerName, how, payload.Tile.Paint())
}

// Snapshot saves the seat as it stood before this turn's draw. A tile drawn
// but not yet discarded goes back to the wall on resume.
func (p *HumanPlayer) Snapshot() model.Seat {
	seat := model.NewSeat(p)
	if p.hand.Size() > consts.HandSize && p.hand.Contains(p.drawn) {
		seat = seat.Without(p.drawn)
	}
	return seat
}

// Close stops reading for this seat.
func (p *HumanPlayer) Close() {
	p.input.Close()
}

// confirm answers yes unless the operator types n or no.
func (p *HumanPlayer) confirm(ctx context.Context, prompt string) (bool, error) {
	decision, cancel := p.decisionContext(ctx)
	defer cancel()
	p.output.Prompt(prompt)
	token, err := p.next(ctx, decision)
	if err != nil {
		return false, err
	}
	return !consts.NegativeAnswers[strings.ToLower(strings.TrimSpace(token))], nil
}

// next reads within the decision deadline, reporting the seat's own timeout
// apart from the caller giving up.
func (p *HumanPlayer) next(ctx, decision context.Context) (string, error) {
	token, err := p.input.Next(decision)
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return "", consts.ErrorsTimeout
	}
	return token, err
}

func (p *HumanPlayer) decisionContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.options.Timeout > 0 {
		return context.WithTimeout(ctx, p.options.Timeout)
	}
	return context.WithCancel(ctx)
}
