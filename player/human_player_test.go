package player_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/game"
	"github.com/ratel-online/mahjong/player"
	"github.com/ratel-online/mahjong/tile"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func handOf(tokens ...string) *game.Hand {
	hand := game.NewHand()
	for _, token := range tokens {
		hand.AddTiles([]tile.Tile{tile.MustParse(token)})
	}
	return hand
}

func newHuman(hand *game.Hand, input string, out io.Writer) *player.HumanPlayer {
	return player.ResumeHumanPlayer("Alice", hand, nil, strings.NewReader(input), out, player.HumanOptions{})
}

func TestChooseToDiscard(t *testing.T) {
	t.Run("Retries until the tile is in hand", func(t *testing.T) {
		out := &bytes.Buffer{}
		human := newHuman(handOf("1p", "2p", "3p"), "5s\n2p\n", out)

		selected, err := human.ChooseToDiscard(context.Background())
		require.NoError(t, err)
		require.Equal(t, tile.MustParse("2p"), selected)
		require.Equal(t,
			consts.PromptDiscard+consts.RejectNotInHand+"\n"+consts.PromptDiscard,
			out.String())
	})

	t.Run("Returns immediately when the first token is in hand", func(t *testing.T) {
		out := &bytes.Buffer{}
		human := newHuman(handOf("9m"), "9m", out)

		selected, err := human.ChooseToDiscard(context.Background())
		require.NoError(t, err)
		require.Equal(t, tile.MustParse("9m"), selected)
		require.Equal(t, consts.PromptDiscard, out.String())
	})

	t.Run("Re-prompts on a malformed token", func(t *testing.T) {
		out := &bytes.Buffer{}
		human := newHuman(handOf("1p", "2p", "3p"), "banana 3p", out)

		selected, err := human.ChooseToDiscard(context.Background())
		require.NoError(t, err)
		require.Equal(t, tile.MustParse("3p"), selected)
		require.Equal(t,
			consts.PromptDiscard+fmt.Sprintf(consts.RejectInvalid, "banana")+"\n"+consts.PromptDiscard,
			out.String())
	})

	t.Run("Does not touch hand or river", func(t *testing.T) {
		hand := handOf("1p", "1p", "2p")
		human := newHuman(hand, "1p", io.Discard)

		_, err := human.ChooseToDiscard(context.Background())
		require.NoError(t, err)
		require.Equal(t, 3, hand.Size())
		require.Equal(t, 2, hand.Count(tile.MustParse("1p")))
		require.Zero(t, human.River().Size())
	})

	t.Run("Consumes only the tokens up to the accepted one", func(t *testing.T) {
		human := newHuman(handOf("1p", "2p", "3p"), "5s 2p n", io.Discard)

		_, err := human.ChooseToDiscard(context.Background())
		require.NoError(t, err)
		tsumo, err := human.ChooseToTsumo(context.Background())
		require.NoError(t, err)
		require.False(t, tsumo)
	})

	t.Run("Fails when input runs out", func(t *testing.T) {
		human := newHuman(handOf("1p"), "5s 6s", io.Discard)

		_, err := human.ChooseToDiscard(context.Background())
		require.ErrorIs(t, err, consts.ErrorsInputExhausted)

		_, err = human.ChooseToDiscard(context.Background())
		require.ErrorIs(t, err, consts.ErrorsInputExhausted)
	})

	t.Run("Stops when the caller cancels", func(t *testing.T) {
		reader, writer := io.Pipe()
		defer writer.Close()
		human := player.ResumeHumanPlayer("Alice", handOf("1p"), nil, reader, io.Discard, player.HumanOptions{})

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()
		_, err := human.ChooseToDiscard(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Times out a silent operator", func(t *testing.T) {
		reader, writer := io.Pipe()
		defer writer.Close()
		human := player.ResumeHumanPlayer("Alice", handOf("1p"), nil, reader, io.Discard,
			player.HumanOptions{Timeout: 10 * time.Millisecond})

		_, err := human.ChooseToDiscard(context.Background())
		require.ErrorIs(t, err, consts.ErrorsTimeout)
	})

	t.Run("Keeps a token that arrives after a cancelled decision", func(t *testing.T) {
		reader, writer := io.Pipe()
		defer writer.Close()
		human := player.ResumeHumanPlayer("Alice", handOf("1p"), nil, reader, io.Discard, player.HumanOptions{})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err := human.ChooseToDiscard(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)

		go func() { _, _ = writer.Write([]byte("1p\n")) }()
		selected, err := human.ChooseToDiscard(context.Background())
		require.NoError(t, err)
		require.Equal(t, tile.MustParse("1p"), selected)
	})

	t.Run("Gives up after the attempt cap", func(t *testing.T) {
		human := player.ResumeHumanPlayer("Alice", handOf("2p"), nil, strings.NewReader("5s 6s 2p"), io.Discard,
			player.HumanOptions{MaxAttempts: 2})

		_, err := human.ChooseToDiscard(context.Background())
		require.ErrorIs(t, err, consts.ErrorsTooManyAttempts)
	})
}

func TestChooseToDiscardMembership(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	pool := []string{"1m", "5m", "9m", "1p", "2p", "3p", "5s", "7s", "1z", "7z", "xx", "10p"}

	for round := 0; round < 200; round++ {
		handTokens := []string{pool[r.Intn(10)], pool[r.Intn(10)], pool[r.Intn(10)]}
		hand := handOf(handTokens...)

		var inputs []string
		for i := r.Intn(5); i > 0; i-- {
			candidate := pool[r.Intn(len(pool))]
			if parsed, err := tile.Parse(candidate); err == nil && hand.Contains(parsed) {
				continue
			}
			inputs = append(inputs, candidate)
		}
		valid := handTokens[r.Intn(len(handTokens))]
		inputs = append(inputs, valid)

		out := &bytes.Buffer{}
		human := newHuman(hand, strings.Join(inputs, " "), out)
		selected, err := human.ChooseToDiscard(context.Background())

		require.NoError(t, err)
		require.True(t, hand.Contains(selected))
		require.Equal(t, tile.MustParse(valid), selected)
		assert.Equal(t, len(inputs), strings.Count(out.String(), consts.PromptDiscard))
		assert.Equal(t, len(inputs)-1, strings.Count(out.String(), "choose another."))
	}
}

func TestChooseToTsumoAndRon(t *testing.T) {
	scenarios := []struct {
		description    string
		token          string
		expectedResult bool
	}{
		{description: "n_declines", token: "n", expectedResult: false},
		{description: "no_declines", token: "no", expectedResult: false},
		{description: "upper_case_declines", token: "N", expectedResult: false},
		{description: "mixed_case_declines", token: "No", expectedResult: false},
		{description: "yes_accepts", token: "yes", expectedResult: true},
		{description: "y_accepts", token: "y", expectedResult: true},
		{description: "anything_accepts", token: "anything", expectedResult: true},
		{description: "nope_accepts", token: "nope", expectedResult: true},
	}

	for _, scenario := range scenarios {
		t.Run("tsumo_"+scenario.description, func(t *testing.T) {
			out := &bytes.Buffer{}
			human := newHuman(nil, scenario.token, out)
			result, err := human.ChooseToTsumo(context.Background())
			require.NoError(t, err)
			require.Equal(t, scenario.expectedResult, result)
			require.Equal(t, consts.PromptTsumo, out.String())
		})
		t.Run("ron_"+scenario.description, func(t *testing.T) {
			out := &bytes.Buffer{}
			human := newHuman(nil, scenario.token, out)
			result, err := human.ChooseToRon(context.Background())
			require.NoError(t, err)
			require.Equal(t, scenario.expectedResult, result)
			require.Equal(t, consts.PromptRon, out.String())
		})
	}
}

func TestConfirmFailsOnExhaustedInput(t *testing.T) {
	human := newHuman(nil, "", io.Discard)
	_, err := human.ChooseToRon(context.Background())
	require.ErrorIs(t, err, consts.ErrorsInputExhausted)
}

func TestConstruction(t *testing.T) {
	t.Run("Starts from empty state", func(t *testing.T) {
		human := player.NewHumanPlayer("Alice", strings.NewReader(""), io.Discard, player.HumanOptions{})
		require.Equal(t, "Alice", human.Name())
		require.True(t, human.Hand().Empty())
		require.Zero(t, human.River().Size())
	})

	t.Run("Keeps resumed state", func(t *testing.T) {
		hand := handOf("1m", "2m")
		river := game.NewRiver(tile.MustParse("7z"))
		human := player.ResumeHumanPlayer("Alice", hand, river, strings.NewReader(""), io.Discard, player.HumanOptions{})
		require.Same(t, hand, human.Hand())
		require.Same(t, river, human.River())
	})
}

func TestNotifications(t *testing.T) {
	out := &bytes.Buffer{}
	human := newHuman(handOf("1m"), "", out)
	human.NotifyTilesDrawn([]tile.Tile{tile.MustParse("4s")})
	require.Contains(t, out.String(), "You drew 4s")
	require.Contains(t, out.String(), "Hand:  1m")
}

func TestChooseToDiscardClassifiesMalformedTokens(t *testing.T) {
	hook := logtest.NewGlobal()
	level := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	defer func() {
		log.SetLevel(level)
		log.StandardLogger().ReplaceHooks(make(log.LevelHooks))
	}()

	human := newHuman(handOf("3p"), "banana 3p", io.Discard)
	_, err := human.ChooseToDiscard(context.Background())
	require.NoError(t, err)

	var rejected []*log.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Message == "unparsable discard" {
			rejected = append(rejected, entry)
		}
	}
	require.Len(t, rejected, 1)
	cause, ok := rejected[0].Data[log.ErrorKey].(error)
	require.True(t, ok)
	require.ErrorIs(t, cause, consts.ErrorsInputInvalid)
	require.ErrorIs(t, cause, tile.ErrInvalidTile)
}

func TestSnapshot(t *testing.T) {
	tokens := strings.Fields("1m 4m 7m 1p 4p 7p 1s 4s 7s 1z 2z 3z 4z")

	t.Run("Returns the tile drawn this turn", func(t *testing.T) {
		human := newHuman(handOf(tokens...), "", io.Discard)
		drawn := []tile.Tile{tile.MustParse("5s")}
		human.Hand().AddTiles(drawn)
		human.NotifyTilesDrawn(drawn)

		seat := human.Snapshot()
		require.Equal(t, "Alice", seat.Name)
		require.Len(t, seat.Hand, consts.HandSize)
		require.NotContains(t, seat.Hand, "5s")
	})

	t.Run("Keeps a full hand between turns", func(t *testing.T) {
		human := newHuman(handOf(tokens...), "", io.Discard)
		human.NotifyTilesDrawn([]tile.Tile{tile.MustParse("1m")})

		seat := human.Snapshot()
		require.Len(t, seat.Hand, consts.HandSize)
		require.Contains(t, seat.Hand, "1m")
	})
}

func TestClose(t *testing.T) {
	human := newHuman(handOf("1p"), "5s 1p", io.Discard)
	human.Close()
	_, err := human.ChooseToDiscard(context.Background())
	require.ErrorIs(t, err, consts.ErrorsInputExhausted)
}
