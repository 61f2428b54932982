package ui

import (
	"bufio"
	"context"
	"io"
	"sync"

	"github.com/ratel-online/mahjong/consts"
)

// Input hands out whitespace-delimited tokens from one reader. A single
// scanner goroutine owns the reader for the Input's lifetime, so an abandoned
// Next never loses or reorders tokens.
type Input struct {
	reader io.Reader
	once   sync.Once
	tokens chan string
	err    error
	done   chan struct{}
	closed sync.Once
}

func NewInput(reader io.Reader) *Input {
	return &Input{
		reader: reader,
		tokens: make(chan string),
		done:   make(chan struct{}),
	}
}

func (in *Input) start() {
	go func() {
		defer close(in.tokens)
		scanner := bufio.NewScanner(in.reader)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			select {
			case in.tokens <- scanner.Text():
			case <-in.done:
				return
			}
		}
		in.err = scanner.Err()
	}()
}

// Next blocks for the next token. End of input is reported as
// consts.ErrorsInputExhausted on this and every later call.
func (in *Input) Next(ctx context.Context) (string, error) {
	in.once.Do(in.start)
	select {
	case <-in.done:
		return "", consts.ErrorsInputExhausted
	default:
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-in.done:
		return "", consts.ErrorsInputExhausted
	case text, ok := <-in.tokens:
		if !ok {
			if in.err != nil {
				return "", in.err
			}
			return "", consts.ErrorsInputExhausted
		}
		return text, nil
	}
}

// Close releases the scanner once it has a token nobody will read. A scanner
// blocked inside Read stays there until the reader itself is closed.
func (in *Input) Close() {
	in.closed.Do(func() { close(in.done) })
}
