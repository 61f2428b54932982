package network

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/service"
	log "github.com/sirupsen/logrus"
)

const loginTimeout = 30 * time.Second

// seated maps the name of every live seat to its connection id.
var seated = hashmap.New()

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// handle seats one connection at its own table.
func handle(rwc protocol.ReadWriteCloser, cfg service.Config) error {
	c := network.Wrapper(rwc)
	defer func() {
		err := c.Close()
		if err != nil {
			log.Error(err)
		}
	}()
	log.Infof("new player connected from %s", c.IP())
	name, err := login(c)
	if err != nil {
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}
	if !seated.SetNX(name, c.ID()) {
		_ = c.Write(protocol.ErrorPacket(consts.ErrorsNameTaken))
		return consts.ErrorsNameTaken
	}
	defer seated.Del(name)
	log.Infof("player %s logged in, conn %d", name, c.ID())

	_, err = service.Play(context.Background(), seatConfig(cfg, c, name), &packetReader{conn: c}, packetWriter{conn: c})
	if err != nil {
		_ = c.Write(protocol.ErrorPacket(err))
	}
	return err
}

// login reads the seat name from the first packet.
func login(c *network.Conn) (string, error) {
	if err := c.Write(protocol.StringPacket("Name: ")); err != nil {
		return "", err
	}
	nameChan := make(chan string, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			close(nameChan)
			return
		}
		nameChan <- strings.TrimSpace(packet.String())
	})
	select {
	case name, ok := <-nameChan:
		if !ok || name == "" {
			return "", consts.ErrorsInputInvalid
		}
		return name, nil
	case <-time.After(loginTimeout):
		return "", consts.ErrorsTimeout
	}
}

// seatConfig gives every connection its own wall and bots.
func seatConfig(cfg service.Config, c *network.Conn, name string) service.Config {
	cfg.Name = name
	cfg.Seed += c.ID()
	return cfg
}

// packetReader streams inbound packets as text, one line per packet.
type packetReader struct {
	conn    *network.Conn
	pending []byte
}

func (r *packetReader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		packet, err := r.conn.Read()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return 0, io.EOF
			}
			return 0, err
		}
		r.pending = append([]byte(packet.String()), '\n')
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// packetWriter sends every write as one string packet.
type packetWriter struct {
	conn *network.Conn
}

func (w packetWriter) Write(p []byte) (int, error) {
	if err := w.conn.Write(protocol.StringPacket(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}
