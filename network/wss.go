package network

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/mahjong/service"
	log "github.com/sirupsen/logrus"
)

type Websocket struct {
	addr string
	cfg  service.Config
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebsocketServer(addr string, cfg service.Config) Websocket {
	return Websocket{addr: addr, cfg: cfg}
}

func (w Websocket) Serve() error {
	log.Infof("Websocket server listening on %s", w.addr)
	return http.ListenAndServe(w.addr, w.Handler())
}

func (w Websocket) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", w.serveWs)
	return mux
}

func (w Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	if err := handle(protocol.NewWebsocketReadWriteCloser(conn), w.cfg); err != nil {
		log.Error(err)
	}
}
