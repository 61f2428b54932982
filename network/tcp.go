package network

import (
	"errors"
	"net"

	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/mahjong/service"
	log "github.com/sirupsen/logrus"
)

type Tcp struct {
	addr string
	cfg  service.Config
}

func NewTcpServer(addr string, cfg service.Config) Tcp {
	return Tcp{addr: addr, cfg: cfg}
}

func (t Tcp) Serve() error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		log.Error(err)
		return err
	}
	log.Infof("Tcp server listening on %s", t.addr)
	return t.serve(listener)
}

func (t Tcp) serve(listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			log.Infof("listener.Accept err %v", err)
			continue
		}
		async.Async(func() {
			if err := handle(protocol.NewTcpReadWriteCloser(conn), t.cfg); err != nil {
				log.Error(err)
			}
		})
	}
}
