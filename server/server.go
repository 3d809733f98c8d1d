package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"jr/calculator"
	"jr/model"
	"jr/properties"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	tables   *properties.Table
}

func NewServer(addr string, upgrader websocket.Upgrader, tables *properties.Table) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		tables:   tables,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	hub := NewHub()
	c := calculator.NewCalculator(s.tables)
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	hub.conn = conn
	hub.c = c
	defer conn.Close()
	var msg model.Msg
	go hub.handleRequest()
	go hub.handleResponse()
	for {
		err = conn.ReadJSON(&msg)
		if err != nil {
			log.Println("err: ", err)
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() {
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	log.WithField("addr", s.addr).Info("选型计算服务启动")
	err := http.ListenAndServe(s.addr, nil)
	if err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
