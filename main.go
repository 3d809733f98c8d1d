package main

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"jr/properties"
	"jr/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}

	addr := ":9000"
	if cfg, err := ini.Load("conf/config.ini"); err != nil {
		log.WithField("err", err).Warn("配置文件读取失败，使用默认地址")
	} else {
		addr = cfg.Section("server").Key("addr").MustString(":9000")
	}

	tables := properties.Load("conf/fluids.csv", "conf/materials.csv")

	s := server.NewServer(addr, upgrader, tables)
	s.Serve()
}
