package server

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"jr/calculator"
	"jr/model"
)

// Hub 负责一条连接上的请求分发和结果推送
// 前端消息类型：env 设置工艺参数，start 触发一次计算，stop 中止仿真

type Hub struct {
	c    calculator.Calculator
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	envSet  chan model.Msg
	started chan model.Msg
	stopped chan model.Msg
	failed  chan model.Msg
}

func NewHub() *Hub {
	return &Hub{
		msg:     make(chan model.Msg, 10),
		envSet:  make(chan model.Msg, 10),
		started: make(chan model.Msg, 10),
		stopped: make(chan model.Msg, 10),
		failed:  make(chan model.Msg, 10),
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.envSet:
			h.write(reply)
		case reply := <-h.started:
			if err := h.c.Run(); err != nil {
				h.failed <- model.Msg{Type: "failed", Content: err.Error()}
				break
			}
			data, err := json.Marshal(h.c.BuildData())
			if err != nil {
				log.Println("err: ", err)
				break
			}
			reply.Content = string(data)
			h.write(reply)
		case reply := <-h.stopped:
			h.write(reply)
		case reply := <-h.failed:
			h.write(reply)
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (h *Hub) write(reply model.Msg) {
	err := h.conn.WriteJSON(&reply)
	if err != nil {
		log.Println("err: ", err)
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			switch msg.Type {
			case "env":
				var env model.Env
				if err := json.Unmarshal([]byte(msg.Content), &env); err != nil {
					h.failed <- model.Msg{Type: "failed", Content: err.Error()}
					break
				}
				if err := h.c.SetEnv(env); err != nil {
					h.failed <- model.Msg{Type: "failed", Content: err.Error()}
					break
				}
				h.envSet <- model.Msg{Type: "envSet", Content: "env is set"}
			case "start":
				h.started <- model.Msg{Type: "started"}
			case "stop":
				// 请求侧直接发停止信号，响应侧可能正阻塞在计算里
				h.c.GetCalcHub().StopSignal()
				h.stopped <- model.Msg{Type: "stopped", Content: "stopped"}
			default:
				log.Println("no such type")
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}
