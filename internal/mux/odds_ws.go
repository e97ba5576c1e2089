package mux

import (
	"dicepoker-server/pkg/dicepoker/odds"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10

// oddsMessage is the format we expect from the JS client
type oddsMessage struct {
	Player   []interface{} `json:"player"`
	Opponent []interface{} `json:"opponent"`
	// Context will be passed back on the response
	Context string `json:"context"`
}

// wsResponse is sent for every message received
// Key is "odds" on success and "error" when the dice are invalid
type wsResponse struct {
	Key     string      `json:"key"`
	Value   string      `json:"value,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Context string      `json:"context,omitempty"`
}

// oddsClient is a single websocket connection
type oddsClient struct {
	id   string
	conn *websocket.Conn
	send chan *wsResponse
}

func (m *Mux) getOddsWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	pongWait := m.config.pongWait
	pingPeriod := pongWait * 9 / 10

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			requestLogger(r).WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		client := &oddsClient{
			id:   uuid.New().String(),
			conn: conn,
			send: make(chan *wsResponse, 16),
		}

		log := requestLogger(r).WithField("client", client.id)
		log.Debug("client connected")

		writerDone := make(chan bool)
		go func() {
			defer close(writerDone)
			webSocketWriteLoop(client, pingPeriod, log)
		}()

		webSocketReadLoop(client, log)

		close(client.send)
		<-writerDone
		_ = conn.Close()
		log.Debug("client disconnected")
	}
}

func webSocketWriteLoop(client *oddsClient, pingPeriod time.Duration, log logrus.FieldLogger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = client.conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg, ok := <-client.send:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = client.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			if err := client.conn.WriteJSON(msg); err != nil {
				log.WithError(err).Error("could not write message")
				return
			}
		}
	}
}

func webSocketReadLoop(client *oddsClient, log logrus.FieldLogger) {
	for {
		var msg oddsMessage
		if err := client.conn.ReadJSON(&msg); err != nil {
			if isJSONError(err) {
				client.queue(&wsResponse{Key: "error", Value: "could not parse message"}, log)
				continue
			}

			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Error("could not read message")
			}

			return
		}

		client.queue(oddsResponse(&msg), log)
	}
}

// queue will queue a response without blocking the read loop
func (c *oddsClient) queue(msg *wsResponse, log logrus.FieldLogger) {
	select {
	case c.send <- msg:
	default:
		log.Warn("send buffer is full, dropping response")
	}
}

// isJSONError returns true if a message was received, but it was not valid
// A truncated message is reported as io.ErrUnexpectedEOF. If the connection dropped,
// the next read will fail as well and end the loop
func isJSONError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF)
}

func oddsResponse(msg *oddsMessage) *wsResponse {
	res, err := odds.ComputeValues(msg.Player, msg.Opponent)
	if err != nil {
		return &wsResponse{
			Key:     "error",
			Value:   err.Error(),
			Context: msg.Context,
		}
	}

	return &wsResponse{
		Key:     "odds",
		Data:    res,
		Context: msg.Context,
	}
}
