package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/zucenko/ludo/model"
)

// GameServer fans the committed game states out to websocket spectators.
// Sessions and last are only touched by Loop.
type GameServer struct {
	Board    *model.Board
	Sessions map[uuid.UUID]*SpectatorSession
	Joins    chan *SpectatorSession
	Leaves   chan uuid.UUID
	States   chan model.Snapshot
	Inspect  chan func()
	Upgrader *websocket.Upgrader
	Timeout  time.Duration

	last *model.Snapshot
}

type SpectatorSessionState int

const (
	SS_NEW SpectatorSessionState = iota + 1
	SS_WATCH
	SS_OVER
	SS_ERR
)

type SpectatorSession struct {
	State SpectatorSessionState
	Id    uuid.UUID
	Conn  *websocket.Conn
	// Quit is closed by the http handler once the connection is gone.
	Quit chan struct{}

	MessagesToSend chan model.ServerMessage

	DebugOutMessages int
	DebugDropped     int
	DebugLastPing    time.Time
	DebugPings       int
}
