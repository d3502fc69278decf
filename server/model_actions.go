package server

import (
	"context"
	"encoding/gob"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ludo/model"
)

func NewGameServer(board *model.Board) *GameServer {
	return &GameServer{
		Board:    board,
		Sessions: make(map[uuid.UUID]*SpectatorSession),
		Joins:    make(chan *SpectatorSession),
		Leaves:   make(chan uuid.UUID),
		States:   make(chan model.Snapshot, 64),
		Inspect:  make(chan func()),
		Upgrader: &websocket.Upgrader{},
		Timeout:  200 * time.Millisecond,
	}
}

// Publish hands a state to Loop without blocking the caller.
func (s *GameServer) Publish(snap model.Snapshot) {
	select {
	case s.States <- snap:
	default:
		log.Warn("GameServer.Publish States FULL, dropping turn ", snap.Turn)
	}
}

func (s *GameServer) Loop(ctx context.Context) {
	log.Info("GameServer.Loop starting")
	for {
		select {
		case <-ctx.Done():
			log.Info("GameServer.Loop ended")
			return
		case ps := <-s.Joins:
			s.Sessions[ps.Id] = ps
			log.Infof("GameServer.Loop join %v, %d watching", ps.Id, len(s.Sessions))
			msg := model.ServerMessage{Setup: []model.Board{*s.Board}}
			if s.last != nil {
				msg.States = []model.Snapshot{*s.last}
			}
			s.send(ps, msg)
		case id := <-s.Leaves:
			delete(s.Sessions, id)
			log.Infof("GameServer.Loop leave %v, %d watching", id, len(s.Sessions))
		case snap := <-s.States:
			s.last = &snap
			msg := model.ServerMessage{States: []model.Snapshot{snap}}
			for _, ps := range s.Sessions {
				s.send(ps, msg)
			}
		case f := <-s.Inspect:
			f()
		}
	}
}

func (s *GameServer) send(ps *SpectatorSession, msg model.ServerMessage) {
	select {
	case ps.MessagesToSend <- msg:
	default:
		ps.DebugDropped++
		log.Warnf("GameServer.send %v MessagesToSend FULL, dropped %d", ps.Id, ps.DebugDropped)
	}
}

// do runs f on the Loop goroutine.
func (s *GameServer) do(ctx context.Context, f func()) bool {
	done := make(chan struct{})
	select {
	case s.Inspect <- func() { f(); close(done) }:
	case <-ctx.Done():
		return false
	}
	<-done
	return true
}

// Last returns the latest published state.
func (s *GameServer) Last(ctx context.Context) (snap model.Snapshot, found bool) {
	s.do(ctx, func() {
		if s.last != nil {
			snap, found = *s.last, true
		}
	})
	return
}

// Spectators returns how many sessions are watching.
func (s *GameServer) Spectators(ctx context.Context) (n int) {
	s.do(ctx, func() { n = len(s.Sessions) })
	return
}

func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("HandleHttpCall websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		ps := &SpectatorSession{
			State:          SS_NEW,
			Id:             uuid.New(),
			Conn:           con,
			Quit:           make(chan struct{}),
			MessagesToSend: make(chan model.ServerMessage, 16),
		}
		con.SetPingHandler(
			func(message string) error {
				err := con.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
				ps.DebugLastPing = time.Now()
				ps.DebugPings++
				if err == websocket.ErrCloseSent {
					return nil
				} else if e, ok := err.(net.Error); ok && e.Timeout() {
					return nil
				}
				return err
			})

		select {
		case s.Joins <- ps:
			ps.State = SS_WATCH
		case <-time.After(s.Timeout):
			log.Warn("HandleHttpCall Joins TIMEOUTED")
			con.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "busy"),
				time.Now().Add(time.Second))
			return
		}

		go ps.LoopChannelWrite()
		ps.State = ps.LoopChannelRead()
		close(ps.Quit)

		select {
		case s.Leaves <- ps.Id:
		case <-time.After(s.Timeout):
			log.Warnf("HandleHttpCall Leaves %v TIMEOUTED", ps.Id)
		}
	}
}

// LoopChannelRead discards whatever the spectator sends and returns once the
// connection is closed.
func (ps *SpectatorSession) LoopChannelRead() SpectatorSessionState {
	for {
		if _, _, err := ps.Conn.NextReader(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Infof("LoopChannelRead %v closed", ps.Id)
				return SS_OVER
			}
			log.Infof("LoopChannelRead %v err %v", ps.Id, err)
			return SS_ERR
		}
	}
}

// LoopChannelWrite is the only writer of data frames on the connection.
func (ps *SpectatorSession) LoopChannelWrite() {
	for {
		select {
		case <-ps.Quit:
			return
		case mes := <-ps.MessagesToSend:
			w, err := ps.Conn.NextWriter(websocket.BinaryMessage)
			if err != nil {
				log.Warnf("LoopChannelWrite %v cant get writer %v", ps.Id, err)
				ps.Conn.Close()
				return
			}
			if err = gob.NewEncoder(w).Encode(mes); err != nil {
				log.Warnf("LoopChannelWrite %v cant encode %v", ps.Id, err)
				ps.Conn.Close()
				return
			}
			if err = w.Close(); err != nil {
				log.Warnf("LoopChannelWrite %v cant flush %v", ps.Id, err)
				ps.Conn.Close()
				return
			}
			ps.DebugOutMessages++
		}
	}
}
