package main

import (
	"encoding/gob"
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ludo/model"
	"github.com/zucenko/ludo/server"
)

// watch prints every state of a running game as text.
func main() {
	addr := flag.String("addr", "localhost:8080", "game server address")
	flag.Parse()

	u := url.URL{Scheme: "ws", Host: *addr, Path: server.URI_WS}
	con, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatalf("dial %s: %v", u.String(), err)
	}
	defer con.Close()

	var board *model.Board
	for {
		_, r, err := con.NextReader()
		if err != nil {
			log.Fatalf("read: %v", err)
		}
		var msg model.ServerMessage
		if err := gob.NewDecoder(r).Decode(&msg); err != nil {
			log.Fatalf("decode: %v", err)
		}
		if len(msg.Setup) > 0 {
			board = &msg.Setup[0]
		}
		if board == nil {
			log.Warn("state before setup, skipping")
			continue
		}
		for _, s := range msg.States {
			// clear screen, cursor home
			fmt.Fprint(os.Stdout, "\033[H\033[2J")
			fmt.Fprint(os.Stdout, model.Render(board, s))
		}
	}
}
