package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ludo/config"
	"github.com/zucenko/ludo/game"
	"github.com/zucenko/ludo/model"
	"github.com/zucenko/ludo/server"
)

// Headless game: the turn loop runs without a window and the state is only
// visible through the spectator feed.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}
	if err := config.SetupLogging(cfg); err != nil {
		log.Fatalln(err)
	}
	board, err := model.Load(cfg.BoardFile)
	if err != nil {
		log.Fatalln(err)
	}

	gameServer := server.NewGameServer(board)
	controller := game.NewController(model.NewModel(board), game.Options{
		TurnInterval: cfg.TurnInterval,
		StepInterval: cfg.StepInterval,
		Roller:       game.NewRandRoller(cfg.DieSeed()),
		OnCommit:     gameServer.Publish,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	go gameServer.Loop(ctx)

	httpServer := &http.Server{Addr: cfg.Addr, Handler: gameServer.Router()}
	go func() {
		<-ctx.Done()
		controller.Stop()
		httpServer.Close()
	}()

	controller.Start()
	log.Infof("spectators on %s%s", cfg.Addr, server.URI_WS)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalln(err)
	}
}
