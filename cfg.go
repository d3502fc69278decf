package main

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ludo/config"
	"github.com/zucenko/ludo/game"
	"github.com/zucenko/ludo/model"
	"github.com/zucenko/ludo/server"
)

// setup builds the controller from the configuration and, when asked for,
// starts a spectator feed next to the window.
func setup(ctx context.Context, cfg config.Config) (*game.Controller, error) {
	board, err := model.Load(cfg.BoardFile)
	if err != nil {
		return nil, err
	}
	opts := game.Options{
		TurnInterval: cfg.TurnInterval,
		StepInterval: cfg.StepInterval,
		Roller:       game.NewRandRoller(cfg.DieSeed()),
	}
	if cfg.SpectateAddr != "" {
		gameServer := server.NewGameServer(board)
		opts.OnCommit = gameServer.Publish
		go gameServer.Loop(ctx)
		go func() {
			log.Infof("spectators on %s%s", cfg.SpectateAddr, server.URI_WS)
			if err := http.ListenAndServe(cfg.SpectateAddr, gameServer.Router()); err != nil {
				log.Errorf("spectator feed: %v", err)
			}
		}()
	}
	return game.NewController(model.NewModel(board), opts), nil
}
