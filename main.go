package main

import (
	"context"

	"github.com/hajimehoshi/ebiten"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ludo/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := config.SetupLogging(cfg); err != nil {
		log.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	controller, err := setup(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	theGame := NewGame(controller)
	width, height := theGame.ScreenSize()
	err = ebiten.Run(theGame.update, width, height, cfg.Scale, "Ludo")
	controller.Stop()
	if err != nil {
		log.Fatal(err)
	}
}
