package main

import (
	"log"

	"pong/client"
	"pong/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Llongfile)

	assets, err := client.LoadAssets()
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := utils.ReadTOML("config.toml")
	if err != nil {
		log.Printf("no config.toml (%v), using defaults", err)
		cfg = utils.DefaultConfig()
	}

	ebiten.SetWindowSize(cfg.UI.Resolution.X, cfg.UI.Resolution.Y)
	ebiten.SetWindowTitle("Pong")

	if err := ebiten.RunGame(client.NewGame(assets)); err != nil {
		log.Fatal(err)
	}
}
