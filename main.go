package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/confetti/internal/audio"
	"github.com/iburimskiy/confetti/internal/config"
	"github.com/iburimskiy/confetti/internal/game"
	"github.com/iburimskiy/confetti/internal/gate"
	"github.com/iburimskiy/confetti/internal/remote"
	"github.com/iburimskiy/confetti/internal/render"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	hash := flag.String("hash", "", "print the bcrypt hash of this password for gate.hash and exit")
	flag.Parse()

	if *hash != "" {
		h, err := gate.HashPassword(*hash)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(h)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	face, err := render.LoadFaceSource(cfg.Font)
	if err != nil {
		log.Printf("[main] %v, using the built-in font", err)
		if face, err = render.LoadFaceSource(""); err != nil {
			log.Fatal(err)
		}
	}

	player := audio.NewPlayer(cfg.Audio.Volume)
	_ = player.Init() // muted on failure
	opts := []game.Option{game.WithPlayer(player)}

	var srv *remote.Server
	if cfg.Remote.Listen != "" {
		srv = remote.NewServer(cfg.Remote.Listen, cfg.Remote.Backlog)
		opts = append(opts, game.WithCommands(srv.Commands()))
		go func() {
			if err := srv.ListenAndServe(); err != nil {
				log.Printf("[main] %v", err)
			}
		}()
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(cfg, face, opts...)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}

	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
