package main

import (
	"log"
	"os"

	"github.com/deitrix/ttytris/game"
	"github.com/deitrix/ttytris/sound"
	"github.com/deitrix/ttytris/sprite"
	"github.com/deitrix/ttytris/window"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	if err := sprite.Load(); err != nil {
		log.Fatalf("failed to load sprites: %v", err)
	}

	player, err := sound.Open()
	if err != nil {
		log.Printf("sound disabled: %v", err)
	}
	defer player.Close()

	g := game.New()
	w, err := window.New(g)
	if err != nil {
		log.Fatalf("failed to create window: %v", err)
	}
	w.OnOutcome = player.Handle

	ebiten.SetWindowTitle("ttytris")
	ebiten.SetWindowSize(window.Size())
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(w); err != nil {
		log.Fatalf("failed to run game: %v", err)
	}
	if err := g.WriteSummary(os.Stdout); err != nil {
		log.Fatalf("failed to write summary: %v", err)
	}
}
