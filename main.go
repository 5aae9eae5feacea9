package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/deitrix/ttytris/game"
	"github.com/deitrix/ttytris/sound"
	"github.com/deitrix/ttytris/term"
)

func main() {
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	player, err := sound.Open()
	if err != nil {
		log.Printf("sound disabled: %v", err)
	}
	defer player.Close()

	screen, err := term.Open()
	if err != nil {
		log.Fatalf("failed to open terminal: %v", err)
	}

	if err := run(ctx, screen, game.New(), player.Handle, os.Stdout); err != nil {
		log.Fatalf("game failed: %v", err)
	}
}

// run plays g on screen until the game is over or the player interrupts it, restores the
// terminal, and writes the final board and score to out.
func run(ctx context.Context, screen *term.Screen, g *game.Game, onOutcome func(game.Outcome), out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	screen.OnInterrupt(cancel)

	loop := &game.Loop{
		Game:      g,
		Input:     screen,
		Renderer:  screen,
		OnOutcome: onOutcome,
	}
	err := loop.Run(ctx)
	screen.Close()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err := g.WriteSummary(out); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
