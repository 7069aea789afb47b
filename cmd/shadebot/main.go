package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "shadebot/internal/command/core"
	_ "shadebot/internal/command/games"
	_ "shadebot/internal/command/music"

	"shadebot/internal/config"
	"shadebot/internal/discord"
	"shadebot/internal/storage"
	v "shadebot/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v %v...", v.AppName, v.Version)

	ctx, cancel := context.WithCancel(context.Background())

	cfg := config.New()

	store, err := storage.New(ctx, cfg.StoragePath)
	if err != nil {
		cancel()
		log.Fatal(err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := discord.StartBot(ctx, cfg, store); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...", s)
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
	}

	// Storage Close flushes to disk and requires the context cancelled
	// first; wait for the bot so nothing writes during the flush.
	cancel()
	<-errCh
	if err := store.Close(); err != nil {
		log.Println("[ERR] Failed to close storage:", err)
	}

	log.Printf("[INFO] %v exited cleanly", v.AppName)
}
