// Package discord wires the session, command dispatch and the music
// manager together into a running bot.
package discord

import (
	"context"
	"fmt"
	"log"
	"sync"

	"shadebot/internal/config"
	"shadebot/internal/music"
	"shadebot/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// Bot is the running Discord bot.
type Bot struct {
	dg    *discordgo.Session
	cfg   *config.Config
	store *storage.Storage

	// The music manager needs the bot user ID, so it is built after the
	// session opens; interactions can already be flowing by then.
	mu    sync.RWMutex
	music *music.Manager
}

// musicManager returns the music manager, or nil while the bot is still
// starting up.
func (b *Bot) musicManager() *music.Manager {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.music
}

func (b *Bot) setMusicManager(m *music.Manager) {
	b.mu.Lock()
	b.music = m
	b.mu.Unlock()
}

// StartBot runs the bot until ctx is cancelled.
func StartBot(ctx context.Context, cfg *config.Config, store *storage.Storage) error {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b := &Bot{
		dg:    dg,
		cfg:   cfg,
		store: store,
	}

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsGuildMessages

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	// Open blocks until Ready, so the bot user ID is known here.
	m := music.New(dg, cfg.Lavalink, store)
	b.setMusicManager(m)
	dg.AddHandler(m.OnVoiceServerUpdate)
	dg.AddHandler(m.OnVoiceStateUpdate)
	defer m.Close()

	if err := m.Connect(ctx); err != nil {
		log.Println("[WARN] 🎵 Lavalink node unavailable at startup, music commands will fail until it recovers:", err)
	}
	go m.HealthLoop(ctx)

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}
