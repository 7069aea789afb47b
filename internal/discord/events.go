package discord

import (
	"fmt"
	"log"

	"shadebot/internal/version"

	"github.com/bwmarrin/discordgo"
)

// onReady sets the presence, syncs slash commands and pings the owner.
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] ✅ Logged in as %s", r.User.Username)

	err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status: string(discordgo.StatusDoNotDisturb),
		Activities: []*discordgo.Activity{
			{
				Name: "you from the shadows",
				Type: discordgo.ActivityTypeWatching,
			},
		},
	})
	if err != nil {
		log.Println("[WARN] Failed to set presence:", err)
	}

	b.syncCommands(r)
	b.notifyOwner(len(r.Guilds))
}

// syncCommands registers slash commands globally or per guild depending
// on configuration. Global sync takes up to an hour to propagate, so
// development setups point GUILD_ID at a test server instead.
func (b *Bot) syncCommands(r *discordgo.Ready) {
	if b.cfg.SyncGlobal {
		log.Println("[INFO] Syncing commands globally...")
		if err := b.registerCommands(""); err != nil {
			log.Println("[ERR] Global command sync failed:", err)
		}
		return
	}

	if b.cfg.GuildID != "" {
		if err := b.registerCommands(b.cfg.GuildID); err != nil {
			log.Printf("[ERR] Command sync failed for guild %s: %v", b.cfg.GuildID, err)
		}
		return
	}

	for _, g := range r.Guilds {
		if err := b.registerCommands(g.ID); err != nil {
			log.Printf("[ERR] Command sync failed for guild %s: %v", g.ID, err)
		}
	}
}

// notifyOwner DMs the configured owner that the bot came online.
func (b *Bot) notifyOwner(guildCount int) {
	ch, err := b.dg.UserChannelCreate(b.cfg.OwnerID)
	if err != nil {
		log.Println("[WARN] Failed to open owner DM channel:", err)
		return
	}
	msg := fmt.Sprintf("🕯️ %s %s is online. Guilds: %d, gateway latency: %dms.",
		version.AppName, version.Version, guildCount, b.dg.HeartbeatLatency().Milliseconds())
	if _, err := b.dg.ChannelMessageSend(ch.ID, msg); err != nil {
		log.Println("[WARN] Failed to DM owner:", err)
	}
}

// onGuildCreate syncs commands for guilds the bot joins after startup.
// Skipped when syncing globally, the global set already covers them.
func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Printf("[INFO] Bot added to guild: %s (%s)", g.Guild.ID, g.Guild.Name)
	if b.cfg.SyncGlobal || b.cfg.GuildID != "" {
		return
	}
	if err := b.registerCommands(g.Guild.ID); err != nil {
		log.Printf("[ERR] Failed to register commands for new guild %s: %v", g.Guild.ID, err)
	}
}
