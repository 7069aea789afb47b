package music

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/disgolink/v3/disgolink"
	"github.com/disgoorg/disgolink/v3/lavalink"
)

const embedColor = 0x2ecc71

// onTrackStart announces the new track in the guild's bound text channel,
// like the original now-playing message.
func (m *Manager) onTrackStart(player disgolink.Player, event lavalink.TrackStartEvent) {
	guildID := player.GuildID().String()
	channelID := m.textChannel(guildID)
	if channelID == "" {
		return
	}

	track := event.Track
	embed := &discordgo.MessageEmbed{
		Title:       "🎵 Now Playing",
		Description: fmt.Sprintf("**%s**\nby %s", track.Info.Title, track.Info.Author),
		Color:       embedColor,
	}
	if track.Info.URI != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Source", Value: fmt.Sprintf("[Link](%s)", *track.Info.URI), Inline: true,
		})
	}
	if !track.Info.IsStream {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Duration", Value: FormatDuration(track.Info.Length), Inline: true,
		})
	}

	if _, err := m.session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Println("[ERR] 🎵 Error sending now playing message:", err)
	}
}

// onTrackEnd advances the queue when the track finished naturally.
func (m *Manager) onTrackEnd(player disgolink.Player, event lavalink.TrackEndEvent) {
	if !event.Reason.MayStartNext() {
		return
	}

	guildID := player.GuildID().String()
	next, ok := m.state(guildID).queue.Next()
	if !ok {
		log.Printf("[INFO] 🎵 Queue finished in guild %s", guildID)
		return
	}
	if err := player.Update(context.Background(), lavalink.WithTrack(next)); err != nil {
		log.Printf("[ERR] 🎵 Failed to start next track in guild %s: %v", guildID, err)
	}
}

func (m *Manager) onTrackException(player disgolink.Player, event lavalink.TrackExceptionEvent) {
	log.Printf("[ERR] 🎵 Track exception in guild %s: %v", player.GuildID(), event.Exception)
}

func (m *Manager) onTrackStuck(player disgolink.Player, event lavalink.TrackStuckEvent) {
	guildID := player.GuildID().String()
	log.Printf("[WARN] 🎵 Track stuck in guild %s, skipping to next", guildID)

	next, ok := m.state(guildID).queue.Next()
	if !ok {
		return
	}
	if err := player.Update(context.Background(), lavalink.WithTrack(next)); err != nil {
		log.Printf("[ERR] 🎵 Failed to recover from stuck track in guild %s: %v", guildID, err)
	}
}

func (m *Manager) onWebSocketClosed(player disgolink.Player, event lavalink.WebSocketClosedEvent) {
	log.Printf("[WARN] 🎵 Voice websocket closed in guild %s: code=%d reason=%s byRemote=%v",
		player.GuildID(), event.Code, event.Reason, event.ByRemote)
}
