package command

import (
	"log"

	"shadebot/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// logCommand records a command execution to storage, resolving channel and
// guild names from state where possible.
func logCommand(s *discordgo.Session, store *storage.Storage, e *discordgo.InteractionCreate, commandName string) error {
	user := ResolveUser(e)

	channelName := ""
	if channel, err := s.State.Channel(e.ChannelID); err == nil {
		channelName = channel.Name
	} else if channel, err := s.Channel(e.ChannelID); err == nil {
		channelName = channel.Name
	} else {
		log.Println("[WARN] Failed to fetch channel:", err)
	}

	guildName := ""
	if guild, err := s.State.Guild(e.GuildID); err == nil {
		guildName = guild.Name
	} else if guild, err := s.Guild(e.GuildID); err == nil {
		guildName = guild.Name
	} else {
		log.Println("[WARN] Failed to fetch guild:", err)
	}

	return store.AppendCommandToHistory(e.GuildID, storage.CommandHistoryRecord{
		ChannelID:   e.ChannelID,
		ChannelName: channelName,
		GuildName:   guildName,
		UserID:      user.ID,
		Username:    user.Username,
		Command:     commandName,
	})
}

// ResolveUser retrieves the invoking user from an interaction, whether it
// came from a guild (Member) or a DM (User).
func ResolveUser(e *discordgo.InteractionCreate) *discordgo.User {
	if e.Member != nil && e.Member.User != nil {
		return e.Member.User
	}
	if e.User != nil {
		return e.User
	}
	return &discordgo.User{ID: "unknown", Username: "Unknown"}
}
