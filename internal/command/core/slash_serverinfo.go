package core

import (
	"fmt"

	"shadebot/internal/command"

	"github.com/bwmarrin/discordgo"
)

type ServerInfoCommand struct{}

func (c *ServerInfoCommand) Name() string        { return "serverinfo" }
func (c *ServerInfoCommand) Description() string { return "Show information about this server" }
func (c *ServerInfoCommand) Category() string    { return "🕯️ Information" }

func (c *ServerInfoCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *ServerInfoCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	e := slash.Event

	guild, err := s.State.Guild(e.GuildID)
	if err != nil {
		guild, err = s.Guild(e.GuildID)
		if err != nil {
			return fmt.Errorf("fetch guild: %w", err)
		}
	}

	created, _ := discordgo.SnowflakeTimestamp(guild.ID)

	textChannels, voiceChannels := 0, 0
	for _, ch := range guild.Channels {
		switch ch.Type {
		case discordgo.ChannelTypeGuildText:
			textChannels++
		case discordgo.ChannelTypeGuildVoice:
			voiceChannels++
		}
	}

	embed := &discordgo.MessageEmbed{
		Title: guild.Name,
		Color: command.EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Owner", Value: fmt.Sprintf("<@%s>", guild.OwnerID), Inline: true},
			{Name: "Members", Value: fmt.Sprintf("%d", guild.MemberCount), Inline: true},
			{Name: "Roles", Value: fmt.Sprintf("%d", len(guild.Roles)), Inline: true},
			{Name: "Text Channels", Value: fmt.Sprintf("%d", textChannels), Inline: true},
			{Name: "Voice Channels", Value: fmt.Sprintf("%d", voiceChannels), Inline: true},
			{Name: "Created", Value: created.Format("2006-01-02"), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Server ID: %s", guild.ID)},
	}
	if guild.Icon != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: guild.IconURL("256")}
	}

	return command.RespondEmbed(s, e, embed)
}

func init() {
	command.Register(command.Apply(
		&ServerInfoCommand{},
		command.WithGuildOnly(),
		command.WithCommandLogger(),
	))
}
