package music

import (
	"fmt"

	"shadebot/internal/command"
	"shadebot/internal/music"

	"github.com/bwmarrin/discordgo"
)

type NowPlayingCommand struct{}

func (c *NowPlayingCommand) Name() string        { return "nowplaying" }
func (c *NowPlayingCommand) Description() string { return "Show the track currently playing" }
func (c *NowPlayingCommand) Category() string    { return category }

func (c *NowPlayingCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *NowPlayingCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	e := slash.Event

	track, position, paused, err := slash.Music.NowPlaying(e.GuildID)
	if err != nil {
		return respondMusicError(s, e, err)
	}

	title := "🎵 Now Playing"
	if paused {
		title = "⏸️ Paused"
	}
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("**%s**\nby %s", track.Info.Title, track.Info.Author),
		Color:       command.EmbedColor,
	}
	if track.Info.URI != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Source", Value: fmt.Sprintf("[Link](%s)", *track.Info.URI), Inline: true,
		})
	}
	if track.Info.IsStream {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Position", Value: "LIVE", Inline: true,
		})
	} else {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Position",
			Value:  fmt.Sprintf("%s / %s", music.FormatDuration(position), music.FormatDuration(track.Info.Length)),
			Inline: true,
		})
	}

	return command.RespondEmbed(s, e, embed)
}

func init() {
	command.Register(command.Apply(
		&NowPlayingCommand{},
		command.WithGuildOnly(),
		command.WithCommandLogger(),
	))
}
