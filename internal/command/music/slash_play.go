package music

import (
	"context"
	"fmt"

	"shadebot/internal/command"
	"shadebot/internal/music"

	"github.com/bwmarrin/discordgo"
)

type PlayCommand struct{}

func (c *PlayCommand) Name() string        { return "play" }
func (c *PlayCommand) Description() string { return "Play a track or add it to the queue" }
func (c *PlayCommand) Category() string    { return category }

func (c *PlayCommand) SlashDefinition() *discordgo.ApplicationCommand {
	sources := music.SearchSources()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(sources))
	for _, src := range sources {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  src,
			Value: src,
		})
	}

	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "query",
				Description: "Link or search query",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "source",
				Description: "Where to search, defaults to YouTube",
				Choices:     choices,
			},
		},
	}
}

func (c *PlayCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	e := slash.Event

	query, source := "", ""
	for _, opt := range e.ApplicationCommandData().Options {
		switch opt.Name {
		case "query":
			query = opt.StringValue()
		case "source":
			source = opt.StringValue()
		}
	}

	voiceChannelID, err := userVoiceChannel(s, e)
	if err != nil {
		return respondMusicError(s, e, err)
	}

	// Searching the node can take a moment, answer within the 3s window.
	if err := command.RespondDeferred(s, e); err != nil {
		return fmt.Errorf("defer response: %w", err)
	}

	tracks, err := slash.Music.Search(context.Background(), query, source)
	if err != nil {
		return followupMusicError(s, e, err)
	}
	if len(tracks) == 0 {
		return command.FollowupEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Title:       "🎵 No Results",
			Description: fmt.Sprintf("Nothing found for `%s`.", query),
		})
	}

	started, queued, err := slash.Music.Play(context.Background(), e.GuildID, voiceChannelID, e.ChannelID, tracks...)
	if err != nil {
		return followupMusicError(s, e, err)
	}

	embed := &discordgo.MessageEmbed{Color: command.EmbedColor}
	switch {
	case started != nil && queued > 0:
		embed.Title = "▶️ Playing"
		embed.Description = fmt.Sprintf("%s\nplus **%d** more added to the queue.", music.FormatTrack(*started), queued)
	case started != nil:
		embed.Title = "▶️ Playing"
		embed.Description = music.FormatTrack(*started)
	default:
		embed.Title = "➕ Added to Queue"
		if queued == 1 {
			embed.Description = music.FormatTrack(tracks[0])
		} else {
			embed.Description = fmt.Sprintf("**%d** tracks added to the queue.", queued)
		}
	}
	return command.FollowupEmbed(s, e, embed)
}

func init() {
	command.Register(command.Apply(
		&PlayCommand{},
		command.WithGuildOnly(),
		command.WithCommandLogger(),
	))
}
