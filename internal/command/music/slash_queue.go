package music

import (
	"fmt"
	"strings"

	"shadebot/internal/command"
	"shadebot/internal/music"

	"github.com/bwmarrin/discordgo"
)

// queueDisplayLimit caps the embed size; Discord rejects huge descriptions.
const queueDisplayLimit = 10

type QueueCommand struct{}

func (c *QueueCommand) Name() string        { return "queue" }
func (c *QueueCommand) Description() string { return "Show the current queue" }
func (c *QueueCommand) Category() string    { return category }

func (c *QueueCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *QueueCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	e := slash.Event

	var sb strings.Builder

	if track, position, paused, err := slash.Music.NowPlaying(e.GuildID); err == nil {
		status := "▶️"
		if paused {
			status = "⏸️"
		}
		sb.WriteString(fmt.Sprintf("%s %s", status, music.FormatTrack(*track)))
		if !track.Info.IsStream {
			sb.WriteString(fmt.Sprintf(" — at %s", music.FormatDuration(position)))
		}
		sb.WriteString("\n\n")
	}

	tracks := slash.Music.Queue(e.GuildID).Tracks()
	if len(tracks) == 0 && sb.Len() == 0 {
		return command.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
			Description: "Nothing playing and the queue is empty.",
		})
	}

	for i, track := range tracks {
		if i >= queueDisplayLimit {
			sb.WriteString(fmt.Sprintf("…and **%d** more.\n", len(tracks)-queueDisplayLimit))
			break
		}
		sb.WriteString(fmt.Sprintf("`%d.` %s\n", i+1, music.FormatTrack(track)))
	}

	return command.RespondEmbed(s, e, &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎵 Queue (%d)", len(tracks)),
		Description: sb.String(),
		Color:       command.EmbedColor,
	})
}

func init() {
	command.Register(command.Apply(
		&QueueCommand{},
		command.WithGuildOnly(),
		command.WithCommandLogger(),
	))
}
