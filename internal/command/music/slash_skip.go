package music

import (
	"context"
	"fmt"

	"shadebot/internal/command"
	"shadebot/internal/music"

	"github.com/bwmarrin/discordgo"
)

type SkipCommand struct{}

func (c *SkipCommand) Name() string        { return "skip" }
func (c *SkipCommand) Description() string { return "Skip to the next track in the queue" }
func (c *SkipCommand) Category() string    { return category }

func (c *SkipCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *SkipCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	e := slash.Event

	next, err := slash.Music.Skip(context.Background(), e.GuildID)
	if err != nil {
		return respondMusicError(s, e, err)
	}
	if next == nil {
		return command.Respond(s, e, "⏭️ Skipped. The queue is empty, stopping playback.")
	}
	return command.RespondEmbed(s, e, &discordgo.MessageEmbed{
		Title:       "⏭️ Skipped",
		Description: fmt.Sprintf("Up next: %s", music.FormatTrack(*next)),
		Color:       command.EmbedColor,
	})
}

func init() {
	command.Register(command.Apply(
		&SkipCommand{},
		command.WithGuildOnly(),
		command.WithCommandLogger(),
	))
}
