package music

import (
	"context"
	"fmt"

	"shadebot/internal/command"

	"github.com/bwmarrin/discordgo"
)

type PauseCommand struct{}

func (c *PauseCommand) Name() string        { return "pause" }
func (c *PauseCommand) Description() string { return "Pause the current track" }
func (c *PauseCommand) Category() string    { return category }

func (c *PauseCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *PauseCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	if err := slash.Music.Pause(context.Background(), slash.Event.GuildID, true); err != nil {
		return respondMusicError(slash.Session, slash.Event, err)
	}
	return command.Respond(slash.Session, slash.Event, "⏸️ Paused.")
}

func init() {
	command.Register(command.Apply(
		&PauseCommand{},
		command.WithGuildOnly(),
		command.WithCommandLogger(),
	))
}
