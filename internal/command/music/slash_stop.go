package music

import (
	"context"
	"fmt"

	"shadebot/internal/command"

	"github.com/bwmarrin/discordgo"
)

type StopCommand struct{}

func (c *StopCommand) Name() string        { return "stop" }
func (c *StopCommand) Description() string { return "Stop playback, clear the queue and leave voice" }
func (c *StopCommand) Category() string    { return category }

func (c *StopCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *StopCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	if err := slash.Music.Stop(context.Background(), slash.Event.GuildID); err != nil {
		return respondMusicError(slash.Session, slash.Event, err)
	}
	return command.Respond(slash.Session, slash.Event, "⏹️ Stopped playback and cleared the queue.")
}

func init() {
	command.Register(command.Apply(
		&StopCommand{},
		command.WithGuildOnly(),
		command.WithCommandLogger(),
	))
}
