package music

import (
	"context"
	"fmt"

	"shadebot/internal/command"

	"github.com/bwmarrin/discordgo"
)

type ResumeCommand struct{}

func (c *ResumeCommand) Name() string        { return "resume" }
func (c *ResumeCommand) Description() string { return "Resume the paused track" }
func (c *ResumeCommand) Category() string    { return category }

func (c *ResumeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *ResumeCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	if err := slash.Music.Pause(context.Background(), slash.Event.GuildID, false); err != nil {
		return respondMusicError(slash.Session, slash.Event, err)
	}
	return command.Respond(slash.Session, slash.Event, "▶️ Resumed.")
}

func init() {
	command.Register(command.Apply(
		&ResumeCommand{},
		command.WithGuildOnly(),
		command.WithCommandLogger(),
	))
}
