package music

import (
	"fmt"

	"shadebot/internal/command"
	"shadebot/internal/music"

	"github.com/bwmarrin/discordgo"
)

type ShuffleCommand struct{}

func (c *ShuffleCommand) Name() string        { return "shuffle" }
func (c *ShuffleCommand) Description() string { return "Shuffle the queue" }
func (c *ShuffleCommand) Category() string    { return category }

func (c *ShuffleCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *ShuffleCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	queue := slash.Music.Queue(slash.Event.GuildID)
	if queue.Len() == 0 {
		return respondMusicError(slash.Session, slash.Event, music.ErrEmptyQueue)
	}
	queue.Shuffle()
	return command.Respond(slash.Session, slash.Event,
		fmt.Sprintf("🔀 Shuffled **%d** tracks.", queue.Len()))
}

func init() {
	command.Register(command.Apply(
		&ShuffleCommand{},
		command.WithGuildOnly(),
		command.WithCommandLogger(),
	))
}
