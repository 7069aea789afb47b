package music

import (
	"context"
	"fmt"

	"shadebot/internal/command"
	"shadebot/internal/music"

	"github.com/bwmarrin/discordgo"
)

type VolumeCommand struct{}

func (c *VolumeCommand) Name() string        { return "volume" }
func (c *VolumeCommand) Description() string { return "Set the playback volume" }
func (c *VolumeCommand) Category() string    { return category }

func (c *VolumeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	minValue := float64(0)
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "level",
				Description: fmt.Sprintf("Volume between 0 and %d", music.MaxVolume),
				Required:    true,
				MinValue:    &minValue,
				MaxValue:    float64(music.MaxVolume),
			},
		},
	}
}

func (c *VolumeCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	level := int(slash.Event.ApplicationCommandData().Options[0].IntValue())
	applied, err := slash.Music.SetVolume(context.Background(), slash.Event.GuildID, level)
	if err != nil {
		return respondMusicError(slash.Session, slash.Event, err)
	}
	return command.Respond(slash.Session, slash.Event, fmt.Sprintf("🔊 Volume set to **%d**.", applied))
}

func init() {
	command.Register(command.Apply(
		&VolumeCommand{},
		command.WithGuildOnly(),
		command.WithCommandLogger(),
	))
}
