package core

import (
	"fmt"
	"time"

	"shadebot/internal/command"
	"shadebot/internal/version"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

type AboutCommand struct{}

func (c *AboutCommand) Name() string        { return "about" }
func (c *AboutCommand) Description() string { return "Discover the origin of this bot" }
func (c *AboutCommand) Category() string    { return "🕯️ Information" }

func (c *AboutCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *AboutCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	buildDate := "unknown"
	if version.BuildDate != "" {
		if t, err := time.Parse(time.RFC3339, version.BuildDate); err == nil {
			buildDate = t.Format("2006-01-02")
		}
	}

	msg := embed.NewEmbed().
		SetTitle(version.AppName).
		SetDescription("Music, games and mild surveillance. Watching you from the shadows.").
		AddField("Version", version.Version).
		AddField("Built", buildDate).
		InlineAllFields().
		SetColor(command.EmbedColor).MessageEmbed

	return command.RespondEmbedEphemeral(slash.Session, slash.Event, msg)
}

func init() {
	command.Register(command.Apply(
		&AboutCommand{},
		command.WithCommandLogger(),
	))
}
