package core

import (
	"fmt"
	"sort"
	"strings"

	"shadebot/internal/command"
	"shadebot/internal/version"

	"github.com/bwmarrin/discordgo"
)

var categoryWeights = map[string]int{
	"🕯️ Information": 0,
	"🎵 Music":        10,
	"🎲 Games":        20,
}

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Get a list of available commands" }
func (c *HelpCommand) Category() string    { return "🕯️ Information" }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *HelpCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	embed := &discordgo.MessageEmbed{
		Title:       version.AppName + " Help",
		Description: buildHelpByCategory(),
		Color:       command.EmbedColor,
	}
	return command.RespondEmbedEphemeral(slash.Session, slash.Event, embed)
}

func buildHelpByCategory() string {
	categoryMap := make(map[string][]command.Command)
	for _, cmd := range command.All() {
		categoryMap[cmd.Category()] = append(categoryMap[cmd.Category()], cmd)
	}

	categories := make([]string, 0, len(categoryMap))
	for cat := range categoryMap {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool {
		wi, wj := categoryWeights[categories[i]], categoryWeights[categories[j]]
		if wi != wj {
			return wi < wj
		}
		return categories[i] < categories[j]
	})

	var sb strings.Builder
	for _, cat := range categories {
		sb.WriteString(fmt.Sprintf("**%s**\n", cat))
		for _, cmd := range categoryMap[cat] {
			sb.WriteString(fmt.Sprintf("`/%s` — %s\n", cmd.Name(), cmd.Description()))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func init() {
	command.Register(&HelpCommand{})
}
