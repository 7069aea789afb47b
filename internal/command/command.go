package command

import (
	"shadebot/internal/config"
	"shadebot/internal/music"
	"shadebot/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// Command is the contract every bot command fulfills. Run receives one of
// the *Context types below depending on how the command was invoked.
type Command interface {
	Name() string
	Description() string
	Category() string
	Run(ctx interface{}) error
}

// SlashProvider is implemented by commands that register a slash definition.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// ComponentHandler is implemented by commands that respond to message
// components (buttons). Custom IDs are routed by command name prefix.
type ComponentHandler interface {
	Component(ctx *ComponentContext) error
}

// SlashContext is passed to Run for slash command invocations.
type SlashContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Storage *storage.Storage
	Music   *music.Manager
	Config  *config.Config
}

// ComponentContext is passed to Component for button interactions.
type ComponentContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Storage *storage.Storage
	Music   *music.Manager
	Config  *config.Config
}
