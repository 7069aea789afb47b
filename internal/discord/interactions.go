package discord

import (
	"fmt"
	"log"
	"strings"

	"shadebot/internal/command"

	"github.com/bwmarrin/discordgo"
)

// onInteractionCreate routes slash commands to the registry and button
// presses to the owning command by custom ID prefix.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.dispatchSlash(s, i)
	case discordgo.InteractionMessageComponent:
		b.dispatchComponent(s, i)
	}
}

func (b *Bot) dispatchSlash(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name

	cmd, ok := command.Get(name)
	if !ok {
		log.Printf("[WARN] Unknown command: %s", name)
		return
	}

	m := b.musicManager()
	if m == nil {
		_ = command.RespondEphemeral(s, i, "⏳ Still starting up, try again in a moment.")
		return
	}

	ctx := &command.SlashContext{
		Session: s,
		Event:   i,
		Storage: b.store,
		Music:   m,
		Config:  b.cfg,
	}
	if err := cmd.Run(ctx); err != nil {
		log.Printf("[ERR] Error running /%s: %v", name, err)
		b.respondError(s, i, err)
	}
}

func (b *Bot) dispatchComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	var matched command.Command
	for _, cmd := range command.All() {
		if strings.HasPrefix(customID, cmd.Name()+":") {
			matched = cmd
			break
		}
	}
	if matched == nil {
		log.Printf("[WARN] No matching command for component: %s", customID)
		return
	}

	handler, ok := matched.(command.ComponentHandler)
	if !ok {
		log.Printf("[WARN] Command %s does not handle components", matched.Name())
		return
	}

	m := b.musicManager()
	if m == nil {
		_ = command.RespondEphemeral(s, i, "⏳ Still starting up, try again in a moment.")
		return
	}

	ctx := &command.ComponentContext{
		Session: s,
		Event:   i,
		Storage: b.store,
		Music:   m,
		Config:  b.cfg,
	}
	if err := handler.Component(ctx); err != nil {
		log.Printf("[ERR] Error handling component %s: %v", customID, err)
		b.respondError(s, i, err)
	}
}

// respondError sends the error back as an ephemeral embed. Best effort:
// the interaction may already be acknowledged.
func (b *Bot) respondError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	embed := &discordgo.MessageEmbed{
		Description: fmt.Sprintf("💢 Something went wrong: %v", err),
		Color:       0xe74c3c,
	}
	if respondErr := command.RespondEmbedEphemeral(s, i, embed); respondErr != nil {
		_ = command.FollowupEmbedEphemeral(s, i, embed)
	}
}
