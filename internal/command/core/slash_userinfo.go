package core

import (
	"fmt"
	"strings"

	"shadebot/internal/command"

	"github.com/bwmarrin/discordgo"
)

type UserInfoCommand struct{}

func (c *UserInfoCommand) Name() string        { return "userinfo" }
func (c *UserInfoCommand) Description() string { return "Show information about a user" }
func (c *UserInfoCommand) Category() string    { return "🕯️ Information" }

func (c *UserInfoCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "User to inspect, defaults to you",
			},
		},
	}
}

func (c *UserInfoCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	e := slash.Event

	user := command.ResolveUser(e)
	if opts := e.ApplicationCommandData().Options; len(opts) > 0 {
		user = opts[0].UserValue(s)
	}

	created, _ := discordgo.SnowflakeTimestamp(user.ID)

	embed := &discordgo.MessageEmbed{
		Title: user.Username,
		Color: command.EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Mention", Value: fmt.Sprintf("<@%s>", user.ID), Inline: true},
			{Name: "Account Created", Value: created.Format("2006-01-02"), Inline: true},
		},
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("256")},
		Footer:    &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("User ID: %s", user.ID)},
	}

	if member, err := s.GuildMember(e.GuildID, user.ID); err == nil {
		if !member.JoinedAt.IsZero() {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "Joined Server", Value: member.JoinedAt.Format("2006-01-02"), Inline: true,
			})
		}
		if len(member.Roles) > 0 {
			mentions := make([]string, 0, len(member.Roles))
			for _, roleID := range member.Roles {
				mentions = append(mentions, fmt.Sprintf("<@&%s>", roleID))
			}
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "Roles", Value: strings.Join(mentions, " "),
			})
		}
	}

	return command.RespondEmbed(s, e, embed)
}

func init() {
	command.Register(command.Apply(
		&UserInfoCommand{},
		command.WithGuildOnly(),
		command.WithCommandLogger(),
	))
}
