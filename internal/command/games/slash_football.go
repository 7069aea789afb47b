package games

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"shadebot/internal/command"
	"shadebot/internal/games/football"
	"shadebot/internal/storage"

	"github.com/bwmarrin/discordgo"
)

var (
	fbMu    sync.Mutex
	fbGames = map[string]*football.Game{}
)

type FootballCommand struct{}

func (c *FootballCommand) Name() string        { return "football" }
func (c *FootballCommand) Description() string { return "Penalty shootout against the bot keeper" }
func (c *FootballCommand) Category() string    { return category }

func (c *FootballCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *FootballCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	e := slash.Event
	user := command.ResolveUser(e)

	game := football.New(user.ID, rand.New(rand.NewSource(time.Now().UnixNano())))

	err := s.InteractionRespond(e.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    fbStatus(game, ""),
			Components: fbButtons(game),
		},
	})
	if err != nil {
		return fmt.Errorf("send pitch: %w", err)
	}

	msg, err := s.InteractionResponse(e.Interaction)
	if err != nil {
		return fmt.Errorf("fetch pitch message: %w", err)
	}

	fbMu.Lock()
	fbGames[msg.ID] = game
	fbMu.Unlock()
	return nil
}

func (c *FootballCommand) Component(ctx *command.ComponentContext) error {
	s := ctx.Session
	e := ctx.Event
	user := command.ResolveUser(e)

	parts := strings.Split(e.MessageComponentData().CustomID, ":")
	if len(parts) != 3 {
		return nil
	}
	dir, ok := parseDirection(parts[2])
	if !ok {
		return nil
	}

	fbMu.Lock()
	defer fbMu.Unlock()

	game, ok := fbGames[e.Message.ID]
	if !ok {
		return command.RespondEphemeral(s, e, "This shootout is no longer active.")
	}
	if user.ID != game.UserID {
		return command.RespondEphemeral(s, e, "This is not your shootout.")
	}

	var result football.KickResult
	var err error
	switch parts[1] {
	case "shoot":
		result, err = game.Shoot(dir)
	case "dive":
		result, err = game.Dive(dir)
	default:
		return nil
	}
	if err != nil {
		return command.RespondEphemeral(s, e, "The shootout is over.")
	}

	if game.Phase == football.PhaseOver {
		delete(fbGames, e.Message.ID)
		recordFootballResult(ctx.Storage, e.GuildID, game)
	}
	return command.UpdateMessage(s, e, fbStatus(game, narrateKick(parts[1], result)), fbButtons(game))
}

func parseDirection(s string) (football.Direction, bool) {
	switch s {
	case "left":
		return football.Left, true
	case "center":
		return football.Center, true
	case "right":
		return football.Right, true
	}
	return 0, false
}

func recordFootballResult(store *storage.Storage, guildID string, game *football.Game) {
	outcome := storage.OutcomeLoss
	if game.Outcome == football.UserWins {
		outcome = storage.OutcomeWin
	}
	if err := store.RecordGameResult(guildID, "football", game.UserID, outcome); err != nil {
		log.Println("[WARN] Failed to record football result:", err)
	}
}

func narrateKick(action string, result football.KickResult) string {
	if action == "shoot" {
		if result.Scored {
			return fmt.Sprintf("⚽ You shoot %s, the keeper dives %s — GOAL!", result.Shot, result.Dive)
		}
		return fmt.Sprintf("🧤 You shoot %s, the keeper dives %s — saved!", result.Shot, result.Dive)
	}
	if result.Scored {
		return fmt.Sprintf("⚽ I shoot %s, you dive %s — I score.", result.Shot, result.Dive)
	}
	return fmt.Sprintf("🧤 I shoot %s, you dive %s — great save!", result.Shot, result.Dive)
}

func fbStatus(game *football.Game, lastKick string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⚽ Penalty shootout — <@%s> %d : %d bot\n", game.UserID, game.UserGoals, game.BotGoals)
	if lastKick != "" {
		b.WriteString(lastKick)
		b.WriteString("\n")
	}

	switch game.Phase {
	case football.PhaseShoot:
		fmt.Fprintf(&b, "\nRound %d — you shoot. Pick a corner.", game.Round)
	case football.PhaseDive:
		fmt.Fprintf(&b, "\nRound %d — I shoot. Pick a side to dive.", game.Round)
	default:
		if game.Outcome == football.UserWins {
			b.WriteString("\n🏆 You win the shootout!")
		} else {
			b.WriteString("\n💀 I win the shootout.")
		}
	}
	return b.String()
}

func fbButtons(game *football.Game) []discordgo.MessageComponent {
	if game.Phase == football.PhaseOver {
		return []discordgo.MessageComponent{}
	}
	action := "shoot"
	emoji := "⚽"
	if game.Phase == football.PhaseDive {
		action = "dive"
		emoji = "🧤"
	}
	labels := []string{"Left", "Center", "Right"}
	buttons := make([]discordgo.MessageComponent, 0, 3)
	for i, dir := range []string{"left", "center", "right"} {
		buttons = append(buttons, discordgo.Button{
			Label:    fmt.Sprintf("%s %s", emoji, labels[i]),
			Style:    discordgo.PrimaryButton,
			CustomID: fmt.Sprintf("football:%s:%s", action, dir),
		})
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

func init() {
	command.Register(command.Apply(
		&FootballCommand{},
		command.WithGuildOnly(),
		command.WithCommandLogger(),
	))
}
