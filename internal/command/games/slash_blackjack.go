package games

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"shadebot/internal/command"
	"shadebot/internal/games/blackjack"
	"shadebot/internal/storage"

	"github.com/bwmarrin/discordgo"
)

var (
	bjMu    sync.Mutex
	bjGames = map[string]*blackjack.Game{}
)

type BlackjackCommand struct{}

func (c *BlackjackCommand) Name() string        { return "blackjack" }
func (c *BlackjackCommand) Description() string { return "Play a hand of blackjack against the dealer" }
func (c *BlackjackCommand) Category() string    { return category }

func (c *BlackjackCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *BlackjackCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	e := slash.Event
	user := command.ResolveUser(e)

	game := blackjack.New(user.ID, rand.New(rand.NewSource(time.Now().UnixNano())))

	err := s.InteractionRespond(e.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    bjStatus(game),
			Components: bjButtons(game),
		},
	})
	if err != nil {
		return fmt.Errorf("send table: %w", err)
	}

	if game.Over() {
		recordBlackjackResult(slash.Storage, e.GuildID, game)
		return nil
	}

	msg, err := s.InteractionResponse(e.Interaction)
	if err != nil {
		return fmt.Errorf("fetch table message: %w", err)
	}

	bjMu.Lock()
	bjGames[msg.ID] = game
	bjMu.Unlock()
	return nil
}

func (c *BlackjackCommand) Component(ctx *command.ComponentContext) error {
	s := ctx.Session
	e := ctx.Event
	user := command.ResolveUser(e)

	action := strings.TrimPrefix(e.MessageComponentData().CustomID, "blackjack:")

	bjMu.Lock()
	defer bjMu.Unlock()

	game, ok := bjGames[e.Message.ID]
	if !ok {
		return command.RespondEphemeral(s, e, "This hand is no longer active.")
	}
	if user.ID != game.PlayerID {
		return command.RespondEphemeral(s, e, "This is not your hand.")
	}

	var err error
	switch action {
	case "hit":
		err = game.Hit()
	case "stand":
		err = game.Stand()
	default:
		return nil
	}
	if err != nil {
		return command.RespondEphemeral(s, e, "The hand is over.")
	}

	if game.Over() {
		delete(bjGames, e.Message.ID)
		recordBlackjackResult(ctx.Storage, e.GuildID, game)
	}
	return command.UpdateMessage(s, e, bjStatus(game), bjButtons(game))
}

func recordBlackjackResult(store *storage.Storage, guildID string, game *blackjack.Game) {
	var outcome string
	switch game.Outcome {
	case blackjack.PlayerBlackjack, blackjack.PlayerWin:
		outcome = storage.OutcomeWin
	case blackjack.DealerWin:
		outcome = storage.OutcomeLoss
	default:
		outcome = storage.OutcomeDraw
	}
	if err := store.RecordGameResult(guildID, "blackjack", game.PlayerID, outcome); err != nil {
		log.Println("[WARN] Failed to record blackjack result:", err)
	}
}

func bjStatus(game *blackjack.Game) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🃏 Blackjack — <@%s>\n\n", game.PlayerID)
	fmt.Fprintf(&b, "Your hand: %s (%d)\n", formatHand(game.Player), blackjack.HandValue(game.Player))

	if game.Over() {
		fmt.Fprintf(&b, "Dealer: %s (%d)\n\n", formatHand(game.Dealer), blackjack.HandValue(game.Dealer))
		b.WriteString(bjVerdict(game.Outcome))
	} else {
		fmt.Fprintf(&b, "Dealer shows: %s 🂠\n", game.Dealer[0])
	}
	return b.String()
}

func bjVerdict(outcome blackjack.Result) string {
	switch outcome {
	case blackjack.PlayerBlackjack:
		return "🎉 Blackjack! You win."
	case blackjack.PlayerWin:
		return "🏆 You win."
	case blackjack.DealerWin:
		return "💀 Dealer wins."
	default:
		return "🤝 Push."
	}
}

func formatHand(hand []blackjack.Card) string {
	parts := make([]string, len(hand))
	for i, card := range hand {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}

func bjButtons(game *blackjack.Game) []discordgo.MessageComponent {
	if game.Over() {
		return []discordgo.MessageComponent{}
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Hit", Style: discordgo.PrimaryButton, CustomID: "blackjack:hit"},
			discordgo.Button{Label: "Stand", Style: discordgo.SecondaryButton, CustomID: "blackjack:stand"},
		}},
	}
}

func init() {
	command.Register(command.Apply(
		&BlackjackCommand{},
		command.WithGuildOnly(),
		command.WithCommandLogger(),
	))
}
