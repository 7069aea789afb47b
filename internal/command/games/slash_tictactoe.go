// Package games wires the turn-based games to slash commands and buttons.
package games

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"shadebot/internal/command"
	"shadebot/internal/games/tictactoe"
	"shadebot/internal/storage"

	"github.com/bwmarrin/discordgo"
)

const category = "🎲 Games"

type ticSession struct {
	game *tictactoe.Game
	rng  *rand.Rand
}

var (
	ticMu    sync.Mutex
	ticGames = map[string]*ticSession{}
)

type TicTacToeCommand struct{}

func (c *TicTacToeCommand) Name() string        { return "tictactoe" }
func (c *TicTacToeCommand) Description() string { return "Play tic-tac-toe against the bot or a friend" }
func (c *TicTacToeCommand) Category() string    { return category }

func (c *TicTacToeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "opponent",
				Description: "Challenge another user, defaults to the bot",
			},
		},
	}
}

func (c *TicTacToeCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	e := slash.Event
	user := command.ResolveUser(e)

	opponentID := ""
	if opts := e.ApplicationCommandData().Options; len(opts) > 0 {
		opponent := opts[0].UserValue(s)
		if opponent.ID == user.ID {
			return command.RespondEphemeral(s, e, "Playing against yourself? Bold. Pick someone else.")
		}
		if opponent.Bot {
			if opponent.ID != s.State.User.ID {
				return command.RespondEphemeral(s, e, "Other bots don't take my calls. Challenge me instead.")
			}
		} else {
			opponentID = opponent.ID
		}
	}

	game := tictactoe.New(user.ID, opponentID)
	session := &ticSession{
		game: game,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	err := s.InteractionRespond(e.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    ticStatus(game),
			Components: ticBoard(game),
		},
	})
	if err != nil {
		return fmt.Errorf("send board: %w", err)
	}

	msg, err := s.InteractionResponse(e.Interaction)
	if err != nil {
		return fmt.Errorf("fetch board message: %w", err)
	}

	ticMu.Lock()
	ticGames[msg.ID] = session
	ticMu.Unlock()
	return nil
}

func (c *TicTacToeCommand) Component(ctx *command.ComponentContext) error {
	s := ctx.Session
	e := ctx.Event
	user := command.ResolveUser(e)

	parts := strings.Split(e.MessageComponentData().CustomID, ":")
	if len(parts) != 2 {
		return nil
	}
	cell, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}

	ticMu.Lock()
	defer ticMu.Unlock()

	session, ok := ticGames[e.Message.ID]
	if !ok {
		return command.RespondEphemeral(s, e, "This game is no longer active.")
	}
	game := session.game

	if err := game.Move(cell, user.ID); err != nil {
		return command.RespondEphemeral(s, e, friendlyTicError(err))
	}
	if game.VersusBot() && !game.Over {
		game.BotMove(session.rng)
	}

	if game.Over {
		delete(ticGames, e.Message.ID)
		recordTicResult(ctx, game)
	}
	return command.UpdateMessage(s, e, ticStatus(game), ticBoard(game))
}

func friendlyTicError(err error) string {
	switch err {
	case tictactoe.ErrNotYourTurn:
		return "Not your turn."
	case tictactoe.ErrNotPlayer:
		return "This is not your game."
	case tictactoe.ErrCellTaken:
		return "That cell is taken."
	case tictactoe.ErrGameOver:
		return "The game is over."
	default:
		return "Invalid move."
	}
}

func recordTicResult(ctx *command.ComponentContext, game *tictactoe.Game) {
	guildID := ctx.Event.GuildID
	record := func(userID, outcome string) {
		if userID == "" {
			return
		}
		if err := ctx.Storage.RecordGameResult(guildID, "tictactoe", userID, outcome); err != nil {
			log.Println("[WARN] Failed to record tictactoe result:", err)
		}
	}

	switch game.Winner {
	case tictactoe.X:
		record(game.PlayerX, storage.OutcomeWin)
		record(game.PlayerO, storage.OutcomeLoss)
	case tictactoe.O:
		record(game.PlayerO, storage.OutcomeWin)
		record(game.PlayerX, storage.OutcomeLoss)
	default:
		record(game.PlayerX, storage.OutcomeDraw)
		record(game.PlayerO, storage.OutcomeDraw)
	}
}

func ticStatus(game *tictactoe.Game) string {
	oName := "the bot"
	if !game.VersusBot() {
		oName = fmt.Sprintf("<@%s>", game.PlayerO)
	}
	header := fmt.Sprintf("⭕ Tic-tac-toe: <@%s> (❌) vs %s (⭕)\n", game.PlayerX, oName)

	if game.Over {
		switch game.Winner {
		case tictactoe.X:
			return header + fmt.Sprintf("🏆 <@%s> wins!", game.PlayerX)
		case tictactoe.O:
			if game.VersusBot() {
				return header + "🏆 I win. Better luck next time."
			}
			return header + fmt.Sprintf("🏆 <@%s> wins!", game.PlayerO)
		default:
			return header + "🤝 It's a draw."
		}
	}

	if game.Turn == tictactoe.X {
		return header + fmt.Sprintf("Your move, <@%s>.", game.PlayerX)
	}
	if game.VersusBot() {
		return header + "My move..."
	}
	return header + fmt.Sprintf("Your move, <@%s>.", game.PlayerO)
}

func ticBoard(game *tictactoe.Game) []discordgo.MessageComponent {
	rows := make([]discordgo.MessageComponent, 0, 3)
	for row := 0; row < 3; row++ {
		buttons := make([]discordgo.MessageComponent, 0, 3)
		for col := 0; col < 3; col++ {
			cell := row*3 + col
			label := "⬜"
			style := discordgo.SecondaryButton
			switch game.Board[cell] {
			case tictactoe.X:
				label = "❌"
				style = discordgo.DangerButton
			case tictactoe.O:
				label = "⭕"
				style = discordgo.PrimaryButton
			}
			buttons = append(buttons, discordgo.Button{
				Label:    label,
				Style:    style,
				CustomID: fmt.Sprintf("tictactoe:%d", cell),
				Disabled: game.Over || game.Board[cell] != tictactoe.Empty,
			})
		}
		rows = append(rows, discordgo.ActionsRow{Components: buttons})
	}
	return rows
}

func init() {
	command.Register(command.Apply(
		&TicTacToeCommand{},
		command.WithGuildOnly(),
		command.WithCommandLogger(),
	))
}
