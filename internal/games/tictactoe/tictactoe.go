// Package tictactoe implements the 3x3 tic-tac-toe game logic, independent
// of any Discord plumbing.
package tictactoe

import (
	"errors"
	"math/rand"
)

type Mark byte

const (
	Empty Mark = 0
	X     Mark = 'X'
	O     Mark = 'O'
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

var (
	ErrGameOver    = errors.New("the game is already over")
	ErrNotYourTurn = errors.New("it is not your turn")
	ErrCellTaken   = errors.New("that cell is already taken")
	ErrNotPlayer   = errors.New("you are not part of this game")
	ErrBadCell     = errors.New("cell out of range")
)

// Board is the 3x3 grid in row-major order.
type Board [9]Mark

// lines are the eight winning triples.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Winner returns the mark completing a line, or Empty.
func (b Board) Winner() Mark {
	for _, l := range lines {
		if b[l[0]] != Empty && b[l[0]] == b[l[1]] && b[l[1]] == b[l[2]] {
			return b[l[0]]
		}
	}
	return Empty
}

// Full reports whether every cell is taken.
func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Game is one match. PlayerO empty means the bot plays O.
type Game struct {
	Board   Board
	Turn    Mark
	PlayerX string
	PlayerO string
	Winner  Mark
	Over    bool
}

// New starts a game with X to move. Pass an empty playerO for a match
// against the bot.
func New(playerX, playerO string) *Game {
	return &Game{Turn: X, PlayerX: playerX, PlayerO: playerO}
}

// VersusBot reports whether O is played by the bot.
func (g *Game) VersusBot() bool {
	return g.PlayerO == ""
}

// PlayerFor returns the user controlling the given mark.
func (g *Game) PlayerFor(mark Mark) string {
	if mark == X {
		return g.PlayerX
	}
	return g.PlayerO
}

// Move places the current player's mark. The userID must match the player
// whose turn it is.
func (g *Game) Move(cell int, userID string) error {
	if g.Over {
		return ErrGameOver
	}
	if cell < 0 || cell > 8 {
		return ErrBadCell
	}
	if userID != g.PlayerX && userID != g.PlayerO {
		return ErrNotPlayer
	}
	if userID != g.PlayerFor(g.Turn) {
		return ErrNotYourTurn
	}
	if g.Board[cell] != Empty {
		return ErrCellTaken
	}

	g.place(cell)
	return nil
}

// BotMove plays O for the bot using a win/block/center/corner heuristic
// and returns the chosen cell, or -1 if the game is over.
func (g *Game) BotMove(rng *rand.Rand) int {
	if g.Over || g.Turn != O {
		return -1
	}

	cell := g.pickCell(rng)
	g.place(cell)
	return cell
}

func (g *Game) pickCell(rng *rand.Rand) int {
	// Win if possible, otherwise block X's win.
	for _, mark := range []Mark{O, X} {
		for cell := range g.Board {
			if g.Board[cell] != Empty {
				continue
			}
			trial := g.Board
			trial[cell] = mark
			if trial.Winner() == mark {
				return cell
			}
		}
	}

	if g.Board[4] == Empty {
		return 4
	}

	var open []int
	for _, cell := range []int{0, 2, 6, 8} {
		if g.Board[cell] == Empty {
			open = append(open, cell)
		}
	}
	if len(open) == 0 {
		for cell := range g.Board {
			if g.Board[cell] == Empty {
				open = append(open, cell)
			}
		}
	}
	return open[rng.Intn(len(open))]
}

func (g *Game) place(cell int) {
	g.Board[cell] = g.Turn

	if winner := g.Board.Winner(); winner != Empty {
		g.Winner = winner
		g.Over = true
		return
	}
	if g.Board.Full() {
		g.Over = true
		return
	}

	if g.Turn == X {
		g.Turn = O
	} else {
		g.Turn = X
	}
}
