// Package blackjack implements a single-deck blackjack hand against the
// dealer, independent of any Discord plumbing.
package blackjack

import (
	"errors"
	"fmt"
	"math/rand"
)

var ErrGameOver = errors.New("the hand is already over")

var (
	suits = []string{"♠", "♥", "♦", "♣"}
	ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

// Card is one playing card. Rank is 1 (ace) through 13 (king).
type Card struct {
	Rank int
	Suit int
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", ranks[c.Rank-1], suits[c.Suit])
}

// value returns the card's blackjack value with aces counted as 1.
func (c Card) value() int {
	if c.Rank > 10 {
		return 10
	}
	return c.Rank
}

// HandValue computes the best blackjack total, counting one ace as 11 when
// that does not bust the hand.
func HandValue(cards []Card) int {
	total := 0
	aces := 0
	for _, c := range cards {
		total += c.value()
		if c.Rank == 1 {
			aces++
		}
	}
	if aces > 0 && total+10 <= 21 {
		total += 10
	}
	return total
}

// Result is the final outcome of a hand from the player's perspective.
type Result int

const (
	InProgress Result = iota
	PlayerBlackjack
	PlayerWin
	DealerWin
	Push
)

func (r Result) String() string {
	switch r {
	case PlayerBlackjack:
		return "Blackjack!"
	case PlayerWin:
		return "You win"
	case DealerWin:
		return "Dealer wins"
	case Push:
		return "Push"
	default:
		return "In progress"
	}
}

// Game is one blackjack hand.
type Game struct {
	PlayerID string
	Player   []Card
	Dealer   []Card
	Outcome  Result

	deck []Card
}

// New deals a fresh hand from a shuffled single deck. A dealt blackjack on
// either side settles the hand immediately.
func New(playerID string, rng *rand.Rand) *Game {
	deck := make([]Card, 0, 52)
	for suit := 0; suit < 4; suit++ {
		for rank := 1; rank <= 13; rank++ {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	g := &Game{PlayerID: playerID, deck: deck}
	g.Player = append(g.Player, g.draw(), g.draw())
	g.Dealer = append(g.Dealer, g.draw(), g.draw())
	g.settleNaturals()
	return g
}

// settleNaturals ends the hand at the deal when either side holds 21.
func (g *Game) settleNaturals() {
	playerNatural := HandValue(g.Player) == 21
	dealerNatural := HandValue(g.Dealer) == 21
	switch {
	case playerNatural && dealerNatural:
		g.Outcome = Push
	case playerNatural:
		g.Outcome = PlayerBlackjack
	case dealerNatural:
		g.Outcome = DealerWin
	}
}

// Over reports whether the hand is settled.
func (g *Game) Over() bool {
	return g.Outcome != InProgress
}

// Hit deals the player another card, busting at over 21.
func (g *Game) Hit() error {
	if g.Over() {
		return ErrGameOver
	}
	g.Player = append(g.Player, g.draw())
	if HandValue(g.Player) > 21 {
		g.Outcome = DealerWin
	}
	return nil
}

// Stand ends the player's turn: the dealer draws to 17 and the hand is
// settled.
func (g *Game) Stand() error {
	if g.Over() {
		return ErrGameOver
	}

	for HandValue(g.Dealer) < 17 {
		g.Dealer = append(g.Dealer, g.draw())
	}

	playerTotal := HandValue(g.Player)
	dealerTotal := HandValue(g.Dealer)
	switch {
	case dealerTotal > 21 || playerTotal > dealerTotal:
		g.Outcome = PlayerWin
	case playerTotal < dealerTotal:
		g.Outcome = DealerWin
	default:
		g.Outcome = Push
	}
	return nil
}

func (g *Game) draw() Card {
	card := g.deck[0]
	g.deck = g.deck[1:]
	return card
}
