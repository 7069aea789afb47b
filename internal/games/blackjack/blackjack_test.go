package blackjack

import (
	"errors"
	"math/rand"
	"testing"
)

func TestHandValue(t *testing.T) {
	tests := []struct {
		name  string
		cards []Card
		want  int
	}{
		{name: "no aces", cards: []Card{{Rank: 10, Suit: 0}, {Rank: 7, Suit: 1}}, want: 17},
		{name: "face cards count ten", cards: []Card{{Rank: 13, Suit: 0}, {Rank: 12, Suit: 1}}, want: 20},
		{name: "soft ace", cards: []Card{{Rank: 1, Suit: 0}, {Rank: 6, Suit: 1}}, want: 17},
		{name: "blackjack", cards: []Card{{Rank: 1, Suit: 0}, {Rank: 13, Suit: 1}}, want: 21},
		{name: "hard ace", cards: []Card{{Rank: 1, Suit: 0}, {Rank: 9, Suit: 1}, {Rank: 5, Suit: 2}}, want: 15},
		{name: "two aces", cards: []Card{{Rank: 1, Suit: 0}, {Rank: 1, Suit: 1}}, want: 12},
		{name: "two aces high total", cards: []Card{{Rank: 1, Suit: 0}, {Rank: 1, Suit: 1}, {Rank: 9, Suit: 2}}, want: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HandValue(tt.cards); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestNewDealsTwoCardsEach(t *testing.T) {
	g := New("alice", rand.New(rand.NewSource(42)))
	if len(g.Player) != 2 || len(g.Dealer) != 2 {
		t.Fatalf("expected two cards each, got player=%d dealer=%d", len(g.Player), len(g.Dealer))
	}
}

func TestDealerDrawsToSeventeen(t *testing.T) {
	g := New("alice", rand.New(rand.NewSource(7)))
	if g.Over() {
		t.Skip("dealt blackjack with this seed")
	}
	if err := g.Stand(); err != nil {
		t.Fatalf("stand: %v", err)
	}

	dealerTotal := HandValue(g.Dealer)
	if dealerTotal < 17 {
		t.Fatalf("dealer stopped below 17 at %d", dealerTotal)
	}
	if g.Outcome == InProgress {
		t.Fatal("hand not settled after stand")
	}
}

func TestBustSettlesHand(t *testing.T) {
	g := New("alice", rand.New(rand.NewSource(3)))
	if g.Over() {
		t.Skip("dealt blackjack with this seed")
	}

	for !g.Over() {
		if err := g.Hit(); err != nil {
			t.Fatalf("hit: %v", err)
		}
		if HandValue(g.Player) > 21 && g.Outcome != DealerWin {
			t.Fatalf("bust should settle as dealer win, got %v", g.Outcome)
		}
	}

	if err := g.Hit(); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver after settle, got %v", err)
	}
	if err := g.Stand(); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver after settle, got %v", err)
	}
}

func TestNaturalsSettleAtDeal(t *testing.T) {
	tests := []struct {
		name   string
		player []Card
		dealer []Card
		want   Result
	}{
		{
			name:   "player natural",
			player: []Card{{Rank: 1, Suit: 0}, {Rank: 13, Suit: 1}},
			dealer: []Card{{Rank: 10, Suit: 2}, {Rank: 9, Suit: 3}},
			want:   PlayerBlackjack,
		},
		{
			name:   "dealer natural ends the hand",
			player: []Card{{Rank: 10, Suit: 0}, {Rank: 9, Suit: 1}},
			dealer: []Card{{Rank: 1, Suit: 2}, {Rank: 12, Suit: 3}},
			want:   DealerWin,
		},
		{
			name:   "both naturals push",
			player: []Card{{Rank: 1, Suit: 0}, {Rank: 10, Suit: 1}},
			dealer: []Card{{Rank: 1, Suit: 2}, {Rank: 11, Suit: 3}},
			want:   Push,
		},
		{
			name:   "no natural keeps playing",
			player: []Card{{Rank: 10, Suit: 0}, {Rank: 9, Suit: 1}},
			dealer: []Card{{Rank: 10, Suit: 2}, {Rank: 8, Suit: 3}},
			want:   InProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Game{PlayerID: "alice", Player: tt.player, Dealer: tt.dealer}
			g.settleNaturals()
			if g.Outcome != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, g.Outcome)
			}
			if tt.want != InProgress {
				if err := g.Hit(); !errors.Is(err, ErrGameOver) {
					t.Fatalf("expected ErrGameOver after a natural, got %v", err)
				}
			}
		})
	}
}

func TestStandOutcomes(t *testing.T) {
	tests := []struct {
		name   string
		player []Card
		dealer []Card
		want   Result
	}{
		{
			name:   "player higher total",
			player: []Card{{Rank: 10, Suit: 0}, {Rank: 10, Suit: 1}},
			dealer: []Card{{Rank: 10, Suit: 2}, {Rank: 8, Suit: 3}},
			want:   PlayerWin,
		},
		{
			name:   "dealer higher total",
			player: []Card{{Rank: 10, Suit: 0}, {Rank: 7, Suit: 1}},
			dealer: []Card{{Rank: 10, Suit: 2}, {Rank: 9, Suit: 3}},
			want:   DealerWin,
		},
		{
			name:   "push",
			player: []Card{{Rank: 10, Suit: 0}, {Rank: 8, Suit: 1}},
			dealer: []Card{{Rank: 10, Suit: 2}, {Rank: 8, Suit: 3}},
			want:   Push,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Game{
				PlayerID: "alice",
				Player:   tt.player,
				Dealer:   tt.dealer,
				// Low cards so a forced dealer draw cannot bust unexpectedly.
				deck: []Card{{Rank: 2, Suit: 0}, {Rank: 2, Suit: 1}, {Rank: 2, Suit: 2}},
			}
			if err := g.Stand(); err != nil {
				t.Fatalf("stand: %v", err)
			}
			if g.Outcome != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, g.Outcome)
			}
		})
	}
}

func TestDealerBust(t *testing.T) {
	g := &Game{
		PlayerID: "alice",
		Player:   []Card{{Rank: 10, Suit: 0}, {Rank: 5, Suit: 1}},
		Dealer:   []Card{{Rank: 10, Suit: 2}, {Rank: 6, Suit: 3}},
		deck:     []Card{{Rank: 10, Suit: 1}},
	}
	if err := g.Stand(); err != nil {
		t.Fatalf("stand: %v", err)
	}
	if g.Outcome != PlayerWin {
		t.Fatalf("expected PlayerWin on dealer bust, got %v", g.Outcome)
	}
}

func TestCardString(t *testing.T) {
	c := Card{Rank: 1, Suit: 0}
	if c.String() != "A♠" {
		t.Fatalf("expected A♠, got %s", c.String())
	}
	c = Card{Rank: 13, Suit: 3}
	if c.String() != "K♣" {
		t.Fatalf("expected K♣, got %s", c.String())
	}
}
