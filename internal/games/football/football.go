// Package football implements a penalty shootout against the bot: best of
// five rounds, sudden death on a tie. Each round the user shoots while the
// bot keeps, then dives while the bot shoots.
package football

import (
	"errors"
	"math/rand"
)

const regulationKicks = 5

var (
	ErrGameOver   = errors.New("the shootout is already over")
	ErrWrongPhase = errors.New("wrong phase for that action")
)

type Direction int

const (
	Left Direction = iota
	Center
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Center:
		return "center"
	default:
		return "right"
	}
}

type Phase int

const (
	PhaseShoot Phase = iota // the user shoots, the bot keeps
	PhaseDive               // the bot shoots, the user keeps
	PhaseOver
)

type Outcome int

const (
	InProgress Outcome = iota
	UserWins
	BotWins
)

// KickResult describes a single penalty kick.
type KickResult struct {
	Shot   Direction
	Dive   Direction
	Scored bool
}

// Game is one shootout.
type Game struct {
	UserID    string
	Round     int // 1-based
	Phase     Phase
	Outcome   Outcome
	UserGoals int
	BotGoals  int

	userKicks int
	botKicks  int
	rng       *rand.Rand
}

func New(userID string, rng *rand.Rand) *Game {
	return &Game{UserID: userID, Round: 1, rng: rng}
}

// Over reports whether the shootout is settled.
func (g *Game) Over() bool {
	return g.Phase == PhaseOver
}

// SuddenDeath reports whether regulation kicks are exhausted.
func (g *Game) SuddenDeath() bool {
	return g.Round > regulationKicks
}

// Shoot takes the user's penalty. The bot keeper dives at random: the shot
// scores when the keeper guesses wrong.
func (g *Game) Shoot(dir Direction) (KickResult, error) {
	if g.Over() {
		return KickResult{}, ErrGameOver
	}
	if g.Phase != PhaseShoot {
		return KickResult{}, ErrWrongPhase
	}

	dive := Direction(g.rng.Intn(3))
	result := KickResult{Shot: dir, Dive: dive, Scored: dir != dive}
	if result.Scored {
		g.UserGoals++
	}
	g.userKicks++

	if !g.settle() {
		g.Phase = PhaseDive
	}
	return result, nil
}

// Dive has the user keep the bot's penalty. The bot shoots at random: the
// save succeeds when the user guesses the corner.
func (g *Game) Dive(dir Direction) (KickResult, error) {
	if g.Over() {
		return KickResult{}, ErrGameOver
	}
	if g.Phase != PhaseDive {
		return KickResult{}, ErrWrongPhase
	}

	shot := Direction(g.rng.Intn(3))
	result := KickResult{Shot: shot, Dive: dir, Scored: shot != dir}
	if result.Scored {
		g.BotGoals++
	}
	g.botKicks++

	if !g.settle() {
		g.Round++
		g.Phase = PhaseShoot
	}
	return result, nil
}

// settle ends the shootout as soon as it is mathematically decided:
// within regulation when one side leads by more than the other side's
// remaining kicks, and past regulation only when a completed sudden-death
// round splits. A mid-round lead in sudden death is still assailable, the
// other side always gets its reply kick.
func (g *Game) settle() bool {
	inRegulation := g.userKicks <= regulationKicks && g.botKicks <= regulationKicks

	switch {
	case inRegulation && g.UserGoals > g.BotGoals+(regulationKicks-g.botKicks):
		g.Outcome = UserWins
	case inRegulation && g.BotGoals > g.UserGoals+(regulationKicks-g.userKicks):
		g.Outcome = BotWins
	case g.userKicks >= regulationKicks && g.userKicks == g.botKicks && g.UserGoals != g.BotGoals:
		// Completed round split.
		if g.UserGoals > g.BotGoals {
			g.Outcome = UserWins
		} else {
			g.Outcome = BotWins
		}
	default:
		return false
	}

	g.Phase = PhaseOver
	return true
}
