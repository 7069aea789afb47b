package football

import (
	"errors"
	"math/rand"
	"testing"
)

// playRound takes one full round (user shot + bot shot), returning false
// when the shootout ended mid-round.
func playRound(t *testing.T, g *Game, shoot, dive Direction) bool {
	t.Helper()
	if _, err := g.Shoot(shoot); err != nil {
		t.Fatalf("shoot: %v", err)
	}
	if g.Over() {
		return false
	}
	if _, err := g.Dive(dive); err != nil {
		t.Fatalf("dive: %v", err)
	}
	return !g.Over()
}

func TestPhaseEnforcement(t *testing.T) {
	g := New("alice", rand.New(rand.NewSource(1)))

	if _, err := g.Dive(Left); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase before shooting, got %v", err)
	}
	if _, err := g.Shoot(Left); err != nil {
		t.Fatalf("shoot: %v", err)
	}
	if g.Over() {
		t.Fatal("shootout cannot be decided after one kick")
	}
	if _, err := g.Shoot(Left); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase when keeping, got %v", err)
	}
}

func TestScoringRules(t *testing.T) {
	g := New("alice", rand.New(rand.NewSource(9)))

	res, err := g.Shoot(Right)
	if err != nil {
		t.Fatalf("shoot: %v", err)
	}
	if res.Scored != (res.Shot != res.Dive) {
		t.Fatalf("shot should score exactly when the keeper guesses wrong: %+v", res)
	}
	wantGoals := 0
	if res.Scored {
		wantGoals = 1
	}
	if g.UserGoals != wantGoals {
		t.Fatalf("expected %d user goals, got %d", wantGoals, g.UserGoals)
	}

	res, err = g.Dive(Center)
	if err != nil {
		t.Fatalf("dive: %v", err)
	}
	if res.Scored != (res.Shot != res.Dive) {
		t.Fatalf("bot shot should score exactly when the user guesses wrong: %+v", res)
	}
}

func TestShootoutCompletes(t *testing.T) {
	g := New("alice", rand.New(rand.NewSource(4)))

	for rounds := 0; rounds < 200 && !g.Over(); rounds++ {
		if !playRound(t, g, Direction(rounds%3), Direction((rounds+1)%3)) {
			break
		}
	}

	if !g.Over() {
		t.Fatal("shootout did not settle within 200 rounds")
	}
	if g.Outcome == InProgress {
		t.Fatal("outcome still in progress after game over")
	}
	switch g.Outcome {
	case UserWins:
		if g.UserGoals <= g.BotGoals {
			t.Fatalf("user won with score %d-%d", g.UserGoals, g.BotGoals)
		}
	case BotWins:
		if g.BotGoals <= g.UserGoals {
			t.Fatalf("bot won with score %d-%d", g.UserGoals, g.BotGoals)
		}
	}

	if _, err := g.Shoot(Left); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestEarlyDecision(t *testing.T) {
	// The user leads 3-0 with the bot down to two remaining kicks: the
	// bot cannot catch up, so the shootout ends early.
	g := New("alice", rand.New(rand.NewSource(1)))
	g.UserGoals = 3
	g.BotGoals = 0
	g.userKicks = 3
	g.botKicks = 3

	if !g.settle() {
		t.Fatal("expected the shootout to settle early")
	}
	if g.Outcome != UserWins {
		t.Fatalf("expected UserWins, got %v", g.Outcome)
	}
}

func TestSuddenDeathWaitsForReplyKick(t *testing.T) {
	// A scored sudden-death kick must not end the shootout before the
	// other side takes its reply kick for that round.
	for seed := int64(0); seed < 64; seed++ {
		g := New("alice", rand.New(rand.NewSource(seed)))
		g.UserGoals = 3
		g.BotGoals = 3
		g.userKicks = 5
		g.botKicks = 5
		g.Round = 6

		res, err := g.Shoot(Left)
		if err != nil {
			t.Fatalf("shoot: %v", err)
		}
		if !res.Scored {
			continue
		}

		if g.Over() {
			t.Fatalf("shootout settled at %d-%d before the bot's reply kick", g.UserGoals, g.BotGoals)
		}
		if g.Phase != PhaseDive {
			t.Fatalf("expected PhaseDive after the user's kick, got %v", g.Phase)
		}

		reply, err := g.Dive(Left)
		if err != nil {
			t.Fatalf("dive: %v", err)
		}
		if reply.Scored {
			if g.Over() {
				t.Fatalf("round tied at %d-%d but shootout ended", g.UserGoals, g.BotGoals)
			}
			if g.Round != 7 {
				t.Fatalf("expected round 7 after a tied sudden-death round, got %d", g.Round)
			}
		} else if !g.Over() || g.Outcome != UserWins {
			t.Fatalf("split sudden-death round should decide it, got over=%v outcome=%v", g.Over(), g.Outcome)
		}
		return
	}
	t.Fatal("no seed produced a scoring sudden-death kick")
}

func TestRegulationTieGoesToSuddenDeath(t *testing.T) {
	g := New("alice", rand.New(rand.NewSource(1)))
	g.UserGoals = 4
	g.BotGoals = 4
	g.userKicks = 5
	g.botKicks = 5

	if g.settle() {
		t.Fatal("tied regulation should continue into sudden death")
	}

	// A split sudden-death round decides it.
	g.UserGoals = 5
	g.userKicks = 6
	g.botKicks = 6
	if !g.settle() || g.Outcome != UserWins {
		t.Fatalf("expected sudden-death win for the user, got over=%v outcome=%v", g.Over(), g.Outcome)
	}
}
