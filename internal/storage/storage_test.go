package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	s, err := New(ctx, filepath.Join(t.TempDir(), "datastore.json"))
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() {
		cancel()
		_ = s.Close()
	})
	return s
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datastore.json")

	ctx, cancel := context.WithCancel(context.Background())
	s, err := New(ctx, path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.SetVolume("guild-1", 55); err != nil {
		t.Fatalf("SetVolume: %v", err)
	}
	if err := s.RecordGameResult("guild-1", "blackjack", "user-1", OutcomeWin); err != nil {
		t.Fatalf("RecordGameResult: %v", err)
	}
	cancel()
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	ctx, cancel = context.WithCancel(context.Background())
	reopened, err := New(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() {
		cancel()
		_ = reopened.Close()
	})

	vol, err := reopened.GetVolume("guild-1")
	if err != nil {
		t.Fatalf("GetVolume: %v", err)
	}
	if vol != 55 {
		t.Fatalf("got volume %d after reopen, want 55", vol)
	}
	stats, err := reopened.GetGameStats("guild-1", "blackjack", "user-1")
	if err != nil {
		t.Fatalf("GetGameStats: %v", err)
	}
	if stats.Wins != 1 {
		t.Fatalf("got %+v after reopen, want 1 win", stats)
	}
}

func TestVolumeRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	vol, err := s.GetVolume("guild-1")
	if err != nil {
		t.Fatalf("GetVolume: %v", err)
	}
	if vol != DefaultVolume {
		t.Fatalf("got default volume %d, want %d", vol, DefaultVolume)
	}

	if err := s.SetVolume("guild-1", 42); err != nil {
		t.Fatalf("SetVolume: %v", err)
	}

	vol, err = s.GetVolume("guild-1")
	if err != nil {
		t.Fatalf("GetVolume: %v", err)
	}
	if vol != 42 {
		t.Fatalf("got volume %d, want 42", vol)
	}

	// Other guilds are unaffected.
	vol, err = s.GetVolume("guild-2")
	if err != nil {
		t.Fatalf("GetVolume: %v", err)
	}
	if vol != DefaultVolume {
		t.Fatalf("got volume %d for untouched guild, want %d", vol, DefaultVolume)
	}
}

func TestGameStats(t *testing.T) {
	s := newTestStorage(t)

	stats, err := s.GetGameStats("guild-1", "blackjack", "user-1")
	if err != nil {
		t.Fatalf("GetGameStats: %v", err)
	}
	if stats != (GameStats{}) {
		t.Fatalf("got %+v for fresh user, want zero stats", stats)
	}

	outcomes := []string{OutcomeWin, OutcomeWin, OutcomeLoss, OutcomeDraw}
	for _, outcome := range outcomes {
		if err := s.RecordGameResult("guild-1", "blackjack", "user-1", outcome); err != nil {
			t.Fatalf("RecordGameResult(%q): %v", outcome, err)
		}
	}

	stats, err = s.GetGameStats("guild-1", "blackjack", "user-1")
	if err != nil {
		t.Fatalf("GetGameStats: %v", err)
	}
	want := GameStats{Wins: 2, Losses: 1, Draws: 1}
	if stats != want {
		t.Fatalf("got %+v, want %+v", stats, want)
	}

	// Stats are scoped per game.
	stats, err = s.GetGameStats("guild-1", "tictactoe", "user-1")
	if err != nil {
		t.Fatalf("GetGameStats: %v", err)
	}
	if stats != (GameStats{}) {
		t.Fatalf("got %+v for other game, want zero stats", stats)
	}
}

func TestCommandHistory(t *testing.T) {
	s := newTestStorage(t)

	for i := 0; i < 3; i++ {
		err := s.AppendCommandToHistory("guild-1", CommandHistoryRecord{
			UserID:   "user-1",
			Username: "tester",
			Command:  fmt.Sprintf("cmd-%d", i),
		})
		if err != nil {
			t.Fatalf("AppendCommandToHistory: %v", err)
		}
	}

	history, err := s.GetCommandHistory("guild-1")
	if err != nil {
		t.Fatalf("GetCommandHistory: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("got %d records, want 3", len(history))
	}
	if history[0].Command != "cmd-0" || history[2].Command != "cmd-2" {
		t.Fatalf("history out of order: %+v", history)
	}
	for _, rec := range history {
		if rec.Datetime.IsZero() {
			t.Fatal("expected Datetime to be stamped")
		}
	}
}

func TestCommandHistoryTrim(t *testing.T) {
	s := newTestStorage(t)

	total := commandHistoryLimit + 5
	for i := 0; i < total; i++ {
		err := s.AppendCommandToHistory("guild-1", CommandHistoryRecord{
			Command: fmt.Sprintf("cmd-%d", i),
		})
		if err != nil {
			t.Fatalf("AppendCommandToHistory: %v", err)
		}
	}

	history, err := s.GetCommandHistory("guild-1")
	if err != nil {
		t.Fatalf("GetCommandHistory: %v", err)
	}
	if len(history) != commandHistoryLimit {
		t.Fatalf("got %d records, want %d", len(history), commandHistoryLimit)
	}
	if got, want := history[0].Command, fmt.Sprintf("cmd-%d", total-commandHistoryLimit); got != want {
		t.Fatalf("oldest record is %q, want %q", got, want)
	}
}
