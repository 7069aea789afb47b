package storage

// Game outcome values accepted by RecordGameResult.
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
	OutcomeDraw = "draw"
)

// RecordGameResult bumps a user's stats for the given game.
func (s *Storage) RecordGameResult(guildID, game, userID, outcome string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	if record.Games[game] == nil {
		record.Games[game] = map[string]GameStats{}
	}
	stats := record.Games[game][userID]
	switch outcome {
	case OutcomeWin:
		stats.Wins++
	case OutcomeLoss:
		stats.Losses++
	case OutcomeDraw:
		stats.Draws++
	}
	record.Games[game][userID] = stats

	return s.saveGuildRecord(guildID, record)
}

// GetGameStats returns a user's stats for the given game.
func (s *Storage) GetGameStats(guildID, game, userID string) (GameStats, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return GameStats{}, err
	}
	return record.Games[game][userID], nil
}
