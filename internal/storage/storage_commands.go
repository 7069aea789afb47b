package storage

import "time"

// AppendCommandToHistory appends a command history record for a guild,
// trimming the list to the history limit.
func (s *Storage) AppendCommandToHistory(guildID string, record CommandHistoryRecord) error {
	guildRecord, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	if record.Datetime.IsZero() {
		record.Datetime = time.Now()
	}

	guildRecord.CommandsHistoryList = append(guildRecord.CommandsHistoryList, record)
	if len(guildRecord.CommandsHistoryList) > commandHistoryLimit {
		guildRecord.CommandsHistoryList = guildRecord.CommandsHistoryList[len(guildRecord.CommandsHistoryList)-commandHistoryLimit:]
	}

	return s.saveGuildRecord(guildID, guildRecord)
}

// GetCommandHistory returns the recorded command history for a guild,
// oldest first.
func (s *Storage) GetCommandHistory(guildID string) ([]CommandHistoryRecord, error) {
	guildRecord, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return guildRecord.CommandsHistoryList, nil
}
