package storage

// DefaultVolume is applied when a guild has no stored preference.
const DefaultVolume = 100

// SetVolume persists the playback volume for a guild.
func (s *Storage) SetVolume(guildID string, volume int) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	if record.Music == nil {
		record.Music = &MusicSettings{}
	}
	record.Music.Volume = volume
	return s.saveGuildRecord(guildID, record)
}

// GetVolume returns the stored playback volume for a guild, or the default
// when none was ever set.
func (s *Storage) GetVolume(guildID string) (int, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return DefaultVolume, err
	}
	if record.Music == nil {
		return DefaultVolume, nil
	}
	return record.Music.Volume, nil
}
