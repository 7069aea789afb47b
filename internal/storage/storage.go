package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const commandHistoryLimit = 20

// Storage wraps the JSON file datastore with one Record per guild.
type Storage struct {
	ds *datastore.DataStore
}

type CommandHistoryRecord struct {
	ChannelID   string    `json:"channel_id"`
	ChannelName string    `json:"channel_name"`
	GuildName   string    `json:"guild_name"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Command     string    `json:"command"`
	Datetime    time.Time `json:"datetime"`
}

// MusicSettings holds per-guild playback preferences that survive restarts.
type MusicSettings struct {
	Volume int `json:"volume"`
}

// GameStats tracks per-user outcomes for a single game.
type GameStats struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

type Record struct {
	CommandsHistoryList []CommandHistoryRecord          `json:"cmd_history"`
	Music               *MusicSettings                  `json:"music,omitempty"`
	Games               map[string]map[string]GameStats `json:"games"` // game -> userID -> stats
}

// New opens the datastore at filePath. ctx controls the store's background
// save goroutine; cancel it to flush and stop.
func New(ctx context.Context, filePath string) (*Storage, error) {
	ds, err := datastore.New(ctx, filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// getOrCreateGuildRecord returns the Record for a guild, or a fresh one on
// first use. The record is only persisted by saveGuildRecord.
func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	var record Record
	found, err := s.ds.Get(guildID, &record)
	if err != nil {
		return nil, fmt.Errorf("read guild record: %w", err)
	}
	if !found {
		record = Record{
			CommandsHistoryList: []CommandHistoryRecord{},
			Games:               map[string]map[string]GameStats{},
		}
	}

	if record.Games == nil {
		record.Games = map[string]map[string]GameStats{}
	}
	if len(record.CommandsHistoryList) > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[len(record.CommandsHistoryList)-commandHistoryLimit:]
	}

	return &record, nil
}

func (s *Storage) saveGuildRecord(guildID string, record *Record) error {
	if err := s.ds.Set(guildID, record); err != nil {
		return fmt.Errorf("save guild record: %w", err)
	}
	return nil
}
