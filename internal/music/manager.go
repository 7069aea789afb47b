package music

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"sync"
	"time"

	"shadebot/internal/config"
	"shadebot/internal/storage"
	"shadebot/pkg/retrylimit"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/disgolink/v3/disgolink"
	"github.com/disgoorg/disgolink/v3/lavalink"
	"github.com/disgoorg/snowflake/v2"
)

const (
	nodeName = "main"

	// Lavalink accepts 0-1000 but anything past 150 is just clipping.
	MaxVolume = 150

	healthCheckInterval = time.Minute
)

var (
	ErrNothingPlaying = errors.New("nothing is playing right now")
	ErrNoNode         = errors.New("audio node is not connected")
	ErrEmptyQueue     = errors.New("the queue is empty")
)

var urlPattern = regexp.MustCompile(`^https?://`)

// Manager owns the Lavalink client and per-guild playback state. Actual
// decoding and streaming happens on the Lavalink node; this layer only
// mutates queues and forwards player updates.
type Manager struct {
	client  disgolink.Client
	session *discordgo.Session
	store   *storage.Storage
	cfg     config.LavalinkConfig

	mu     sync.RWMutex
	guilds map[string]*guildState
}

type guildState struct {
	queue         *Queue
	textChannelID string
}

// New builds a Manager bound to an opened Discord session. The session must
// be open already so the bot user ID is known.
func New(session *discordgo.Session, cfg config.LavalinkConfig, store *storage.Storage) *Manager {
	m := &Manager{
		session: session,
		store:   store,
		cfg:     cfg,
		guilds:  make(map[string]*guildState),
	}
	m.client = disgolink.New(snowflake.MustParse(session.State.User.ID),
		disgolink.WithListenerFunc(m.onTrackStart),
		disgolink.WithListenerFunc(m.onTrackEnd),
		disgolink.WithListenerFunc(m.onTrackException),
		disgolink.WithListenerFunc(m.onTrackStuck),
		disgolink.WithListenerFunc(m.onWebSocketClosed),
	)
	return m
}

// Connect adds the configured Lavalink node, retrying with backoff. The bot
// keeps running without a node; music commands surface ErrNoNode until the
// health loop brings it up.
func (m *Manager) Connect(ctx context.Context) error {
	lim := retrylimit.NewAdaptiveLimiter(1, 1, 5, 1, 0.5)
	return retrylimit.WithRetryMax(ctx, func() error {
		addCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		node, err := m.client.AddNode(addCtx, disgolink.NodeConfig{
			Name:     nodeName,
			Address:  m.cfg.Address(),
			Password: m.cfg.Password,
			Secure:   m.cfg.Secure,
		})
		if err != nil {
			return fmt.Errorf("add node %s: %w", m.cfg.Address(), err)
		}

		version, err := node.Version(addCtx)
		if err != nil {
			log.Printf("[WARN] 🎵 Node %s connected but version probe failed: %v", nodeName, err)
		} else {
			log.Printf("[INFO] 🎵 Lavalink node %s ready (server version %s)", nodeName, version)
		}
		return nil
	}, lim, 5)
}

// HealthLoop periodically verifies the node is reachable and reconnects it
// when it is gone. Runs until ctx is done.
func (m *Manager) HealthLoop(ctx context.Context) {
	ticker := time.NewTicker(healthCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			node := m.client.BestNode()
			if node == nil {
				log.Println("[WARN] 🎵 No Lavalink node available, attempting reconnection...")
				if err := m.Connect(ctx); err != nil {
					log.Println("[ERR] 🎵 Failed to reconnect Lavalink node:", err)
				}
				continue
			}
			probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			if _, err := node.Version(probeCtx); err != nil {
				log.Println("[WARN] 🎵 Lavalink health probe failed:", err)
			}
			cancel()
		}
	}
}

// Close disconnects every voice channel and shuts the Lavalink client down.
func (m *Manager) Close() {
	m.mu.RLock()
	guildIDs := make([]string, 0, len(m.guilds))
	for id := range m.guilds {
		guildIDs = append(guildIDs, id)
	}
	m.mu.RUnlock()

	for _, guildID := range guildIDs {
		if err := m.session.ChannelVoiceJoinManual(guildID, "", false, true); err != nil {
			log.Printf("[WARN] 🎵 Error leaving voice in guild %s: %v", guildID, err)
		}
	}
	m.client.Close()
}

func (m *Manager) state(guildID string) *guildState {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.guilds[guildID]
	if !ok {
		st = &guildState{queue: NewQueue()}
		m.guilds[guildID] = st
	}
	return st
}

// Queue returns the guild's play queue, creating it on first use.
func (m *Manager) Queue(guildID string) *Queue {
	return m.state(guildID).queue
}

func (m *Manager) textChannel(guildID string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if st, ok := m.guilds[guildID]; ok {
		return st.textChannelID
	}
	return ""
}

// searchTypes maps the /play source option to a Lavalink search prefix.
var searchTypes = map[string]lavalink.SearchType{
	"youtube":    lavalink.SearchTypeYouTube,
	"ytmusic":    lavalink.SearchTypeYouTubeMusic,
	"soundcloud": lavalink.SearchTypeSoundCloud,
}

// SearchSources lists the selectable sources for bare-text queries.
func SearchSources() []string {
	return []string{"youtube", "ytmusic", "soundcloud"}
}

// Search resolves a query into tracks. Bare text becomes a search on the
// given source (YouTube when empty); URLs load directly. A playlist URL
// returns all of its tracks, a search returns only the best match.
func (m *Manager) Search(ctx context.Context, query, source string) ([]lavalink.Track, error) {
	node := m.client.BestNode()
	if node == nil {
		return nil, ErrNoNode
	}

	if !urlPattern.MatchString(query) {
		searchType, ok := searchTypes[source]
		if !ok {
			searchType = lavalink.SearchTypeYouTube
		}
		query = searchType.Apply(query)
	}

	var (
		tracks  []lavalink.Track
		loadErr error
	)
	node.LoadTracksHandler(ctx, query, disgolink.NewResultHandler(
		func(track lavalink.Track) {
			tracks = []lavalink.Track{track}
		},
		func(playlist lavalink.Playlist) {
			tracks = playlist.Tracks
		},
		func(searched []lavalink.Track) {
			if len(searched) > 0 {
				tracks = searched[:1]
			}
		},
		func() {},
		func(err error) {
			loadErr = err
		},
	))
	if loadErr != nil {
		return nil, fmt.Errorf("load tracks: %w", loadErr)
	}
	return tracks, nil
}

// Play joins the voice channel, binds the text channel for announcements,
// and either starts the first track (if idle) or queues everything.
// It returns the track that started, if any, and the number queued.
func (m *Manager) Play(ctx context.Context, guildID, voiceChannelID, textChannelID string, tracks ...lavalink.Track) (*lavalink.Track, int, error) {
	if len(tracks) == 0 {
		return nil, 0, ErrEmptyQueue
	}

	if err := m.session.ChannelVoiceJoinManual(guildID, voiceChannelID, false, true); err != nil {
		return nil, 0, fmt.Errorf("join voice channel: %w", err)
	}

	st := m.state(guildID)
	m.mu.Lock()
	st.textChannelID = textChannelID
	m.mu.Unlock()

	player := m.client.Player(snowflake.MustParse(guildID))
	if player.Track() != nil {
		st.queue.Add(tracks...)
		return nil, len(tracks), nil
	}

	first := tracks[0]
	volume, err := m.store.GetVolume(guildID)
	if err != nil {
		volume = storage.DefaultVolume
	}
	if err := player.Update(ctx, lavalink.WithTrack(first), lavalink.WithVolume(volume)); err != nil {
		return nil, 0, fmt.Errorf("start playback: %w", err)
	}
	st.queue.Add(tracks[1:]...)
	return &first, len(tracks) - 1, nil
}

// Skip advances to the next queued track. Skipping is valid whenever a
// track is playing or the queue is non-empty; with an empty queue the
// player simply stops instead of erroring.
func (m *Manager) Skip(ctx context.Context, guildID string) (*lavalink.Track, error) {
	st := m.state(guildID)
	player := m.client.ExistingPlayer(snowflake.MustParse(guildID))
	if player == nil || !skippable(player.Track() != nil, st.queue.Len()) {
		return nil, ErrNothingPlaying
	}

	next, ok := st.queue.Next()
	if !ok {
		if err := player.Update(ctx, lavalink.WithNullTrack()); err != nil {
			return nil, fmt.Errorf("stop playback: %w", err)
		}
		return nil, nil
	}
	if err := player.Update(ctx, lavalink.WithTrack(next)); err != nil {
		return nil, fmt.Errorf("play next track: %w", err)
	}
	return &next, nil
}

// skippable is the validation predicate for /skip: there must be a current
// track or at least one queued track.
func skippable(hasCurrent bool, queueLen int) bool {
	return hasCurrent || queueLen > 0
}

// Pause pauses or resumes the current track.
func (m *Manager) Pause(ctx context.Context, guildID string, paused bool) error {
	player := m.client.ExistingPlayer(snowflake.MustParse(guildID))
	if player == nil || player.Track() == nil {
		return ErrNothingPlaying
	}
	if err := player.Update(ctx, lavalink.WithPaused(paused)); err != nil {
		return fmt.Errorf("update pause state: %w", err)
	}
	return nil
}

// Stop clears the queue, stops playback and leaves the voice channel.
func (m *Manager) Stop(ctx context.Context, guildID string) error {
	st := m.state(guildID)
	st.queue.Clear()

	if player := m.client.ExistingPlayer(snowflake.MustParse(guildID)); player != nil {
		if err := player.Update(ctx, lavalink.WithNullTrack()); err != nil {
			return fmt.Errorf("stop playback: %w", err)
		}
	}
	if err := m.session.ChannelVoiceJoinManual(guildID, "", false, true); err != nil {
		return fmt.Errorf("leave voice channel: %w", err)
	}
	return nil
}

// SetVolume clamps, applies and persists the playback volume, returning the
// value actually set.
func (m *Manager) SetVolume(ctx context.Context, guildID string, volume int) (int, error) {
	volume = clampVolume(volume)

	if player := m.client.ExistingPlayer(snowflake.MustParse(guildID)); player != nil {
		if err := player.Update(ctx, lavalink.WithVolume(volume)); err != nil {
			return 0, fmt.Errorf("update volume: %w", err)
		}
	}
	if err := m.store.SetVolume(guildID, volume); err != nil {
		log.Printf("[WARN] 🎵 Failed to persist volume for guild %s: %v", guildID, err)
	}
	return volume, nil
}

func clampVolume(volume int) int {
	if volume < 0 {
		return 0
	}
	if volume > MaxVolume {
		return MaxVolume
	}
	return volume
}

// NowPlaying returns the current track, position and pause state.
func (m *Manager) NowPlaying(guildID string) (*lavalink.Track, lavalink.Duration, bool, error) {
	player := m.client.ExistingPlayer(snowflake.MustParse(guildID))
	if player == nil {
		return nil, 0, false, ErrNothingPlaying
	}
	track := player.Track()
	if track == nil {
		return nil, 0, false, ErrNothingPlaying
	}
	return track, player.Position(), player.Paused(), nil
}

// OnVoiceServerUpdate forwards gateway voice server updates to Lavalink.
// Registered as a discordgo handler.
func (m *Manager) OnVoiceServerUpdate(s *discordgo.Session, e *discordgo.VoiceServerUpdate) {
	m.client.OnVoiceServerUpdate(context.Background(), snowflake.MustParse(e.GuildID), e.Token, e.Endpoint)
}

// OnVoiceStateUpdate forwards the bot's own voice state to Lavalink and
// drops the queue when the bot is disconnected from voice.
func (m *Manager) OnVoiceStateUpdate(s *discordgo.Session, e *discordgo.VoiceStateUpdate) {
	if e.UserID != s.State.User.ID {
		return
	}
	var channelID *snowflake.ID
	if e.ChannelID != "" {
		id := snowflake.MustParse(e.ChannelID)
		channelID = &id
	}
	m.client.OnVoiceStateUpdate(context.Background(), snowflake.MustParse(e.GuildID), channelID, e.SessionID)
	if e.ChannelID == "" {
		m.state(e.GuildID).queue.Clear()
	}
}
