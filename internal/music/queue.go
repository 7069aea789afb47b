package music

import (
	"math/rand"
	"sync"

	"github.com/disgoorg/disgolink/v3/lavalink"
)

// Queue holds the tracks waiting to be played for one guild.
// All methods are safe for concurrent use.
type Queue struct {
	mu     sync.Mutex
	tracks []lavalink.Track
}

func NewQueue() *Queue {
	return &Queue{}
}

// Add appends tracks to the end of the queue.
func (q *Queue) Add(tracks ...lavalink.Track) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tracks = append(q.tracks, tracks...)
}

// Next pops the first track off the queue.
func (q *Queue) Next() (lavalink.Track, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.tracks) == 0 {
		return lavalink.Track{}, false
	}
	track := q.tracks[0]
	q.tracks = q.tracks[1:]
	return track, true
}

// Shuffle reorders the queued tracks randomly.
func (q *Queue) Shuffle() {
	q.mu.Lock()
	defer q.mu.Unlock()
	rand.Shuffle(len(q.tracks), func(i, j int) {
		q.tracks[i], q.tracks[j] = q.tracks[j], q.tracks[i]
	})
}

// Clear drops every queued track.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tracks = nil
}

// Len returns the number of queued tracks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tracks)
}

// Tracks returns a copy of the queued tracks in order.
func (q *Queue) Tracks() []lavalink.Track {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]lavalink.Track, len(q.tracks))
	copy(out, q.tracks)
	return out
}
