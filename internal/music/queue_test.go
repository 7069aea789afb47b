package music

import (
	"testing"

	"github.com/disgoorg/disgolink/v3/lavalink"
)

func testTrack(title string) lavalink.Track {
	return lavalink.Track{
		Encoded: "enc:" + title,
		Info:    lavalink.TrackInfo{Identifier: title, Title: title},
	}
}

func TestQueueOrder(t *testing.T) {
	q := NewQueue()
	q.Add(testTrack("one"), testTrack("two"))
	q.Add(testTrack("three"))

	if q.Len() != 3 {
		t.Fatalf("expected 3 queued tracks, got %d", q.Len())
	}

	for _, want := range []string{"one", "two", "three"} {
		track, ok := q.Next()
		if !ok {
			t.Fatalf("expected track %q, queue was empty", want)
		}
		if track.Info.Title != want {
			t.Fatalf("expected %q, got %q", want, track.Info.Title)
		}
	}

	if _, ok := q.Next(); ok {
		t.Fatal("expected empty queue after draining")
	}
}

func TestQueueClear(t *testing.T) {
	q := NewQueue()
	q.Add(testTrack("one"), testTrack("two"))
	q.Clear()
	if q.Len() != 0 {
		t.Fatalf("expected empty queue after clear, got %d", q.Len())
	}
}

func TestQueueShuffleKeepsTracks(t *testing.T) {
	q := NewQueue()
	titles := []string{"a", "b", "c", "d", "e", "f"}
	for _, title := range titles {
		q.Add(testTrack(title))
	}

	q.Shuffle()

	if q.Len() != len(titles) {
		t.Fatalf("shuffle changed queue length to %d", q.Len())
	}
	seen := make(map[string]bool)
	for _, track := range q.Tracks() {
		seen[track.Info.Title] = true
	}
	for _, title := range titles {
		if !seen[title] {
			t.Fatalf("track %q lost during shuffle", title)
		}
	}
}

func TestQueueTracksReturnsCopy(t *testing.T) {
	q := NewQueue()
	q.Add(testTrack("one"))

	snapshot := q.Tracks()
	snapshot[0] = testTrack("tampered")

	track, _ := q.Next()
	if track.Info.Title != "one" {
		t.Fatal("mutating the snapshot leaked into the queue")
	}
}

func TestSkippablePredicate(t *testing.T) {
	tests := []struct {
		name       string
		hasCurrent bool
		queueLen   int
		want       bool
	}{
		{name: "idle with empty queue", hasCurrent: false, queueLen: 0, want: false},
		{name: "playing with empty queue", hasCurrent: true, queueLen: 0, want: true},
		{name: "idle with queued tracks", hasCurrent: false, queueLen: 2, want: true},
		{name: "playing with queued tracks", hasCurrent: true, queueLen: 2, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := skippable(tt.hasCurrent, tt.queueLen); got != tt.want {
				t.Fatalf("skippable(%v, %d) = %v, want %v", tt.hasCurrent, tt.queueLen, got, tt.want)
			}
		})
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: -10, want: 0},
		{in: 0, want: 0},
		{in: 100, want: 100},
		{in: MaxVolume, want: MaxVolume},
		{in: 999, want: MaxVolume},
	}
	for _, tt := range tests {
		if got := clampVolume(tt.in); got != tt.want {
			t.Fatalf("clampVolume(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
