package music

import (
	"fmt"

	"github.com/disgoorg/disgolink/v3/lavalink"
)

// FormatDuration renders a track length as M:SS, or H:MM:SS past an hour.
func FormatDuration(d lavalink.Duration) string {
	totalSeconds := d.Milliseconds() / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatTrack renders a track as a markdown link with its duration,
// suitable for queue listings.
func FormatTrack(track lavalink.Track) string {
	title := track.Info.Title
	if track.Info.URI != nil {
		title = fmt.Sprintf("[%s](%s)", title, *track.Info.URI)
	}
	if track.Info.IsStream {
		return fmt.Sprintf("%s `LIVE`", title)
	}
	return fmt.Sprintf("%s `%s`", title, FormatDuration(track.Info.Length))
}
