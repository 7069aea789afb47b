// Package music wires the playback slash commands to the Lavalink manager.
package music

import (
	"errors"
	"fmt"

	"shadebot/internal/command"
	"shadebot/internal/music"

	"github.com/bwmarrin/discordgo"
)

const category = "🎵 Music"

var errNotInVoice = errors.New("you must be in a voice channel to do that")

// userVoiceChannel returns the voice channel the invoking user is in.
func userVoiceChannel(s *discordgo.Session, e *discordgo.InteractionCreate) (string, error) {
	user := command.ResolveUser(e)
	vs, err := s.State.VoiceState(e.GuildID, user.ID)
	if err != nil || vs == nil || vs.ChannelID == "" {
		return "", errNotInVoice
	}
	return vs.ChannelID, nil
}

// respondMusicError turns playback errors into a friendly ephemeral embed.
// Unexpected errors are returned so the dispatcher can report them.
func respondMusicError(s *discordgo.Session, e *discordgo.InteractionCreate, err error) error {
	var description string
	switch {
	case errors.Is(err, errNotInVoice):
		description = "You must be in a voice channel to do that."
	case errors.Is(err, music.ErrNothingPlaying):
		description = "Nothing is playing right now."
	case errors.Is(err, music.ErrEmptyQueue):
		description = "The queue is empty."
	case errors.Is(err, music.ErrNoNode):
		description = "The audio node is not available right now. Try again in a minute."
	default:
		return err
	}
	return command.RespondEmbedEphemeral(s, e, &discordgo.MessageEmbed{
		Title:       "🎵 Error",
		Description: description,
	})
}

// followupMusicError is respondMusicError for deferred interactions.
func followupMusicError(s *discordgo.Session, e *discordgo.InteractionCreate, err error) error {
	var description string
	switch {
	case errors.Is(err, errNotInVoice):
		description = "You must be in a voice channel to do that."
	case errors.Is(err, music.ErrNothingPlaying):
		description = "Nothing is playing right now."
	case errors.Is(err, music.ErrEmptyQueue):
		description = "The queue is empty."
	case errors.Is(err, music.ErrNoNode):
		description = "The audio node is not available right now. Try again in a minute."
	default:
		description = fmt.Sprintf("Something went wrong: %v", err)
	}
	return command.FollowupEmbedEphemeral(s, e, &discordgo.MessageEmbed{
		Title:       "🎵 Error",
		Description: description,
	})
}
