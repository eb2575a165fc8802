package model

import "strings"

// DefaultFlagReason is recorded when a video is flagged without a reason
const DefaultFlagReason = "Not supplied"

// Video represents a catalog entry
type Video struct {
	ID         string   `json:"id" yaml:"id" db:"id" validate:"required"`
	Title      string   `json:"title" yaml:"title" db:"title" validate:"required"`
	Tags       []string `json:"tags" yaml:"tags" db:"tags"`
	Flagged    bool     `json:"flagged" yaml:"-" db:"-"`
	FlagReason string   `json:"flag_reason,omitempty" yaml:"-" db:"-"`
}

// HasTag reports whether the video carries tag, ignoring case
func (v *Video) HasTag(tag string) bool {
	for _, t := range v.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Playlist is a named, ordered list of video IDs without duplicates
type Playlist struct {
	Name     string   `json:"name"`
	VideoIDs []string `json:"video_ids"`
}

// Contains reports whether videoID is in the playlist
func (p *Playlist) Contains(videoID string) bool {
	return p.indexOf(videoID) >= 0
}

// Remove deletes videoID from the playlist and reports whether it was present
func (p *Playlist) Remove(videoID string) bool {
	i := p.indexOf(videoID)
	if i < 0 {
		return false
	}
	p.VideoIDs = append(p.VideoIDs[:i], p.VideoIDs[i+1:]...)
	return true
}

func (p *Playlist) indexOf(videoID string) int {
	for i, id := range p.VideoIDs {
		if id == videoID {
			return i
		}
	}
	return -1
}

// PlayerStatus is the playback status of the player
type PlayerStatus int

const (
	StatusStopped PlayerStatus = iota
	StatusPlaying
	StatusPaused
)

func (s PlayerStatus) String() string {
	switch s {
	case StatusPlaying:
		return "PLAYING"
	case StatusPaused:
		return "PAUSED"
	default:
		return "STOPPED"
	}
}

// PlayerState tracks the currently loaded video.
// CurrentVideoID is empty exactly when Status is StatusStopped.
type PlayerState struct {
	CurrentVideoID string       `json:"current_video_id,omitempty"`
	Status         PlayerStatus `json:"status"`
}
