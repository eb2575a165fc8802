// Package player implements the video player: playback state, playlists,
// search and flagging over a loaded catalog.
package player

import (
	"errors"
	"math/rand/v2"

	"github.com/Taichi-iskw/yt-player/internal/catalog"
	"github.com/Taichi-iskw/yt-player/internal/model"
)

// ErrAlreadyPaused is the cause of the error PauseVideo returns when the
// current video is already paused
var ErrAlreadyPaused = errors.New("video already paused")

// Service is interface for video player operations
type Service interface {
	NumberOfVideos() int
	ShowAllVideos() []*model.Video
	PlayVideo(id string) (*PlayResult, error)
	PlayRandomVideo() (*PlayResult, error)
	StopVideo() (*model.Video, error)
	PauseVideo() (*model.Video, error)
	ContinueVideo() (*model.Video, error)
	ShowPlaying() (*model.Video, model.PlayerStatus)
	State() model.PlayerState

	CreatePlaylist(name string) (*model.Playlist, error)
	AddVideoToPlaylist(name, videoID string) (*model.Video, error)
	RemoveFromPlaylist(name, videoID string) (*model.Video, error)
	ClearPlaylist(name string) error
	DeletePlaylist(name string) error
	ShowPlaylist(name string) (*model.Playlist, []*model.Video, error)
	ShowAllPlaylists() []*model.Playlist

	SearchVideos(term string) []*model.Video
	SearchVideosWithTag(tag string) []*model.Video
	FlagVideo(videoID, reason string) (*FlagResult, error)
	AllowVideo(videoID string) (*model.Video, error)
}

// PlayResult describes a successful play.
// Stopped is the video that was loaded before, if any.
type PlayResult struct {
	Stopped *model.Video
	Playing *model.Video
}

// FlagResult describes a successful flag.
// Stopped is set when the flagged video was the current one.
type FlagResult struct {
	Video   *model.Video
	Stopped bool
}

// Option configures a Service
type Option func(*service)

// WithRandom sets the source PlayRandomVideo picks with.
// intn must return a value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(s *service) {
		s.intn = intn
	}
}

// service implements Service. It is not safe for concurrent use.
type service struct {
	catalog   *catalog.Catalog
	playlists map[string]*model.Playlist // keyed by lower-cased name
	state     model.PlayerState
	intn      func(n int) int
}

// NewService creates a player over c with nothing playing and no playlists
func NewService(c *catalog.Catalog, opts ...Option) Service {
	s := &service{
		catalog:   c,
		playlists: make(map[string]*model.Playlist),
		intn:      rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
