package player

import (
	"sort"
	"strings"

	apperrors "github.com/Taichi-iskw/yt-player/internal/errors"
	"github.com/Taichi-iskw/yt-player/internal/model"
)

const msgPlaylistNotFound = "Playlist does not exist"

// CreatePlaylist creates an empty playlist. Names are unique ignoring case
// and keep the casing given here for display.
func (s *service) CreatePlaylist(name string) (*model.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "Playlist name cannot be empty")
	}

	key := playlistKey(name)
	if _, exists := s.playlists[key]; exists {
		return nil, apperrors.New(apperrors.CodeAlreadyExists, "A playlist with the same name already exists")
	}

	playlist := &model.Playlist{Name: name, VideoIDs: []string{}}
	s.playlists[key] = playlist
	return clonePlaylist(playlist), nil
}

// AddVideoToPlaylist appends videoID to the playlist and returns the video
func (s *service) AddVideoToPlaylist(name, videoID string) (*model.Video, error) {
	playlist, video, err := s.lookup(name, videoID)
	if err != nil {
		return nil, err
	}
	if video.Flagged {
		return nil, flaggedError(video)
	}
	if playlist.Contains(video.ID) {
		return nil, apperrors.New(apperrors.CodeAlreadyExists, "Video already added")
	}

	playlist.VideoIDs = append(playlist.VideoIDs, video.ID)
	return video, nil
}

// RemoveFromPlaylist removes videoID from the playlist and returns the video.
// The order of the remaining videos is kept.
func (s *service) RemoveFromPlaylist(name, videoID string) (*model.Video, error) {
	playlist, video, err := s.lookup(name, videoID)
	if err != nil {
		return nil, err
	}
	if !playlist.Remove(video.ID) {
		return nil, apperrors.New(apperrors.CodeNotFound, "Video is not in playlist")
	}
	return video, nil
}

// ClearPlaylist removes every video from the playlist
func (s *service) ClearPlaylist(name string) error {
	playlist, ok := s.playlists[playlistKey(name)]
	if !ok {
		return apperrors.New(apperrors.CodeNotFound, msgPlaylistNotFound)
	}
	playlist.VideoIDs = []string{}
	return nil
}

// DeletePlaylist removes the playlist
func (s *service) DeletePlaylist(name string) error {
	key := playlistKey(name)
	if _, ok := s.playlists[key]; !ok {
		return apperrors.New(apperrors.CodeNotFound, msgPlaylistNotFound)
	}
	delete(s.playlists, key)
	return nil
}

// ShowPlaylist returns the playlist and its videos in insertion order
func (s *service) ShowPlaylist(name string) (*model.Playlist, []*model.Video, error) {
	playlist, ok := s.playlists[playlistKey(name)]
	if !ok {
		return nil, nil, apperrors.New(apperrors.CodeNotFound, msgPlaylistNotFound)
	}

	videos := make([]*model.Video, 0, len(playlist.VideoIDs))
	for _, id := range playlist.VideoIDs {
		if video, ok := s.catalog.Get(id); ok {
			videos = append(videos, video)
		}
	}
	return clonePlaylist(playlist), videos, nil
}

// ShowAllPlaylists returns every playlist sorted by name ignoring case
func (s *service) ShowAllPlaylists() []*model.Playlist {
	playlists := make([]*model.Playlist, 0, len(s.playlists))
	for _, p := range s.playlists {
		playlists = append(playlists, clonePlaylist(p))
	}

	sort.Slice(playlists, func(i, j int) bool {
		a, b := strings.ToLower(playlists[i].Name), strings.ToLower(playlists[j].Name)
		if a != b {
			return a < b
		}
		return playlists[i].Name < playlists[j].Name
	})
	return playlists
}

// lookup resolves a playlist and a video, checking the playlist first
func (s *service) lookup(name, videoID string) (*model.Playlist, *model.Video, error) {
	playlist, ok := s.playlists[playlistKey(name)]
	if !ok {
		return nil, nil, apperrors.New(apperrors.CodeNotFound, msgPlaylistNotFound)
	}
	video, ok := s.catalog.Get(videoID)
	if !ok {
		return nil, nil, apperrors.New(apperrors.CodeNotFound, msgVideoNotFound)
	}
	return playlist, video, nil
}

func playlistKey(name string) string {
	return strings.ToLower(name)
}

func clonePlaylist(p *model.Playlist) *model.Playlist {
	return &model.Playlist{
		Name:     p.Name,
		VideoIDs: append([]string{}, p.VideoIDs...),
	}
}
