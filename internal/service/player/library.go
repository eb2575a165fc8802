package player

import (
	"strings"

	apperrors "github.com/Taichi-iskw/yt-player/internal/errors"
	"github.com/Taichi-iskw/yt-player/internal/model"
)

// NumberOfVideos returns the size of the catalog
func (s *service) NumberOfVideos() int {
	return s.catalog.Len()
}

// ShowAllVideos returns every video, flagged ones included, sorted by title then ID
func (s *service) ShowAllVideos() []*model.Video {
	return s.catalog.All()
}

// SearchVideos returns the unflagged videos whose title contains term, ignoring case
func (s *service) SearchVideos(term string) []*model.Video {
	term = strings.ToLower(term)
	return s.catalog.Filter(func(v *model.Video) bool {
		return !v.Flagged && strings.Contains(strings.ToLower(v.Title), term)
	})
}

// SearchVideosWithTag returns the unflagged videos carrying tag, ignoring case
func (s *service) SearchVideosWithTag(tag string) []*model.Video {
	return s.catalog.Filter(func(v *model.Video) bool {
		return !v.Flagged && v.HasTag(tag)
	})
}

// FlagVideo marks videoID as disallowed. An empty reason is recorded as
// model.DefaultFlagReason. Flagging the current video stops it.
func (s *service) FlagVideo(videoID, reason string) (*FlagResult, error) {
	video, ok := s.catalog.Get(videoID)
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, msgVideoNotFound)
	}
	if video.Flagged {
		return nil, apperrors.New(apperrors.CodeAlreadyFlagged, "Video is already flagged")
	}

	if reason = strings.TrimSpace(reason); reason == "" {
		reason = model.DefaultFlagReason
	}

	result := &FlagResult{Video: video}
	if current := s.current(); current != nil && current.ID == video.ID {
		s.stop()
		result.Stopped = true
	}

	video.Flagged = true
	video.FlagReason = reason
	return result, nil
}

// AllowVideo clears the flag of videoID
func (s *service) AllowVideo(videoID string) (*model.Video, error) {
	video, ok := s.catalog.Get(videoID)
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, msgVideoNotFound)
	}
	if !video.Flagged {
		return nil, apperrors.New(apperrors.CodeNotFlagged, "Video is not flagged")
	}

	video.Flagged = false
	video.FlagReason = ""
	return video, nil
}
