package player

import (
	apperrors "github.com/Taichi-iskw/yt-player/internal/errors"
	"github.com/Taichi-iskw/yt-player/internal/model"
)

const (
	msgVideoNotFound = "Video does not exist"
	msgNothingPlayed = "No video is currently playing"
)

// PlayVideo stops the current video, if any, and plays videoID
func (s *service) PlayVideo(videoID string) (*PlayResult, error) {
	video, ok := s.catalog.Get(videoID)
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, msgVideoNotFound)
	}
	if video.Flagged {
		return nil, flaggedError(video)
	}

	result := &PlayResult{Stopped: s.stop(), Playing: video}
	s.state = model.PlayerState{CurrentVideoID: video.ID, Status: model.StatusPlaying}
	return result, nil
}

// PlayRandomVideo plays a video picked uniformly from the unflagged ones
func (s *service) PlayRandomVideo() (*PlayResult, error) {
	candidates := s.catalog.Filter(func(v *model.Video) bool { return !v.Flagged })
	if len(candidates) == 0 {
		return nil, apperrors.New(apperrors.CodeNotFound, "No videos available")
	}
	return s.PlayVideo(candidates[s.intn(len(candidates))].ID)
}

// StopVideo stops the current video and returns it
func (s *service) StopVideo() (*model.Video, error) {
	video := s.stop()
	if video == nil {
		return nil, apperrors.New(apperrors.CodeInvalidState, msgNothingPlayed)
	}
	return video, nil
}

// PauseVideo pauses the current video and returns it
func (s *service) PauseVideo() (*model.Video, error) {
	video := s.current()
	if video == nil {
		return nil, apperrors.New(apperrors.CodeInvalidState, msgNothingPlayed)
	}
	if s.state.Status == model.StatusPaused {
		return nil, apperrors.Wrap(ErrAlreadyPaused, apperrors.CodeInvalidState, "Video already paused: "+video.Title)
	}

	s.state.Status = model.StatusPaused
	return video, nil
}

// ContinueVideo resumes the paused video and returns it
func (s *service) ContinueVideo() (*model.Video, error) {
	video := s.current()
	if video == nil {
		return nil, apperrors.New(apperrors.CodeInvalidState, msgNothingPlayed)
	}
	if s.state.Status != model.StatusPaused {
		return nil, apperrors.New(apperrors.CodeInvalidState, "Video is not paused")
	}

	s.state.Status = model.StatusPlaying
	return video, nil
}

// ShowPlaying returns the current video and its status; the video is nil when stopped
func (s *service) ShowPlaying() (*model.Video, model.PlayerStatus) {
	return s.current(), s.state.Status
}

// State returns a copy of the player state
func (s *service) State() model.PlayerState {
	return s.state
}

// current returns the loaded video or nil
func (s *service) current() *model.Video {
	if s.state.Status == model.StatusStopped {
		return nil
	}
	video, _ := s.catalog.Get(s.state.CurrentVideoID)
	return video
}

// stop resets the state and returns the video that was loaded, if any
func (s *service) stop() *model.Video {
	video := s.current()
	s.state = model.PlayerState{Status: model.StatusStopped}
	return video
}

func flaggedError(video *model.Video) error {
	return apperrors.Newf(apperrors.CodeFlagged, "Video is currently flagged (reason: %s)", video.FlagReason)
}
