package player

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Taichi-iskw/yt-player/internal/errors"
	"github.com/Taichi-iskw/yt-player/internal/model"
)

func TestService_InitialState(t *testing.T) {
	s := newTestService(t)

	video, status := s.ShowPlaying()
	assert.Nil(t, video)
	assert.Equal(t, model.StatusStopped, status)
	assert.Equal(t, model.PlayerState{Status: model.StatusStopped}, s.State())
}

func TestService_PlayVideo(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*service)
		videoID     string
		wantCode    string
		wantMessage string
		wantStopped string
	}{
		{
			name:    "plays from stopped",
			videoID: "amazing_cats_video_id",
		},
		{
			name: "stops the current video first",
			setup: func(s *service) {
				_, _ = s.PlayVideo("funny_dogs_video_id")
			},
			videoID:     "amazing_cats_video_id",
			wantStopped: "funny_dogs_video_id",
		},
		{
			name: "replays the paused video",
			setup: func(s *service) {
				_, _ = s.PlayVideo("amazing_cats_video_id")
				_, _ = s.PauseVideo()
			},
			videoID:     "amazing_cats_video_id",
			wantStopped: "amazing_cats_video_id",
		},
		{
			name:        "unknown video",
			videoID:     "does_not_exist",
			wantCode:    apperrors.CodeNotFound,
			wantMessage: "Video does not exist",
		},
		{
			name: "flagged video",
			setup: func(s *service) {
				_, _ = s.FlagVideo("amazing_cats_video_id", "dont_like_cats")
			},
			videoID:     "amazing_cats_video_id",
			wantCode:    apperrors.CodeFlagged,
			wantMessage: "Video is currently flagged (reason: dont_like_cats)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t)
			if tt.setup != nil {
				tt.setup(s)
			}
			before := s.State()

			result, err := s.PlayVideo(tt.videoID)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, apperrors.HasCode(err, tt.wantCode))
				assert.Equal(t, tt.wantMessage, apperrors.Message(err))
				assert.Equal(t, before, s.State(), "failed play must not change state")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.videoID, result.Playing.ID)
			if tt.wantStopped == "" {
				assert.Nil(t, result.Stopped)
			} else {
				require.NotNil(t, result.Stopped)
				assert.Equal(t, tt.wantStopped, result.Stopped.ID)
			}
			assert.Equal(t, model.PlayerState{CurrentVideoID: tt.videoID, Status: model.StatusPlaying}, s.State())
		})
	}
}

func TestService_FlagThenPlayLeavesStateUnchanged(t *testing.T) {
	s := newTestService(t)
	_, err := s.PlayVideo("funny_dogs_video_id")
	require.NoError(t, err)
	_, err = s.PauseVideo()
	require.NoError(t, err)

	_, err = s.FlagVideo("amazing_cats_video_id", "")
	require.NoError(t, err)

	_, err = s.PlayVideo("amazing_cats_video_id")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeFlagged))
	assert.Equal(t, "Video is currently flagged (reason: Not supplied)", apperrors.Message(err))
	assert.Equal(t, model.PlayerState{CurrentVideoID: "funny_dogs_video_id", Status: model.StatusPaused}, s.State())
}

func TestService_PlayRandomVideo(t *testing.T) {
	t.Run("picks among unflagged videos in title order", func(t *testing.T) {
		var gotN int
		s := newTestService(t, WithRandom(func(n int) int {
			gotN = n
			return 1
		}))
		_, err := s.FlagVideo("amazing_cats_video_id", "")
		require.NoError(t, err)

		result, err := s.PlayRandomVideo()
		require.NoError(t, err)
		assert.Equal(t, 4, gotN)
		// unflagged by title: Another Cat Video, Funny Dogs, Life at Google, Video about nothing
		assert.Equal(t, "funny_dogs_video_id", result.Playing.ID)
		assert.Equal(t, model.StatusPlaying, s.State().Status)
	})

	t.Run("reports the stopped video", func(t *testing.T) {
		s := newTestService(t, WithRandom(func(int) int { return 0 }))
		_, err := s.PlayVideo("nothing_video_id")
		require.NoError(t, err)

		result, err := s.PlayRandomVideo()
		require.NoError(t, err)
		require.NotNil(t, result.Stopped)
		assert.Equal(t, "nothing_video_id", result.Stopped.ID)
		assert.Equal(t, "amazing_cats_video_id", result.Playing.ID)
	})

	t.Run("every video flagged", func(t *testing.T) {
		s := newTestServiceWith(t, []*model.Video{{ID: "v1", Title: "Amazing Cats"}})
		_, err := s.FlagVideo("v1", "")
		require.NoError(t, err)

		_, err = s.PlayRandomVideo()
		require.Error(t, err)
		assert.Equal(t, "No videos available", apperrors.Message(err))
		assert.Equal(t, model.StatusStopped, s.State().Status)
	})

	t.Run("empty catalog", func(t *testing.T) {
		s := newTestServiceWith(t, nil)
		_, err := s.PlayRandomVideo()
		assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
	})

	t.Run("default random source stays in range", func(t *testing.T) {
		s := newTestService(t)
		for i := 0; i < 20; i++ {
			result, err := s.PlayRandomVideo()
			require.NoError(t, err)
			assert.NotNil(t, result.Playing)
		}
	})
}

func TestService_StopVideo(t *testing.T) {
	for _, pause := range []bool{false, true} {
		s := newTestService(t)
		_, err := s.PlayVideo("amazing_cats_video_id")
		require.NoError(t, err)
		if pause {
			_, err = s.PauseVideo()
			require.NoError(t, err)
		}

		video, err := s.StopVideo()
		require.NoError(t, err)
		assert.Equal(t, "Amazing Cats", video.Title)
		assert.Equal(t, model.PlayerState{Status: model.StatusStopped}, s.State())
	}

	s := newTestService(t)
	_, err := s.StopVideo()
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidState))
	assert.Equal(t, "No video is currently playing", apperrors.Message(err))
}

func TestService_PauseVideo(t *testing.T) {
	s := newTestService(t)

	_, err := s.PauseVideo()
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidState))
	assert.Equal(t, "No video is currently playing", apperrors.Message(err))
	assert.False(t, errors.Is(err, ErrAlreadyPaused))

	_, err = s.PlayVideo("funny_dogs_video_id")
	require.NoError(t, err)

	video, err := s.PauseVideo()
	require.NoError(t, err)
	assert.Equal(t, "funny_dogs_video_id", video.ID)
	assert.Equal(t, model.StatusPaused, s.State().Status)

	_, err = s.PauseVideo()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyPaused))
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidState))
	assert.Equal(t, "Video already paused: Funny Dogs", apperrors.Message(err))
	assert.Equal(t, model.StatusPaused, s.State().Status)
}

func TestService_ContinueVideo(t *testing.T) {
	s := newTestService(t)

	_, err := s.ContinueVideo()
	require.Error(t, err)
	assert.Equal(t, "No video is currently playing", apperrors.Message(err))

	_, err = s.PlayVideo("funny_dogs_video_id")
	require.NoError(t, err)

	_, err = s.ContinueVideo()
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidState))
	assert.Equal(t, "Video is not paused", apperrors.Message(err))

	_, err = s.PauseVideo()
	require.NoError(t, err)

	video, err := s.ContinueVideo()
	require.NoError(t, err)
	assert.Equal(t, "Funny Dogs", video.Title)
	assert.Equal(t, model.StatusPlaying, s.State().Status)
}

func TestService_ShowPlaying(t *testing.T) {
	s := newTestService(t)
	_, err := s.PlayVideo("life_at_google_video_id")
	require.NoError(t, err)

	video, status := s.ShowPlaying()
	require.NotNil(t, video)
	assert.Equal(t, "Life at Google", video.Title)
	assert.Equal(t, model.StatusPlaying, status)

	_, err = s.PauseVideo()
	require.NoError(t, err)
	_, status = s.ShowPlaying()
	assert.Equal(t, model.StatusPaused, status)
}
