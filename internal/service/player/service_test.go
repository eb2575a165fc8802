package player

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Taichi-iskw/yt-player/internal/catalog"
	"github.com/Taichi-iskw/yt-player/internal/model"
)

// testVideos mirrors the sample dataset shipped with the shell
func testVideos() []*model.Video {
	return []*model.Video{
		{ID: "amazing_cats_video_id", Title: "Amazing Cats", Tags: []string{"#cat", "#animal"}},
		{ID: "another_cat_video_id", Title: "Another Cat Video", Tags: []string{"#cat", "#animal"}},
		{ID: "funny_dogs_video_id", Title: "Funny Dogs", Tags: []string{"#dog", "#animal"}},
		{ID: "life_at_google_video_id", Title: "Life at Google", Tags: []string{"#google", "#career"}},
		{ID: "nothing_video_id", Title: "Video about nothing"},
	}
}

func newTestService(t *testing.T, opts ...Option) *service {
	t.Helper()
	return newTestServiceWith(t, testVideos(), opts...)
}

func newTestServiceWith(t *testing.T, videos []*model.Video, opts ...Option) *service {
	t.Helper()
	c, err := catalog.New(videos)
	require.NoError(t, err)
	return NewService(c, opts...).(*service)
}

func ids(videos []*model.Video) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.ID
	}
	return out
}
