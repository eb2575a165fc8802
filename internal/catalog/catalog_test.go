package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Taichi-iskw/yt-player/internal/errors"
	"github.com/Taichi-iskw/yt-player/internal/model"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		videos   []*model.Video
		wantLen  int
		wantCode string
	}{
		{
			name: "valid videos",
			videos: []*model.Video{
				{ID: "v1", Title: "Amazing Cats", Tags: []string{"cat", "animal"}},
				{ID: "v2", Title: "Funny Dogs", Tags: []string{"dog", "animal"}},
			},
			wantLen: 2,
		},
		{
			name:    "empty catalog",
			videos:  []*model.Video{},
			wantLen: 0,
		},
		{
			name: "duplicate id",
			videos: []*model.Video{
				{ID: "v1", Title: "Amazing Cats"},
				{ID: "v1", Title: "Amazing Cats Again"},
			},
			wantCode: apperrors.CodeAlreadyExists,
		},
		{
			name:     "missing id",
			videos:   []*model.Video{{Title: "Amazing Cats"}},
			wantCode: apperrors.CodeInvalidArg,
		},
		{
			name:     "blank title",
			videos:   []*model.Video{{ID: "v1", Title: "   "}},
			wantCode: apperrors.CodeInvalidArg,
		},
		{
			name:     "nil record",
			videos:   []*model.Video{nil},
			wantCode: apperrors.CodeInvalidArg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.videos)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, apperrors.HasCode(err, tt.wantCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, c.Len())
		})
	}
}

func TestNew_CopiesAndNormalizesRecords(t *testing.T) {
	source := &model.Video{ID: " v1 ", Title: " Amazing Cats ", Tags: []string{" #cat ", "", "#animal"}}

	c, err := New([]*model.Video{source})
	require.NoError(t, err)

	got, ok := c.Get("v1")
	require.True(t, ok)
	assert.Equal(t, "Amazing Cats", got.Title)
	assert.Equal(t, []string{"#cat", "#animal"}, got.Tags)

	// Mutating the catalog copy leaves the loaded record alone
	got.Flagged = true
	assert.False(t, source.Flagged)
}

func TestCatalog_AllSortedByTitleThenID(t *testing.T) {
	c, err := New([]*model.Video{
		{ID: "v3", Title: "Funny Dogs"},
		{ID: "v2", Title: "Amazing Cats"},
		{ID: "v1", Title: "Amazing Cats"},
		{ID: "v4", Title: "Another Cat Video"},
	})
	require.NoError(t, err)

	var ids []string
	for _, v := range c.All() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"v1", "v2", "v4", "v3"}, ids)
}

func TestSortByTitle(t *testing.T) {
	videos := []*model.Video{
		{ID: "b", Title: "Same"},
		{ID: "z", Title: "Alpha"},
		{ID: "a", Title: "Same"},
	}
	sortByTitle(videos)
	assert.Equal(t, "z", videos[0].ID)
	assert.Equal(t, "a", videos[1].ID)
	assert.Equal(t, "b", videos[2].ID)
}

func TestCatalog_Filter(t *testing.T) {
	c, err := New([]*model.Video{
		{ID: "v1", Title: "Amazing Cats", Tags: []string{"#cat"}},
		{ID: "v2", Title: "Funny Dogs", Tags: []string{"#dog"}},
	})
	require.NoError(t, err)

	got := c.Filter(func(v *model.Video) bool { return v.HasTag("#DOG") })
	require.Len(t, got, 1)
	assert.Equal(t, "v2", got[0].ID)

	_, ok := c.Get("V1")
	assert.False(t, ok, "ids are case-sensitive")
}
