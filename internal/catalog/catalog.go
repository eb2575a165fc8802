// Package catalog holds the fixed set of videos known for a process run
// and the loaders that produce it.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/Taichi-iskw/yt-player/internal/errors"
	"github.com/Taichi-iskw/yt-player/internal/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Catalog is an in-memory index of videos by ID.
// Only the flag fields of its videos change after construction.
type Catalog struct {
	videos map[string]*model.Video
}

// New builds a catalog from loaded records. Records are copied, validated and
// must have unique IDs.
func New(videos []*model.Video) (*Catalog, error) {
	c := &Catalog{videos: make(map[string]*model.Video, len(videos))}

	for i, v := range videos {
		if v == nil {
			return nil, apperrors.Newf(apperrors.CodeInvalidArg, "video #%d is nil", i+1)
		}

		video := normalize(v)
		if err := validate.Struct(video); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInvalidArg, fmt.Sprintf("invalid video #%d (%q)", i+1, video.ID))
		}

		if _, exists := c.videos[video.ID]; exists {
			return nil, apperrors.Newf(apperrors.CodeAlreadyExists, "duplicate video ID: %s", video.ID)
		}
		c.videos[video.ID] = video
	}

	return c, nil
}

// Get returns the video with the given ID
func (c *Catalog) Get(id string) (*model.Video, bool) {
	v, ok := c.videos[id]
	return v, ok
}

// Len returns the number of videos
func (c *Catalog) Len() int {
	return len(c.videos)
}

// All returns every video sorted by title, then ID
func (c *Catalog) All() []*model.Video {
	return c.Filter(func(*model.Video) bool { return true })
}

// Filter returns the videos matching keep, sorted by title, then ID
func (c *Catalog) Filter(keep func(*model.Video) bool) []*model.Video {
	videos := make([]*model.Video, 0, len(c.videos))
	for _, v := range c.videos {
		if keep(v) {
			videos = append(videos, v)
		}
	}
	sortByTitle(videos)
	return videos
}

// sortByTitle orders videos by title with the ID as tie-break
func sortByTitle(videos []*model.Video) {
	sort.Slice(videos, func(i, j int) bool {
		if videos[i].Title != videos[j].Title {
			return videos[i].Title < videos[j].Title
		}
		return videos[i].ID < videos[j].ID
	})
}

func normalize(v *model.Video) *model.Video {
	video := &model.Video{
		ID:         strings.TrimSpace(v.ID),
		Title:      strings.TrimSpace(v.Title),
		Flagged:    v.Flagged,
		FlagReason: v.FlagReason,
	}
	for _, tag := range v.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			video.Tags = append(video.Tags, tag)
		}
	}
	if video.Tags == nil {
		video.Tags = []string{}
	}
	return video
}
