package catalog

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	apperrors "github.com/Taichi-iskw/yt-player/internal/errors"
	"github.com/Taichi-iskw/yt-player/internal/model"
	"github.com/Taichi-iskw/yt-player/internal/service/common"
)

// YtDlpLoader builds a catalog from the uploads of a YouTube channel using yt-dlp.
// Flat channel listings carry no tags, so tags are only fetched with withTags,
// which makes yt-dlp resolve every video page.
type YtDlpLoader struct {
	cmdRunner common.CmdRunner
	channelID string
	limit     int
	withTags  bool
}

// NewYtDlpLoader creates a loader for channelID; limit 0 fetches every video
func NewYtDlpLoader(cmdRunner common.CmdRunner, channelID string, limit int, withTags bool) *YtDlpLoader {
	return &YtDlpLoader{
		cmdRunner: cmdRunner,
		channelID: channelID,
		limit:     limit,
		withTags:  withTags,
	}
}

// ytDlpVideoInfo represents yt-dlp JSON output structure for video info
type ytDlpVideoInfo struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

// Load implements Loader
func (l *YtDlpLoader) Load(ctx context.Context) ([]*model.Video, error) {
	if l.channelID == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "channel ID is required")
	}
	if !strings.HasPrefix(l.channelID, "UC") {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "invalid channel ID format (must start with UC)")
	}

	args := []string{"--dump-json"}
	if !l.withTags {
		args = append(args, "--flat-playlist")
	}
	if l.limit > 0 {
		args = append(args, "--playlist-end", strconv.Itoa(l.limit))
	}
	args = append(args, "https://www.youtube.com/channel/"+l.channelID)

	output, err := l.cmdRunner.Run(ctx, "yt-dlp", args...)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternal, "failed to fetch channel videos with yt-dlp")
	}

	// yt-dlp outputs one JSON object per line
	videos := []*model.Video{}
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line == "" {
			continue
		}

		var info ytDlpVideoInfo
		if err := json.Unmarshal([]byte(line), &info); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to parse yt-dlp output")
		}

		tags := make([]string, 0, len(info.Tags))
		for _, tag := range info.Tags {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, hashTag(tag))
			}
		}

		videos = append(videos, &model.Video{
			ID:    info.ID,
			Title: info.Title,
			Tags:  tags,
		})
	}

	return videos, nil
}

// hashTag writes tags the way catalog files do (#tag, no spaces)
func hashTag(tag string) string {
	tag = strings.Join(strings.Fields(tag), "_")
	if strings.HasPrefix(tag, "#") {
		return tag
	}
	return "#" + tag
}
