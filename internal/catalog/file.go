package catalog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/Taichi-iskw/yt-player/internal/errors"
	"github.com/Taichi-iskw/yt-player/internal/model"
)

// FileLoader reads a catalog file.
// Files ending in .yaml or .yml are YAML, anything else uses the text format
//
//	Title | video_id | #tag1,#tag2
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for path
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load implements Loader
func (l *FileLoader) Load(ctx context.Context) ([]*model.Video, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, fmt.Sprintf("catalog file not found: %s", l.path))
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to open catalog file")
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(l.path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return ParseText(f)
	}
}

// yamlCatalog is the document layout of YAML catalogs
type yamlCatalog struct {
	Videos []*model.Video `yaml:"videos"`
}

// ParseYAML decodes a YAML catalog document
func ParseYAML(r io.Reader) ([]*model.Video, error) {
	var doc yamlCatalog
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return []*model.Video{}, nil
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidArg, "failed to parse YAML catalog")
	}
	if doc.Videos == nil {
		return []*model.Video{}, nil
	}
	return doc.Videos, nil
}

// ParseText decodes the pipe-separated text format. Blank lines and lines
// starting with '#' followed by a space are skipped.
func ParseText(r io.Reader) ([]*model.Video, error) {
	videos := []*model.Video{}
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "# ") {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) < 2 || len(fields) > 3 {
			return nil, apperrors.Newf(apperrors.CodeInvalidArg, "line %d: expected 'title | id | tags', got %q", lineNo, line)
		}

		video := &model.Video{
			Title: strings.TrimSpace(fields[0]),
			ID:    strings.TrimSpace(fields[1]),
			Tags:  []string{},
		}
		if len(fields) == 3 {
			for _, tag := range strings.Split(fields[2], ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					video.Tags = append(video.Tags, tag)
				}
			}
		}
		videos = append(videos, video)
	}

	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to read catalog")
	}

	return videos, nil
}

// WriteText writes videos in the text format read by ParseText
func WriteText(w io.Writer, videos []*model.Video) error {
	bw := bufio.NewWriter(w)
	for _, v := range videos {
		tags := make([]string, len(v.Tags))
		for i, tag := range v.Tags {
			tags[i] = strings.ReplaceAll(sanitize(tag), ",", " ")
		}
		if _, err := fmt.Fprintf(bw, "%s | %s | %s\n", sanitize(v.Title), sanitize(v.ID), strings.Join(tags, ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// sanitize keeps separators out of a field
func sanitize(s string) string {
	return strings.NewReplacer("|", "/", "\n", " ", "\r", " ").Replace(s)
}
