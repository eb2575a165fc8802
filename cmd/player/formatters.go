package player

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Taichi-iskw/yt-player/internal/model"
)

// FormatVideo renders a video as "Title (id) [#tag1 #tag2]" with a flag suffix
// when it is flagged
func FormatVideo(v *model.Video) string {
	line := formatVideoInfo(v)
	if v.Flagged {
		line += fmt.Sprintf(" - FLAGGED (reason: %s)", v.FlagReason)
	}
	return line
}

func formatVideoInfo(v *model.Video) string {
	return fmt.Sprintf("%s (%s) [%s]", v.Title, v.ID, strings.Join(v.Tags, " "))
}

// Formatter defines interface for catalog output formatting
type Formatter interface {
	Format(videos []*model.Video) (string, error)
}

// NewFormatter returns the formatter for an --output value
func NewFormatter(output string) (Formatter, error) {
	switch strings.ToLower(output) {
	case "", "text":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "yaml":
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (expected text, json or yaml)", output)
	}
}

// TextFormatter formats videos one per line as the shell shows them
type TextFormatter struct{}

// Format formats videos as plain text
func (f *TextFormatter) Format(videos []*model.Video) (string, error) {
	var output strings.Builder
	for _, v := range videos {
		output.WriteString(FormatVideo(v))
		output.WriteString("\n")
	}
	output.WriteString(fmt.Sprintf("%d videos in the library\n", len(videos)))
	return output.String(), nil
}

// JSONFormatter formats videos as JSON
type JSONFormatter struct{}

// Format formats videos as JSON
func (f *JSONFormatter) Format(videos []*model.Video) (string, error) {
	jsonBytes, err := json.MarshalIndent(videos, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(jsonBytes) + "\n", nil
}

// YAMLFormatter formats videos as a YAML catalog document that FileLoader reads back
type YAMLFormatter struct{}

// Format formats videos as YAML
func (f *YAMLFormatter) Format(videos []*model.Video) (string, error) {
	doc := struct {
		Videos []*model.Video `yaml:"videos"`
	}{Videos: videos}

	yamlBytes, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(yamlBytes), nil
}
