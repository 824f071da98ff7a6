// ABOUTME: Renders training summaries as text, JSON, YAML, or Markdown.
// ABOUTME: Output is deterministic so repeated runs produce identical bytes.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/harperreed/ftracker/internal/models"
	"gopkg.in/yaml.v3"
)

// Format selects a report rendering.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// AllFormats lists every supported format.
var AllFormats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown}

// ParseFormat validates s as a Format. The empty string selects text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	for _, f := range AllFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format: %s (use text, json, yaml, or markdown)", s)
}

// Data is the structured report layout shared by JSON and YAML.
type Data struct {
	Version  string    `json:"version" yaml:"version"`
	Tool     string    `json:"tool" yaml:"tool"`
	Workouts []Workout `json:"workouts" yaml:"workouts"`
}

// Workout is one summary in structured output.
type Workout struct {
	ID      string `json:"id" yaml:"id"`
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`

	models.InfoMessage `yaml:",inline"`
}

// NewData converts summaries into the structured report layout.
func NewData(summaries []models.Summary) *Data {
	d := &Data{
		Version:  "1.0",
		Tool:     "ftracker",
		Workouts: make([]Workout, 0, len(summaries)),
	}
	for _, s := range summaries {
		d.Workouts = append(d.Workouts, Workout{
			ID:          s.ShortID(),
			Code:        s.Code,
			Message:     s.Info.Message(),
			InfoMessage: s.Info,
		})
	}
	return d
}

// Render returns summaries encoded in format f.
func Render(f Format, summaries []models.Summary) ([]byte, error) {
	switch f {
	case FormatText, "":
		return []byte(Text(summaries)), nil
	case FormatJSON:
		data, err := json.MarshalIndent(NewData(summaries), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(NewData(summaries))
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return data, nil
	case FormatMarkdown:
		return []byte(Markdown(summaries)), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", f)
	}
}

// Write renders summaries and writes them to w.
func Write(w io.Writer, f Format, summaries []models.Summary) error {
	data, err := Render(f, summaries)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Text renders one summary line per workout.
func Text(summaries []models.Summary) string {
	var sb strings.Builder
	for _, s := range summaries {
		sb.WriteString(s.Info.Message())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Markdown renders the summaries as a table.
func Markdown(summaries []models.Summary) string {
	var sb strings.Builder

	sb.WriteString("# Workout Summary\n\n")
	if len(summaries) == 0 {
		sb.WriteString("No workouts.\n")
		return sb.String()
	}

	sb.WriteString("| ID | Code | Type | Duration (h) | Distance (km) | Speed (km/h) | Calories (kcal) |\n")
	sb.WriteString("|----|------|------|--------------|---------------|--------------|-----------------|\n")
	for _, s := range summaries {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %.3f | %.3f | %.3f | %.3f |\n",
			s.ShortID(), s.Code, s.Info.TrainingType,
			s.Info.Duration, s.Info.Distance, s.Info.Speed, s.Info.Calories))
	}
	return sb.String()
}
