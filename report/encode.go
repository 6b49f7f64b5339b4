package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// JSONRenderer writes the report as indented JSON.
type JSONRenderer struct {
	w io.Writer
}

// NewJSONRenderer creates a JSON renderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{w: w}
}

// Render encodes rep.
func (j *JSONRenderer) Render(rep *Report) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}

// YAMLRenderer writes the report as a YAML document.
type YAMLRenderer struct {
	w io.Writer
}

// NewYAMLRenderer creates a YAML renderer writing to w.
func NewYAMLRenderer(w io.Writer) *YAMLRenderer {
	return &YAMLRenderer{w: w}
}

// Render encodes rep.
func (y *YAMLRenderer) Render(rep *Report) error {
	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)

	if err := enc.Encode(rep); err != nil {
		_ = enc.Close()
		return err
	}

	return enc.Close()
}
