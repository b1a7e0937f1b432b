package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects the serializer used for terminal output
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Write serializes v in the given format with each serializer's default rendering
func Write(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}
