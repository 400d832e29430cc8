package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/outfit-recommender/internal/config"
	"gopkg.in/yaml.v3"
)

// writeStructured writes v as indented JSON or YAML.
func writeStructured(out io.Writer, format string, v any) error {
	var data []byte
	var err error

	switch format {
	case config.FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case config.FormatYAML:
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal %s output: %w", format, err)
	}

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
