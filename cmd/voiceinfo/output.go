package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// render writes value as YAML or calls text for the plain format.
func (a *app) render(value any, text func(w io.Writer) error) error {
	if a.output != "yaml" {
		return text(a.out)
	}

	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
