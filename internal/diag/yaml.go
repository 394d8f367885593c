package diag

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Record is the serialized form of a Diagnostic, used for golden files.
type Record struct {
	Kind     string `yaml:"kind"`
	Span     string `yaml:"span,omitempty"`
	Message  string `yaml:"message"`
	Expected string `yaml:"expected,omitempty"`
	Found    string `yaml:"found,omitempty"`
}

// Records converts list to its serialized form.
func Records(list []*Diagnostic) []Record {
	recs := make([]Record, len(list))
	for i, d := range list {
		recs[i] = Record{
			Kind:     d.Kind.String(),
			Message:  d.Msg,
			Expected: d.Expected,
			Found:    d.Found,
		}
		if d.Span.IsValid() {
			recs[i].Span = d.Span.String()
		}
	}
	return recs
}

// WriteYAML encodes list as a YAML sequence of records.
func WriteYAML(w io.Writer, list []*Diagnostic) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Records(list)); err != nil {
		return fmt.Errorf("encode diagnostics: %w", err)
	}
	return enc.Close()
}

// ReadYAML decodes records written by WriteYAML.
func ReadYAML(r io.Reader) ([]Record, error) {
	var recs []Record
	if err := yaml.NewDecoder(r).Decode(&recs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode diagnostics: %w", err)
	}
	return recs, nil
}
