package scenario

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads a YAML document from r.
func DecodeYAML(r io.Reader) (*Scenario, error) {
	var doc Scenario
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: yaml: %v", ErrDocument, err)
	}
	return &doc, nil
}

// ReadYAML reads a scenario from a YAML file.
func ReadYAML(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeYAML(f)
}

// EncodeYAML writes doc to w.
func EncodeYAML(w io.Writer, doc *Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// WriteYAML writes a scenario to a YAML file.
func WriteYAML(doc *Scenario, path string) error {
	var buf bytes.Buffer
	if err := EncodeYAML(&buf, doc); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}
