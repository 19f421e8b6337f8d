package scenario

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeJSON reads a JSON document from r. Numbers are kept as json.Number
// so integer values survive without a float64 round trip.
func DecodeJSON(r io.Reader) (*Scenario, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc Scenario
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrDocument, err)
	}
	return &doc, nil
}

// EncodeJSON writes doc to w as indented JSON.
func EncodeJSON(w io.Writer, doc *Scenario) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
