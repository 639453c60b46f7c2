package pdfdoc

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadFixture reads a JSON-encoded Document from path. Fixtures stand in for
// the out-of-scope PDF extractor in tests and in the CLI's "parse" command;
// this is a system boundary, not a core format, so plain encoding/json is
// used rather than any of the domain-stack's structured marshaling (gencfg's
// sanitize/validate tags are for the ambient config file, not for arbitrary
// positioned-text fixtures).
func LoadFixture(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open fixture '%s': %w", path, err)
	}
	defer f.Close()
	return DecodeFixture(f)
}

// DecodeFixture reads a JSON-encoded Document from r.
func DecodeFixture(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("unable to decode fixture: %w", err)
	}
	return &doc, nil
}
