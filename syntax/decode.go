// Copyright © 2025 The pyvet authors

package syntax

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads a parsed file in the front end's JSON wire format.
func Decode(r io.Reader) (*File, error) {
	dec := json.NewDecoder(r)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding syntax tree: %w", err)
	}
	return &f, nil
}

// DecodeBytes reads a parsed file from an in-memory JSON dump.
func DecodeBytes(data []byte) (*File, error) {
	return Decode(bytes.NewReader(data))
}

// Encode writes the file in the JSON wire format. Used by tests and by
// front ends written in Go.
func Encode(w io.Writer, f *File) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}
