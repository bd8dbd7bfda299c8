package frame

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Decode reads params from JSON. Fields absent from the document keep their
// default values, so partial documents from a generator are accepted.
func Decode(r io.Reader) (CloudParams, error) {
	p := DefaultParams()
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return CloudParams{}, fmt.Errorf("decode params: %w", err)
	}
	return p, nil
}

// Merge applies a partial JSON document on top of p.
func Merge(p CloudParams, raw []byte) (CloudParams, error) {
	if err := json.Unmarshal(raw, &p); err != nil {
		return CloudParams{}, fmt.Errorf("merge params: %w", err)
	}
	return p, nil
}

// Load reads params from a JSON file.
func Load(path string) (CloudParams, error) {
	f, err := os.Open(path)
	if err != nil {
		return CloudParams{}, fmt.Errorf("open params: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Save writes params to a JSON file.
func Save(path string, p CloudParams) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create params: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode params: %w", err)
	}
	return nil
}
