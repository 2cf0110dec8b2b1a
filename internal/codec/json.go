package codec

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vk/contractcfg/internal/config"
	"github.com/vk/contractcfg/internal/ctxlog"
)

// JSON reads and writes descriptors as JSON documents.
type JSON struct{}

// NewJSON creates a JSON codec.
func NewJSON() *JSON { return &JSON{} }

// Name implements config.Codec.
func (c *JSON) Name() string { return "json" }

// Extensions implements config.Codec.
func (c *JSON) Extensions() []string { return []string{".json"} }

// Decode implements config.Codec.
func (c *JSON) Decode(ctx context.Context, src []byte, filename string) (*config.Descriptor, error) {
	ctxlog.FromContext(ctx).Debug("JSON decoding started.", "file", filename, "bytes", len(src))

	dec := json.NewDecoder(bytes.NewReader(src))
	dec.DisallowUnknownFields()

	var d config.Descriptor
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode JSON file %s: %w", filename, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("failed to decode JSON file %s: unexpected data after the top-level object", filename)
	}
	if err := checkDuplicateOverrides(src); err != nil {
		return nil, fmt.Errorf("failed to decode JSON file %s: %w", filename, err)
	}
	return &d, nil
}

// checkDuplicateOverrides rejects a solidity.overrides object that names the
// same source twice. encoding/json keeps the last key silently.
func checkDuplicateOverrides(src []byte) error {
	var doc struct {
		Solidity struct {
			Overrides json.RawMessage `json:"overrides"`
		} `json:"solidity"`
	}
	if err := json.Unmarshal(src, &doc); err != nil {
		return err
	}
	raw := bytes.TrimSpace(doc.Solidity.Overrides)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return err
	}
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		if seen[key] {
			return fmt.Errorf("solidity.overrides: source %q is defined more than once", key)
		}
		seen[key] = true

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return err
		}
	}
	return nil
}

// Encode implements config.Codec.
func (c *JSON) Encode(d *config.Descriptor) ([]byte, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode descriptor as JSON: %w", err)
	}
	return append(out, '\n'), nil
}

var _ config.Codec = (*JSON)(nil)
