package codec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/contractcfg/internal/config"
	"github.com/vk/contractcfg/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// YAML reads and writes descriptors as YAML documents.
type YAML struct{}

// NewYAML creates a YAML codec.
func NewYAML() *YAML { return &YAML{} }

// Name implements config.Codec.
func (c *YAML) Name() string { return "yaml" }

// Extensions implements config.Codec.
func (c *YAML) Extensions() []string { return []string{".yaml", ".yml"} }

// Decode implements config.Codec.
func (c *YAML) Decode(ctx context.Context, src []byte, filename string) (*config.Descriptor, error) {
	ctxlog.FromContext(ctx).Debug("YAML decoding started.", "file", filename, "bytes", len(src))

	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var d config.Descriptor
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML file %s: document is empty", filename)
		}
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: unexpected document after the first one", filename)
	}
	return &d, nil
}

// Encode implements config.Codec.
func (c *YAML) Encode(d *config.Descriptor) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode descriptor as YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode descriptor as YAML: %w", err)
	}
	return buf.Bytes(), nil
}

var _ config.Codec = (*YAML)(nil)
