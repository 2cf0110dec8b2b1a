package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/contractcfg/internal/config"
	"github.com/vk/contractcfg/internal/ctxlog"
)

// Codec is the HCL-specific implementation of the config.Codec interface.
type Codec struct{}

// NewCodec creates a new HCL codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Name implements config.Codec.
func (c *Codec) Name() string { return "hcl" }

// Extensions implements config.Codec.
func (c *Codec) Extensions() []string { return []string{".hcl"} }

// Decode parses src as HCL native syntax and translates it into a descriptor.
func (c *Codec) Decode(ctx context.Context, src []byte, filename string) (*config.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL decoding started.", "file", filename, "bytes", len(src))

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	d, diags := translateRoot(&root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	logger.Debug("HCL decoding complete.", "plugins", len(d.Plugins), "compilers", len(d.Solidity.Compilers), "overrides", len(d.Solidity.Overrides))
	return d, nil
}

var _ config.Codec = (*Codec)(nil)
