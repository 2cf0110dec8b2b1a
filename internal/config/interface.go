// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import "context"

// Codec is the interface for a format-specific descriptor encoding.
type Codec interface {
	// Name returns the short format name, e.g. "hcl" or "json".
	Name() string

	// Extensions returns the file extensions, including the leading dot,
	// handled by this codec.
	Extensions() []string

	// Decode parses src into a Descriptor. The filename is only used for
	// diagnostics.
	Decode(ctx context.Context, src []byte, filename string) (*Descriptor, error)

	// Encode renders the descriptor so that Decode on the result yields an
	// equal Descriptor.
	Encode(d *Descriptor) ([]byte, error)
}
