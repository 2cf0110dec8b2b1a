package app

import (
	"github.com/vk/contractcfg/internal/codec"
	"github.com/vk/contractcfg/internal/config"
	"github.com/vk/contractcfg/internal/hcl"
	"github.com/vk/contractcfg/internal/plugin"
)

// coreModules is the list of plugin modules compiled into the binary.
var coreModules = []plugin.Module{
	plugin.Builtin{},
}

// DefaultCodecs returns the supported file formats in discovery order.
func DefaultCodecs() []config.Codec {
	return []config.Codec{
		hcl.NewCodec(),
		codec.NewJSON(),
		codec.NewYAML(),
	}
}
