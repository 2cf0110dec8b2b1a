package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/contractcfg/internal/config"
)

// translateRoot converts the HCL schema into the agnostic descriptor. Two
// override blocks with the same label are reported instead of merged.
func translateRoot(root *fileRoot) (*config.Descriptor, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	d := &config.Descriptor{}

	if root.Plugins != nil {
		d.Plugins = make([]config.PluginRef, len(root.Plugins))
		for i, p := range root.Plugins {
			d.Plugins[i] = config.PluginRef(p)
		}
	}

	if root.Solidity != nil {
		for _, c := range root.Solidity.Compilers {
			d.Solidity.Compilers = append(d.Solidity.Compilers, config.Compiler{
				Version:  c.Version,
				Settings: translateSettings(c.Settings),
			})
		}
		if len(root.Solidity.Overrides) > 0 {
			d.Solidity.Overrides = make(map[string]config.Compiler, len(root.Solidity.Overrides))
			for _, o := range root.Solidity.Overrides {
				if _, exists := d.Solidity.Overrides[o.Source]; exists {
					diags = append(diags, &hcl.Diagnostic{
						Severity: hcl.DiagError,
						Summary:  "Duplicate override definition",
						Detail:   fmt.Sprintf("An override for source '%s' has already been defined.", o.Source),
						Subject:  o.DefRange.Ptr(),
					})
					continue
				}
				d.Solidity.Overrides[o.Source] = config.Compiler{
					Version:  o.Version,
					Settings: translateSettings(o.Settings),
				}
			}
		}
	}

	if root.Paths != nil {
		d.Paths = config.Paths{
			Sources:   root.Paths.Sources,
			Tests:     root.Paths.Tests,
			Cache:     root.Paths.Cache,
			Artifacts: root.Paths.Artifacts,
		}
	}

	return d, diags
}

// translateSettings converts an optional settings block; a missing block
// yields the zero settings.
func translateSettings(s *settingsBlock) config.Settings {
	if s == nil {
		return config.Settings{}
	}
	out := config.Settings{
		EVMVersion: s.EVMVersion,
		ViaIR:      s.ViaIR,
	}
	if s.Optimizer != nil {
		out.Optimizer = config.Optimizer{
			Enabled: s.Optimizer.Enabled,
			Runs:    s.Optimizer.Runs,
		}
	}
	return out
}
