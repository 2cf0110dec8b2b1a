package hcl

import (
	"sort"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/contractcfg/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// Encode renders d as a formatted toolchain.hcl document.
func (c *Codec) Encode(d *config.Descriptor) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	body.SetAttributeValue("plugins", pluginsValue(d.Plugins))
	body.AppendNewline()

	solidity := body.AppendNewBlock("solidity", nil).Body()
	for _, comp := range d.Solidity.Compilers {
		writeCompiler(solidity.AppendNewBlock("compiler", nil).Body(), comp)
	}

	sources := make([]string, 0, len(d.Solidity.Overrides))
	for src := range d.Solidity.Overrides {
		sources = append(sources, src)
	}
	sort.Strings(sources)
	for _, src := range sources {
		writeCompiler(solidity.AppendNewBlock("override", []string{src}).Body(), d.Solidity.Overrides[src])
	}
	body.AppendNewline()

	paths := body.AppendNewBlock("paths", nil).Body()
	setString(paths, "sources", d.Paths.Sources)
	setString(paths, "tests", d.Paths.Tests)
	setString(paths, "cache", d.Paths.Cache)
	setString(paths, "artifacts", d.Paths.Artifacts)

	return hclwrite.Format(f.Bytes()), nil
}

func pluginsValue(refs []config.PluginRef) cty.Value {
	if len(refs) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(refs))
	for i, r := range refs {
		vals[i] = cty.StringVal(string(r))
	}
	return cty.ListVal(vals)
}

func writeCompiler(body *hclwrite.Body, c config.Compiler) {
	body.SetAttributeValue("version", cty.StringVal(c.Version))

	settings := body.AppendNewBlock("settings", nil).Body()
	setString(settings, "evm_version", c.Settings.EVMVersion)
	settings.SetAttributeValue("via_ir", cty.BoolVal(c.Settings.ViaIR))

	optimizer := settings.AppendNewBlock("optimizer", nil).Body()
	optimizer.SetAttributeValue("enabled", cty.BoolVal(c.Settings.Optimizer.Enabled))
	if c.Settings.Optimizer.Runs != 0 {
		optimizer.SetAttributeValue("runs", cty.NumberIntVal(int64(c.Settings.Optimizer.Runs)))
	}
}

// setString writes name only when v is set, leaving the attribute optional.
func setString(body *hclwrite.Body, name, v string) {
	if v == "" {
		return
	}
	body.SetAttributeValue(name, cty.StringVal(v))
}
