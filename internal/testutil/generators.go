package testutil

import (
	"fmt"

	"github.com/vk/contractcfg/internal/config"
	"pgregory.net/rapid"
)

// VersionGen draws valid version triples.
func VersionGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		return fmt.Sprintf("%d.%d.%d",
			rapid.IntRange(0, 1).Draw(t, "major"),
			rapid.IntRange(0, 9).Draw(t, "minor"),
			rapid.IntRange(0, 40).Draw(t, "patch"),
		)
	})
}

// CompilerGen draws compiler entries with structurally valid versions.
func CompilerGen() *rapid.Generator[config.Compiler] {
	return rapid.Custom(func(t *rapid.T) config.Compiler {
		return config.Compiler{
			Version: VersionGen().Draw(t, "version"),
			Settings: config.Settings{
				EVMVersion: rapid.SampledFrom([]string{"", "london", "paris", "shanghai", "cancun", "prague"}).Draw(t, "evmVersion"),
				Optimizer: config.Optimizer{
					Enabled: rapid.Bool().Draw(t, "enabled"),
					Runs:    rapid.IntRange(0, 10_000_000).Draw(t, "runs"),
				},
				ViaIR: rapid.Bool().Draw(t, "viaIR"),
			},
		}
	})
}

func optionalPath() *rapid.Generator[string] {
	return rapid.OneOf(rapid.Just(""), rapid.StringMatching(`\./?[a-z]{1,8}(/[a-z]{1,6})?/?`))
}

// DescriptorGen draws arbitrary descriptors whose strings stay within what
// every codec can represent.
func DescriptorGen() *rapid.Generator[*config.Descriptor] {
	return rapid.Custom(func(t *rapid.T) *config.Descriptor {
		refs := rapid.SliceOfN(rapid.StringMatching(`(@[a-z]{2,8}/)?[a-z][a-z0-9-]{0,15}`), 0, 5).Draw(t, "plugins")
		plugins := make([]config.PluginRef, len(refs))
		for i, r := range refs {
			plugins[i] = config.PluginRef(r)
		}

		return &config.Descriptor{
			Plugins: plugins,
			Solidity: config.Solidity{
				Compilers: rapid.SliceOfN(CompilerGen(), 0, 3).Draw(t, "compilers"),
				Overrides: rapid.MapOfN(rapid.StringMatching(`src/[A-Za-z]{1,8}\.sol`), CompilerGen(), 0, 3).Draw(t, "overrides"),
			},
			Paths: config.Paths{
				Sources:   optionalPath().Draw(t, "sources"),
				Tests:     optionalPath().Draw(t, "tests"),
				Cache:     optionalPath().Draw(t, "cache"),
				Artifacts: optionalPath().Draw(t, "artifacts"),
			},
		}
	})
}
