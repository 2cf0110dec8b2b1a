package hcl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/vk/contractcfg/internal/config"
	"github.com/vk/contractcfg/internal/testutil"
	"pgregory.net/rapid"
)

const defaultToolchainHCL = `
plugins = ["hardhat-viem", "hardhat-viem-assertions", "hardhat-network-helpers"]

solidity {
  compiler {
    version = "0.8.28"
    settings {
      evm_version = "cancun"
      via_ir      = true
      optimizer {
        enabled = true
        runs    = 1000000
      }
    }
  }
}

paths {
  sources = "./src/"
}
`

func TestDecode_DefaultDescriptor(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx, _ := testutil.Context(t)

	// --- Act ---
	d, err := NewCodec().Decode(ctx, []byte(defaultToolchainHCL), "toolchain.hcl")

	// --- Assert ---
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(config.Default(), d, cmpopts.EquateEmpty()))
}

func TestDecode_OverridesAndOptionalBlocks(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.Context(t)
	src := `
solidity {
  compiler {
    version = "0.8.28"
  }
  override "src/Legacy.sol" {
    version = "0.8.20"
    settings {
      evm_version = "shanghai"
    }
  }
}
`
	d, err := NewCodec().Decode(ctx, []byte(src), "toolchain.hcl")
	require.NoError(t, err)

	require.Nil(t, d.Plugins)
	require.Equal(t, config.Compiler{Version: "0.8.28"}, *d.Compiler())
	require.Equal(t, map[string]config.Compiler{
		"src/Legacy.sol": {Version: "0.8.20", Settings: config.Settings{EVMVersion: "shanghai"}},
	}, d.Solidity.Overrides)
	require.Equal(t, config.Paths{}, d.Paths)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		src       string
		expectErr string
	}{
		{
			name:      "syntax error",
			src:       "solidity {\n  compiler {\n",
			expectErr: "failed to parse HCL file toolchain.hcl",
		},
		{
			name:      "unknown attribute",
			src:       "solc_version = \"0.8.28\"\n",
			expectErr: "Unsupported argument",
		},
		{
			name:      "duplicate solidity block",
			src:       "solidity {}\nsolidity {}\n",
			expectErr: "failed to decode HCL file toolchain.hcl",
		},
		{
			name:      "compiler without version",
			src:       "solidity {\n  compiler {}\n}\n",
			expectErr: "Missing required argument",
		},
		{
			name:      "fractional runs",
			src:       "solidity {\n  compiler {\n    version = \"0.8.28\"\n    settings {\n      optimizer {\n        runs = 1.5\n      }\n    }\n  }\n}\n",
			expectErr: "failed to decode HCL file toolchain.hcl",
		},
		{
			name:      "duplicate override label",
			src:       "solidity {\n  compiler {\n    version = \"0.8.28\"\n  }\n  override \"src/A.sol\" {\n    version = \"0.8.20\"\n  }\n  override \"src/A.sol\" {\n    version = \"0.8.21\"\n  }\n}\n",
			expectErr: "toolchain.hcl:8,3-23: Duplicate override definition; An override for source 'src/A.sol' has already been defined.",
		},
		{
			name:      "plugins must be strings",
			src:       "plugins = [{ name = \"viem\" }]\n",
			expectErr: "failed to decode HCL file toolchain.hcl",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx, _ := testutil.Context(t)
			_, err := NewCodec().Decode(ctx, []byte(tc.src), "toolchain.hcl")
			require.ErrorContains(t, err, tc.expectErr)
		})
	}
}

func TestEncode_Default(t *testing.T) {
	t.Parallel()

	out, err := NewCodec().Encode(config.Default())
	require.NoError(t, err)

	text := string(out)
	require.Contains(t, text, `plugins = ["hardhat-viem", "hardhat-viem-assertions", "hardhat-network-helpers"]`)
	require.Contains(t, text, `version = "0.8.28"`)
	require.Contains(t, text, `evm_version = "cancun"`)
	require.Contains(t, text, `runs    = 1000000`)
	require.Contains(t, text, `sources = "./src/"`)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewCodec()
	rapid.Check(t, func(rt *rapid.T) {
		ctx, _ := testutil.Context(t)
		want := testutil.DescriptorGen().Draw(rt, "descriptor")

		out, err := codec.Encode(want)
		if err != nil {
			rt.Fatalf("encode: %v", err)
		}
		got, err := codec.Decode(ctx, out, "roundtrip.hcl")
		if err != nil {
			rt.Fatalf("decode: %v\n%s", err, out)
		}
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			rt.Fatalf("round trip mismatch (-want +got):\n%s\n%s", diff, out)
		}
	})
}
