package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidation_ReportsEveryProblemAtOnce checks that structural, plugin,
// EVM and filesystem problems surface together in one error.
func TestValidation_ReportsEveryProblemAtOnce(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"toolchain.yaml": `
plugins:
  - hardhat-viem
  - hardhat-viem
  - truffle
solidity:
  compilers:
    - version: 0.8.4
      settings:
        evmVersion: london
        optimizer:
          runs: -1
  overrides:
    ./src/A.sol:
      version: 0.8.28
    src/A.sol:
      version: 0.8.28
paths:
  sources: /abs/src
`,
	}

	// --- Act ---
	result := runIntegrationTest(t, files)

	// --- Assert ---
	require.NoError(t, result.LoadErr)
	require.Error(t, result.Err)
	msg := result.Err.Error()
	for _, want := range []string{
		"configuration validation failed:",
		`plugins[1]: "hardhat-viem" is already listed at plugins[0]`,
		"solidity.compilers[0].settings.optimizer.runs: must be a positive integer, got -1",
		`solidity.overrides["src/A.sol"]: same file as "./src/A.sol"`,
		`paths.sources: "/abs/src" must be relative to the project root`,
		`unknown plugin "truffle"`,
		`EVM version "london" requires compiler 0.8.7 or newer, got 0.8.4`,
	} {
		require.Contains(t, msg, want)
	}
	require.Contains(t, result.LogOutput, "Validation failed.")
}

// TestValidation_BuiltinDescriptorNeedsSources checks the fallback path:
// without a toolchain file the built-in descriptor is validated against the
// project root.
func TestValidation_BuiltinDescriptorNeedsSources(t *testing.T) {
	t.Parallel()

	result := runIntegrationTest(t, map[string]string{"README.md": "hi"})

	require.NoError(t, result.LoadErr)
	require.True(t, result.Project.Builtin())
	require.ErrorContains(t, result.Err, "paths.sources: directory")

	result = runIntegrationTest(t, map[string]string{"src/": ""})
	require.NoError(t, result.LoadErr)
	require.NoError(t, result.Err)
}
