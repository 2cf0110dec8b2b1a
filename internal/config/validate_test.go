package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/contractcfg/internal/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mutate   func(d *config.Descriptor)
		problems []string
	}{
		{
			name:   "valid default",
			mutate: func(d *config.Descriptor) {},
		},
		{
			name:   "empty plugin list is allowed",
			mutate: func(d *config.Descriptor) { d.Plugins = nil },
		},
		{
			name:     "empty plugin reference",
			mutate:   func(d *config.Descriptor) { d.Plugins = append(d.Plugins, " ") },
			problems: []string{"plugins[3]: plugin reference cannot be empty"},
		},
		{
			name:     "duplicate plugin reference",
			mutate:   func(d *config.Descriptor) { d.Plugins = append(d.Plugins, "hardhat-viem") },
			problems: []string{`plugins[3]: "hardhat-viem" is already listed at plugins[0]`},
		},
		{
			name:     "no compiler",
			mutate:   func(d *config.Descriptor) { d.Solidity.Compilers = nil },
			problems: []string{"solidity: at least one compiler must be declared"},
		},
		{
			name:     "unparsable version",
			mutate:   func(d *config.Descriptor) { d.Solidity.Compilers[0].Version = "0.8" },
			problems: []string{"solidity.compilers[0].version"},
		},
		{
			name:     "empty version",
			mutate:   func(d *config.Descriptor) { d.Solidity.Compilers[0].Version = "" },
			problems: []string{"solidity.compilers[0].version: version cannot be empty"},
		},
		{
			name:     "negative runs",
			mutate:   func(d *config.Descriptor) { d.Solidity.Compilers[0].Settings.Optimizer.Runs = -1 },
			problems: []string{"solidity.compilers[0].settings.optimizer.runs: must be a positive integer"},
		},
		{
			name: "unset runs are allowed",
			mutate: func(d *config.Descriptor) {
				d.Solidity.Compilers[0].Settings.Optimizer = config.Optimizer{Enabled: true}
			},
		},
		{
			name: "override with bad version",
			mutate: func(d *config.Descriptor) {
				d.Solidity.Overrides = map[string]config.Compiler{"src/A.sol": {Version: "nightly"}}
			},
			problems: []string{`solidity.overrides["src/A.sol"].version`},
		},
		{
			name: "overrides naming the same file",
			mutate: func(d *config.Descriptor) {
				d.Solidity.Overrides = map[string]config.Compiler{
					"./src/A.sol": {Version: "0.8.20"},
					"src/A.sol":   {Version: "0.8.21"},
				}
			},
			problems: []string{`solidity.overrides["src/A.sol"]: same file as "./src/A.sol"`},
		},
		{
			name:     "absolute sources path",
			mutate:   func(d *config.Descriptor) { d.Paths.Sources = "/abs/src" },
			problems: []string{`paths.sources: "/abs/src" must be relative to the project root`},
		},
		{
			name: "problems are aggregated",
			mutate: func(d *config.Descriptor) {
				d.Plugins = []config.PluginRef{""}
				d.Solidity.Compilers[0].Version = "x"
				d.Paths.Artifacts = "/tmp/out"
			},
			problems: []string{"plugins[0]", "solidity.compilers[0].version", "paths.artifacts"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			d := config.Default()
			tc.mutate(d)

			// --- Act ---
			err := config.Validate(d)

			// --- Assert ---
			if len(tc.problems) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *config.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Problems, len(tc.problems))
			for i, want := range tc.problems {
				require.Contains(t, verr.Problems[i], want)
			}
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	t.Parallel()
	require.ErrorContains(t, config.Validate(nil), "descriptor is nil")
}

func TestValidationError_Merge(t *testing.T) {
	t.Parallel()

	errs := &config.ValidationError{}
	require.NoError(t, errs.Err())

	errs.Merge(nil)
	errs.Merge(&config.ValidationError{Problems: []string{"a", "b"}})
	errs.Add("c %d", 1)

	require.Equal(t, []string{"a", "b", "c 1"}, errs.Problems)
	require.Equal(t, "configuration validation failed:\n- a\n- b\n- c 1", errs.Err().Error())
}
