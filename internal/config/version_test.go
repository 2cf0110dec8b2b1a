package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/contractcfg/internal/config"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		input     string
		expectErr bool
		expected  config.Version
	}{
		{name: "default compiler", input: "0.8.28", expected: config.Version{Major: 0, Minor: 8, Patch: 28}},
		{name: "zero patch", input: "0.8.0", expected: config.Version{Major: 0, Minor: 8, Patch: 0}},
		{name: "major release", input: "1.0.0", expected: config.Version{Major: 1}},
		{name: "error - empty", input: "", expectErr: true},
		{name: "error - two components", input: "0.8", expectErr: true},
		{name: "error - four components", input: "0.8.28.1", expectErr: true},
		{name: "error - prerelease", input: "0.8.28-nightly", expectErr: true},
		{name: "error - build metadata", input: "0.8.28+commit.7893614a", expectErr: true},
		{name: "error - leading v", input: "v0.8.28", expectErr: true},
		{name: "error - leading zero", input: "0.08.28", expectErr: true},
		{name: "error - words", input: "latest", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v, err := config.ParseVersion(tc.input)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, v)
			require.Equal(t, tc.input, v.String())
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	t.Parallel()

	older := config.MustParseVersion("0.8.9")
	newer := config.MustParseVersion("0.8.28")

	require.Equal(t, -1, older.Compare(newer), "numeric, not lexical, ordering")
	require.Equal(t, 1, newer.Compare(older))
	require.Equal(t, 0, newer.Compare(config.MustParseVersion("0.8.28")))
	require.True(t, newer.AtLeast(older))
	require.True(t, newer.AtLeast(newer))
	require.False(t, older.AtLeast(newer))
}

func TestMustParseVersion_Panics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { config.MustParseVersion("0.8") })
}
