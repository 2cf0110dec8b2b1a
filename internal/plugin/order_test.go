package plugin

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/contractcfg/internal/config"
	"github.com/vk/contractcfg/internal/testutil"
)

// moduleFunc adapts a function to the Module interface.
type moduleFunc func(r *Registry)

func (f moduleFunc) Register(r *Registry) { f(r) }

func ids(plugins []*Plugin) []string {
	out := make([]string, len(plugins))
	for i, p := range plugins {
		out[i] = p.ID
	}
	return out
}

func TestActivationOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx, _ := testutil.Context(t)
	r := New(Builtin{})
	plugins, err := r.Resolve(ctx, []config.PluginRef{"hardhat-viem-assertions", "hardhat-network-helpers", "hardhat-viem"})
	require.NoError(t, err)

	// --- Act ---
	ordered, err := ActivationOrder(plugins)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{"hardhat-network-helpers", "hardhat-viem", "hardhat-viem-assertions"}, ids(ordered))
	require.Equal(t, []string{"hardhat-viem-assertions", "hardhat-network-helpers", "hardhat-viem"}, ids(plugins), "declared order is untouched")
}

func TestActivationOrder_DefaultIsStable(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.Context(t)
	plugins, err := New(Builtin{}).Resolve(ctx, config.Default().Plugins)
	require.NoError(t, err)

	ordered, err := ActivationOrder(plugins)
	require.NoError(t, err)
	require.Equal(t, ids(plugins), ids(ordered))
}

func TestResolve_DependencyCycle(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx, _ := testutil.Context(t)
	r := New(moduleFunc(func(r *Registry) {
		r.Register(&Plugin{ID: "a", Dependencies: []string{"b"}})
		r.Register(&Plugin{ID: "b", Dependencies: []string{"a"}})
	}))

	// --- Act ---
	_, err := r.Resolve(ctx, []config.PluginRef{"a", "b"})

	// --- Assert ---
	var verr *config.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"plugin dependencies: cycle detected involving node 'a'"}, verr.Problems)
}
