package plugin

// Builtin registers the plugins shipped with the toolchain.
type Builtin struct{}

// Register implements Module.
func (Builtin) Register(r *Registry) {
	r.Register(&Plugin{
		ID:          "hardhat-viem",
		Package:     "@nomicfoundation/hardhat-viem",
		Description: "viem clients for deployed contracts and accounts",
	})
	r.Register(&Plugin{
		ID:           "hardhat-viem-assertions",
		Package:      "@nomicfoundation/hardhat-viem-assertions",
		Description:  "assertion helpers for viem-based tests",
		Dependencies: []string{"hardhat-viem"},
	})
	r.Register(&Plugin{
		ID:          "hardhat-network-helpers",
		Package:     "@nomicfoundation/hardhat-network-helpers",
		Description: "time, mining and state helpers for the simulated network",
	})
}
