// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

// Values of the built-in descriptor.
const (
	DefaultCompilerVersion = "0.8.28"
	DefaultEVMVersion      = "cancun"
	DefaultRuns            = 1000000
	DefaultSources         = "./src/"
)

// Host fallbacks used when a descriptor leaves a value unset.
const (
	DefaultSourcesPath   = "./contracts"
	DefaultOptimizerRuns = 200
)

// Default returns a fresh copy of the built-in descriptor.
func Default() *Descriptor {
	return &Descriptor{
		Plugins: []PluginRef{
			"hardhat-viem",
			"hardhat-viem-assertions",
			"hardhat-network-helpers",
		},
		Solidity: Solidity{
			Compilers: []Compiler{
				{
					Version: DefaultCompilerVersion,
					Settings: Settings{
						EVMVersion: DefaultEVMVersion,
						Optimizer:  Optimizer{Enabled: true, Runs: DefaultRuns},
						ViaIR:      true,
					},
				},
			},
		},
		Paths: Paths{
			Sources: DefaultSources,
		},
	}
}
