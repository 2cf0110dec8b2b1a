// Package solc translates descriptor compiler entries into the settings
// object of the compiler's standard-JSON input.
package solc

import (
	"encoding/json"
	"fmt"

	"github.com/vk/contractcfg/internal/config"
	"github.com/vk/contractcfg/internal/evm"
)

// Settings is the "settings" member of a standard-JSON compiler input.
type Settings struct {
	EVMVersion      string                         `json:"evmVersion"`
	Optimizer       Optimizer                      `json:"optimizer"`
	ViaIR           bool                           `json:"viaIR,omitempty"`
	OutputSelection map[string]map[string][]string `json:"outputSelection"`
}

// Optimizer mirrors the optimizer member of the standard-JSON settings.
type Optimizer struct {
	Enabled bool `json:"enabled"`
	Runs    int  `json:"runs"`
}

// Input is a standard-JSON compiler input without sources, as handed over to
// the compiler together with the discovered files.
type Input struct {
	Language string   `json:"language"`
	Settings Settings `json:"settings"`
}

// DefaultOutputSelection requests the artifacts the host needs for
// deployment and testing.
func DefaultOutputSelection() map[string]map[string][]string {
	return map[string]map[string][]string{
		"*": {
			"*": {"abi", "evm.bytecode", "evm.deployedBytecode", "evm.methodIdentifiers", "metadata"},
			"":  {"ast"},
		},
	}
}

// SettingsFor resolves c into the settings the compiler receives: the EVM
// version falls back to the release default and unset runs to the compiler
// default.
func SettingsFor(c config.Compiler) (Settings, error) {
	evmVersion, err := evm.Resolve(c)
	if err != nil {
		return Settings{}, fmt.Errorf("compiler %s: %w", c.Version, err)
	}
	return Settings{
		EVMVersion: evmVersion,
		Optimizer: Optimizer{
			Enabled: c.Settings.Optimizer.Enabled,
			Runs:    c.Settings.Optimizer.EffectiveRuns(),
		},
		ViaIR:           c.Settings.ViaIR,
		OutputSelection: DefaultOutputSelection(),
	}, nil
}

// MarshalInput renders the standard-JSON input for c, indented for humans.
func MarshalInput(c config.Compiler) ([]byte, error) {
	s, err := SettingsFor(c)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(Input{Language: "Solidity", Settings: s}, "", "  ")
}
