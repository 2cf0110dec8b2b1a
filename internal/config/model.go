// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"path"
	"strings"
)

// PluginRef names a plugin supplied by the host toolchain. It carries identity
// only.
type PluginRef string

// Descriptor is the unified, format-agnostic representation of a project's
// toolchain configuration.
type Descriptor struct {
	Plugins  []PluginRef `json:"plugins" yaml:"plugins"`
	Solidity Solidity    `json:"solidity" yaml:"solidity"`
	Paths    Paths       `json:"paths" yaml:"paths"`
}

// Solidity groups the compiler entries. The first entry in Compilers is the
// primary compiler; Overrides pins individual source files to another entry.
type Solidity struct {
	Compilers []Compiler          `json:"compilers" yaml:"compilers"`
	Overrides map[string]Compiler `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Compiler is a single compiler release together with its settings.
type Compiler struct {
	Version  string   `json:"version" yaml:"version"`
	Settings Settings `json:"settings" yaml:"settings"`
}

// Settings are the options handed to the compiler.
type Settings struct {
	// EVMVersion is the execution-environment profile, e.g. "cancun". Empty
	// means the compiler's own default for its release.
	EVMVersion string    `json:"evmVersion,omitempty" yaml:"evmVersion,omitempty"`
	Optimizer  Optimizer `json:"optimizer" yaml:"optimizer"`
	ViaIR      bool      `json:"viaIR" yaml:"viaIR"`
}

// Optimizer toggles the bytecode optimizer. Runs of zero means unset.
type Optimizer struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Runs    int  `json:"runs,omitempty" yaml:"runs,omitempty"`
}

// Paths overrides where the host looks for project files. All paths are
// relative to the project root.
type Paths struct {
	Sources   string `json:"sources,omitempty" yaml:"sources,omitempty"`
	Tests     string `json:"tests,omitempty" yaml:"tests,omitempty"`
	Cache     string `json:"cache,omitempty" yaml:"cache,omitempty"`
	Artifacts string `json:"artifacts,omitempty" yaml:"artifacts,omitempty"`
}

// Compiler returns the primary compiler entry, or nil if none is declared.
func (d *Descriptor) Compiler() *Compiler {
	if d == nil || len(d.Solidity.Compilers) == 0 {
		return nil
	}
	return &d.Solidity.Compilers[0]
}

// CompilerFor returns the compiler entry used for the given source file
// (relative to the project root). Overrides win over the primary compiler.
func (d *Descriptor) CompilerFor(file string) *Compiler {
	if d == nil {
		return nil
	}
	want := cleanSourceKey(file)
	for key, c := range d.Solidity.Overrides {
		if cleanSourceKey(key) == want {
			return &c
		}
	}
	return d.Compiler()
}

// SourcesDir returns the sources path, falling back to the host default.
func (p Paths) SourcesDir() string {
	if p.Sources == "" {
		return DefaultSourcesPath
	}
	return p.Sources
}

// EffectiveRuns returns the runs value the compiler will use.
func (o Optimizer) EffectiveRuns() int {
	if o.Runs == 0 {
		return DefaultOptimizerRuns
	}
	return o.Runs
}

// cleanSourceKey normalizes a source path so that "./src/A.sol" and
// "src/A.sol" address the same file.
func cleanSourceKey(p string) string {
	p = path.Clean(strings.ReplaceAll(p, "\\", "/"))
	return strings.TrimPrefix(p, "./")
}
