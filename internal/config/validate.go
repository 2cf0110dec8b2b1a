// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// ValidationError lists every problem found in a descriptor.
type ValidationError struct {
	Problems []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration validation failed:\n- %s", strings.Join(e.Problems, "\n- "))
}

// Add records a formatted problem.
func (e *ValidationError) Add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// Merge appends the problems of err if it is a *ValidationError, or its
// message otherwise. A nil err is ignored.
func (e *ValidationError) Merge(err error) {
	if err == nil {
		return
	}
	if ve, ok := err.(*ValidationError); ok {
		e.Problems = append(e.Problems, ve.Problems...)
		return
	}
	e.Problems = append(e.Problems, err.Error())
}

// Err returns e if any problem was recorded, nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}

// Validate performs the structural checks on d that need neither the plugin
// registry nor the filesystem.
func Validate(d *Descriptor) error {
	if d == nil {
		return &ValidationError{Problems: []string{"descriptor is nil"}}
	}
	errs := &ValidationError{}

	seen := make(map[PluginRef]int, len(d.Plugins))
	for i, ref := range d.Plugins {
		if strings.TrimSpace(string(ref)) == "" {
			errs.Add("plugins[%d]: plugin reference cannot be empty", i)
			continue
		}
		if prev, dup := seen[ref]; dup {
			errs.Add("plugins[%d]: %q is already listed at plugins[%d]", i, ref, prev)
			continue
		}
		seen[ref] = i
	}

	if len(d.Solidity.Compilers) == 0 {
		errs.Add("solidity: at least one compiler must be declared")
	}
	for i, c := range d.Solidity.Compilers {
		validateCompiler(errs, fmt.Sprintf("solidity.compilers[%d]", i), c)
	}

	keys := make([]string, 0, len(d.Solidity.Overrides))
	for k := range d.Solidity.Overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	cleaned := make(map[string]string, len(keys))
	for _, k := range keys {
		if strings.TrimSpace(k) == "" {
			errs.Add("solidity.overrides: source path cannot be empty")
			continue
		}
		ck := cleanSourceKey(k)
		if prev, dup := cleaned[ck]; dup {
			errs.Add("solidity.overrides[%q]: same file as %q", k, prev)
			continue
		}
		cleaned[ck] = k
		validateCompiler(errs, fmt.Sprintf("solidity.overrides[%q]", k), d.Solidity.Overrides[k])
	}

	validatePath(errs, "paths.sources", d.Paths.Sources)
	validatePath(errs, "paths.tests", d.Paths.Tests)
	validatePath(errs, "paths.cache", d.Paths.Cache)
	validatePath(errs, "paths.artifacts", d.Paths.Artifacts)

	return errs.Err()
}

func validateCompiler(errs *ValidationError, field string, c Compiler) {
	if _, err := ParseVersion(c.Version); err != nil {
		errs.Add("%s.version: %v", field, err)
	}
	if c.Settings.Optimizer.Runs < 0 {
		errs.Add("%s.settings.optimizer.runs: must be a positive integer, got %d", field, c.Settings.Optimizer.Runs)
	}
}

func validatePath(errs *ValidationError, field, p string) {
	if p == "" {
		return
	}
	if path.IsAbs(strings.ReplaceAll(p, "\\", "/")) {
		errs.Add("%s: %q must be relative to the project root", field, p)
	}
}
