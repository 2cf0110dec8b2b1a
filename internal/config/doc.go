// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package config defines the format-agnostic toolchain descriptor: the plugin
// set to activate, the Solidity compiler entries and the project paths. It
// also provides the built-in default descriptor, structural validation and the
// Codec interface implemented by the concrete file formats.
//
// The `config.Descriptor` is the single source of truth for the loader, the
// plugin registry and the compiler settings export. Concrete codecs, such as
// the HCL one, live in separate packages.
package config
