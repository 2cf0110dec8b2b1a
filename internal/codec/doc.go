// Package codec implements the JSON and YAML descriptor formats. Both use the
// host framework's field names (plugins, solidity.compilers[].settings.evmVersion,
// paths.sources, ...) and reject fields they do not know.
package codec
