// Package app contains the core application logic. It wires the logger,
// the descriptor loader and the plugin registry, and implements the project
// operations (load, validate, list sources) independently of any entrypoint
// like the CLI.
package app
