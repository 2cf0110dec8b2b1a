// Package plugin keeps the set of plugins the host toolchain recognizes and
// resolves a descriptor's ordered plugin references against it. Plugins are
// identity only: a reference activates a capability the host supplies, it
// never runs code from this module.
package plugin
