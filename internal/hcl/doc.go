// Package hcl provides the HCL implementation of the config.Codec interface.
// It parses toolchain.hcl files into schema structs, translates them into the
// format-agnostic descriptor, and writes descriptors back out with hclwrite.
package hcl
