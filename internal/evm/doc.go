// Package evm holds the table of execution-environment profiles the Solidity
// compiler can target, together with the first compiler release accepting
// each profile name and the profile a release picks when none is configured.
package evm
