package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a toolchain.hcl file.
type fileRoot struct {
	Plugins  []string       `hcl:"plugins,optional"`
	Solidity *solidityBlock `hcl:"solidity,block"`
	Paths    *pathsBlock    `hcl:"paths,block"`
}

// solidityBlock holds the ordered compiler blocks and per-file overrides.
type solidityBlock struct {
	Compilers []*compilerBlock `hcl:"compiler,block"`
	Overrides []*overrideBlock `hcl:"override,block"`
}

type compilerBlock struct {
	Version  string         `hcl:"version"`
	Settings *settingsBlock `hcl:"settings,block"`
}

// overrideBlock is a compiler block labelled with the source file it applies to.
type overrideBlock struct {
	Source   string         `hcl:"source,label"`
	Version  string         `hcl:"version"`
	Settings *settingsBlock `hcl:"settings,block"`
	DefRange hcl.Range      `hcl:",def_range"`
}

type settingsBlock struct {
	EVMVersion string          `hcl:"evm_version,optional"`
	ViaIR      bool            `hcl:"via_ir,optional"`
	Optimizer  *optimizerBlock `hcl:"optimizer,block"`
}

type optimizerBlock struct {
	Enabled bool `hcl:"enabled,optional"`
	Runs    int  `hcl:"runs,optional"`
}

type pathsBlock struct {
	Sources   string `hcl:"sources,optional"`
	Tests     string `hcl:"tests,optional"`
	Cache     string `hcl:"cache,optional"`
	Artifacts string `hcl:"artifacts,optional"`
}
