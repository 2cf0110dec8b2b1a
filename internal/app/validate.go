package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vk/contractcfg/internal/config"
	"github.com/vk/contractcfg/internal/ctxlog"
	"github.com/vk/contractcfg/internal/evm"
	"github.com/vk/contractcfg/internal/fsutil"
)

// Validate runs every check on a loaded project: structural validation,
// plugin resolution, EVM profile support per compiler entry and the sources
// directory being readable. All problems are reported together.
func (a *App) Validate(ctx context.Context, p *Project) error {
	ctx = a.Context(ctx)
	logger := ctxlog.FromContext(ctx)
	d := p.Descriptor

	errs := &config.ValidationError{}
	errs.Merge(config.Validate(d))

	if _, err := a.registry.Resolve(ctx, d.Plugins); err != nil {
		errs.Merge(err)
	}

	for i, c := range d.Solidity.Compilers {
		checkEVM(errs, fmt.Sprintf("solidity.compilers[%d]", i), c)
	}
	overrides := make([]string, 0, len(d.Solidity.Overrides))
	for src := range d.Solidity.Overrides {
		overrides = append(overrides, src)
	}
	sort.Strings(overrides)
	for _, src := range overrides {
		checkEVM(errs, fmt.Sprintf("solidity.overrides[%q]", src), d.Solidity.Overrides[src])
		if _, err := os.Stat(filepath.Join(p.Root, filepath.FromSlash(src))); err != nil {
			logger.Warn("Compiler override targets a missing source file.", "source", src)
		}
	}

	if !filepath.IsAbs(d.Paths.SourcesDir()) {
		if err := fsutil.CheckReadableDir(p.SourcesDir()); err != nil {
			errs.Add("paths.sources: %v", err)
		}
	}

	if err := errs.Err(); err != nil {
		logger.Debug("Validation failed.", "problems", len(errs.Problems))
		return err
	}
	logger.Debug("Validation passed.")
	return nil
}

// checkEVM reports an unsupported EVM profile. Unparsable versions are left
// to config.Validate.
func checkEVM(errs *config.ValidationError, field string, c config.Compiler) {
	if _, err := config.ParseVersion(c.Version); err != nil {
		return
	}
	if _, err := evm.Resolve(c); err != nil {
		errs.Add("%s.settings.evmVersion: %v", field, err)
	}
}
