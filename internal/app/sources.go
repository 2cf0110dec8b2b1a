package app

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/vk/contractcfg/internal/config"
	"github.com/vk/contractcfg/internal/ctxlog"
	"github.com/vk/contractcfg/internal/fsutil"
)

// SourceExtension is the extension of Solidity source files.
const SourceExtension = ".sol"

// Source is a discovered source file and the compiler entry that builds it.
type Source struct {
	// Path is relative to the project root and slash-separated.
	Path     string
	Compiler *config.Compiler
}

// Sources lists the Solidity files under the project's sources directory.
func (a *App) Sources(ctx context.Context, p *Project) ([]Source, error) {
	ctx = a.Context(ctx)
	logger := ctxlog.FromContext(ctx)

	dir := p.SourcesDir()
	if err := fsutil.CheckReadableDir(dir); err != nil {
		return nil, fmt.Errorf("paths.sources: %w", err)
	}

	files, err := fsutil.FindFilesByExtension(ctx, dir, SourceExtension)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	rel, err := filepath.Rel(p.Root, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to relate %s to the project root: %w", dir, err)
	}
	prefix := filepath.ToSlash(rel)

	out := make([]Source, 0, len(files))
	for _, f := range files {
		src := path.Join(prefix, f)
		out = append(out, Source{Path: src, Compiler: p.Descriptor.CompilerFor(src)})
	}
	logger.Debug("Sources discovered.", "dir", dir, "count", len(out))
	return out, nil
}
