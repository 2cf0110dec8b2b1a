package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/contractcfg/internal/config"
	"github.com/vk/contractcfg/internal/ctxlog"
	"github.com/vk/contractcfg/internal/loader"
)

// Project is a loaded descriptor together with where it came from.
type Project struct {
	Descriptor *config.Descriptor
	// Root is the absolute project root all descriptor paths are relative to.
	Root string
	// Path is the file the descriptor was read from. It is empty when the
	// built-in descriptor is in use.
	Path string
}

// Builtin reports whether the project uses the built-in descriptor.
func (p *Project) Builtin() bool {
	return p.Path == ""
}

// Load resolves the toolchain file and reads it exactly once. When no path
// is configured and none is discovered, the built-in descriptor is used.
func (a *App) Load(ctx context.Context) (*Project, error) {
	ctx = a.Context(ctx)
	logger := ctxlog.FromContext(ctx)

	path := a.config.ConfigPath
	root := a.config.Root

	if path == "" {
		dir := root
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to determine working directory: %w", err)
			}
			dir = wd
		}

		found, err := a.loader.Discover(dir)
		switch {
		case err == nil:
			path = found
		case errors.Is(err, loader.ErrNotFound):
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve project root %s: %w", dir, err)
			}
			logger.Info("No toolchain file found, using built-in descriptor.", "dir", absDir)
			return &Project{Descriptor: config.Default(), Root: absDir}, nil
		default:
			return nil, err
		}
	}

	d, err := a.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if root == "" {
		root = filepath.Dir(path)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root %s: %w", root, err)
	}

	logger.Info("Toolchain file loaded.", "path", path, "root", absRoot)
	return &Project{Descriptor: d, Root: absRoot, Path: path}, nil
}

// SourcesDir returns the absolute sources directory of p.
func (p *Project) SourcesDir() string {
	return filepath.Join(p.Root, filepath.FromSlash(p.Descriptor.Paths.SourcesDir()))
}
