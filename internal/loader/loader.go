// Package loader finds the project's toolchain file, dispatches it to the
// codec registered for its extension and writes descriptors back to disk.
package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/contractcfg/internal/config"
	"github.com/vk/contractcfg/internal/ctxlog"
)

// BaseName is the file name, without extension, looked up by Discover.
const BaseName = "toolchain"

var (
	// ErrNotFound is returned by Discover when no toolchain file exists.
	ErrNotFound = errors.New("no toolchain file found")
	// ErrUnsupportedFormat is returned for extensions no codec handles.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
	// ErrExists is returned by Write when the target exists and force is off.
	ErrExists = errors.New("file already exists")
)

// Loader reads and writes descriptors using the registered codecs.
type Loader struct {
	codecs []config.Codec
	byExt  map[string]config.Codec
}

// New creates a Loader. Codec order sets the Discover preference.
func New(codecs ...config.Codec) *Loader {
	l := &Loader{byExt: make(map[string]config.Codec)}
	for _, c := range codecs {
		l.codecs = append(l.codecs, c)
		for _, ext := range c.Extensions() {
			l.byExt[strings.ToLower(ext)] = c
		}
	}
	return l
}

// CodecFor returns the codec handling path's extension.
func (l *Loader) CodecFor(path string) (config.Codec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	c, ok := l.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, ext, strings.Join(l.Extensions(), ", "))
	}
	return c, nil
}

// Codec returns the codec with the given format name.
func (l *Loader) Codec(name string) (config.Codec, error) {
	for _, c := range l.codecs {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Extensions returns all handled extensions, sorted.
func (l *Loader) Extensions() []string {
	exts := make([]string, 0, len(l.byExt))
	for ext := range l.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Candidates returns the file names Discover looks for, in preference order.
func (l *Loader) Candidates() []string {
	var names []string
	for _, c := range l.codecs {
		for _, ext := range c.Extensions() {
			names = append(names, BaseName+ext)
		}
	}
	return names
}

// Discover returns the path of the first candidate file present in dir.
func (l *Loader) Discover(dir string) (string, error) {
	for _, name := range l.Candidates() {
		p := filepath.Join(dir, name)
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("error accessing %s: %w", p, err)
		}
	}
	return "", fmt.Errorf("%w in %s (looked for %s)", ErrNotFound, dir, strings.Join(l.Candidates(), ", "))
}

// Load reads the file at path once and decodes it with the matching codec.
func (l *Loader) Load(ctx context.Context, path string) (*config.Descriptor, error) {
	codec, err := l.CodecFor(path)
	if err != nil {
		return nil, err
	}
	ctx = ctxlog.With(ctx, "format", codec.Name())
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading descriptor.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	d, err := codec.Decode(ctx, src, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Descriptor loaded.", "path", path)
	return d, nil
}

// Write encodes d with the codec matching path and writes it. Existing files
// are only replaced when force is set.
func (l *Loader) Write(ctx context.Context, path string, d *config.Descriptor, force bool) error {
	logger := ctxlog.FromContext(ctx)

	codec, err := l.CodecFor(path)
	if err != nil {
		return err
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
	}

	out, err := codec.Encode(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Debug("Descriptor written.", "path", path, "format", codec.Name(), "bytes", len(out))
	return nil
}
