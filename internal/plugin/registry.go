package plugin

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/contractcfg/internal/config"
	"github.com/vk/contractcfg/internal/ctxlog"
)

// ErrUnknown is returned when a reference matches no registered plugin.
var ErrUnknown = errors.New("unknown plugin")

// Plugin describes a capability module supplied by the host.
type Plugin struct {
	ID          string
	Package     string
	Description string
	// Dependencies are plugin IDs that must be activated as well.
	Dependencies []string
}

// Module is implemented by anything that contributes plugins to a Registry.
type Module interface {
	Register(r *Registry)
}

// Registry holds the recognized plugins for a single application instance.
type Registry struct {
	byID      map[string]*Plugin
	byPackage map[string]*Plugin
}

// New creates a Registry populated by the given modules.
func New(modules ...Module) *Registry {
	r := &Registry{
		byID:      make(map[string]*Plugin),
		byPackage: make(map[string]*Plugin),
	}
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// Register adds p to the registry. Registering the same ID twice is a
// programmer error and panics.
func (r *Registry) Register(p *Plugin) {
	if p.ID == "" {
		panic("plugin: cannot register a plugin without an ID")
	}
	if _, exists := r.byID[p.ID]; exists {
		panic(fmt.Sprintf("plugin: %q registered twice", p.ID))
	}
	r.byID[p.ID] = p
	if p.Package != "" {
		r.byPackage[p.Package] = p
	}
}

// Lookup finds a plugin by its ID or its package name.
func (r *Registry) Lookup(ref config.PluginRef) (*Plugin, bool) {
	key := strings.TrimSpace(string(ref))
	if p, ok := r.byID[key]; ok {
		return p, true
	}
	p, ok := r.byPackage[key]
	return p, ok
}

// IDs returns the registered plugin IDs in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resolve maps refs to plugins, preserving the declared order. It reports
// unknown references, references naming the same plugin twice, dependencies
// that are not activated and dependency cycles.
func (r *Registry) Resolve(ctx context.Context, refs []config.PluginRef) ([]*Plugin, error) {
	logger := ctxlog.FromContext(ctx)
	errs := &config.ValidationError{}

	resolved := make([]*Plugin, 0, len(refs))
	active := make(map[string]int, len(refs))
	for i, ref := range refs {
		p, ok := r.Lookup(ref)
		if !ok {
			errs.Add("plugins[%d]: %v %q (known plugins: %s)", i, ErrUnknown, ref, strings.Join(r.IDs(), ", "))
			continue
		}
		if prev, dup := active[p.ID]; dup {
			errs.Add("plugins[%d]: %q activates %q which is already activated by plugins[%d]", i, ref, p.ID, prev)
			continue
		}
		active[p.ID] = i
		resolved = append(resolved, p)
	}

	for _, p := range resolved {
		for _, dep := range p.Dependencies {
			if _, ok := active[dep]; !ok {
				errs.Add("plugin %q depends on %q which is not activated", p.ID, dep)
			}
		}
	}

	if _, err := ActivationOrder(resolved); err != nil {
		errs.Add("%v", err)
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}
	logger.Debug("Plugins resolved.", "count", len(resolved))
	return resolved, nil
}
