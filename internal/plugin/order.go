package plugin

import (
	"fmt"

	"github.com/vk/contractcfg/internal/dag"
)

// ActivationOrder returns plugins reordered so that each plugin follows the
// plugins it depends on. Unrelated plugins keep their declared order.
// Dependencies outside plugins are ignored; Resolve reports them.
func ActivationOrder(plugins []*Plugin) ([]*Plugin, error) {
	g := dag.New()
	byID := make(map[string]*Plugin, len(plugins))
	for _, p := range plugins {
		g.AddNode(p.ID)
		byID[p.ID] = p
	}
	for _, p := range plugins {
		for _, dep := range p.Dependencies {
			if _, ok := byID[dep]; !ok {
				continue
			}
			if err := g.AddEdge(dep, p.ID); err != nil {
				return nil, fmt.Errorf("plugin %q: %w", p.ID, err)
			}
		}
	}

	ids, err := g.Order()
	if err != nil {
		return nil, fmt.Errorf("plugin dependencies: %w", err)
	}
	ordered := make([]*Plugin, len(ids))
	for i, id := range ids {
		ordered[i] = byID[id]
	}
	return ordered, nil
}
