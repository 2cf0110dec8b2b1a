package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vk/contractcfg/internal/app"
	"github.com/vk/contractcfg/internal/config"
)

// renderProject writes a human-readable summary of the project. Styling is
// resolved against w, so plain buffers and pipes get no escape codes.
func renderProject(w io.Writer, p *app.Project) error {
	r := lipgloss.NewRenderer(w)
	heading := r.NewStyle().Bold(true)
	label := r.NewStyle().Faint(true).Width(14)

	source := p.Path
	if p.Builtin() {
		source = "built-in"
	}

	var b strings.Builder
	line := func(indent int, key, value string) {
		b.WriteString(strings.Repeat("  ", indent))
		b.WriteString(label.Render(key))
		b.WriteString(value)
		b.WriteByte('\n')
	}

	d := p.Descriptor
	b.WriteString(heading.Render("Toolchain") + "\n")
	line(1, "source", source)
	line(1, "root", p.Root)

	b.WriteString(heading.Render("Plugins") + "\n")
	if len(d.Plugins) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, ref := range d.Plugins {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, ref)
	}

	for i, c := range d.Solidity.Compilers {
		b.WriteString(heading.Render(fmt.Sprintf("Compiler #%d", i+1)) + "\n")
		renderCompiler(line, c)
	}

	srcs := make([]string, 0, len(d.Solidity.Overrides))
	for src := range d.Solidity.Overrides {
		srcs = append(srcs, src)
	}
	sort.Strings(srcs)
	for _, src := range srcs {
		b.WriteString(heading.Render("Override "+src) + "\n")
		renderCompiler(line, d.Solidity.Overrides[src])
	}

	b.WriteString(heading.Render("Paths") + "\n")
	line(1, "sources", d.Paths.SourcesDir())
	for _, kv := range [][2]string{{"tests", d.Paths.Tests}, {"cache", d.Paths.Cache}, {"artifacts", d.Paths.Artifacts}} {
		if kv[1] != "" {
			line(1, kv[0], kv[1])
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderCompiler(line func(int, string, string), c config.Compiler) {
	evmVersion := c.Settings.EVMVersion
	if evmVersion == "" {
		evmVersion = "(compiler default)"
	}
	optimizer := "disabled"
	if c.Settings.Optimizer.Enabled {
		optimizer = fmt.Sprintf("enabled, runs %d", c.Settings.Optimizer.EffectiveRuns())
	}

	line(1, "version", c.Version)
	line(1, "evmVersion", evmVersion)
	line(1, "optimizer", optimizer)
	line(1, "viaIR", fmt.Sprintf("%t", c.Settings.ViaIR))
}
