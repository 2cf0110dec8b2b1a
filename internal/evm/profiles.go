package evm

import (
	"fmt"

	"github.com/vk/contractcfg/internal/config"
)

// Profile is a named feature-set revision of the virtual machine.
type Profile struct {
	Name string
	// Since is the first compiler release that accepts Name.
	Since config.Version
}

// profiles is ordered from oldest to newest.
var profiles = []Profile{
	{Name: "homestead", Since: config.MustParseVersion("0.4.21")},
	{Name: "tangerineWhistle", Since: config.MustParseVersion("0.4.21")},
	{Name: "spuriousDragon", Since: config.MustParseVersion("0.4.21")},
	{Name: "byzantium", Since: config.MustParseVersion("0.4.21")},
	{Name: "constantinople", Since: config.MustParseVersion("0.4.21")},
	{Name: "petersburg", Since: config.MustParseVersion("0.5.5")},
	{Name: "istanbul", Since: config.MustParseVersion("0.5.14")},
	{Name: "berlin", Since: config.MustParseVersion("0.8.5")},
	{Name: "london", Since: config.MustParseVersion("0.8.7")},
	{Name: "paris", Since: config.MustParseVersion("0.8.18")},
	{Name: "shanghai", Since: config.MustParseVersion("0.8.20")},
	{Name: "cancun", Since: config.MustParseVersion("0.8.24")},
	{Name: "prague", Since: config.MustParseVersion("0.8.27")},
	{Name: "osaka", Since: config.MustParseVersion("0.8.29")},
}

// defaults maps the first release of a range to the profile the compiler
// uses by default from that release on. Ordered newest first.
var defaults = []struct {
	from    config.Version
	profile string
}{
	{config.MustParseVersion("0.8.30"), "prague"},
	{config.MustParseVersion("0.8.25"), "cancun"},
	{config.MustParseVersion("0.8.20"), "shanghai"},
	{config.MustParseVersion("0.8.18"), "paris"},
	{config.MustParseVersion("0.8.7"), "london"},
	{config.MustParseVersion("0.8.5"), "berlin"},
	{config.MustParseVersion("0.5.14"), "istanbul"},
	{config.MustParseVersion("0.5.5"), "petersburg"},
}

// Names returns all known profile names, oldest first.
func Names() []string {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	return names
}

// Lookup returns the profile with the given name.
func Lookup(name string) (Profile, bool) {
	for _, p := range profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Supported returns nil if the compiler release v accepts the named profile.
func Supported(name string, v config.Version) error {
	p, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("unknown EVM version %q", name)
	}
	if !v.AtLeast(p.Since) {
		return fmt.Errorf("EVM version %q requires compiler %s or newer, got %s", name, p.Since, v)
	}
	return nil
}

// DefaultFor returns the profile the compiler release v targets when no EVM
// version is configured.
func DefaultFor(v config.Version) string {
	for _, d := range defaults {
		if v.AtLeast(d.from) {
			return d.profile
		}
	}
	return "byzantium"
}

// Resolve returns the profile name a compiler entry ends up targeting,
// validating an explicit one.
func Resolve(c config.Compiler) (string, error) {
	v, err := config.ParseVersion(c.Version)
	if err != nil {
		return "", err
	}
	if c.Settings.EVMVersion == "" {
		return DefaultFor(v), nil
	}
	if err := Supported(c.Settings.EVMVersion, v); err != nil {
		return "", err
	}
	return c.Settings.EVMVersion, nil
}
