package install

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fbkclanna/workloadq/internal/band"
	"github.com/fbkclanna/workloadq/internal/config"
	"github.com/fbkclanna/workloadq/internal/pins"
	"github.com/fbkclanna/workloadq/internal/resolver"
)

// ConfigFileName is the tool config filename looked up next to the SDK root.
const ConfigFileName = "workloadq.yaml"

// PinsFileName is the pins filename looked up next to the config file.
const PinsFileName = "workloadq.pins.yaml"

// Context holds the resolved SDK paths and loaded tool configuration.
type Context struct {
	SdkRoot    string
	SdkVersion string
	Band       band.FeatureBand
	UserHome   string
	ConfigPath string
	PinsPath   string
	Config     *config.File // may be nil
	Pins       *pins.File   // may be nil
}

// Load resolves SDK paths and loads the tool config and pins files if
// present. configPath overrides the default <sdkRoot>/workloadq.yaml; the
// pins file is always looked up next to the effective config path.
func Load(sdkRoot, sdkVersion, userHome, configPath string) (*Context, error) {
	if sdkRoot == "" {
		return nil, fmt.Errorf("sdk root is required")
	}
	sdkRoot, err := filepath.Abs(sdkRoot)
	if err != nil {
		return nil, fmt.Errorf("resolving sdk root: %w", err)
	}
	b, err := band.Parse(sdkVersion)
	if err != nil {
		return nil, err
	}

	if configPath == "" {
		configPath = filepath.Join(sdkRoot, ConfigFileName)
	}
	ctx := &Context{
		SdkRoot:    sdkRoot,
		SdkVersion: sdkVersion,
		Band:       b,
		UserHome:   userHome,
		ConfigPath: configPath,
		PinsPath:   filepath.Join(filepath.Dir(configPath), PinsFileName),
	}

	if _, statErr := os.Stat(ctx.ConfigPath); statErr == nil {
		cf, err := config.Load(ctx.ConfigPath)
		if err != nil {
			return nil, err
		}
		ctx.Config = cf
	}
	if _, statErr := os.Stat(ctx.PinsPath); statErr == nil {
		pf, err := pins.Load(ctx.PinsPath)
		if err != nil {
			return nil, err
		}
		ctx.Pins = pf
	}

	return ctx, nil
}

// Specifiers converts the pins file into resolver specifiers in stable
// (alphabetical) order, then appends flag-supplied pins so they win on
// conflicting ids.
func (c *Context) Specifiers(flagPins []resolver.Specifier) ([]resolver.Specifier, error) {
	var out []resolver.Specifier

	if c.Pins != nil {
		ids := make([]string, 0, len(c.Pins.Pins))
		for id := range c.Pins.Pins {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			p := c.Pins.Pins[id]
			spec := resolver.Specifier{ID: id, Version: p.Version}
			if p.Band != "" {
				b, err := band.Parse(p.Band)
				if err != nil {
					return nil, fmt.Errorf("pins: %s: %w", id, err)
				}
				spec.Band = b
			}
			out = append(out, spec)
		}
	}

	return append(out, flagPins...), nil
}

// ResolverOptions assembles resolver options from the context and the given
// flag-level inputs.
func (c *Context) ResolverOptions(flagPins []resolver.Specifier) (resolver.Options, error) {
	specs, err := c.Specifiers(flagPins)
	if err != nil {
		return resolver.Options{}, err
	}

	opts := resolver.Options{
		SdkRoot:    c.SdkRoot,
		SdkVersion: c.SdkVersion,
		UserHome:   c.UserHome,
		Pins:       specs,
	}
	if c.Config != nil {
		opts.ExtraRoots = c.Config.Roots
		opts.IgnoreDefaultRoots = c.Config.IgnoreDefaultRoots
		opts.Outdated = c.Config.Outdated
	}
	return opts, nil
}
