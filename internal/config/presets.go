package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]*Config{
	"classic": {
		Theme: "cyberpunk", TimeScale: 1.0, LogLevel: DefaultLogLevel,
	},
	"quick": {
		Theme: "minimal", TimeScale: 0.25, LogLevel: DefaultLogLevel,
	},
	"dramatic": {
		Theme: "sunset", TimeScale: 2.0, LogLevel: DefaultLogLevel,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// MustPreset is GetPreset with an error for unknown names.
func MustPreset(name string) (*Config, error) {
	cfg := GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
