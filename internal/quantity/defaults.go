package quantity

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type defaultsFile struct {
	Systems map[string]map[string]*string `yaml:"systems"`
}

var (
	defaultsOnce sync.Once
	defaults     defaultsFile
	defaultsErr  error
)

func loadDefaults() (defaultsFile, error) {
	defaultsOnce.Do(func() {
		if err := yaml.Unmarshal(defaultsYAML, &defaults); err != nil {
			defaultsErr = fmt.Errorf("parse quantity defaults: %w", err)
		}
	})
	return defaults, defaultsErr
}

// DefaultTable returns the quantity table for a game system. Systems without
// a known table get every known type mapped to nil.
func DefaultTable(system string, knownTypes []string) (PathTable, error) {
	d, err := loadDefaults()
	if err != nil {
		return nil, err
	}
	if table, ok := d.Systems[system]; ok {
		return PathTable(table).Clone(), nil
	}
	out := make(PathTable, len(knownTypes))
	for _, t := range knownTypes {
		out[t] = nil
	}
	return out, nil
}

// KnownSystems lists systems with a built-in table.
func KnownSystems() []string {
	d, err := loadDefaults()
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(d.Systems))
	for s := range d.Systems {
		out = append(out, s)
	}
	return out
}
