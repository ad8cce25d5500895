// Package inventory provides the weapon catalog whose pellet counts drive
// damage analysis.
package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WeaponDef defines the static properties of a weapon loaded from YAML.
type WeaponDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Pellets     int    `yaml:"pellets"`
	Description string `yaml:"description"`
}

// IsSpread reports whether one shot of the weapon fires more than one pellet.
func (w *WeaponDef) IsSpread() bool {
	return w.Pellets > 1
}

// Validate checks that the WeaponDef satisfies its invariants.
//
// Precondition: w is non-nil.
// Postcondition: returns nil iff ID and Name are set and Pellets >= 1.
func (w *WeaponDef) Validate() error {
	var errs []error
	if w.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if w.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if w.Pellets < 1 {
		errs = append(errs, fmt.Errorf("Pellets must be >= 1, got %d", w.Pellets))
	}
	if len(errs) > 0 {
		return fmt.Errorf("weapon validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// LoadWeapons reads all *.yaml files from dir, parses each as a WeaponDef,
// validates it, and returns the collected slice in directory order.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid WeaponDefs or the first encountered error.
func LoadWeapons(dir string) ([]*WeaponDef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadWeapons: cannot read directory %q: %w", dir, err)
	}

	var weapons []*WeaponDef
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadWeapons: cannot read file %q: %w", path, err)
		}
		var w WeaponDef
		if err := yaml.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("LoadWeapons: cannot parse file %q: %w", path, err)
		}
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("LoadWeapons: invalid weapon in %q: %w", path, err)
		}
		weapons = append(weapons, &w)
	}
	return weapons, nil
}
