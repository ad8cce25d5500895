package inventory

import (
	"fmt"
	"slices"
)

// Registry holds loaded weapon definitions indexed by ID.
type Registry struct {
	weapons map[string]*WeaponDef
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{weapons: make(map[string]*WeaponDef)}
}

// LoadRegistry loads every weapon in dir into a new Registry.
//
// Postcondition: returns an error if loading fails or two files share an ID.
func LoadRegistry(dir string) (*Registry, error) {
	weapons, err := LoadWeapons(dir)
	if err != nil {
		return nil, err
	}
	r := NewRegistry()
	for _, w := range weapons {
		if err := r.RegisterWeapon(w); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// RegisterWeapon adds w to the registry.
//
// Precondition: w must not be nil.
// Postcondition: Weapon(w.ID) returns w; returns error if w.ID already registered.
func (r *Registry) RegisterWeapon(w *WeaponDef) error {
	if _, exists := r.weapons[w.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterWeapon: weapon ID %q already registered", w.ID)
	}
	r.weapons[w.ID] = w
	return nil
}

// Weapon returns the WeaponDef for the given id, or nil if not found.
func (r *Registry) Weapon(id string) *WeaponDef {
	return r.weapons[id]
}

// WeaponIDs returns every registered ID in ascending order.
func (r *Registry) WeaponIDs() []string {
	ids := make([]string, 0, len(r.weapons))
	for id := range r.weapons {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
