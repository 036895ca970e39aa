package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry maps one organizational unit to its valid sub-units.
type Entry struct {
	Unit     string   `json:"unit"`
	SubUnits []string `json:"subUnits"`
}

// Catalog is the static unit reference data. It is loaded once at
// startup and never mutated afterwards.
type Catalog struct {
	units map[string]map[string]struct{}
}

// New builds a catalog from in-memory entries. Used directly by tests;
// production wiring goes through Load.
func New(entries []Entry) *Catalog {
	units := make(map[string]map[string]struct{}, len(entries))
	for _, entry := range entries {
		subUnits := make(map[string]struct{}, len(entry.SubUnits))
		for _, sub := range entry.SubUnits {
			subUnits[sub] = struct{}{}
		}
		units[entry.Unit] = subUnits
	}
	return &Catalog{units: units}
}

// Load reads the unit catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read unit catalog: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse unit catalog: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("unit catalog %s is empty", path)
	}
	return New(entries), nil
}

// IsValid reports whether unit is known and, when subUnit is non-empty,
// whether it is listed under that unit.
func (c *Catalog) IsValid(unit, subUnit string) bool {
	subUnits, ok := c.units[unit]
	if !ok {
		return false
	}
	if subUnit == "" {
		return true
	}
	_, ok = subUnits[subUnit]
	return ok
}

// Units returns the known unit names.
func (c *Catalog) Units() []string {
	names := make([]string, 0, len(c.units))
	for name := range c.units {
		names = append(names, name)
	}
	return names
}
