package spawn

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zeusync/spawnkit/internal/core/systems/physics"
)

// Table describes one spawn wave: what can spawn, at what cost, and where.
type Table struct {
	Name            string         `json:"name" yaml:"name"`
	Seed            string         `json:"seed,omitempty" yaml:"seed,omitempty"`
	Budget          float64        `json:"budget" yaml:"budget"`
	MaxRoll         int            `json:"max_roll,omitempty" yaml:"max_roll,omitempty"`
	NoDuplicate     bool           `json:"no_duplicate,omitempty" yaml:"no_duplicate,omitempty"`
	ClusterDistance float64        `json:"cluster_distance,omitempty" yaml:"cluster_distance,omitempty"`
	Entries         []Entry        `json:"entries" yaml:"entries"`
	SpawnPoints     []physics.Vec3 `json:"spawn_points,omitempty" yaml:"spawn_points,omitempty"`
}

// Entry is one spawnable kind. ID is assigned on load and keeps entries that
// share a name distinct.
type Entry struct {
	ID     uuid.UUID `json:"-" yaml:"-"`
	Name   string    `json:"name" yaml:"name"`
	Cost   float64   `json:"cost" yaml:"cost"`
	Weight float64   `json:"weight" yaml:"weight"`
}

// SeedName is the name the table's random source is derived from.
func (t *Table) SeedName() string {
	if t.Seed != "" {
		return t.Seed
	}
	return t.Name
}

// AssignIDs gives every entry without an ID a stable ID derived from the
// table name and the entry position.
func (t *Table) AssignIDs() {
	for i := range t.Entries {
		if t.Entries[i].ID != uuid.Nil {
			continue
		}
		key := fmt.Sprintf("%s/%d/%s", t.Name, i, t.Entries[i].Name)
		t.Entries[i].ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
	}
}

// Validate checks the table for values the director cannot work with.
func (t *Table) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTable)
	}
	if t.MaxRoll < 0 {
		return fmt.Errorf("%w: max_roll must not be negative", ErrInvalidTable)
	}
	if t.ClusterDistance < 0 {
		return fmt.Errorf("%w: cluster_distance must not be negative", ErrInvalidTable)
	}

	for i := range t.Entries {
		if err := t.Entries[i].Validate(); err != nil {
			return fmt.Errorf("%w: entry %d: %w", ErrInvalidTable, i, err)
		}
	}

	return nil
}

// Validate validates the entry configuration
func (e *Entry) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("entry name is required")
	}
	if e.Weight < 0 {
		return fmt.Errorf("entry %q weight must not be negative", e.Name)
	}
	return nil
}
