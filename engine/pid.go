package engine

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// PID identifies a spawned actor process within one Engine.
type PID struct {
	// ID is a UUIDv7 assigned at spawn time.
	ID string
	// Name is an optional human-readable label, set via SpawnWithName.
	Name string
}

func newPID(name string) *PID {
	return &PID{
		ID:   uuid.Must(uuid.NewV7()).String(),
		Name: name,
	}
}

// String returns the name when present, otherwise the raw ID.
func (p *PID) String() string {
	if p == nil {
		return "PID(nil)"
	}
	if p.Name != "" {
		return fmt.Sprintf("%s (%s)", p.Name, p.ID)
	}
	return p.ID
}
