package encounter

import (
	"github.com/KirkDiggler/encounter-builder/internal/entities"
)

// CreateSessionInput defines the request for opening a session
type CreateSessionInput struct{}

// CreateSessionOutput defines the response for opening a session
type CreateSessionOutput struct {
	SessionID string
	Snapshot  *entities.Snapshot
}

// GetSnapshotInput defines the request for reading a session's snapshot
type GetSnapshotInput struct {
	SessionID string
}

// GetSnapshotOutput defines the response for reading a session's snapshot
type GetSnapshotOutput struct {
	Snapshot *entities.Snapshot
}

// AddAllyInput defines the request for adding a combatant to the allies
type AddAllyInput struct {
	SessionID     string
	CombatantID   string
	CollectionTag string // Optional; empty means the world catalog
}

// AddAllyOutput defines the response for adding an ally
type AddAllyOutput struct {
	Combatant *entities.Combatant
	Snapshot  *entities.Snapshot
}

// AddOpponentInput defines the request for adding a combatant to the opponents
type AddOpponentInput struct {
	SessionID     string
	CombatantID   string
	CollectionTag string
}

// AddOpponentOutput defines the response for adding an opponent
type AddOpponentOutput struct {
	Combatant *entities.Combatant
	// Admitted is false when the combatant's level is out of reach of the party
	Admitted bool
	Snapshot *entities.Snapshot
}

// DropCombatantInput defines the request for a drag-and-drop onto a roster
type DropCombatantInput struct {
	SessionID string
	Side      entities.Side
	Payload   []byte // Raw JSON transfer data
}

// DropCombatantOutput defines the response for a drop
type DropCombatantOutput struct {
	Combatant *entities.Combatant
	Admitted  bool
	Snapshot  *entities.Snapshot
}

// RemoveCombatantInput defines the request for removing a roster entry.
// CombatantID wins over Name when both are set.
type RemoveCombatantInput struct {
	SessionID   string
	Side        entities.Side
	CombatantID string
	Name        string
}

// RemoveCombatantOutput defines the response for removing a roster entry
type RemoveCombatantOutput struct {
	Removed  bool
	Snapshot *entities.Snapshot
}

// ClearRostersInput defines the request for emptying both rosters
type ClearRostersInput struct {
	SessionID string
}

// ClearRostersOutput defines the response for emptying both rosters
type ClearRostersOutput struct {
	Snapshot *entities.Snapshot
}

// EndSessionInput defines the request for closing a session
type EndSessionInput struct {
	SessionID string
}

// EndSessionOutput defines the response for closing a session
type EndSessionOutput struct{}

// RegisterCombatantInput defines the request for adding a record to the world catalog
type RegisterCombatantInput struct {
	Combatant *entities.Combatant
}

// RegisterCombatantOutput defines the response for registering a combatant
type RegisterCombatantOutput struct {
	Combatant *entities.Combatant
	Created   bool
}

// ListCombatantsInput defines the request for listing the world catalog
type ListCombatantsInput struct {
	Kind entities.Kind // Optional filter
}

// ListCombatantsOutput defines the response for listing the world catalog
type ListCombatantsOutput struct {
	Combatants []*entities.Combatant
}
