package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Kind tags what sort of record a combatant references
type Kind string

const (
	// KindPlayerCharacter is a player-controlled character. It may appear at most once
	// across both rosters.
	KindPlayerCharacter Kind = "player-character"

	// KindNonPlayerCreature is a monster or NPC statblock. The same statblock may be
	// fielded any number of times.
	KindNonPlayerCreature Kind = "non-player-creature"
)

// IsValid reports whether the kind is one of the known kinds
func (k Kind) IsValid() bool {
	return k == KindPlayerCharacter || k == KindNonPlayerCreature
}

// UnleveledCreatureLevel is the level a creature with a negative (unleveled/epic)
// level counts as when it fights alongside the party.
const UnleveledCreatureLevel = 19

// Combatant references a character or creature record
type Combatant struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Kind          Kind   `json:"kind"`
	Level         int    `json:"level"`
	CollectionTag string `json:"collection_tag,omitempty"` // Set when imported from a compendium
}

// GetID returns the combatant identifier
func (c *Combatant) GetID() string {
	return c.ID
}

// GetType returns the combatant kind
func (c *Combatant) GetType() string {
	return string(c.Kind)
}

// IsPlayerCharacter reports whether the combatant is a player character
func (c *Combatant) IsPlayerCharacter() bool {
	return c.Kind == KindPlayerCharacter
}

// Clone returns a copy that shares nothing with the receiver
func (c *Combatant) Clone() *Combatant {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

var _ core.Entity = (*Combatant)(nil)
