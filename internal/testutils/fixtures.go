package testutils

import (
	"github.com/KirkDiggler/encounter-builder/internal/entities"
)

// CreateTestCharacter creates a player character at the given level
func CreateTestCharacter(id string, level int) *entities.Combatant {
	return &entities.Combatant{
		ID:    id,
		Name:  "Character " + id,
		Kind:  entities.KindPlayerCharacter,
		Level: level,
	}
}

// CreateTestCreature creates a non-player creature at the given level
func CreateTestCreature(id string, level int) *entities.Combatant {
	return &entities.Combatant{
		ID:    id,
		Name:  "Creature " + id,
		Kind:  entities.KindNonPlayerCreature,
		Level: level,
	}
}

// CreateTestParty creates a party of player characters sharing one level
func CreateTestParty(level int, ids ...string) []*entities.Combatant {
	party := make([]*entities.Combatant, 0, len(ids))
	for _, id := range ids {
		party = append(party, CreateTestCharacter(id, level))
	}
	return party
}
