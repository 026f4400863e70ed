// Package roster holds the ally and opponent rosters of one encounter and keeps their
// snapshot current.
package roster

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/encounter-builder/internal/engine/budget"
	"github.com/KirkDiggler/encounter-builder/internal/entities"
)

// Store owns both rosters and the snapshot derived from them. Every mutation rebuilds
// the snapshot before returning.
//
// A Store is not safe for concurrent use; callers that share one must serialize access.
type Store struct {
	allies    []*entities.Combatant
	opponents []*entities.Combatant
	snapshot  entities.Snapshot
}

// New returns a store with empty rosters and a computed empty snapshot
func New() *Store {
	s := &Store{}
	s.recompute()
	return s
}

// AddAlly puts a combatant on the ally side. A player character already fighting as an
// opponent switches sides; one already among the allies is not added twice. Creatures
// are always added.
func (s *Store) AddAlly(c *entities.Combatant) {
	defer s.recompute()

	if !isPlayerCharacter(c) {
		s.allies = append(s.allies, c.Clone())
		return
	}

	s.opponents, _ = removeFirst(s.opponents, sameEntity(c))
	if indexOf(s.allies, sameEntity(c)) < 0 {
		s.allies = append(s.allies, c.Clone())
	}
}

// AddOpponent puts a combatant on the opponent side if its level is within reach of the
// party's average level. It reports whether the combatant was admitted. A rejected
// combatant leaves both rosters untouched.
func (s *Store) AddOpponent(c *entities.Combatant) bool {
	defer s.recompute()

	if isPlayerCharacter(c) && indexOf(s.opponents, sameEntity(c)) >= 0 {
		return true
	}

	if !budget.Admit(c.Level, s.snapshot.AverageAllyLevel) {
		return false
	}

	if isPlayerCharacter(c) {
		s.allies, _ = removeFirst(s.allies, sameEntity(c))
	}
	s.opponents = append(s.opponents, c.Clone())

	return true
}

// Remove drops the first entry with the given identifier from one side
func (s *Store) Remove(side entities.Side, id string) bool {
	return s.removeWhere(side, matchID(id))
}

// RemoveByName drops the first entry with the given display name from one side
func (s *Store) RemoveByName(side entities.Side, name string) bool {
	return s.removeWhere(side, func(c *entities.Combatant) bool { return c.Name == name })
}

// Clear empties both rosters
func (s *Store) Clear() {
	s.allies = nil
	s.opponents = nil
	s.recompute()
}

// Snapshot returns a copy of the current snapshot
func (s *Store) Snapshot() *entities.Snapshot {
	return s.snapshot.Clone()
}

func (s *Store) removeWhere(side entities.Side, match func(*entities.Combatant) bool) bool {
	defer s.recompute()

	var removed bool
	switch side {
	case entities.SideAllies:
		s.allies, removed = removeFirst(s.allies, match)
	case entities.SideOpponents:
		s.opponents, removed = removeFirst(s.opponents, match)
	}
	return removed
}

// recompute rebuilds the snapshot from scratch
func (s *Store) recompute() {
	result := budget.Compute(s.allies, s.opponents)

	s.snapshot = entities.Snapshot{
		Allies:           s.allies,
		Opponents:        s.opponents,
		Budgets:          result.Budgets,
		AverageAllyLevel: result.AverageAllyLevel,
		TotalXP:          result.TotalXP,
		PerAllyXP:        result.PerAllyXP,
		Difficulty:       result.Difficulty,
	}
}

// isPlayerCharacter reports whether the entity is tracked by identity across both sides
func isPlayerCharacter(e core.Entity) bool {
	return e.GetType() == string(entities.KindPlayerCharacter)
}

// sameEntity matches roster entries with the same type and identifier as e. A creature
// that happens to share an identifier with a character is a different entity.
func sameEntity(e core.Entity) func(*entities.Combatant) bool {
	return func(c *entities.Combatant) bool {
		return c.GetType() == e.GetType() && c.GetID() == e.GetID()
	}
}

func matchID(id string) func(*entities.Combatant) bool {
	return func(c *entities.Combatant) bool { return c.GetID() == id }
}

func indexOf(list []*entities.Combatant, match func(*entities.Combatant) bool) int {
	for i, c := range list {
		if match(c) {
			return i
		}
	}
	return -1
}

func removeFirst(list []*entities.Combatant, match func(*entities.Combatant) bool) ([]*entities.Combatant, bool) {
	i := indexOf(list, match)
	if i < 0 {
		return list, false
	}
	return append(list[:i:i], list[i+1:]...), true
}
