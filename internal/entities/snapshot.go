package entities

// Snapshot is the derived state of an encounter, rebuilt after every roster mutation
type Snapshot struct {
	Allies           []*Combatant
	Opponents        []*Combatant
	Budgets          Budgets
	AverageAllyLevel int
	TotalXP          int
	PerAllyXP        int
	Difficulty       Tier
}

// Clone returns a deep copy so callers can never reach the store's rosters
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Allies = cloneCombatants(s.Allies)
	clone.Opponents = cloneCombatants(s.Opponents)
	return &clone
}

func cloneCombatants(in []*Combatant) []*Combatant {
	out := make([]*Combatant, 0, len(in))
	for _, c := range in {
		out = append(out, c.Clone())
	}
	return out
}
