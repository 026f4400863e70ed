package budget

import "github.com/KirkDiggler/encounter-builder/internal/entities"

// Result is the numeric part of an encounter snapshot
type Result struct {
	AverageAllyLevel int
	Budgets          entities.Budgets
	TotalXP          int
	PerAllyXP        int
	Difficulty       entities.Tier
}

// Compute runs the whole pipeline: thresholds, opponent XP, then classification.
// An empty party degrades every number to zero and the difficulty to trivial.
func Compute(allies, opponents []*entities.Combatant) Result {
	if len(allies) == 0 {
		return Result{Difficulty: entities.TierTrivial}
	}

	average, budgets := Thresholds(allies)
	total := OpponentXP(opponents, average)

	return Result{
		AverageAllyLevel: average,
		Budgets:          budgets,
		TotalXP:          total,
		PerAllyXP:        PerAllyXP(total, len(allies)),
		Difficulty:       Classify(total, budgets),
	}
}
