// Package budget computes encounter XP budgets and difficulty from a pair of rosters.
//
// Everything here is a pure function over roster contents. Nothing retains state.
package budget

import "github.com/KirkDiggler/encounter-builder/internal/entities"

// PartySize is the party size the base budget table is written for
const PartySize = 4

// Level difference bounds, inclusive
const (
	MinLevelDifference = -4
	MaxLevelDifference = 4
)

// BaseBudgets is the per-tier XP budget for a party of four
var BaseBudgets = entities.Budgets{
	entities.TierTrivial:  40,
	entities.TierLow:      60,
	entities.TierModerate: 80,
	entities.TierSevere:   120,
	entities.TierExtreme:  160,
}

// AdjustmentSteps is the per-tier change for each ally above or below four
var AdjustmentSteps = entities.Budgets{
	entities.TierTrivial:  10,
	entities.TierLow:      15,
	entities.TierModerate: 20,
	entities.TierSevere:   30,
	entities.TierExtreme:  40,
}

// levelDifferenceXP is indexed by difference - MinLevelDifference
var levelDifferenceXP = [MaxLevelDifference - MinLevelDifference + 1]int{10, 15, 20, 30, 40, 60, 80, 120, 160}

// LevelDifferenceXP returns the XP a single opponent is worth at the given level
// difference. Differences outside [-4, 4] are worth nothing.
func LevelDifferenceXP(diff int) int {
	if diff < MinLevelDifference || diff > MaxLevelDifference {
		return 0
	}
	return levelDifferenceXP[diff-MinLevelDifference]
}
