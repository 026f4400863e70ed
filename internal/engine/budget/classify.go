package budget

import "github.com/KirkDiggler/encounter-builder/internal/entities"

// Classify returns the most severe tier whose budget the total XP meets. Tiers are
// scanned in ascending order and the last one met wins, so the result is trivial when
// nothing is met.
func Classify(totalXP int, budgets entities.Budgets) entities.Tier {
	result := entities.TierTrivial
	for _, tier := range entities.Tiers() {
		if budgets[tier] <= totalXP {
			result = tier
		}
	}
	return result
}
