package budget

import "github.com/KirkDiggler/encounter-builder/internal/entities"

// AllyLevel is the level an ally counts as. Level 0 characters count as level 1 and
// unleveled creatures count as level 19.
func AllyLevel(c *entities.Combatant) int {
	switch c.Kind {
	case entities.KindPlayerCharacter:
		if c.Level == 0 {
			return 1
		}
	case entities.KindNonPlayerCreature:
		if c.Level < 0 {
			return entities.UnleveledCreatureLevel
		}
	}
	return c.Level
}

// OpponentLevel is the level an opponent counts as. Only level 0 characters are
// adjusted; creature levels are taken as they are, negative or not.
func OpponentLevel(c *entities.Combatant) int {
	if c.Kind == entities.KindPlayerCharacter && c.Level == 0 {
		return 1
	}
	return c.Level
}

// AverageLevel returns the party's average normalized level rounded half up, or 0 for
// an empty party.
func AverageLevel(allies []*entities.Combatant) int {
	if len(allies) == 0 {
		return 0
	}

	sum := 0
	for _, ally := range allies {
		sum += AllyLevel(ally)
	}

	n := len(allies)
	return floorDiv(2*sum+n, 2*n)
}

// ScaleBudgets adjusts the base table for a party of n allies. An empty party has no
// budgets at all.
func ScaleBudgets(n int) entities.Budgets {
	var budgets entities.Budgets
	if n <= 0 {
		return budgets
	}

	for _, tier := range entities.Tiers() {
		budgets[tier] = BaseBudgets[tier] + (n-PartySize)*AdjustmentSteps[tier]
	}
	return budgets
}

// Thresholds derives the average ally level and the per-tier budgets for the party.
// The allies slice is only read.
func Thresholds(allies []*entities.Combatant) (int, entities.Budgets) {
	return AverageLevel(allies), ScaleBudgets(len(allies))
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
