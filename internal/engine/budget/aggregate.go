package budget

import "github.com/KirkDiggler/encounter-builder/internal/entities"

// OpponentXP sums what every opponent is worth against a party of the given average level
func OpponentXP(opponents []*entities.Combatant, averageAllyLevel int) int {
	total := 0
	for _, opponent := range opponents {
		total += LevelDifferenceXP(OpponentLevel(opponent) - averageAllyLevel)
	}
	return total
}

// PerAllyXP splits the total evenly across the party, rounding down. An empty party
// gets nothing.
func PerAllyXP(totalXP, allyCount int) int {
	if allyCount <= 0 {
		return 0
	}
	return floorDiv(totalXP, allyCount)
}
