package budget

// Admit reports whether an opponent of the given level may join an encounter against a
// party of the given average level. The rule is the same for characters and creatures.
func Admit(opponentLevel, averageAllyLevel int) bool {
	diff := opponentLevel - averageAllyLevel
	return diff >= MinLevelDifference && diff <= MaxLevelDifference
}
