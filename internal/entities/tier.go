package entities

// Tier is an encounter difficulty label. Tiers are ordered from least to most severe.
type Tier int

const (
	TierTrivial Tier = iota
	TierLow
	TierModerate
	TierSevere
	TierExtreme
)

// TierCount is the number of difficulty tiers
const TierCount = 5

var tierNames = [TierCount]string{"trivial", "low", "moderate", "severe", "extreme"}

// Tiers returns every tier in declaration order
func Tiers() []Tier {
	return []Tier{TierTrivial, TierLow, TierModerate, TierSevere, TierExtreme}
}

// String returns the tier name
func (t Tier) String() string {
	if !t.IsValid() {
		return "unknown"
	}
	return tierNames[t]
}

// IsValid reports whether t is one of the five tiers
func (t Tier) IsValid() bool {
	return t >= TierTrivial && t <= TierExtreme
}

// Budgets holds one XP value per tier, indexed by Tier
type Budgets [TierCount]int

// For returns the budget of a single tier
func (b Budgets) For(t Tier) int {
	if !t.IsValid() {
		return 0
	}
	return b[t]
}
