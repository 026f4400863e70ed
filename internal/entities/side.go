package entities

// Side names one of the two rosters of an encounter
type Side string

const (
	SideAllies    Side = "allies"
	SideOpponents Side = "opponents"
)

// IsValid reports whether the side is allies or opponents
func (s Side) IsValid() bool {
	return s == SideAllies || s == SideOpponents
}
