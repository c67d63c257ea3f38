package matching

// Side names one of the two matchable collections.
type Side int

const (
	SideResource Side = iota + 1
	SideRequirement
)

func (s Side) String() string {
	switch s {
	case SideResource:
		return "resource"
	case SideRequirement:
		return "requirement"
	default:
		return "unknown"
	}
}

// Direction says which kind of entity the source id refers to. Candidates
// always come from the opposite side.
type Direction string

const (
	DirectionResource    Direction = "resource"
	DirectionRequirement Direction = "requirement"
)

func (d Direction) Valid() bool {
	return d == DirectionResource || d == DirectionRequirement
}

func (d Direction) SourceSide() Side {
	if d == DirectionRequirement {
		return SideRequirement
	}
	return SideResource
}

func (d Direction) CandidateSide() Side {
	if d == DirectionRequirement {
		return SideResource
	}
	return SideRequirement
}
