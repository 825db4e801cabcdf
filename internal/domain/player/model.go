package player

import "fmt"

// Position represents volleyball position codes used in roster rules.
type Position string

const (
	PositionSetter              Position = "S"
	PositionOutsideHitter       Position = "OH"
	PositionOppositeHitter      Position = "OPP"
	PositionMiddleBlocker       Position = "MB"
	PositionLibero              Position = "L"
	PositionDefensiveSpecialist Position = "DS"
)

var AllPositions = map[Position]struct{}{
	PositionSetter:              {},
	PositionOutsideHitter:       {},
	PositionOppositeHitter:      {},
	PositionMiddleBlocker:       {},
	PositionLibero:              {},
	PositionDefensiveSpecialist: {},
}

// ValidPosition reports whether code is one of the six position codes.
func ValidPosition(code Position) bool {
	_, ok := AllPositions[code]
	return ok
}

// Stats holds per-set averages accumulated over a player's career.
type Stats struct {
	Matches      int
	Sets         int
	KillsPerSet  float64
	DigsPerSet   float64
	BlocksPerSet float64
	AcesPerSet   float64
}

// Player is a selectable athlete in the roster pool. Records are
// server-assigned and immutable once seeded.
type Player struct {
	ID           string
	Name         string
	JerseyNumber int
	Position     Position
	TeamName     string
	CreditCost   int
	Bio          string
	ImageBase64  string
	Stats        Stats
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if !ValidPosition(p.Position) {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.TeamName == "" {
		return fmt.Errorf("player team name is required")
	}
	if p.CreditCost < 0 {
		return fmt.Errorf("player credit cost cannot be negative")
	}

	return nil
}
