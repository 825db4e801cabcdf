package lineup

import "time"

// Slot identifies one of the six fixed lineup positions.
type Slot string

const (
	SlotSetter              Slot = "setter"
	SlotOutsideHitter       Slot = "outsideHitter"
	SlotOppositeHitter      Slot = "oppositeHitter"
	SlotMiddleBlocker       Slot = "middleBlocker"
	SlotLibero              Slot = "libero"
	SlotDefensiveSpecialist Slot = "defensiveSpecialist"
)

// BudgetCap is the fixed credit budget a lineup may spend.
const BudgetCap = 100

// Slots returns the six slot keys in display order.
func Slots() []Slot {
	return []Slot{
		SlotSetter,
		SlotOutsideHitter,
		SlotOppositeHitter,
		SlotMiddleBlocker,
		SlotLibero,
		SlotDefensiveSpecialist,
	}
}

var allSlots = map[Slot]struct{}{
	SlotSetter:              {},
	SlotOutsideHitter:       {},
	SlotOppositeHitter:      {},
	SlotMiddleBlocker:       {},
	SlotLibero:              {},
	SlotDefensiveSpecialist: {},
}

// ValidSlot reports whether key is one of the six slot keys.
func ValidSlot(key Slot) bool {
	_, ok := allSlots[key]
	return ok
}

// Lineup stores one user's saved lineup by player identity. Absent slots
// are omitted from PlayerIDs. Remaining is always BudgetCap minus
// CreditsUsed; it is persisted for the wire format but never trusted over
// a fresh recomputation.
type Lineup struct {
	UserID      string
	PlayerIDs   map[Slot]string
	CreditsUsed int
	Remaining   int
	UpdatedAt   time.Time
}
