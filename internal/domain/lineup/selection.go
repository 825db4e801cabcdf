package lineup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/volleyverse/fantasy-volley/internal/domain/player"
)

var (
	ErrIncomplete  = errors.New("all six positions must be filled")
	ErrOverBudget  = errors.New("over budget")
	ErrUnknownSlot = errors.New("unknown lineup slot")
)

// Selection is the working six-slot state of a team-builder session.
// Assigning never rejects: a slot's occupant is replaced and the credit
// totals are recomputed in the same call, so Remaining may go negative.
// Budget compliance is checked by PreviewAssign before a pick and by
// ValidateForSave before persisting.
//
// A Selection is not safe for concurrent use; it belongs to a single
// session on a single goroutine.
type Selection struct {
	slots       map[Slot]*player.Player
	creditsUsed int
}

func NewSelection() *Selection {
	return &Selection{slots: make(map[Slot]*player.Player, len(allSlots))}
}

// Assign places p into slot, or clears the slot when p is nil. The only
// failure mode is an unknown slot key; over-budget assignments succeed.
func (s *Selection) Assign(slot Slot, p *player.Player) error {
	if !ValidSlot(slot) {
		return fmt.Errorf("%w: %s", ErrUnknownSlot, slot)
	}

	if p == nil {
		delete(s.slots, slot)
	} else {
		copied := *p
		s.slots[slot] = &copied
	}
	s.recompute()

	return nil
}

// PreviewAssign reports whether placing p into slot would exceed the
// budget, without mutating the selection.
func (s *Selection) PreviewAssign(slot Slot, p *player.Player) error {
	if !ValidSlot(slot) {
		return fmt.Errorf("%w: %s", ErrUnknownSlot, slot)
	}
	if p == nil {
		return nil
	}

	hypothetical := s.creditsUsed - s.slotCost(slot) + p.CreditCost
	if hypothetical > BudgetCap {
		return fmt.Errorf("%w by %d: selecting %s would cost %d of %d credits",
			ErrOverBudget, hypothetical-BudgetCap, p.Name, hypothetical, BudgetCap)
	}

	return nil
}

// Player returns the current occupant of slot, or nil when empty.
func (s *Selection) Player(slot Slot) *player.Player {
	return s.slots[slot]
}

func (s *Selection) CreditsUsed() int {
	return s.creditsUsed
}

func (s *Selection) Remaining() int {
	return BudgetCap - s.creditsUsed
}

// Complete reports whether all six slots are occupied.
func (s *Selection) Complete() bool {
	return len(s.slots) == len(allSlots)
}

// ValidateForSave is the save gate: every slot occupied and the total
// within budget. Both failures are detected without touching the network.
func (s *Selection) ValidateForSave() error {
	if !s.Complete() {
		missing := make([]string, 0, len(allSlots))
		for _, slot := range Slots() {
			if s.slots[slot] == nil {
				missing = append(missing, string(slot))
			}
		}
		return fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}

	if remaining := s.Remaining(); remaining < 0 {
		return fmt.Errorf("%w by %d: used %d of %d credits",
			ErrOverBudget, -remaining, s.creditsUsed, BudgetCap)
	}

	return nil
}

// PlayerIDs returns the occupied slots keyed to player identities.
func (s *Selection) PlayerIDs() map[Slot]string {
	out := make(map[Slot]string, len(s.slots))
	for slot, p := range s.slots {
		out[slot] = p.ID
	}
	return out
}

// Replace swaps in an entirely new slot assignment, typically from a
// server-hydrated lineup, and recomputes the credit totals.
func (s *Selection) Replace(players map[Slot]*player.Player) {
	next := make(map[Slot]*player.Player, len(allSlots))
	for slot, p := range players {
		if !ValidSlot(slot) || p == nil {
			continue
		}
		copied := *p
		next[slot] = &copied
	}

	s.slots = next
	s.recompute()
}

func (s *Selection) slotCost(slot Slot) int {
	if p := s.slots[slot]; p != nil {
		return p.CreditCost
	}
	return 0
}

// recompute derives creditsUsed from the six slots alone. Callers mutate
// slots and recompute within the same method, so no partial state is
// observable.
func (s *Selection) recompute() {
	total := 0
	for _, p := range s.slots {
		if p != nil {
			total += p.CreditCost
		}
	}
	s.creditsUsed = total
}
