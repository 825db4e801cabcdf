package teambuilder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/volleyverse/fantasy-volley/external/rosterapi"
	"github.com/volleyverse/fantasy-volley/internal/domain/lineup"
	"github.com/volleyverse/fantasy-volley/internal/domain/player"
	"github.com/volleyverse/fantasy-volley/internal/platform/logging"
)

type fakeClient struct {
	fetched    rosterapi.Lineup
	fetchErr   error
	saveErr    error
	saveHook   func()
	saveCalls  int
	fetchCalls int
	savedIDs   map[lineup.Slot]string
}

func (c *fakeClient) FetchLineup(_ context.Context, _ string) (rosterapi.Lineup, error) {
	c.fetchCalls++
	if c.fetchErr != nil {
		return rosterapi.Lineup{}, c.fetchErr
	}
	return c.fetched, nil
}

func (c *fakeClient) SaveLineup(_ context.Context, _ string, playerIDs map[lineup.Slot]string) (rosterapi.SaveSummary, error) {
	c.saveCalls++
	c.savedIDs = playerIDs
	if c.saveHook != nil {
		c.saveHook()
	}
	if c.saveErr != nil {
		return rosterapi.SaveSummary{}, c.saveErr
	}
	used := 0
	return rosterapi.SaveSummary{Message: "Lineup saved successfully", CreditsUsed: used, Remaining: lineup.BudgetCap - used}, nil
}

func testPlayer(id string, position player.Position, cost int) *player.Player {
	return &player.Player{
		ID:         id,
		Name:       "Player " + id,
		Position:   position,
		TeamName:   "Phoenix Fire",
		CreditCost: cost,
	}
}

func fillSession(t *testing.T, s *Session, costs [6]int) {
	t.Helper()

	slots := lineup.Slots()
	positions := []player.Position{
		player.PositionSetter,
		player.PositionOutsideHitter,
		player.PositionOppositeHitter,
		player.PositionMiddleBlocker,
		player.PositionLibero,
		player.PositionDefensiveSpecialist,
	}
	for i, slot := range slots {
		item := testPlayer(fmt.Sprintf("p%d", i+1), positions[i], costs[i])
		if err := s.AssignPlayer(slot, item); err != nil {
			t.Fatalf("assign %s: %v", slot, err)
		}
	}
}

func TestSession_SaveGateBlocksNetworkWhenIncomplete(t *testing.T) {
	client := &fakeClient{}
	session := NewSession(client, "tok-1", logging.NewNop())

	if err := session.AssignPlayer(lineup.SlotSetter, testPlayer("p1", player.PositionSetter, 18)); err != nil {
		t.Fatalf("assign setter: %v", err)
	}

	_, err := session.Save(context.Background())
	if err == nil {
		t.Fatalf("expected save gate error")
	}
	if client.saveCalls != 0 {
		t.Fatalf("expected no network call, got %d", client.saveCalls)
	}
}

func TestSession_SaveGateBlocksNetworkWhenOverBudget(t *testing.T) {
	client := &fakeClient{}
	session := NewSession(client, "tok-1", logging.NewNop())
	fillSession(t, session, [6]int{20, 20, 20, 20, 10, 10})

	// Force an over-budget state through the raw selection; the guarded
	// AssignPlayer path would have rejected the swap.
	if err := session.Selection().Assign(lineup.SlotDefensiveSpecialist, testPlayer("p7", player.PositionDefensiveSpecialist, 30)); err != nil {
		t.Fatalf("assign replacement: %v", err)
	}
	if got := session.Selection().Remaining(); got != -20 {
		t.Fatalf("expected remaining -20, got %d", got)
	}

	_, err := session.Save(context.Background())
	if !errors.Is(err, lineup.ErrOverBudget) {
		t.Fatalf("expected over budget error, got %v", err)
	}
	if !strings.Contains(err.Error(), "over budget by 20") {
		t.Fatalf("expected overshoot in message, got %q", err.Error())
	}
	if client.saveCalls != 0 {
		t.Fatalf("expected no network call, got %d", client.saveCalls)
	}
}

func TestSession_SaveSendsSixIDs(t *testing.T) {
	client := &fakeClient{}
	session := NewSession(client, "tok-1", logging.NewNop())
	fillSession(t, session, [6]int{20, 20, 20, 20, 10, 10})

	summary, err := session.Save(context.Background())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if summary.Message != "Lineup saved successfully" {
		t.Fatalf("unexpected message %q", summary.Message)
	}
	if len(client.savedIDs) != 6 {
		t.Fatalf("expected six ids on the wire, got %d", len(client.savedIDs))
	}
	if client.savedIDs[lineup.SlotSetter] != "p1" {
		t.Fatalf("unexpected setter id %q", client.savedIDs[lineup.SlotSetter])
	}
	if session.Saving() {
		t.Fatalf("saving flag still set after save")
	}
}

func TestSession_SavingFlagSetWhileSaveInFlight(t *testing.T) {
	client := &fakeClient{}
	session := NewSession(client, "tok-1", logging.NewNop())
	fillSession(t, session, [6]int{20, 20, 20, 20, 10, 10})

	var inFlight bool
	client.saveHook = func() { inFlight = session.Saving() }

	if _, err := session.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !inFlight {
		t.Fatal("saving flag not set while the save call was in flight")
	}
	if session.Saving() {
		t.Fatal("saving flag still set after save")
	}
}

func TestSession_SaveSurfacesServerDetail(t *testing.T) {
	client := &fakeClient{saveErr: &rosterapi.StatusError{StatusCode: 400, Detail: "Budget exceeded. Total: 110/100"}}
	session := NewSession(client, "tok-1", logging.NewNop())
	fillSession(t, session, [6]int{20, 20, 20, 20, 10, 10})

	_, err := session.Save(context.Background())
	if err == nil || err.Error() != "Budget exceeded. Total: 110/100" {
		t.Fatalf("expected verbatim server detail, got %v", err)
	}
}

func TestSession_SaveWithoutTokenFailsFast(t *testing.T) {
	client := &fakeClient{}
	session := NewSession(client, "", logging.NewNop())
	fillSession(t, session, [6]int{20, 20, 20, 20, 10, 10})

	if _, err := session.Save(context.Background()); err == nil {
		t.Fatalf("expected error without token")
	}
	if client.saveCalls != 0 {
		t.Fatalf("expected no network call, got %d", client.saveCalls)
	}
}

func TestSession_LoadReplacesSelection(t *testing.T) {
	setter := testPlayer("srv-1", player.PositionSetter, 18)
	client := &fakeClient{fetched: rosterapi.Lineup{
		Players:     map[lineup.Slot]*player.Player{lineup.SlotSetter: setter},
		CreditsUsed: 18,
		Remaining:   82,
	}}
	session := NewSession(client, "tok-1", logging.NewNop())

	if err := session.AssignPlayer(lineup.SlotLibero, testPlayer("local-1", player.PositionLibero, 9)); err != nil {
		t.Fatalf("assign libero: %v", err)
	}

	session.Load(context.Background())

	if got := session.Selection().Player(lineup.SlotSetter); got == nil || got.ID != "srv-1" {
		t.Fatalf("expected hydrated setter, got %+v", got)
	}
	if got := session.Selection().Player(lineup.SlotLibero); got != nil {
		t.Fatalf("expected local libero to be replaced, got %+v", got)
	}
	if got := session.Selection().CreditsUsed(); got != 18 {
		t.Fatalf("expected credits recomputed to 18, got %d", got)
	}
}

func TestSession_LoadFailureKeepsLocalSelection(t *testing.T) {
	client := &fakeClient{fetchErr: fmt.Errorf("backend down")}
	session := NewSession(client, "tok-1", logging.NewNop())

	if err := session.AssignPlayer(lineup.SlotSetter, testPlayer("local-1", player.PositionSetter, 12)); err != nil {
		t.Fatalf("assign setter: %v", err)
	}

	session.Load(context.Background())

	if got := session.Selection().Player(lineup.SlotSetter); got == nil || got.ID != "local-1" {
		t.Fatalf("expected local selection kept, got %+v", got)
	}
}

func TestSession_LoadWithoutTokenIsNoop(t *testing.T) {
	client := &fakeClient{}
	session := NewSession(client, "", logging.NewNop())

	session.Load(context.Background())

	if client.fetchCalls != 0 {
		t.Fatalf("expected no fetch without token, got %d", client.fetchCalls)
	}
}

func TestSession_AssignPlayerRejectsOverBudget(t *testing.T) {
	client := &fakeClient{}
	session := NewSession(client, "tok-1", logging.NewNop())
	fillSession(t, session, [6]int{20, 20, 20, 20, 10, 10})

	err := session.AssignPlayer(lineup.SlotDefensiveSpecialist, testPlayer("p7", player.PositionDefensiveSpecialist, 30))
	if !errors.Is(err, lineup.ErrOverBudget) {
		t.Fatalf("expected over budget rejection, got %v", err)
	}
	if got := session.Selection().Player(lineup.SlotDefensiveSpecialist); got == nil || got.ID != "p6" {
		t.Fatalf("expected original occupant kept, got %+v", got)
	}
	if got := session.Selection().CreditsUsed(); got != 100 {
		t.Fatalf("expected credits unchanged at 100, got %d", got)
	}
}
