// Package teambuilder holds the client-side lineup building state. Each
// signed-in account gets its own Session; there is no shared global
// selection.
package teambuilder

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/volleyverse/fantasy-volley/external/rosterapi"
	"github.com/volleyverse/fantasy-volley/internal/domain/lineup"
	"github.com/volleyverse/fantasy-volley/internal/domain/player"
	"github.com/volleyverse/fantasy-volley/internal/platform/logging"
)

// Client is the backend surface a session needs. *rosterapi.Client
// satisfies it.
type Client interface {
	FetchLineup(ctx context.Context, token string) (rosterapi.Lineup, error)
	SaveLineup(ctx context.Context, token string, playerIDs map[lineup.Slot]string) (rosterapi.SaveSummary, error)
}

// Session is one user's lineup building state, scoped to their bearer
// token. It is not safe for concurrent mutation; the saving flag is the
// only re-entrancy signal callers get.
type Session struct {
	client    Client
	token     string
	logger    *logging.Logger
	selection *lineup.Selection
	saving    atomic.Bool
}

func NewSession(client Client, token string, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.Default()
	}

	return &Session{
		client:    client,
		token:     token,
		logger:    logger,
		selection: lineup.NewSelection(),
	}
}

// Selection exposes the live allocator state for assignment and preview.
func (s *Session) Selection() *lineup.Selection {
	return s.selection
}

// Saving reports whether a save request is in flight.
func (s *Session) Saving() bool {
	return s.saving.Load()
}

// Load replaces the whole selection with the saved lineup. Hydration is
// best effort: a failed or unauthenticated fetch leaves the current
// selection untouched and only logs.
func (s *Session) Load(ctx context.Context) {
	if s.token == "" {
		return
	}

	fetched, err := s.client.FetchLineup(ctx, s.token)
	if err != nil {
		s.logger.WarnContext(ctx, "lineup hydration failed, keeping local selection", "error", err)
		return
	}

	s.selection.Replace(fetched.Players)
}

// Save validates locally first and never touches the network on a gate
// failure. On success the server's recomputed totals win over local ones.
func (s *Session) Save(ctx context.Context) (rosterapi.SaveSummary, error) {
	if s.token == "" {
		return rosterapi.SaveSummary{}, fmt.Errorf("not signed in")
	}

	if err := s.selection.ValidateForSave(); err != nil {
		return rosterapi.SaveSummary{}, err
	}

	s.saving.Store(true)
	defer s.saving.Store(false)

	summary, err := s.client.SaveLineup(ctx, s.token, s.selection.PlayerIDs())
	if err != nil {
		return rosterapi.SaveSummary{}, err
	}

	return summary, nil
}

// AssignPlayer previews the assignment against the budget and applies it
// only when it fits.
func (s *Session) AssignPlayer(slot lineup.Slot, item *player.Player) error {
	if item == nil {
		return s.selection.Assign(slot, nil)
	}
	if err := s.selection.PreviewAssign(slot, item); err != nil {
		return err
	}
	return s.selection.Assign(slot, item)
}
