package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/volleyverse/fantasy-volley/internal/domain/lineup"
	qb "github.com/volleyverse/fantasy-volley/internal/platform/querybuilder"
)

// lineupTableModel stores one column per slot; empty slots persist as
// NULL.
type lineupTableModel struct {
	UserID                string         `db:"user_id"`
	SetterID              sql.NullString `db:"setter_id"`
	OutsideHitterID       sql.NullString `db:"outside_hitter_id"`
	OppositeHitterID      sql.NullString `db:"opposite_hitter_id"`
	MiddleBlockerID       sql.NullString `db:"middle_blocker_id"`
	LiberoID              sql.NullString `db:"libero_id"`
	DefensiveSpecialistID sql.NullString `db:"defensive_specialist_id"`
	CreditsUsed           int            `db:"credits_used"`
	CreditsRemaining      int            `db:"credits_remaining"`
	UpdatedAt             time.Time      `db:"updated_at"`
}

var lineupSelectColumns = []string{
	"user_id",
	"setter_id",
	"outside_hitter_id",
	"opposite_hitter_id",
	"middle_blocker_id",
	"libero_id",
	"defensive_specialist_id",
	"credits_used",
	"credits_remaining",
	"updated_at",
}

func (row lineupTableModel) toDomain() lineup.Lineup {
	playerIDs := make(map[lineup.Slot]string, 6)
	assign := func(slot lineup.Slot, value sql.NullString) {
		if value.Valid && value.String != "" {
			playerIDs[slot] = value.String
		}
	}
	assign(lineup.SlotSetter, row.SetterID)
	assign(lineup.SlotOutsideHitter, row.OutsideHitterID)
	assign(lineup.SlotOppositeHitter, row.OppositeHitterID)
	assign(lineup.SlotMiddleBlocker, row.MiddleBlockerID)
	assign(lineup.SlotLibero, row.LiberoID)
	assign(lineup.SlotDefensiveSpecialist, row.DefensiveSpecialistID)

	return lineup.Lineup{
		UserID:      row.UserID,
		PlayerIDs:   playerIDs,
		CreditsUsed: row.CreditsUsed,
		Remaining:   row.CreditsRemaining,
		UpdatedAt:   row.UpdatedAt,
	}
}

func lineupToTableModel(item lineup.Lineup) lineupTableModel {
	slot := func(key lineup.Slot) sql.NullString {
		value, ok := item.PlayerIDs[key]
		return sql.NullString{String: value, Valid: ok && value != ""}
	}

	return lineupTableModel{
		UserID:                item.UserID,
		SetterID:              slot(lineup.SlotSetter),
		OutsideHitterID:       slot(lineup.SlotOutsideHitter),
		OppositeHitterID:      slot(lineup.SlotOppositeHitter),
		MiddleBlockerID:       slot(lineup.SlotMiddleBlocker),
		LiberoID:              slot(lineup.SlotLibero),
		DefensiveSpecialistID: slot(lineup.SlotDefensiveSpecialist),
		CreditsUsed:           item.CreditsUsed,
		CreditsRemaining:      item.Remaining,
		UpdatedAt:             item.UpdatedAt,
	}
}

type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

func (r *LineupRepository) GetByUser(ctx context.Context, userID string) (lineup.Lineup, bool, error) {
	query, args, err := qb.Select(lineupSelectColumns...).From("lineups").
		Where(qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return lineup.Lineup{}, false, fmt.Errorf("build select lineup query: %w", err)
	}

	var row lineupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return lineup.Lineup{}, false, nil
		}
		return lineup.Lineup{}, false, fmt.Errorf("select lineup by user: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *LineupRepository) Upsert(ctx context.Context, item lineup.Lineup) error {
	row := lineupToTableModel(item)

	const upsertSuffix = `ON CONFLICT (user_id) DO UPDATE SET
		setter_id = EXCLUDED.setter_id,
		outside_hitter_id = EXCLUDED.outside_hitter_id,
		opposite_hitter_id = EXCLUDED.opposite_hitter_id,
		middle_blocker_id = EXCLUDED.middle_blocker_id,
		libero_id = EXCLUDED.libero_id,
		defensive_specialist_id = EXCLUDED.defensive_specialist_id,
		credits_used = EXCLUDED.credits_used,
		credits_remaining = EXCLUDED.credits_remaining,
		updated_at = EXCLUDED.updated_at`

	query, args, err := qb.InsertModel("lineups", row, upsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert lineup query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert lineup: %w", err)
	}

	return nil
}
