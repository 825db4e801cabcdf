package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/volleyverse/fantasy-volley/internal/domain/player"
	qb "github.com/volleyverse/fantasy-volley/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

var playerSelectColumns = []string{
	"id",
	"name",
	"jersey_number",
	"position",
	"team_name",
	"credit_cost",
	"bio",
	"image_base64",
	"matches",
	"sets",
	"kills_per_set",
	"digs_per_set",
	"blocks_per_set",
	"aces_per_set",
	"created_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db, now: time.Now}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	builder := qb.Select(playerSelectColumns...).From("players")
	if filter.Position != "" {
		builder = builder.Where(qb.Eq("position", string(filter.Position)))
	}
	if filter.Search != "" {
		builder = builder.Where(qb.ILike("name", "%"+filter.Search+"%"))
	}
	switch filter.SortBy {
	case player.SortByCreditCost:
		builder = builder.OrderBy("credit_cost ASC", "name ASC")
	default:
		builder = builder.OrderBy("name ASC")
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.In("id", stringSliceToAny(playerIDs))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by ids: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("players").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count players query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}

	return count, nil
}

func (r *PlayerRepository) InsertMany(ctx context.Context, players []player.Player) error {
	if len(players) == 0 {
		return nil
	}

	createdAt := r.now().UTC()
	builder := qb.InsertInto("players").Columns(playerSelectColumns...)
	for _, item := range players {
		row := playerToTableModel(item, createdAt)
		builder = builder.Values(
			row.ID,
			row.Name,
			row.JerseyNumber,
			row.Position,
			row.TeamName,
			row.CreditCost,
			row.Bio,
			row.ImageBase64,
			row.Matches,
			row.Sets,
			row.KillsPerSet,
			row.DigsPerSet,
			row.BlocksPerSet,
			row.AcesPerSet,
			row.CreatedAt,
		)
	}

	query, args, err := builder.Suffix("ON CONFLICT (id) DO NOTHING").ToSQL()
	if err != nil {
		return fmt.Errorf("build insert players query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert players: %w", err)
	}

	return nil
}
