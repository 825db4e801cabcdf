package postgres

import (
	"time"

	"github.com/volleyverse/fantasy-volley/internal/domain/player"
)

type playerTableModel struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	JerseyNumber int       `db:"jersey_number"`
	Position     string    `db:"position"`
	TeamName     string    `db:"team_name"`
	CreditCost   int       `db:"credit_cost"`
	Bio          string    `db:"bio"`
	ImageBase64  string    `db:"image_base64"`
	Matches      int       `db:"matches"`
	Sets         int       `db:"sets"`
	KillsPerSet  float64   `db:"kills_per_set"`
	DigsPerSet   float64   `db:"digs_per_set"`
	BlocksPerSet float64   `db:"blocks_per_set"`
	AcesPerSet   float64   `db:"aces_per_set"`
	CreatedAt    time.Time `db:"created_at"`
}

func (row playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:           row.ID,
		Name:         row.Name,
		JerseyNumber: row.JerseyNumber,
		Position:     player.Position(row.Position),
		TeamName:     row.TeamName,
		CreditCost:   row.CreditCost,
		Bio:          row.Bio,
		ImageBase64:  row.ImageBase64,
		Stats: player.Stats{
			Matches:      row.Matches,
			Sets:         row.Sets,
			KillsPerSet:  row.KillsPerSet,
			DigsPerSet:   row.DigsPerSet,
			BlocksPerSet: row.BlocksPerSet,
			AcesPerSet:   row.AcesPerSet,
		},
	}
}

func playerToTableModel(item player.Player, createdAt time.Time) playerTableModel {
	return playerTableModel{
		ID:           item.ID,
		Name:         item.Name,
		JerseyNumber: item.JerseyNumber,
		Position:     string(item.Position),
		TeamName:     item.TeamName,
		CreditCost:   item.CreditCost,
		Bio:          item.Bio,
		ImageBase64:  item.ImageBase64,
		Matches:      item.Stats.Matches,
		Sets:         item.Stats.Sets,
		KillsPerSet:  item.Stats.KillsPerSet,
		DigsPerSet:   item.Stats.DigsPerSet,
		BlocksPerSet: item.Stats.BlocksPerSet,
		AcesPerSet:   item.Stats.AcesPerSet,
		CreatedAt:    createdAt,
	}
}
