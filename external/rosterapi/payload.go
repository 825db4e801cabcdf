package rosterapi

import (
	"github.com/volleyverse/fantasy-volley/internal/domain/lineup"
	"github.com/volleyverse/fantasy-volley/internal/domain/player"
)

type statsPayload struct {
	Matches      int     `json:"matches"`
	Sets         int     `json:"sets"`
	KillsPerSet  float64 `json:"kills_per_set"`
	DigsPerSet   float64 `json:"digs_per_set"`
	BlocksPerSet float64 `json:"blocks_per_set"`
	AcesPerSet   float64 `json:"aces_per_set"`
}

type playerPayload struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	JerseyNumber int          `json:"jerseyNumber"`
	Position     string       `json:"position"`
	TeamName     string       `json:"teamName"`
	CreditCost   int          `json:"creditCost"`
	Bio          string       `json:"bio"`
	ImageBase64  string       `json:"imageBase64"`
	Stats        statsPayload `json:"stats"`
}

func (p playerPayload) toDomain() player.Player {
	return player.Player{
		ID:           p.ID,
		Name:         p.Name,
		JerseyNumber: p.JerseyNumber,
		Position:     player.Position(p.Position),
		TeamName:     p.TeamName,
		CreditCost:   p.CreditCost,
		Bio:          p.Bio,
		ImageBase64:  p.ImageBase64,
		Stats: player.Stats{
			Matches:      p.Stats.Matches,
			Sets:         p.Stats.Sets,
			KillsPerSet:  p.Stats.KillsPerSet,
			DigsPerSet:   p.Stats.DigsPerSet,
			BlocksPerSet: p.Stats.BlocksPerSet,
			AcesPerSet:   p.Stats.AcesPerSet,
		},
	}
}

type lineupPayload struct {
	Setter              *playerPayload `json:"setter"`
	OutsideHitter       *playerPayload `json:"outsideHitter"`
	OppositeHitter      *playerPayload `json:"oppositeHitter"`
	MiddleBlocker       *playerPayload `json:"middleBlocker"`
	Libero              *playerPayload `json:"libero"`
	DefensiveSpecialist *playerPayload `json:"defensiveSpecialist"`
	CreditsUsed         int            `json:"creditsUsed"`
	Remaining           int            `json:"remaining"`
}

func (p lineupPayload) toDomain() Lineup {
	players := make(map[lineup.Slot]*player.Player, 6)
	assign := func(slot lineup.Slot, payload *playerPayload) {
		if payload == nil {
			players[slot] = nil
			return
		}
		item := payload.toDomain()
		players[slot] = &item
	}
	assign(lineup.SlotSetter, p.Setter)
	assign(lineup.SlotOutsideHitter, p.OutsideHitter)
	assign(lineup.SlotOppositeHitter, p.OppositeHitter)
	assign(lineup.SlotMiddleBlocker, p.MiddleBlocker)
	assign(lineup.SlotLibero, p.Libero)
	assign(lineup.SlotDefensiveSpecialist, p.DefensiveSpecialist)

	return Lineup{
		Players:     players,
		CreditsUsed: p.CreditsUsed,
		Remaining:   p.Remaining,
	}
}

type saveLineupPayload struct {
	Setter              *string `json:"setter"`
	OutsideHitter       *string `json:"outsideHitter"`
	OppositeHitter      *string `json:"oppositeHitter"`
	MiddleBlocker       *string `json:"middleBlocker"`
	Libero              *string `json:"libero"`
	DefensiveSpecialist *string `json:"defensiveSpecialist"`
}
