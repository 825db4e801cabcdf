package httpapi

import (
	"net/http"

	"github.com/volleyverse/fantasy-volley/internal/domain/player"
)

type statsDTO struct {
	Matches      int     `json:"matches"`
	Sets         int     `json:"sets"`
	KillsPerSet  float64 `json:"kills_per_set"`
	DigsPerSet   float64 `json:"digs_per_set"`
	BlocksPerSet float64 `json:"blocks_per_set"`
	AcesPerSet   float64 `json:"aces_per_set"`
}

type playerDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	JerseyNumber int      `json:"jerseyNumber"`
	Position     string   `json:"position"`
	TeamName     string   `json:"teamName"`
	CreditCost   int      `json:"creditCost"`
	Bio          string   `json:"bio"`
	ImageBase64  string   `json:"imageBase64"`
	Stats        statsDTO `json:"stats"`
}

func toPlayerDTO(item player.Player) playerDTO {
	return playerDTO{
		ID:           item.ID,
		Name:         item.Name,
		JerseyNumber: item.JerseyNumber,
		Position:     string(item.Position),
		TeamName:     item.TeamName,
		CreditCost:   item.CreditCost,
		Bio:          item.Bio,
		ImageBase64:  item.ImageBase64,
		Stats: statsDTO{
			Matches:      item.Stats.Matches,
			Sets:         item.Stats.Sets,
			KillsPerSet:  item.Stats.KillsPerSet,
			DigsPerSet:   item.Stats.DigsPerSet,
			BlocksPerSet: item.Stats.BlocksPerSet,
			AcesPerSet:   item.Stats.AcesPerSet,
		},
	}
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	query := r.URL.Query()
	filter := player.ListFilter{
		Position: player.Position(query.Get("position")),
		Search:   query.Get("search"),
		SortBy:   query.Get("sortBy"),
	}

	items, err := h.playerService.ListPlayers(ctx, filter)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	payload := make([]playerDTO, 0, len(items))
	for _, item := range items {
		payload = append(payload, toPlayerDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	item, err := h.playerService.GetPlayerByID(ctx, r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPlayerDTO(item))
}
