package httpapi

import (
	"net/http"
	"strings"

	"github.com/volleyverse/fantasy-volley/internal/domain/lineup"
	"github.com/volleyverse/fantasy-volley/internal/usecase"
)

type lineupResponse struct {
	Setter              *playerDTO `json:"setter"`
	OutsideHitter       *playerDTO `json:"outsideHitter"`
	OppositeHitter      *playerDTO `json:"oppositeHitter"`
	MiddleBlocker       *playerDTO `json:"middleBlocker"`
	Libero              *playerDTO `json:"libero"`
	DefensiveSpecialist *playerDTO `json:"defensiveSpecialist"`
	CreditsUsed         int        `json:"creditsUsed"`
	Remaining           int        `json:"remaining"`
}

type saveLineupRequest struct {
	Setter              *string `json:"setter"`
	OutsideHitter       *string `json:"outsideHitter"`
	OppositeHitter      *string `json:"oppositeHitter"`
	MiddleBlocker       *string `json:"middleBlocker"`
	Libero              *string `json:"libero"`
	DefensiveSpecialist *string `json:"defensiveSpecialist"`
}

type saveLineupResponse struct {
	Message     string `json:"message"`
	CreditsUsed int    `json:"creditsUsed"`
	Remaining   int    `json:"remaining"`
}

func toLineupResponse(resolved usecase.ResolvedLineup) lineupResponse {
	payload := lineupResponse{
		CreditsUsed: resolved.CreditsUsed,
		Remaining:   resolved.CreditsRemaining,
	}
	for slot, item := range resolved.Players {
		if item == nil {
			continue
		}
		dto := toPlayerDTO(*item)
		switch slot {
		case lineup.SlotSetter:
			payload.Setter = &dto
		case lineup.SlotOutsideHitter:
			payload.OutsideHitter = &dto
		case lineup.SlotOppositeHitter:
			payload.OppositeHitter = &dto
		case lineup.SlotMiddleBlocker:
			payload.MiddleBlocker = &dto
		case lineup.SlotLibero:
			payload.Libero = &dto
		case lineup.SlotDefensiveSpecialist:
			payload.DefensiveSpecialist = &dto
		}
	}

	return payload
}

func (r saveLineupRequest) playerIDs() map[lineup.Slot]string {
	ids := make(map[lineup.Slot]string, 6)
	assign := func(slot lineup.Slot, value *string) {
		if value == nil {
			return
		}
		if trimmed := strings.TrimSpace(*value); trimmed != "" {
			ids[slot] = trimmed
		}
	}
	assign(lineup.SlotSetter, r.Setter)
	assign(lineup.SlotOutsideHitter, r.OutsideHitter)
	assign(lineup.SlotOppositeHitter, r.OppositeHitter)
	assign(lineup.SlotMiddleBlocker, r.MiddleBlocker)
	assign(lineup.SlotLibero, r.Libero)
	assign(lineup.SlotDefensiveSpecialist, r.DefensiveSpecialist)

	return ids
}

func (h *Handler) GetLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineup")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, usecase.ErrUnauthorized)
		return
	}

	resolved, err := h.lineupService.Get(ctx, principal.UserID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toLineupResponse(resolved))
}

func (h *Handler) SaveLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveLineup")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, usecase.ErrUnauthorized)
		return
	}

	var payload saveLineupRequest
	if err := decodeRequest(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.lineupService.Save(ctx, principal.UserID, payload.playerIDs())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, saveLineupResponse{
		Message:     "Lineup saved successfully",
		CreditsUsed: saved.CreditsUsed,
		Remaining:   saved.Remaining,
	})
}
