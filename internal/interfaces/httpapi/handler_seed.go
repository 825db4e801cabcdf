package httpapi

import (
	"fmt"
	"net/http"
)

type seedResponse struct {
	Message string `json:"message"`
}

func (h *Handler) SeedPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SeedPlayers")
	defer span.End()

	inserted, err := h.seedService.Seed(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	message := "Players already seeded"
	if inserted > 0 {
		message = fmt.Sprintf("Successfully seeded %d players", inserted)
	}

	writeSuccess(ctx, w, http.StatusOK, seedResponse{Message: message})
}
