package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/volleyverse/fantasy-volley/internal/usecase"
)

// errorBody matches the wire format the mobile clients already parse:
// a single human-readable detail string.
type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, data)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	writeJSON(ctx, w, errorStatus(ctx, err), errorBody{Detail: errorDetail(err)})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorBody{Detail: "internal server error"})
}

func errorStatus(ctx context.Context, err error) int {
	ctx, span := startSpan(ctx, "httpapi.errorStatus")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

var detailSentinels = []error{
	usecase.ErrInvalidInput,
	usecase.ErrNotFound,
	usecase.ErrUnauthorized,
	usecase.ErrDependencyUnavailable,
}

// errorDetail strips the sentinel prefix so clients see the message
// only, e.g. "invalid input: Budget exceeded. Total: 110/100" becomes
// "Budget exceeded. Total: 110/100".
func errorDetail(err error) string {
	msg := err.Error()
	for _, sentinel := range detailSentinels {
		if !errors.Is(err, sentinel) {
			continue
		}
		if trimmed, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
			return trimmed
		}
		return msg
	}
	// Non-sentinel errors are infrastructure failures; never surface
	// their text to clients.
	return "internal server error"
}
