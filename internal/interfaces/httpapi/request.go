package httpapi

import (
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/volleyverse/fantasy-volley/internal/usecase"
)

func decodeRequest(r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
