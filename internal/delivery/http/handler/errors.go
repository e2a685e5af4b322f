package handler

import (
	"errors"
	"net/http"

	"medrep-visits/internal/infrastructure/storage"
	"medrep-visits/internal/repository"
	"medrep-visits/pkg/response"
)

// writeStoreError maps record store failures to responses. Anything not
// recognised becomes a 500 carrying fallback.
func writeStoreError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, storage.ErrQuotaExceeded):
		response.InsufficientStorage(w, "Storage quota exceeded, remove old appointments and retry")
	case errors.Is(err, repository.ErrMalformedData):
		response.InternalServerError(w, "Stored data is malformed")
	default:
		response.InternalServerError(w, fallback)
	}
}
