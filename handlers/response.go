package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"divyaAPI/internal/apperr"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithAppError maps a service error to its status. Client errors carry
// their message; server errors are logged and answered with the fallback text.
func respondWithAppError(w http.ResponseWriter, logger *zap.Logger, err error, fallback string) {
	code := apperr.HTTPStatus(err)
	if code >= http.StatusInternalServerError {
		logger.Error(fallback, zap.Error(err))
		respondWithError(w, code, fallback)
		return
	}
	respondWithError(w, code, err.Error())
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
