package resp

import (
	"encoding/json"
	"net/http"

	"github.com/google/logger"
)

// WriteJSONResponse пишет ответ в формате JSON с указанным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Errorf("failed to encode response: %v", err)
	}
}
