package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, data any) {
	respond(w, code, Response{Success: true, Data: data})
}

func RespondWithMessage(w http.ResponseWriter, code int, message string) {
	respond(w, code, Response{Success: true, Message: message})
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	respond(w, code, Response{Success: false, Message: message})
}

func respond(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}
