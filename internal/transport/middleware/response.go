package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/polls-backend/pkg/ctxutil"
)

type errorBody struct {
	Error     errorDetail `json:"error"`
	RequestID string      `json:"requestId,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes the same error envelope the REST handlers use.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{ //nolint:errcheck
		Error:     errorDetail{Code: code, Message: message},
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}
