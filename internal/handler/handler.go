package handler

import (
	"encoding/json"
	"net/http"
)

// envelope is the uniform JSON body for every response:
// {"statusCode": <int>, "message"?: <string>, "data"?: <any>}.
type envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message,omitempty"`
	Data       any    `json:"data,omitempty"`
}

// respond writes the envelope as JSON with the matching transport status.
func respond(w http.ResponseWriter, statusCode int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(envelope{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	})
}

// CORS attaches the fixed permissive header set to every response and
// answers preflight requests immediately, with no body processing.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "OPTIONS, POST, GET")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			respond(w, http.StatusOK, "OK", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
