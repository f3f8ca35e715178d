package handler

import "net/http"

type healthData struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health handles GET /api/health. The store and mailer are optional
// collaborators, so liveness does not depend on them.
func Health(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, "", healthData{
		Status:  "ok",
		Service: "contact-backend",
	})
}
