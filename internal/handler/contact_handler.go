package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/pathsdata/contact-backend/internal/model"
	"github.com/pathsdata/contact-backend/internal/service"
)

// Response messages. Fixed strings, part of the API contract with the
// website form.
const (
	msgInvalidFormat = "Invalid request format."
	msgMissingFields = "Missing required fields: name, email, and message are required."
	msgInvalidEmail  = "Invalid email format."
	msgReceived      = "Your message has been received. We'll get back to you soon."
	msgInternalError = "Internal Server Error"
	msgListDisabled  = "Submission listing is not configured."
)

// ContactHandler handles contact form submission and admin listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Interest string `json:"interest"`
	Message  string `json:"message"`
}

// validEmail is a coarse syntactic check, intentionally not RFC-compliant:
// the address must contain both "@" and ".". Real verification happens when
// the admin replies.
func validEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// Submit handles POST /api/contact.
// name, email, and message are required after trimming; company and
// interest are optional. Validation failures return 400 with a single
// message string, dependency failures return a generic 500.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Info("invalid submission body", "error", err)
		respond(w, http.StatusBadRequest, msgInvalidFormat, nil)
		return
	}

	in := service.SubmissionInput{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Company:  strings.TrimSpace(req.Company),
		Interest: strings.TrimSpace(req.Interest),
		Message:  strings.TrimSpace(req.Message),
	}

	if in.Name == "" || in.Email == "" || in.Message == "" {
		respond(w, http.StatusBadRequest, msgMissingFields, nil)
		return
	}
	if !validEmail(in.Email) {
		respond(w, http.StatusBadRequest, msgInvalidEmail, nil)
		return
	}

	if _, err := h.contactService.Submit(r.Context(), in); err != nil {
		slog.Error("submission failed", "error", err)
		respond(w, http.StatusInternalServerError, msgInternalError, nil)
		return
	}

	respond(w, http.StatusOK, msgReceived, nil)
}

// List handles GET /api/contact/submissions.
// Supports query params: limit (default 20, max 100) and offset.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.SubmissionListOptions{Limit: 20}

	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	subs, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		if errors.Is(err, service.ErrPersistenceDisabled) {
			respond(w, http.StatusServiceUnavailable, msgListDisabled, nil)
			return
		}
		slog.Error("listing submissions failed", "error", err)
		respond(w, http.StatusInternalServerError, msgInternalError, nil)
		return
	}

	// Return [] not null for empty lists
	if subs == nil {
		subs = []*model.Submission{}
	}
	respond(w, http.StatusOK, "", subs)
}
