package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/alexdoe/portfolio-backend/internal/apperror"
	"github.com/alexdoe/portfolio-backend/internal/entity"
	"github.com/alexdoe/portfolio-backend/internal/section"
	"github.com/alexdoe/portfolio-backend/internal/service"
)

const (
	visitorCookieName   = "visitor_id"
	visitorCookieMaxAge = 365 * 24 * time.Hour

	genericFailureMessage = "Something went wrong. Please try again later."
	assistFailureMessage  = "Could not generate message. Please try again."
)

type assistant interface {
	Compose(ctx context.Context, intent, name, email string) (string, error)
}

type Handlers interface {
	Ping(w http.ResponseWriter, r *http.Request)
	Sections(w http.ResponseWriter, r *http.Request)
	Theme(w http.ResponseWriter, r *http.Request)
	ToggleTheme(w http.ResponseWriter, r *http.Request)
	Contact(w http.ResponseWriter, r *http.Request)
	Assist(w http.ResponseWriter, r *http.Request)
}

type restHandlers struct {
	logger         *slog.Logger
	registry       *section.Registry
	themeService   service.ThemeService
	contactService service.ContactService
	assistant      assistant
}

// NewHandlers wires the REST surface. A nil assistant makes /api/assist
// answer with the generic assist failure.
func NewHandlers(logger *slog.Logger, registry *section.Registry, themeService service.ThemeService, contactService service.ContactService, assistant assistant) Handlers {
	return &restHandlers{
		logger:         logger.With("component", "rest"),
		registry:       registry,
		themeService:   themeService,
		contactService: contactService,
		assistant:      assistant,
	}
}

func (that *restHandlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *restHandlers) Sections(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"sections": that.registry.All(),
	})
}

func (that *restHandlers) Theme(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Theme")

	visitorID := that.visitorID(w, r)
	prefersDark := r.URL.Query().Get("prefers-dark") == "true"

	theme, err := that.themeService.Resolve(r.Context(), visitorID, prefersDark)
	if err != nil {
		log.Error("failed to resolve theme", "error", err)
		writeMessage(w, http.StatusInternalServerError, genericFailureMessage)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"theme": theme})
}

func (that *restHandlers) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ToggleTheme")

	visitorID := that.visitorID(w, r)

	theme, err := that.themeService.Toggle(r.Context(), visitorID)
	if err != nil {
		log.Error("failed to toggle theme", "error", err)
		writeMessage(w, http.StatusInternalServerError, genericFailureMessage)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"theme": theme})
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Intent  string `json:"intent,omitempty"`
}

func (that *restHandlers) Contact(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Contact")

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	submission := &entity.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	confirmation, err := that.contactService.Submit(r.Context(), submission, req.Intent)
	if err != nil {
		that.writeContactError(w, log, err)
		return
	}

	writeMessage(w, http.StatusOK, confirmation)
}

func (that *restHandlers) writeContactError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperror.ErrNameRequired),
		errors.Is(err, apperror.ErrEmailRequired),
		errors.Is(err, apperror.ErrMessageRequired):
		writeMessage(w, http.StatusBadRequest, "Name, email, and message are required.")
	case errors.Is(err, apperror.ErrEmailInvalid):
		writeMessage(w, http.StatusBadRequest, "Please provide a valid email address.")
	default:
		log.Error("contact submission failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, genericFailureMessage)
	}
}

type assistRequest struct {
	Prompt string `json:"prompt"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
}

func (that *restHandlers) Assist(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Assist")

	var req assistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Prompt == "" {
		writeMessage(w, http.StatusBadRequest, "Please enter a short prompt.")
		return
	}

	if that.assistant == nil {
		writeMessage(w, http.StatusServiceUnavailable, assistFailureMessage)
		return
	}

	text, err := that.assistant.Compose(r.Context(), req.Prompt, req.Name, req.Email)
	if err != nil {
		log.Error("failed to compose message", "error", err)
		writeMessage(w, http.StatusBadGateway, assistFailureMessage)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": text})
}

// visitorID returns the visitor cookie, minting one on first contact.
func (that *restHandlers) visitorID(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(visitorCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     visitorCookieName,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(visitorCookieMaxAge),
		HttpOnly: true,
	})

	return id
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
