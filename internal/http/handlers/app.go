package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"studio/internal/domain"
	"studio/internal/gateway"
	"studio/internal/infra"
	"studio/internal/prompt"
	"studio/internal/session"
)

type App struct {
	Gateway *gateway.Gateway
	Store   *session.Store
	Cfg     *infra.Config
	Log     infra.Logger
}

func NewApp(gw *gateway.Gateway, store *session.Store, cfg *infra.Config, log infra.Logger) *App {
	return &App{Gateway: gw, Store: store, Cfg: cfg, Log: log}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, map[string]string{"error": kind, "message": message})
}

func (a *App) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return false
	}
	return true
}

// fail maps domain errors to their HTTP status: precondition failures are
// the client's to fix, upstream generation failures are a bad gateway, and
// an exhausted video poll budget is a gateway timeout.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case domain.IsPrecondition(err):
		a.error(w, http.StatusUnprocessableEntity, "precondition_failed", err.Error())
	case errors.Is(err, domain.ErrVideoTimeout):
		a.error(w, http.StatusGatewayTimeout, "video_timeout", err.Error())
	case errors.Is(err, domain.ErrNoImages),
		errors.Is(err, domain.ErrNoVideo),
		errors.Is(err, domain.ErrEmptyList),
		errors.Is(err, domain.ErrSchemaParse):
		a.error(w, http.StatusBadGateway, "generation_failed", err.Error())
	case errors.Is(err, session.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		a.error(w, http.StatusGatewayTimeout, "timeout", "request deadline exceeded")
	default:
		a.Log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "operation failed")
	}
}

type generationResponse struct {
	ID        string   `json:"id"`
	ImageURLs []string `json:"image_urls"`
	Text      string   `json:"text,omitempty"`
}

// generate runs a multi-variant image descriptor, stores the outcome, and
// writes the normalized payload. Descriptors carrying the default variant
// count are widened or narrowed to the configured one.
func (a *App) generate(w http.ResponseWriter, r *http.Request, feature string, desc prompt.Descriptor) {
	if desc.VariantCount == prompt.DefaultVariantCount {
		desc.VariantCount = a.Cfg.VariantCount
	}
	result, err := a.Gateway.GenerateVariants(r.Context(), desc)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	stored := a.Store.Save(session.Result{Feature: feature, ImageURLs: result.ImageURLs, Text: result.Text})
	a.json(w, http.StatusOK, generationResponse{ID: stored.ID, ImageURLs: result.ImageURLs, Text: result.Text})
}
