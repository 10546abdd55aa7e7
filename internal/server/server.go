// Package server exposes the HTTP ingress for GitHub webhook callbacks.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/user/githookbot/internal/relay"
	"github.com/user/githookbot/pkg/logger"
)

// Server handles inbound webhook callbacks. Each request is independent:
// no state is kept between requests and an identical payload is delivered
// again, without deduplication.
type Server struct {
	resolver       relay.Resolver
	svc            *relay.Service
	resolveTimeout time.Duration
	deliverTimeout time.Duration
}

// New creates the HTTP ingress adapter.
func New(resolver relay.Resolver, svc *relay.Service, resolveTimeout, deliverTimeout time.Duration) *Server {
	return &Server{
		resolver:       resolver,
		svc:            svc,
		resolveTimeout: resolveTimeout,
		deliverTimeout: deliverTimeout,
	}
}

// webhookPayload is the pre-digested event posted by the ingestion
// service. Only Id is required.
type webhookPayload struct {
	ID        string `json:"Id"`
	Author    string `json:"author"`
	AuthorURL string `json:"author_url"`
	Message   string `json:"message"`
	Comment   string `json:"comment"`
}

// Router builds the chi router with the webhook endpoint, a health check
// and JSON fallbacks for unmatched routes and panics.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Post("/github-webhook", s.handleWebhook)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

// handleWebhook walks the per-request state machine: content type, body,
// webhook id, destination resolution, then format-and-deliver.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		logger.Warn().Str("content_type", contentType).Msg("Unsupported webhook content type")
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to read webhook body")
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(body) == 0 {
		logger.Warn().Msg("Empty webhook request body")
		writeError(w, http.StatusBadRequest, "Empty request body")
		return
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		logger.Warn().Err(err).Msg("Failed to parse webhook body")
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if payload.ID == "" {
		logger.Warn().Msg("Webhook payload missing 'Id' field")
		writeError(w, http.StatusBadRequest, "Missing 'Id' field")
		return
	}

	resolveCtx, cancel := context.WithTimeout(r.Context(), s.resolveTimeout)
	defer cancel()

	dest, err := s.resolver.Resolve(resolveCtx, payload.ID)
	if err != nil {
		if errors.Is(err, relay.ErrUnknownWebhook) {
			logger.Warn().Str("webhook_id", payload.ID).Msg("Unknown webhook ID")
			writeError(w, http.StatusNotFound, "Unknown webhook ID")
			return
		}
		logger.Error().Err(err).Str("webhook_id", payload.ID).Msg("Webhook storage error")
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	if payload.Author == "" {
		payload.Author = "Unknown"
	}
	if payload.AuthorURL == "" {
		payload.AuthorURL = "#"
	}

	// An in-flight delivery finishes even if the caller disconnects;
	// partial work is never rolled back.
	deliverCtx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), s.deliverTimeout)
	defer cancel()

	if err := s.svc.Relay(deliverCtx, dest, payload.Author, payload.AuthorURL, payload.Message, payload.Comment); err != nil {
		logger.Error().Err(err).Str("webhook_id", payload.ID).Msg("Failed to deliver notification")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Info().Str("webhook_id", payload.ID).Int64("chat_id", dest.ChatID).Msg("Webhook relayed")
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// recoverer turns panics into the same JSON envelope the rest of the API
// uses instead of chi's plain-text response.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil && rec != http.ErrAbortHandler {
				logger.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("Panic in HTTP handler")
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("Failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
