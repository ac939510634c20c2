package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/dashboard"
	"github.com/ludo-technologies/empdash/internal/logging"
	"github.com/ludo-technologies/empdash/internal/version"
)

// DefaultEntityID is the employee shown at the root route.
const DefaultEntityID = 1

// RequestIDHeader carries the request id in requests and responses.
const RequestIDHeader = "X-Request-ID"

// HandlerOptions configures NewHandler.
type HandlerOptions struct {
	Reports     *ReportService
	Adapters    domain.AdapterProvider
	Categorizer domain.ErrorCategorizer
	Logger      zerolog.Logger

	// ProxyPrefix is prepended to redirect locations.
	ProxyPrefix string
}

// Handler serves the dashboard routes.
type Handler struct {
	reports     *ReportService
	adapters    domain.AdapterProvider
	categorizer domain.ErrorCategorizer
	logger      zerolog.Logger
	prefix      string
	router      *mux.Router
}

// NewHandler creates the dashboard HTTP handler.
func NewHandler(opts HandlerOptions) *Handler {
	categorizer := opts.Categorizer
	if categorizer == nil {
		categorizer = NewErrorCategorizer()
	}
	h := &Handler{
		reports:     opts.Reports,
		adapters:    opts.Adapters,
		categorizer: categorizer,
		logger:      opts.Logger,
		prefix:      strings.TrimRight(opts.ProxyPrefix, "/"),
	}

	middleware := []mux.MiddlewareFunc{
		h.withRequestID,
		recoverPanics,
		logRequests,
	}

	r := mux.NewRouter()
	r.Use(middleware...)
	r.HandleFunc("/", h.handleIndex).Methods(http.MethodGet).Name("index")
	r.HandleFunc("/employee/{id}", h.handleProfile(domain.ProfileEmployee)).Methods(http.MethodGet).Name("employee")
	r.HandleFunc("/team/{id}", h.handleProfile(domain.ProfileTeam)).Methods(http.MethodGet).Name("team")
	r.HandleFunc(dashboard.UpdateDropdownPath, h.handleUpdateDropdown).Methods(http.MethodGet).Name("update_dropdown")
	r.HandleFunc(dashboard.UpdateDataPath, h.handleUpdateData).Methods(http.MethodPost).Name("update_data")
	r.HandleFunc("/healthz", h.handleHealth).Methods(http.MethodGet).Name("healthz")

	// The router only runs middleware on matched routes.
	r.NotFoundHandler = chain(http.NotFoundHandler(), middleware)
	r.MethodNotAllowedHandler = chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}), middleware)

	h.router = r
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func chain(next http.Handler, middleware []mux.MiddlewareFunc) http.Handler {
	for i := len(middleware) - 1; i >= 0; i-- {
		next = middleware[i](next)
	}
	return next
}

// withRequestID attaches a request id and a logger carrying it.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)
		w.Header().Set("Server", version.ServerHeader())

		logger := h.logger.With().Str("request_id", requestID).Logger()
		next.ServeHTTP(w, r.WithContext(logging.WithLogger(r.Context(), logger)))
	})
}

func recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logging.FromContext(r.Context()).Error().Interface("panic", rec).Msg("handler panicked")
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		name := "unmatched"
		if route := mux.CurrentRoute(r); route != nil {
			name = route.GetName()
		}
		logging.FromContext(r.Context()).Info().
			Str("route", name).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderReport(w, r, domain.ProfileEmployee, domain.ID(DefaultEntityID))
}

func (h *Handler) handleProfile(profile domain.ProfileType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := domain.ParseEntityID(mux.Vars(r)["id"])
		if err != nil {
			msg := fmt.Sprintf("Invalid %s ID: must be an integer", profile.Path())
			h.writeError(w, r, err, msg)
			return
		}
		h.renderReport(w, r, profile, id)
	}
}

func (h *Handler) renderReport(w http.ResponseWriter, r *http.Request, profile domain.ProfileType, id domain.EntityID) {
	model, err := h.adapters.Adapter(profile)
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}

	doc, err := h.reports.Render(r.Context(), id, model)
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}
	writeHTML(w, http.StatusOK, doc)
}

func (h *Handler) handleUpdateDropdown(w http.ResponseWriter, r *http.Request) {
	profile, err := domain.ParseProfileType(r.URL.Query().Get(dashboard.ProfileField))
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}
	model, err := h.adapters.Adapter(profile)
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}

	fragment, err := h.reports.RenderSelector(r.Context(), model)
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}
	writeHTML(w, http.StatusOK, fragment)
}

func (h *Handler) handleUpdateData(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, domain.NewInvalidInputError("malformed form", err), "")
		return
	}
	profile, err := domain.ParseProfileType(r.PostForm.Get(dashboard.ProfileField))
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}
	id, err := domain.ParseEntityID(r.PostForm.Get(dashboard.SelectionField))
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}

	location := fmt.Sprintf("%s/%s/%s", h.prefix, profile.Path(), id)
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, version.Build())
}

// writeError maps err to a status and writes a plain-text body. A non-empty
// message replaces the default text.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, message string) {
	categorized := h.categorizer.Categorize(err)
	status := categorized.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}

	event := logging.FromContext(r.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = logging.FromContext(r.Context()).Error()
	}
	event.Err(err).Str("category", string(categorized.Category)).Msg("request failed")

	if message == "" {
		switch {
		case status >= http.StatusInternalServerError:
			message = "Error generating report: " + err.Error()
		case errors.Is(err, context.Canceled):
			message = "Request cancelled"
		default:
			message = err.Error()
		}
	}
	http.Error(w, message, status)
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
