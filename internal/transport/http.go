package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mverbist/hourbook/internal/domain/entry"
	"github.com/mverbist/hourbook/internal/domain/timesheet"
)

// TimesheetService defines the operations the HTTP API exposes.
type TimesheetService interface {
	GetWeek(ctx context.Context, memberID, weekParam string) (*timesheet.WeekView, error)
	CreateEntry(ctx context.Context, memberID string, req entry.CreateRequest) (*timesheet.EntryResult, error)
	UpdateEntry(ctx context.Context, memberID, entryID string, req entry.UpdateRequest) (*timesheet.EntryResult, error)
	DeleteEntry(ctx context.Context, memberID, entryID string) (*timesheet.DeleteResult, error)
	RenameProject(ctx context.Context, memberID, oldLabel, newLabel string) (int64, error)
	RenameTask(ctx context.Context, memberID, oldLabel, newLabel string) (int64, error)
}

// Server wires HTTP handlers.
type Server struct {
	timesheets TimesheetService
	logger     *slog.Logger
}

// NewServer creates an HTTP router with middleware.
func NewServer(timesheets TimesheetService, authMiddleware func(http.Handler) http.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()
	srv := &Server{timesheets: timesheets, logger: logger}

	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(api chi.Router) {
		if authMiddleware != nil {
			api.Use(authMiddleware)
		}
		api.Get("/week", srv.handleGetWeek)
		api.Post("/entries", srv.handleCreateEntry)
		api.Patch("/entries/{entryID}", srv.handleUpdateEntry)
		api.Delete("/entries/{entryID}", srv.handleDeleteEntry)
		api.Post("/projects/rename", srv.handleRenameProject)
		api.Post("/tasks/rename", srv.handleRenameTask)
	})

	return r
}

type entryPayload struct {
	Task    string `json:"task"`
	Project string `json:"project"`
	Day     string `json:"day"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type entryPatchPayload struct {
	Task    *string `json:"task"`
	Project *string `json:"project"`
	Day     *string `json:"day"`
	Start   *string `json:"start"`
	End     *string `json:"end"`
}

type renamePayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type renameResponse struct {
	Updated int64 `json:"updated"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleGetWeek(w http.ResponseWriter, r *http.Request) {
	memberID, ok := MemberFromContext(r.Context())
	if !ok || memberID == "" {
		http.Error(w, "missing member", http.StatusUnauthorized)
		return
	}

	view, err := s.timesheets.GetWeek(r.Context(), memberID, r.URL.Query().Get("week"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	memberID, ok := MemberFromContext(r.Context())
	if !ok || memberID == "" {
		http.Error(w, "missing member", http.StatusUnauthorized)
		return
	}

	var payload entryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.timesheets.CreateEntry(r.Context(), memberID, entry.CreateRequest{
		TaskLabel:    payload.Task,
		ProjectLabel: payload.Project,
		Day:          payload.Day,
		StartTime:    payload.Start,
		EndTime:      payload.End,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	memberID, ok := MemberFromContext(r.Context())
	if !ok || memberID == "" {
		http.Error(w, "missing member", http.StatusUnauthorized)
		return
	}

	var payload entryPatchPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.timesheets.UpdateEntry(r.Context(), memberID, chi.URLParam(r, "entryID"), entry.UpdateRequest{
		TaskLabel:    payload.Task,
		ProjectLabel: payload.Project,
		Day:          payload.Day,
		StartTime:    payload.Start,
		EndTime:      payload.End,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	memberID, ok := MemberFromContext(r.Context())
	if !ok || memberID == "" {
		http.Error(w, "missing member", http.StatusUnauthorized)
		return
	}

	result, err := s.timesheets.DeleteEntry(r.Context(), memberID, chi.URLParam(r, "entryID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRenameProject(w http.ResponseWriter, r *http.Request) {
	s.handleRename(w, r, s.timesheets.RenameProject)
}

func (s *Server) handleRenameTask(w http.ResponseWriter, r *http.Request) {
	s.handleRename(w, r, s.timesheets.RenameTask)
}

func (s *Server) handleRename(w http.ResponseWriter, r *http.Request, rename func(context.Context, string, string, string) (int64, error)) {
	memberID, ok := MemberFromContext(r.Context())
	if !ok || memberID == "" {
		http.Error(w, "missing member", http.StatusUnauthorized)
		return
	}

	var payload renamePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	count, err := rename(r.Context(), memberID, payload.From, payload.To)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, renameResponse{Updated: count})
}
