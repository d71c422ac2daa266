package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"stream_tracker/internal/domain"
	"stream_tracker/internal/service"
)

// newAdminServer exposes the two operator actions over HTTP:
//
//	POST   /users/{login}  — start tracking a streamer
//	DELETE /users/{login}  — stop tracking a streamer
func newAdminServer(addr string, tracker *service.Tracker, logger *slog.Logger) *http.Server {
	h := &adminHandler{tracker: tracker, logger: logger.With("component", "admin")}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/{login}", h.addUser)
	mux.HandleFunc("DELETE /users/{login}", h.removeUser)

	return &http.Server{Addr: addr, Handler: mux}
}

type adminHandler struct {
	tracker *service.Tracker
	logger  *slog.Logger
}

func (h *adminHandler) addUser(w http.ResponseWriter, r *http.Request) {
	login := r.PathValue("login")

	streamer, err := h.tracker.AddUser(r.Context(), login)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		h.writeError(w, http.StatusNotFound, err)
	case errors.Is(err, domain.ErrAlreadyTracked):
		h.writeError(w, http.StatusConflict, err)
	case err != nil:
		h.writeError(w, http.StatusInternalServerError, err)
	default:
		h.writeJSON(w, http.StatusCreated, streamer)
	}
}

func (h *adminHandler) removeUser(w http.ResponseWriter, r *http.Request) {
	login := r.PathValue("login")

	err := h.tracker.RemoveUser(r.Context(), login)
	switch {
	case errors.Is(err, domain.ErrNotTracked):
		h.writeError(w, http.StatusNotFound, err)
	case err != nil:
		h.writeError(w, http.StatusInternalServerError, err)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *adminHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

func (h *adminHandler) writeError(w http.ResponseWriter, status int, err error) {
	h.logger.Warn("admin request failed", "status", status, "error", err)
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}
