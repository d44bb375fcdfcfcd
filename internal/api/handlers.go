package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vovakirdan/skyrun/internal/storage"
)

// maxLimit mirrors the store's own cap.
const maxLimit = 100

func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 10, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > maxLimit {
		return 0, badRequestError{msg: "limit must be between 1 and 100"}
	}
	return n, nil
}

func (s *Server) topRuns(w http.ResponseWriter, r *http.Request) {
	s.listRuns(w, r, s.store.TopRuns)
}

func (s *Server) recentRuns(w http.ResponseWriter, r *http.Request) {
	s.listRuns(w, r, s.store.RecentRuns)
}

func (s *Server) listRuns(w http.ResponseWriter, r *http.Request, list func(int) ([]storage.Run, error)) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, err)
		return
	}

	runs, err := list(limit)
	if err != nil {
		s.logger.Error("list runs failed", "path", r.URL.Path, "error", err)
		writeError(w, err)
		return
	}
	if runs == nil {
		runs = []storage.Run{}
	}
	writeSuccess(w, runs)
}

func (s *Server) runByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	run, err := s.store.RunByID(id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, notFoundError{msg: "run not found"})
		return
	}
	if err != nil {
		s.logger.Error("fetch run failed", "id", id, "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, run)
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.Stats()
	if err != nil {
		s.logger.Error("stats failed", "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, st)
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, map[string]string{"service": "skyrun"})
}
