package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/terra-clan/interview-coach/internal/models"
	"github.com/terra-clan/interview-coach/internal/questions"
)

func (s *Server) handleListByRole(w http.ResponseWriter, r *http.Request) {
	role, err := models.ParseRole(chi.URLParam(r, "role"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_role", "role must be one of SWE, CLOUD, ML")
		return
	}

	list, err := s.questions.ListByRole(role)
	if err != nil {
		slog.Error("failed to list questions", "error", err, "role", role.String())
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list questions")
		return
	}

	respondJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	q, err := s.questions.GetQuestionByID(id)
	if err != nil {
		switch {
		case errors.Is(err, questions.ErrInvalidID):
			respondError(w, http.StatusBadRequest, "invalid_id", "question id must be an integer")
		case errors.Is(err, questions.ErrQuestionNotFound):
			respondError(w, http.StatusNotFound, "not_found", "question not found")
		default:
			slog.Error("failed to get question", "error", err, "id", id)
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to get question")
		}
		return
	}

	respondJSON(w, http.StatusOK, q)
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var solution models.Solution
	if err := decodeJSON(r, &solution); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	accepted, err := s.questions.SubmitAnswer(r.Context(), id, solution)
	if err != nil {
		slog.Error("failed to submit answer", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to record solution")
		return
	}

	respondJSON(w, http.StatusCreated, accepted)
}

func (s *Server) handleListSolutions(w http.ResponseWriter, r *http.Request) {
	solutions, err := s.questions.GetSolutions(r.Context())
	if err != nil {
		slog.Error("failed to list solutions", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list solutions")
		return
	}

	respondJSON(w, http.StatusOK, solutions)
}

func (s *Server) handleBuildReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.reports.Build(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		slog.Error("failed to build report", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to build report")
		return
	}

	respondJSON(w, http.StatusOK, rep)
}

// handleFollowUps recommends from the posted report. A report that
// decodes but names no usable role or weak concept yields an empty list.
func (s *Server) handleFollowUps(w http.ResponseWriter, r *http.Request) {
	var rep models.Report
	if err := decodeJSON(r, &rep); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	respondJSON(w, http.StatusOK, s.engine.Recommend(rep))
}
