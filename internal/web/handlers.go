package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/jonathan-long-lin/prompt-analyzer/internal/domain"
	"github.com/jonathan-long-lin/prompt-analyzer/internal/insights"
)

type analyzeRequest struct {
	Prompt string `json:"prompt"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := s.analyzer.Analyze(req.Prompt)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyPrompt) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.metrics.RecordAnalysis(r.Context(), result)
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	overview := insights.ComputeOverview(s.records)
	s.metrics.RecordAggregation(r.Context(), "overview", len(s.records))
	s.writeJSON(w, http.StatusOK, overview)
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	all := insights.ComputeUsers(s.records, 0)
	users := all
	if limit > 0 && len(all) > limit {
		users = all[:limit]
	}

	s.metrics.RecordAggregation(r.Context(), "users", len(s.records))
	s.writeJSON(w, http.StatusOK, map[string]any{
		"users":       users,
		"total_users": len(all),
	})
}

func (s *Server) handleTemporal(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("period")
	if raw == "" {
		raw = string(insights.PeriodDaily)
	}
	period, err := insights.ParsePeriod(raw)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	buckets := insights.ComputeTemporal(s.records, period)
	s.metrics.RecordAggregation(r.Context(), "temporal", len(s.records))
	s.writeJSON(w, http.StatusOK, map[string]any{
		"period_type": period,
		"data":        buckets,
	})
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	models := insights.ComputeModels(s.records)
	s.metrics.RecordAggregation(r.Context(), "models", len(s.records))
	s.writeJSON(w, http.StatusOK, map[string]any{"models": models})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories := insights.ComputeCategories(s.records)
	s.metrics.RecordAggregation(r.Context(), "categories", len(s.records))
	s.writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func (s *Server) handleQuality(w http.ResponseWriter, r *http.Request) {
	quality := insights.ComputeQuality(s.records, s.bands)
	s.metrics.RecordAggregation(r.Context(), "quality", len(s.records))
	s.writeJSON(w, http.StatusOK, quality)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response: " + err.Error())
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
