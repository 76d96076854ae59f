package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/w95/linksift/internal/extract"
)

// AnalyzeRequest is the payload for POST /analyze. The pointer fields
// distinguish "absent" from "false" so that absent keeps the documented
// default of true.
type AnalyzeRequest struct {
	Content          string `json:"content"`
	IncludeContext   *bool  `json:"include_context"`
	FilterRegex      string `json:"filter_regex"`
	RemoveDuplicates *bool  `json:"remove_duplicates"`
}

// AnalyzeResponse lists the findings in extraction order.
type AnalyzeResponse struct {
	Endpoints  []extract.Finding `json:"endpoints"`
	TotalCount int               `json:"total_count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": ServiceName,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	opts := extract.DefaultOptions()
	opts.ContextDelimiter = s.cfg.Extract.ContextDelimiter
	opts.FilterPattern = req.FilterRegex
	if req.IncludeContext != nil {
		opts.IncludeContext = *req.IncludeContext
	}
	if req.RemoveDuplicates != nil {
		opts.RemoveDuplicates = *req.RemoveDuplicates
	}

	findings, err := s.pipeline.Run(req.Content, opts)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "content cannot be empty")
		case errors.Is(err, extract.ErrPatternCompile):
			// The caller's filter regex, not the engine, is at fault.
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			s.logger.Error("analyze failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "error processing content: "+err.Error())
		}
		return
	}

	s.metrics.endpointsExtracted.Add(float64(len(findings)))
	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Endpoints:  findings,
		TotalCount: len(findings),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
