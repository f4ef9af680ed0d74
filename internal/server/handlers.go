package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/hikidasu/hikidasu/internal/extract"
	"github.com/hikidasu/hikidasu/internal/models"
	"go.uber.org/zap"
)

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req models.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body", "")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	s.logger.Debug("extract request", zap.String("path", req.Path))

	res, err := s.extractor.Extract(r.Context(), req.Path)
	if err != nil {
		reason := extract.Reason(err)
		status := statusForReason(reason)
		if status >= http.StatusInternalServerError {
			s.logger.Error("extraction failed", zap.String("path", req.Path), zap.Error(err))
		} else {
			s.logger.Debug("extraction rejected",
				zap.String("path", req.Path),
				zap.String("reason", string(reason)),
			)
		}
		s.respondError(w, status, err.Error(), reason)
		return
	}
	s.respondJSON(w, http.StatusOK, models.NewExtractResponse(uuid.NewString(), req.Path, res))
}

// statusForReason maps the extraction failure taxonomy to HTTP statuses:
// files the service refuses by policy are 415, files it could not process
// are 422.
func statusForReason(reason extract.FailureReason) int {
	switch reason {
	case extract.ReasonUnsupported, extract.ReasonPasswordProtected:
		return http.StatusUnsupportedMediaType
	case extract.ReasonProbeFailed, extract.ReasonParseFailed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	reg := s.extractor.Registry()
	categories := make(map[string][]string)
	for _, cat := range reg.Categories() {
		categories[string(cat)] = reg.CategoryExtensions(cat)
	}
	s.respondJSON(w, http.StatusOK, &models.FormatsResponse{Categories: categories})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string, reason extract.FailureReason) {
	s.respondJSON(w, status, &models.ErrorResponse{Error: message, Reason: reason})
}
