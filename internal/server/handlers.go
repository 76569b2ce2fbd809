package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AndySiamas/LayoutLens/pkg/buildinfo"
	"github.com/AndySiamas/LayoutLens/pkg/errors"
	"github.com/AndySiamas/LayoutLens/pkg/layout"
	"github.com/AndySiamas/LayoutLens/pkg/pipeline"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleValidateEnvelope(w http.ResponseWriter, r *http.Request) {
	env, err := layout.ReadEnvelope(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	res, err := s.runner.ValidateEnvelope(r.Context(), env)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeResult(w, res)
}

func (s *Server) handleValidatePlan(w http.ResponseWriter, r *http.Request) {
	plan, err := layout.ReadPlan(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	res, err := s.runner.ValidatePlan(r.Context(), plan)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeResult(w, res)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	rec, err := s.runner.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// writeResult answers 200 for an accepted input and 422 otherwise.
func writeResult(w http.ResponseWriter, res *pipeline.Result) {
	status := http.StatusOK
	if !res.Accepted() {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, res.Summary())
}

// writeErr maps an error to a status by its code. Unclassified errors are
// logged and answered with a generic 500.
func (s *Server) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	switch {
	case errors.IsStructural(err):
		writeError(w, http.StatusBadRequest, string(code), errors.UserMessage(err))
	case code == errors.ErrCodeNotFound:
		writeError(w, http.StatusNotFound, string(code), errors.UserMessage(err))
	default:
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, string(errors.ErrCodeInternal), "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Code: code, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
