package ui

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"astrogen/app"
	"astrogen/domain/core"
	"astrogen/domain/correlation"
)

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleComprehensive runs every configured method for one subject.
func (a *App) handleComprehensive(w http.ResponseWriter, r *http.Request) {
	var req app.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := a.service.RunComprehensive(r.Context(), req)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleMethod runs a single named correlation method.
func (a *App) handleMethod(w http.ResponseWriter, r *http.Request) {
	name := correlation.MethodName(chi.URLParam(r, "name"))
	if !name.IsValid() {
		writeError(w, http.StatusNotFound, "unknown method "+string(name))
		return
	}

	var req app.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := a.service.RunMethod(r.Context(), name, req)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleReport runs a comprehensive analysis and renders it as HTML.
func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	var req app.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := a.service.RunComprehensive(r.Context(), req)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(RenderReportHTML(result))
}

func (a *App) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrSampleNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, core.ErrEphemerisUnavailable):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, core.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case core.IsInsufficientData(err), core.IsUndefinedCorrelation(err):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, core.ErrNoValidMethods):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		a.logger.Error("analysis failed: %v", err)
		writeError(w, http.StatusInternalServerError, "analysis failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
