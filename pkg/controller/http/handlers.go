package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/audit-lab/imsaudit/pkg/domain/model"
	"github.com/audit-lab/imsaudit/pkg/domain/types"
	"github.com/audit-lab/imsaudit/pkg/service/ingest"
	"github.com/audit-lab/imsaudit/pkg/service/report"
	"github.com/audit-lab/imsaudit/pkg/usecase"
	"github.com/audit-lab/imsaudit/pkg/utils/errutil"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// importErrorCode maps import failure sentinels to stable user-facing codes
func importErrorCode(err error) string {
	switch {
	case errors.Is(err, ingest.ErrEmptyOrInvalid):
		return "EmptyOrInvalid"
	case errors.Is(err, ingest.ErrNoValidRows):
		return "NoValidRows"
	case errors.Is(err, ingest.ErrParseFailure):
		return "ParseFailure"
	default:
		return "ImportError"
	}
}

func (s *Server) listRisks(w http.ResponseWriter, r *http.Request) {
	area := types.Area(r.URL.Query().Get("area"))
	risks := s.uc.GetRisks(area)
	if risks == nil {
		risks = []model.Risk{}
	}
	respondJSON(w, http.StatusOK, risks)
}

func (s *Server) addRisk(w http.ResponseWriter, r *http.Request) {
	var risk model.Risk
	if err := json.NewDecoder(r.Body).Decode(&risk); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid risk payload"), http.StatusBadRequest)
		return
	}

	if err := s.uc.AddRisk(r.Context(), risk); err != nil {
		if errors.Is(err, usecase.ErrInvalidRisk) {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, risk)
}

func (s *Server) removeRisk(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.uc.RemoveRisk(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrRiskNotFound) {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
			return
		}
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) highPriorityRisks(w http.ResponseWriter, r *http.Request) {
	risks := s.uc.HighPriorityRisks()
	if risks == nil {
		risks = []model.Risk{}
	}
	respondJSON(w, http.StatusOK, risks)
}

func (s *Server) listFindings(w http.ResponseWriter, r *http.Request) {
	status := types.FindingStatus(r.URL.Query().Get("status"))
	findings := s.uc.GetFindings(status)
	if findings == nil {
		findings = []model.Finding{}
	}
	respondJSON(w, http.StatusOK, findings)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (s *Server) updateFindingStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid status payload"), http.StatusBadRequest)
		return
	}
	status, err := types.ParseFindingStatus(req.Status)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	if err := s.uc.UpdateFindingStatus(r.Context(), id, status); err != nil {
		if errors.Is(err, usecase.ErrFindingNotFound) {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
			return
		}
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listRoadmap(w http.ResponseWriter, r *http.Request) {
	roadmap := s.uc.GetRoadmap()
	if roadmap == nil {
		roadmap = []model.RoadmapAction{}
	}
	respondJSON(w, http.StatusOK, roadmap)
}

func (s *Server) updateRoadmapStatus(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid roadmap index"), http.StatusBadRequest)
		return
	}

	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid status payload"), http.StatusBadRequest)
		return
	}
	status, err := types.ParseRoadmapStatus(req.Status)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	if err := s.uc.UpdateRoadmapStatus(r.Context(), index, status); err != nil {
		if errors.Is(err, usecase.ErrRoadmapOutOfRange) {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
			return
		}
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listKPIs(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.uc.GetKPIs())
}

func (s *Server) listAuditPlan(w http.ResponseWriter, r *http.Request) {
	plan := s.uc.AuditPlan()
	if plan == nil {
		plan = []model.AuditPlanEntry{}
	}
	respondJSON(w, http.StatusOK, plan)
}

func (s *Server) riskStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.uc.RiskStats())
}

func (s *Server) areaBreakdowns(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.uc.AreaBreakdowns())
}

func (s *Server) findingStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.uc.FindingStats())
}

func (s *Server) kpiStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.uc.KPIStats())
}

func (s *Server) importCSV(w http.ResponseWriter, r *http.Request) {
	kind, err := types.ParseImportKind(chi.URLParam(r, "kind"))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}

	result, err := s.uc.ImportCSV(r.Context(), kind, string(raw))
	if err != nil {
		_ = errutil.Handle(r.Context(), err, "CSV import rejected")
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Code:    importErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) importTemplate(w http.ResponseWriter, r *http.Request) {
	kind, err := types.ParseImportKind(r.URL.Query().Get("kind"))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	_, _ = io.WriteString(w, ingest.Template(kind))
}

func (s *Server) exportState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := report.WriteJSON(w, s.uc.Snapshot()); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
	}
}

func (s *Server) exportReport(w http.ResponseWriter, r *http.Request) {
	rep := report.Build(s.uc.Snapshot(), s.uc.AuditPlan(), time.Now().UTC())
	w.Header().Set("Content-Type", "application/json")
	if err := report.WriteJSON(w, rep); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
	}
}

func (s *Server) exportRisksCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	if err := report.WriteRisksCSV(w, s.uc.GetRisks("")); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
	}
}

func (s *Server) exportText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if err := report.WriteText(w, s.uc.Snapshot(), s.uc.AuditPlan(), time.Now().UTC()); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
	}
}
