// Package api is the HTTP presentation collaborator: it invokes the record
// store and the spreadsheet adapters and renders their results as JSON or a
// downloadable workbook. Storage failures surface as error messages with safe
// defaults; they never crash the process.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adaytakip/internal/report"
	"adaytakip/internal/sheet"
	"adaytakip/internal/storage"
)

const maxImportBodySize = 20 << 20 // 20MB

// RecordStore is the store abstraction the handlers depend on, so tests and
// future backends can swap the SQLite implementation.
type RecordStore interface {
	InsertCandidate(c storage.Candidate) (int64, error)
	ListCandidates() ([]storage.Candidate, error)
	DeleteAllCandidates() (int64, error)
	CountCandidates() (int, error)
}

type Deps struct {
	Store    RecordStore
	Importer *sheet.Importer
	Exporter *sheet.Exporter
}

func NewHandler(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", handleHealth)
	r.Get("/candidates", handleListCandidates(deps))
	r.Post("/candidates", handleCreateCandidate(deps))
	r.Delete("/candidates", handleDeleteAll(deps))
	r.Post("/import", handleImport(deps))
	r.Get("/export", handleExport(deps))
	r.Get("/report", handleReport(deps))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleListCandidates(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		candidates, err := deps.Store.ListCandidates()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "storage_error", "reading candidates: %v", err)
			return
		}
		writeJSON(w, http.StatusOK, ParseFilter(r.URL.Query()).Apply(candidates))
	}
}

type createCandidateRequest struct {
	Name            string `json:"name"`
	ContactDate     string `json:"contact_date"`
	Notes           string `json:"notes"`
	Invited         int    `json:"invited"`
	AppointmentMade int    `json:"appointment_made"`
	PlanExplained   int    `json:"plan_explained"`
	Registered      int    `json:"registered"`
	FollowedUp      int    `json:"followed_up"`
	Declined        int    `json:"declined"`
	JobSeeking      int    `json:"job_seeking"`
}

func handleCreateCandidate(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
		defer r.Body.Close()

		var req createCandidateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		if req.Name == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "name is required")
			return
		}
		if !sheet.IsContactDate(req.ContactDate) {
			httpError(w, http.StatusBadRequest, "invalid_request_error",
				"contact_date %q must be empty or in %q form (e.g. 15 09 23)", req.ContactDate, "DD MM YY")
			return
		}

		id, err := deps.Store.InsertCandidate(storage.Candidate{
			Name:            req.Name,
			ContactDate:     req.ContactDate,
			Notes:           req.Notes,
			Invited:         req.Invited,
			AppointmentMade: req.AppointmentMade,
			PlanExplained:   req.PlanExplained,
			Registered:      req.Registered,
			FollowedUp:      req.FollowedUp,
			Declined:        req.Declined,
			JobSeeking:      req.JobSeeking,
		})
		if err != nil {
			httpError(w, http.StatusInternalServerError, "storage_error", "saving candidate: %v", err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
	}
}

func handleDeleteAll(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := deps.Store.DeleteAllCandidates()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "storage_error", "deleting candidates: %v", err)
			return
		}
		slog.Info("deleted all candidates", "count", n)
		writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
	}
}

func handleImport(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxImportBodySize)
		defer r.Body.Close()

		file, _, err := r.FormFile("file")
		if err != nil {
			httpError(w, http.StatusBadRequest, "import_error", "missing upload file: %v", err)
			return
		}
		defer file.Close()

		result, err := deps.Importer.Import(r.Context(), file)
		if err != nil {
			httpError(w, http.StatusBadRequest, "import_error", "%v", err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func handleExport(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buf, err := deps.Exporter.Export(r.Context())
		if errors.Is(err, sheet.ErrNoData) {
			httpError(w, http.StatusNotFound, "export_error", "no data to export")
			return
		}
		if err != nil {
			httpError(w, http.StatusInternalServerError, "export_error", "%v", err)
			return
		}

		w.Header().Set("Content-Type", sheet.ExportContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sheet.ExportFileName))
		w.WriteHeader(http.StatusOK)
		w.Write(buf)
	}
}

func handleReport(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		candidates, err := deps.Store.ListCandidates()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "storage_error", "reading candidates: %v", err)
			return
		}
		writeJSON(w, http.StatusOK, report.Build(candidates))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	writeJSON(w, code, map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
