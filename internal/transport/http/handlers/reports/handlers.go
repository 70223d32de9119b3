package reports

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"

	"hrmetrics/internal/metrics"
	"hrmetrics/internal/snapshot"
	"hrmetrics/internal/transport/http/api"
	"hrmetrics/internal/transport/http/middleware"
)

// SnapshotLoader is the store dependency; the pgx store satisfies it.
type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context, asOf time.Time) (*snapshot.Snapshot, error)
}

type Handler struct {
	Loader SnapshotLoader
	Cfg    metrics.Config
}

func NewHandler(loader SnapshotLoader, cfg metrics.Config) *Handler {
	return &Handler{Loader: loader, Cfg: cfg}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/employees", h.handleEmployees)
		r.Get("/employees/{employeeID}", h.handleEmployee)
		r.Get("/departments", h.handleDepartments)
		r.Get("/departments/{departmentID}", h.handleDepartment)
		r.Get("/departments/{departmentID}/summary.pdf", h.handleDepartmentPDF)
		r.Get("/managers/{managerID}", h.handleManager)
		r.Get("/training-roi", h.handleTrainingROI)
		r.Get("/collaboration", h.handleCollaboration)
		r.Get("/weights", h.handleWeights)
	})
}

// engineFor builds a metrics engine over a snapshot fixed at the request's
// as-of instant (the "asOf" query parameter, default now).
func (h *Handler) engineFor(r *http.Request) (*metrics.Engine, error) {
	asOf, err := parseAsOf(r.URL.Query().Get("asOf"))
	if err != nil {
		return nil, err
	}
	snap, err := h.Loader.LoadSnapshot(r.Context(), asOf)
	if err != nil {
		return nil, err
	}
	return metrics.NewEngine(snap, h.Cfg), nil
}

var errBadAsOf = errors.New("asOf must be RFC 3339 or YYYY-MM-DD")

func parseAsOf(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC(), nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed, nil
	}
	return time.Time{}, errBadAsOf
}

func (h *Handler) handleEmployees(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	engine, err := h.engineFor(r)
	if err != nil {
		failFor(w, err, requestID)
		return
	}

	reports, excluded := engine.EmployeeReports()
	api.Success(w, map[string]any{"employees": reports, "excluded": excluded}, requestID)
}

func (h *Handler) handleEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	engine, err := h.engineFor(r)
	if err != nil {
		failFor(w, err, requestID)
		return
	}

	report, err := engine.EmployeeMetrics(chi.URLParam(r, "employeeID"))
	if err != nil {
		failFor(w, err, requestID)
		return
	}
	api.Success(w, report, requestID)
}

func (h *Handler) handleDepartments(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	engine, err := h.engineFor(r)
	if err != nil {
		failFor(w, err, requestID)
		return
	}

	reports, err := engine.DepartmentReports()
	if err != nil {
		failFor(w, err, requestID)
		return
	}
	api.Success(w, reports, requestID)
}

func (h *Handler) handleDepartment(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	engine, err := h.engineFor(r)
	if err != nil {
		failFor(w, err, requestID)
		return
	}

	report, err := engine.DepartmentMetrics(chi.URLParam(r, "departmentID"))
	if err != nil {
		failFor(w, err, requestID)
		return
	}
	api.Success(w, report, requestID)
}

func (h *Handler) handleManager(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	engine, err := h.engineFor(r)
	if err != nil {
		failFor(w, err, requestID)
		return
	}

	report, err := engine.ManagerMetrics(chi.URLParam(r, "managerID"))
	if err != nil {
		failFor(w, err, requestID)
		return
	}
	api.Success(w, report, requestID)
}

func (h *Handler) handleTrainingROI(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	engine, err := h.engineFor(r)
	if err != nil {
		failFor(w, err, requestID)
		return
	}

	reports, err := engine.TrainingROIReports()
	if err != nil {
		failFor(w, err, requestID)
		return
	}
	api.Success(w, reports, requestID)
}

func (h *Handler) handleCollaboration(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	engine, err := h.engineFor(r)
	if err != nil {
		failFor(w, err, requestID)
		return
	}

	reports, err := engine.CollaborationReports()
	if err != nil {
		failFor(w, err, requestID)
		return
	}
	api.Success(w, reports, requestID)
}

func (h *Handler) handleWeights(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Cfg, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDepartmentPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	engine, err := h.engineFor(r)
	if err != nil {
		failFor(w, err, requestID)
		return
	}

	report, err := engine.DepartmentMetrics(chi.URLParam(r, "departmentID"))
	if err != nil {
		failFor(w, err, requestID)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Department Summary")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", report.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Headcount: %d", report.Headcount))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total salary cost: %.2f", report.TotalSalaryCost))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Average salary: %s", ratioText(report.AverageSalary)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Average rating: %s", ratioText(report.AverageRating)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Project completion: %s", ratioText(report.ProjectCompletionRate)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Completed trainings: %d", report.CompletedTrainings))
	if len(report.Excluded) > 0 {
		pdf.Ln(10)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 8, fmt.Sprintf("%d employee(s) excluded from aggregates", len(report.Excluded)))
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="department-summary.pdf"`)
	if err := pdf.Output(w); err != nil {
		failFor(w, err, requestID)
	}
}

func ratioText(ratio metrics.Ratio) string {
	if !ratio.Defined {
		return "undefined"
	}
	return fmt.Sprintf("%.2f", ratio.Value)
}

// failFor maps engine and accessor errors onto API status codes.
func failFor(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, errBadAsOf):
		api.Fail(w, http.StatusBadRequest, "invalid_as_of", err.Error(), requestID)
	case errors.Is(err, snapshot.ErrMissingEntity):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case errors.Is(err, snapshot.ErrNoSalaryRecord),
		errors.Is(err, snapshot.ErrNoReview),
		errors.Is(err, snapshot.ErrFutureHireDate):
		api.Fail(w, http.StatusUnprocessableEntity, "no_data", err.Error(), requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "report computation failed", requestID)
	}
}
