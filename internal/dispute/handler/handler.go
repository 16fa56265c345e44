package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"billsplit/internal/dispute/models"
	"billsplit/internal/dispute/service"
	id "billsplit/pkg/domain"
	"billsplit/pkg/platform/httputil"
	"billsplit/pkg/requestcontext"
)

// Service defines the dispute operations exposed over HTTP.
type Service interface {
	FileDispute(ctx context.Context, cmd service.FileDisputeCommand) (*models.BillSplitReport, error)
	GetDispute(ctx context.Context, reportID id.ReportID) (*models.BillSplitReport, error)
	ListOpenDisputes(ctx context.Context) ([]*models.BillSplitReport, error)
	PreviewResolution(ctx context.Context, reportID id.ReportID) (*models.Resolution, error)
	HasCorroboratingPayment(ctx context.Context, report *models.BillSplitReport) (bool, error)
	ResolveDisputeByID(ctx context.Context, reportID id.ReportID) (*models.Resolution, error)
	DeleteDispute(ctx context.Context, reportID id.ReportID) error
	CreditScoreHistory(ctx context.Context, cnp id.CNP) ([]*models.CreditScoreHistoryEntry, error)
}

// Handler wires dispute endpoints to the dispute service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts dispute endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/disputes", func(r chi.Router) {
		r.Post("/", h.HandleFile)
		r.Get("/", h.HandleList)
		r.Get("/{id}", h.HandleGet)
		r.Delete("/{id}", h.HandleDelete)
		r.Get("/{id}/preview", h.HandlePreview)
		r.Get("/{id}/corroboration", h.HandleCorroboration)
		r.Post("/{id}/resolve", h.HandleResolve)
	})
	r.Get("/users/{cnp}/credit-score-history", h.HandleHistory)
}

// HandleFile handles POST /disputes.
func (h *Handler) HandleFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[FileDisputeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	report, err := h.service.FileDispute(ctx, req.Command())
	if err != nil {
		h.logFailure(ctx, "failed to file dispute", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, FromReport(report))
}

// HandleList handles GET /disputes.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reports, err := h.service.ListOpenDisputes(ctx)
	if err != nil {
		h.logFailure(ctx, "failed to list disputes", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromReports(reports))
}

// HandleGet handles GET /disputes/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reportID, ok := h.reportID(w, r)
	if !ok {
		return
	}
	report, err := h.service.GetDispute(ctx, reportID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromReport(report))
}

// HandleDelete handles DELETE /disputes/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reportID, ok := h.reportID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteDispute(ctx, reportID); err != nil {
		h.logFailure(ctx, "failed to delete dispute", err, "report_id", reportID.String())
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandlePreview handles GET /disputes/{id}/preview.
func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reportID, ok := h.reportID(w, r)
	if !ok {
		return
	}
	res, err := h.service.PreviewResolution(ctx, reportID)
	if err != nil {
		h.logFailure(ctx, "failed to preview resolution", err, "report_id", reportID.String())
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromResolution(res))
}

// HandleCorroboration handles GET /disputes/{id}/corroboration.
func (h *Handler) HandleCorroboration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reportID, ok := h.reportID(w, r)
	if !ok {
		return
	}
	report, err := h.service.GetDispute(ctx, reportID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	found, err := h.service.HasCorroboratingPayment(ctx, report)
	if err != nil {
		h.logFailure(ctx, "corroboration check failed", err, "report_id", reportID.String())
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &CorroborationResponse{
		ReportID:     reportID.String(),
		Corroborated: found,
	})
}

// HandleResolve handles POST /disputes/{id}/resolve.
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	reportID, ok := h.reportID(w, r)
	if !ok {
		return
	}
	res, err := h.service.ResolveDisputeByID(ctx, reportID)
	if err != nil {
		h.logFailure(ctx, "failed to resolve dispute", err, "report_id", reportID.String())
		httputil.WriteError(w, err)
		return
	}

	if h.logger != nil {
		h.logger.InfoContext(ctx, "dispute resolved",
			"request_id", requestcontext.RequestID(ctx),
			"report_id", reportID.String(),
			"delta", res.Delta,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
	httputil.WriteJSON(w, http.StatusOK, FromResolution(res))
}

// HandleHistory handles GET /users/{cnp}/credit-score-history.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cnp, err := id.ParseCNP(chi.URLParam(r, "cnp"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	entries, err := h.service.CreditScoreHistory(ctx, cnp)
	if err != nil {
		h.logFailure(ctx, "failed to load credit score history", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromHistory(cnp.String(), entries))
}

func (h *Handler) reportID(w http.ResponseWriter, r *http.Request) (id.ReportID, bool) {
	reportID, err := id.ParseReportID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return id.ReportID{}, false
	}
	return reportID, true
}

func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	if h.logger == nil {
		return
	}
	h.logger.ErrorContext(ctx, msg, append([]any{
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	}, args...)...)
}
