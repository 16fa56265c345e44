package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"billsplit/internal/dispute"
	"billsplit/internal/dispute/metrics"
	"billsplit/internal/dispute/models"
	id "billsplit/pkg/domain"
	dErrors "billsplit/pkg/domain-errors"
	audit "billsplit/pkg/platform/audit"
	"billsplit/pkg/platform/pii"
	"billsplit/pkg/platform/sentinel"
	"billsplit/pkg/requestcontext"
)

// UserStore reads and mutates the financial slice of user records.
// Every method returns sentinel.ErrNotFound when the user does not exist.
type UserStore interface {
	FindProfile(ctx context.Context, cnp id.CNP) (*models.UserFinancialProfile, error)
	GetBalance(ctx context.Context, cnp id.CNP) (decimal.Decimal, error)
	GetBillSharesPaidCount(ctx context.Context, cnp id.CNP) (int, error)
	GetOffenseCount(ctx context.Context, cnp id.CNP) (int, error)
	GetCreditScore(ctx context.Context, cnp id.CNP) (int, error)
	SetCreditScore(ctx context.Context, cnp id.CNP, score int) error
	IncrementBillSharesPaid(ctx context.Context, cnp id.CNP) error
}

// LedgerStore answers questions about money moved between users.
type LedgerStore interface {
	SumTransactionsSince(ctx context.Context, cnp id.CNP, since time.Time) (decimal.Decimal, error)
	CountTransfersBetween(ctx context.Context, from, to id.CNP, since time.Time) (int, error)
	HasCorroboratingPayment(ctx context.Context, report *models.BillSplitReport) (bool, error)
}

// HistoryStore keeps one credit score entry per user per calendar day.
type HistoryStore interface {
	UpsertCreditScoreHistory(ctx context.Context, cnp id.CNP, date time.Time, score int) error
	ListByUser(ctx context.Context, cnp id.CNP) ([]*models.CreditScoreHistoryEntry, error)
}

// ReportStore persists open dispute reports. Closing a report deletes it.
type ReportStore interface {
	Create(ctx context.Context, report *models.BillSplitReport) error
	FindByID(ctx context.Context, reportID id.ReportID) (*models.BillSplitReport, error)
	FindOpenForUpdate(ctx context.Context, reportID id.ReportID) (*models.BillSplitReport, error)
	ListOpen(ctx context.Context) ([]*models.BillSplitReport, error)
	DeleteReport(ctx context.Context, reportID id.ReportID) error
}

// ResolutionGuard keeps two callers from resolving the same report at once.
// Acquire returns sentinel.ErrAlreadyUsed when another caller holds the report.
type ResolutionGuard interface {
	Acquire(ctx context.Context, reportID id.ReportID) (release func(context.Context), err error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service files, previews and resolves bill-split disputes.
type Service struct {
	users   UserStore
	ledger  LedgerStore
	history HistoryStore
	reports ReportStore

	tx             DisputeStoreTx
	guard          ResolutionGuard
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	hasher         *pii.Hasher
	tracer         trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTx replaces the default in-process transaction with tx.
func WithTx(tx DisputeStoreTx) Option {
	return func(s *Service) {
		s.tx = tx
	}
}

func WithResolutionGuard(guard ResolutionGuard) Option {
	return func(s *Service) {
		s.guard = guard
	}
}

// WithPIIHasher sets the keyed hasher applied to CNPs in logs and audit events.
func WithPIIHasher(h *pii.Hasher) Option {
	return func(s *Service) {
		s.hasher = h
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New constructs a Service. Without WithTx, writes are serialized per report
// with an in-process sharded lock over the given stores.
func New(users UserStore, ledger LedgerStore, history HistoryStore, reports ReportStore, opts ...Option) *Service {
	s := &Service{
		users:   users,
		ledger:  ledger,
		history: history,
		reports: reports,
		tracer:  otel.Tracer("billsplit/dispute"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tx == nil {
		s.tx = NewShardedTx(Stores{Users: users, Ledger: ledger, History: history, Reports: reports}, 0)
	}
	return s
}

// FileDisputeCommand carries the fields of a new complaint.
type FileDisputeCommand struct {
	ReportedUserCNP   id.CNP
	ReportingUserCNP  id.CNP
	DateOfTransaction time.Time
	BillShare         decimal.Decimal
}

// FileDispute records a new complaint. Both users must exist, the bill date
// must not be in the future, and an identical open complaint is a conflict.
func (s *Service) FileDispute(ctx context.Context, cmd FileDisputeCommand) (*models.BillSplitReport, error) {
	now := requestcontext.Now(ctx)
	report, err := models.NewBillSplitReport(id.NewReportID(), cmd.ReportedUserCNP, cmd.ReportingUserCNP, cmd.DateOfTransaction, cmd.BillShare, now)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
		}
		return nil, err
	}
	if report.DateOfTransaction.After(requestcontext.TruncateToDay(now)) {
		return nil, dErrors.New(dErrors.CodeValidation, "date of transaction cannot be in the future")
	}

	if _, err := s.users.FindProfile(ctx, report.ReportedUserCNP); err != nil {
		return nil, translateReadErr(err, "reported user not found", "failed to load reported user")
	}
	if _, err := s.users.FindProfile(ctx, report.ReportingUserCNP); err != nil {
		return nil, translateReadErr(err, "reporting user not found", "failed to load reporting user")
	}

	if err := s.reports.Create(ctx, report); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeConflict, "an identical dispute is already open")
		}
		return nil, dErrors.Wrap(err, dErrors.CodePersistenceFailure, "failed to file dispute")
	}

	s.metrics.IncrementFiled()
	s.logAudit(ctx, audit.EventDisputeFiled, report, "")
	return report, nil
}

// GetDispute returns an open dispute.
func (s *Service) GetDispute(ctx context.Context, reportID id.ReportID) (*models.BillSplitReport, error) {
	report, err := s.reports.FindByID(ctx, reportID)
	if err != nil {
		return nil, translateReadErr(err, "dispute not found", "failed to load dispute")
	}
	return report, nil
}

// ListOpenDisputes returns every open dispute, oldest first.
func (s *Service) ListOpenDisputes(ctx context.Context) ([]*models.BillSplitReport, error) {
	reports, err := s.reports.ListOpen(ctx)
	if err != nil {
		return nil, translateReadErr(err, "", "failed to list disputes")
	}
	return reports, nil
}

// CreditScoreHistory returns a user's daily score entries, newest first.
func (s *Service) CreditScoreHistory(ctx context.Context, cnp id.CNP) ([]*models.CreditScoreHistoryEntry, error) {
	if _, err := s.users.FindProfile(ctx, cnp); err != nil {
		return nil, translateReadErr(err, "user not found", "failed to load user")
	}
	entries, err := s.history.ListByUser(ctx, cnp)
	if err != nil {
		return nil, translateReadErr(err, "", "failed to load credit score history")
	}
	return entries, nil
}

// PreviewResolution scores an open dispute without writing anything.
func (s *Service) PreviewResolution(ctx context.Context, reportID id.ReportID) (*models.Resolution, error) {
	report, err := s.GetDispute(ctx, reportID)
	if err != nil {
		return nil, err
	}
	signals, err := collectSignals(ctx, s.users, s.ledger, report, requestcontext.Today(ctx))
	if err != nil {
		return nil, err
	}
	return models.NewResolution(report, signals, dispute.Assess(signals), requestcontext.Now(ctx)), nil
}

// HasCorroboratingPayment reports whether the ledger already shows the accused
// paying the reporter the disputed share. The result is advisory.
func (s *Service) HasCorroboratingPayment(ctx context.Context, report *models.BillSplitReport) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "dispute.HasCorroboratingPayment")
	defer span.End()

	if err := report.Validate(); err != nil {
		return false, err
	}
	span.SetAttributes(attribute.String("report_id", report.ID.String()))

	found, err := s.ledger.HasCorroboratingPayment(ctx, report)
	if err != nil {
		err = translateReadErr(err, "", "failed to check ledger")
		recordSpanError(span, err)
		return false, err
	}
	span.SetAttributes(attribute.Bool("corroborated", found))

	s.metrics.IncrementCorroborationCheck(found)
	decision := "not_corroborated"
	if found {
		decision = "corroborated"
	}
	s.logAudit(ctx, audit.EventCorroborationChecked, report, decision)
	return found, nil
}

// ResolveDisputeByID loads an open dispute and resolves it.
func (s *Service) ResolveDisputeByID(ctx context.Context, reportID id.ReportID) (*models.Resolution, error) {
	report, err := s.GetDispute(ctx, reportID)
	if err != nil {
		return nil, err
	}
	return s.ResolveDispute(ctx, report)
}

// ResolveDispute scores a dispute against the accused user, then applies the
// new score, records today's history entry, counts the processed share and
// closes the report. The writes commit together; on any failure the report
// stays open so resolution can be re-run.
func (s *Service) ResolveDispute(ctx context.Context, report *models.BillSplitReport) (*models.Resolution, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "dispute.ResolveDispute")
	defer span.End()

	res, err := s.resolve(ctx, report)
	if err != nil {
		recordSpanError(span, err)
		s.metrics.RecordResolution(start, string(dErrors.CodeOf(err)))
		if s.logger != nil {
			s.logger.WarnContext(ctx, "dispute resolution failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("previous_score", res.PreviousScore),
		attribute.Int("new_score", res.NewScore),
	)
	s.metrics.RecordResolution(start, "resolved")
	s.metrics.ObserveScoreDelta(res.Delta)
	s.logAudit(ctx, audit.EventDisputeResolved, report, "resolved",
		"previous_score", res.PreviousScore,
		"new_score", res.NewScore,
		"gravity", res.Assessment.Gravity.String(),
	)
	return res, nil
}

func (s *Service) resolve(ctx context.Context, report *models.BillSplitReport) (*models.Resolution, error) {
	if err := report.Validate(); err != nil {
		return nil, err
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("report_id", report.ID.String()))

	release, err := s.acquire(ctx, report.ID)
	if err != nil {
		return nil, err
	}
	defer release(context.WithoutCancel(ctx))

	now := requestcontext.Now(ctx)
	today := requestcontext.TruncateToDay(now)

	var res *models.Resolution
	err = s.tx.RunInTx(ctx, report.ID.String(), func(ctx context.Context, st Stores) error {
		open, err := st.Reports.FindOpenForUpdate(ctx, report.ID)
		if err != nil {
			return translateReadErr(err, "dispute not found or already resolved", "failed to lock dispute")
		}

		signals, err := collectSignals(ctx, st.Users, st.Ledger, open, today)
		if err != nil {
			return err
		}
		res = models.NewResolution(open, signals, dispute.Assess(signals), now)

		cnp := open.ReportedUserCNP
		if err := st.Users.SetCreditScore(ctx, cnp, res.NewScore); err != nil {
			return translateWriteErr(err, "failed to update credit score")
		}
		if err := st.History.UpsertCreditScoreHistory(ctx, cnp, today, res.NewScore); err != nil {
			return translateWriteErr(err, "failed to record credit score history")
		}
		if err := st.Users.IncrementBillSharesPaid(ctx, cnp); err != nil {
			return translateWriteErr(err, "failed to update bill shares paid")
		}
		// Deletion goes last so a failure above leaves the dispute open.
		if err := st.Reports.DeleteReport(ctx, open.ID); err != nil {
			return translateWriteErr(err, "failed to close dispute")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Committed = true
	return res, nil
}

// DeleteDispute removes an open dispute without scoring it, for withdrawn or
// fraudulent complaints.
func (s *Service) DeleteDispute(ctx context.Context, reportID id.ReportID) error {
	ctx, span := s.tracer.Start(ctx, "dispute.DeleteDispute",
		trace.WithAttributes(attribute.String("report_id", reportID.String())))
	defer span.End()

	release, err := s.acquire(ctx, reportID)
	if err != nil {
		recordSpanError(span, err)
		return err
	}
	defer release(context.WithoutCancel(ctx))

	var deleted *models.BillSplitReport
	err = s.tx.RunInTx(ctx, reportID.String(), func(ctx context.Context, st Stores) error {
		open, err := st.Reports.FindOpenForUpdate(ctx, reportID)
		if err != nil {
			return translateReadErr(err, "dispute not found", "failed to lock dispute")
		}
		if err := st.Reports.DeleteReport(ctx, reportID); err != nil {
			return translateWriteErr(err, "failed to delete dispute")
		}
		deleted = open
		return nil
	})
	if err != nil {
		recordSpanError(span, err)
		return err
	}

	s.metrics.IncrementDeleted()
	s.logAudit(ctx, audit.EventDisputeDeleted, deleted, "deleted")
	return nil
}

func (s *Service) acquire(ctx context.Context, reportID id.ReportID) (func(context.Context), error) {
	if s.guard == nil {
		return func(context.Context) {}, nil
	}
	release, err := s.guard.Acquire(ctx, reportID)
	if err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			s.metrics.IncrementGuardHeld()
			return nil, dErrors.New(dErrors.CodeConflict, "dispute is already being resolved")
		}
		if errors.Is(err, sentinel.ErrUnavailable) {
			return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "resolution guard unavailable")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to acquire resolution guard")
	}
	return release, nil
}

// logAudit writes an audit log line and forwards the event to the publisher.
// CNPs leave the service only as keyed hashes.
func (s *Service) logAudit(ctx context.Context, event audit.AuditEvent, report *models.BillSplitReport, decision string, attributes ...any) {
	subject := s.hasher.Hash(report.ReportedUserCNP.String())
	actor := s.hasher.Hash(report.ReportingUserCNP.String())
	requestID := requestcontext.RequestID(ctx)

	if s.logger != nil {
		args := append([]any{
			"report_id", report.ID.String(),
			"subject", subject,
			"request_id", requestID,
			"event", string(event),
			"log_type", "audit",
		}, attributes...)
		s.logger.InfoContext(ctx, string(event), args...)
	}
	if s.auditPublisher == nil {
		return
	}
	_ = s.auditPublisher.Emit(ctx, audit.Event{
		Action:    string(event),
		ReportID:  report.ID.String(),
		Subject:   subject,
		Actor:     actor,
		Decision:  decision,
		RequestID: requestID,
		Timestamp: requestcontext.Now(ctx),
		Details:   detailsFrom(attributes),
	})
}

func detailsFrom(attributes []any) map[string]string {
	if len(attributes) == 0 {
		return nil
	}
	details := make(map[string]string, len(attributes)/2)
	for i := 0; i+1 < len(attributes); i += 2 {
		key, ok := attributes[i].(string)
		if !ok {
			continue
		}
		details[key] = fmt.Sprint(attributes[i+1])
	}
	return details
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
}

// translateReadErr maps store read errors to domain errors. An empty
// notFoundMsg means the read cannot miss and a miss is treated as internal.
func translateReadErr(err error, notFoundMsg, failMsg string) error {
	var de *dErrors.Error
	switch {
	case errors.As(err, &de):
		return err
	case errors.Is(err, sentinel.ErrNotFound) && notFoundMsg != "":
		return dErrors.New(dErrors.CodeNotFound, notFoundMsg)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return dErrors.Wrap(err, dErrors.CodeTimeout, failMsg)
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, failMsg)
	}
}

func translateWriteErr(err error, failMsg string) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return dErrors.Wrap(err, dErrors.CodeTimeout, failMsg)
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, failMsg+": record disappeared")
	default:
		return dErrors.Wrap(err, dErrors.CodePersistenceFailure, failMsg)
	}
}
