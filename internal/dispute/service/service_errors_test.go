package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"billsplit/internal/dispute/models"
	"billsplit/internal/dispute/service/mocks"
	id "billsplit/pkg/domain"
	dErrors "billsplit/pkg/domain-errors"
	"billsplit/pkg/platform/sentinel"
	"billsplit/pkg/requestcontext"
)

// ServiceErrorSuite drives the resolution through mocked stores to pin down
// failure handling and write ordering.
type ServiceErrorSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	users     *mocks.MockUserStore
	ledger    *mocks.MockLedgerStore
	history   *mocks.MockHistoryStore
	reports   *mocks.MockReportStore
	guard     *mocks.MockResolutionGuard
	publisher *mocks.MockAuditPublisher
	svc       *Service
	ctx       context.Context
	report    *models.BillSplitReport
	released  bool
}

func TestServiceErrorSuite(t *testing.T) {
	suite.Run(t, new(ServiceErrorSuite))
}

func (s *ServiceErrorSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = mocks.NewMockUserStore(s.ctrl)
	s.ledger = mocks.NewMockLedgerStore(s.ctrl)
	s.history = mocks.NewMockHistoryStore(s.ctrl)
	s.reports = mocks.NewMockReportStore(s.ctrl)
	s.guard = mocks.NewMockResolutionGuard(s.ctrl)
	s.publisher = mocks.NewMockAuditPublisher(s.ctrl)
	s.svc = New(s.users, s.ledger, s.history, s.reports,
		WithResolutionGuard(s.guard),
		WithAuditPublisher(s.publisher),
	)
	s.ctx = requestcontext.WithTime(context.Background(), testNow)

	report, err := models.NewBillSplitReport(id.NewReportID(), "alice", "bob", billDate, decimal.NewFromInt(1000), testNow)
	s.Require().NoError(err)
	s.report = report
	s.released = false
}

func (s *ServiceErrorSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceErrorSuite) expectGuard() {
	s.guard.EXPECT().Acquire(gomock.Any(), s.report.ID).
		Return(func(context.Context) { s.released = true }, nil)
}

func (s *ServiceErrorSuite) expectSignals() {
	s.reports.EXPECT().FindOpenForUpdate(gomock.Any(), s.report.ID).Return(s.report, nil)
	s.users.EXPECT().GetBalance(gomock.Any(), id.CNP("alice")).Return(decimal.NewFromInt(1000), nil)
	s.ledger.EXPECT().SumTransactionsSince(gomock.Any(), id.CNP("alice"), billDate).Return(decimal.Zero, nil)
	s.users.EXPECT().GetBillSharesPaidCount(gomock.Any(), id.CNP("alice")).Return(0, nil)
	s.ledger.EXPECT().CountTransfersBetween(gomock.Any(), id.CNP("alice"), id.CNP("bob"), testDay.AddDate(0, 0, -30)).Return(0, nil)
	s.users.EXPECT().GetOffenseCount(gomock.Any(), id.CNP("alice")).Return(0, nil)
	s.users.EXPECT().GetCreditScore(gomock.Any(), id.CNP("alice")).Return(700, nil)
}

func (s *ServiceErrorSuite) TestResolveWritesInOrder() {
	s.expectGuard()
	s.expectSignals()
	gomock.InOrder(
		s.users.EXPECT().SetCreditScore(gomock.Any(), id.CNP("alice"), 678).Return(nil),
		s.history.EXPECT().UpsertCreditScoreHistory(gomock.Any(), id.CNP("alice"), testDay, 678).Return(nil),
		s.users.EXPECT().IncrementBillSharesPaid(gomock.Any(), id.CNP("alice")).Return(nil),
		s.reports.EXPECT().DeleteReport(gomock.Any(), s.report.ID).Return(nil),
	)
	s.publisher.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	res, err := s.svc.ResolveDispute(s.ctx, s.report)
	s.Require().NoError(err, "audit failures do not fail the resolution")
	s.True(res.Committed)
	s.Equal(678, res.NewScore)
	s.True(s.released)
}

func (s *ServiceErrorSuite) TestWriteFailuresStopTheResolution() {
	boom := errors.New("connection reset")

	tests := []struct {
		name   string
		expect func()
	}{
		{
			name: "credit score update fails",
			expect: func() {
				s.users.EXPECT().SetCreditScore(gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)
			},
		},
		{
			name: "history upsert fails",
			expect: func() {
				s.users.EXPECT().SetCreditScore(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				s.history.EXPECT().UpsertCreditScoreHistory(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)
			},
		},
		{
			name: "bill shares increment fails",
			expect: func() {
				s.users.EXPECT().SetCreditScore(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				s.history.EXPECT().UpsertCreditScoreHistory(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				s.users.EXPECT().IncrementBillSharesPaid(gomock.Any(), gomock.Any()).Return(boom)
			},
		},
		{
			name: "report deletion fails",
			expect: func() {
				s.users.EXPECT().SetCreditScore(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				s.history.EXPECT().UpsertCreditScoreHistory(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				s.users.EXPECT().IncrementBillSharesPaid(gomock.Any(), gomock.Any()).Return(nil)
				s.reports.EXPECT().DeleteReport(gomock.Any(), gomock.Any()).Return(boom)
			},
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.expectGuard()
			s.expectSignals()
			tt.expect()

			res, err := s.svc.ResolveDispute(s.ctx, s.report)
			s.Nil(res)
			s.True(dErrors.HasCode(err, dErrors.CodePersistenceFailure), "got %v", err)
			s.ErrorIs(err, boom)
			s.True(s.released)
		})
	}
}

func (s *ServiceErrorSuite) TestDeadlineMapsToTimeout() {
	s.expectGuard()
	s.expectSignals()
	s.users.EXPECT().SetCreditScore(gomock.Any(), gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded)

	_, err := s.svc.ResolveDispute(s.ctx, s.report)
	s.True(dErrors.HasCode(err, dErrors.CodeTimeout), "got %v", err)
}

func (s *ServiceErrorSuite) TestMissingUserDuringSignalsWritesNothing() {
	s.expectGuard()
	s.reports.EXPECT().FindOpenForUpdate(gomock.Any(), s.report.ID).Return(s.report, nil)
	s.users.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(1000), nil)
	s.ledger.EXPECT().SumTransactionsSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.Zero, nil)
	s.users.EXPECT().GetBillSharesPaidCount(gomock.Any(), gomock.Any()).Return(0, nil)
	s.ledger.EXPECT().CountTransfersBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
	s.users.EXPECT().GetOffenseCount(gomock.Any(), gomock.Any()).Return(0, sentinel.ErrNotFound)

	_, err := s.svc.ResolveDispute(s.ctx, s.report)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound), "got %v", err)
}

func (s *ServiceErrorSuite) TestReadFailureIsInternal() {
	s.expectGuard()
	s.reports.EXPECT().FindOpenForUpdate(gomock.Any(), s.report.ID).Return(s.report, nil)
	s.users.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Return(decimal.Zero, errors.New("bad conn"))

	_, err := s.svc.ResolveDispute(s.ctx, s.report)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal), "got %v", err)
}

func (s *ServiceErrorSuite) TestGuardFailures() {
	s.Run("held elsewhere", func() {
		s.SetupTest()
		s.guard.EXPECT().Acquire(gomock.Any(), s.report.ID).Return(nil, sentinel.ErrAlreadyUsed)

		_, err := s.svc.ResolveDispute(s.ctx, s.report)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict), "got %v", err)
	})

	s.Run("guard backend down", func() {
		s.SetupTest()
		s.guard.EXPECT().Acquire(gomock.Any(), s.report.ID).
			Return(nil, errors.Join(sentinel.ErrUnavailable, errors.New("dial tcp: refused")))

		_, err := s.svc.ResolveDispute(s.ctx, s.report)
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable), "got %v", err)
	})

	s.Run("delete is guarded too", func() {
		s.SetupTest()
		s.guard.EXPECT().Acquire(gomock.Any(), s.report.ID).Return(nil, sentinel.ErrAlreadyUsed)

		err := s.svc.DeleteDispute(s.ctx, s.report.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict), "got %v", err)
	})
}

func (s *ServiceErrorSuite) TestFileDisputeStoreFailure() {
	s.users.EXPECT().FindProfile(gomock.Any(), id.CNP("alice")).Return(&models.UserFinancialProfile{CNP: "alice"}, nil)
	s.users.EXPECT().FindProfile(gomock.Any(), id.CNP("bob")).Return(&models.UserFinancialProfile{CNP: "bob"}, nil)
	s.reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := s.svc.FileDispute(s.ctx, FileDisputeCommand{
		ReportedUserCNP:   "alice",
		ReportingUserCNP:  "bob",
		DateOfTransaction: billDate,
		BillShare:         decimal.NewFromInt(10),
	})
	s.True(dErrors.HasCode(err, dErrors.CodePersistenceFailure), "got %v", err)
}
