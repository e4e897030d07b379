package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/NiyonkuruJD/home_ledger_app/internal/apperrors"
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	portssvc "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/services"
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/services"
	"github.com/NiyonkuruJD/home_ledger_app/internal/dto"
)

type paymentServiceSuite struct {
	suite.Suite
	movementRepo *MockMovementRepository
	paymentRepo  *MockPaymentRepository
	svc          portssvc.PaymentSvcFacade
	ctx          context.Context
	now          time.Time
	userID       string
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(paymentServiceSuite))
}

func (s *paymentServiceSuite) SetupTest() {
	s.movementRepo = new(MockMovementRepository)
	s.paymentRepo = new(MockPaymentRepository)
	s.now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s.ctx = context.Background()
	s.userID = "user-1"
	s.svc = services.NewPaymentService(s.paymentRepo, s.movementRepo, fixedClock{t: s.now})
}

// payableDebt builds a DEBT_PAYABLE movement of 1000.00 at 5% with nothing settled.
func (s *paymentServiceSuite) payableDebt() *domain.Movement {
	return &domain.Movement{
		MovementID:      "mov-1",
		OwnerUserID:     s.userID,
		Variant:         domain.MovementDebtPayable,
		TotalAmount:     decimal.RequireFromString("1000.00"),
		EffectiveAmount: decimal.Zero,
		Status:          domain.StatusUnpaid,
		Date:            s.now.AddDate(0, -1, 0),
		CategoryID:      "cat-1",
		AccountID:       "acc-1",
		Debt: &domain.DebtDetails{
			InterestRate:       decimal.RequireFromString("5.00"),
			PrincipalRemaining: decimal.RequireFromString("1000.00"),
		},
	}
}

func (s *paymentServiceSuite) TestRecordPaymentMixedAllocatesInterestFirst() {
	movement := s.payableDebt()
	s.movementRepo.On("FindMovementByID", s.ctx, "mov-1").Return(movement, nil)
	s.paymentRepo.On("SavePayment", s.ctx, mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("domain.Movement"), mock.AnythingOfType("decimal.Decimal")).Return(nil)

	payment, err := s.svc.RecordPayment(s.ctx, "mov-1", dto.RecordPaymentRequest{Amount: "80.00"}, s.userID)
	s.Require().NoError(err)

	// Interest due is 50.00; it is served first, the rest reduces principal.
	s.Equal("50.00", payment.InterestPortion.StringFixed(2))
	s.Equal("30.00", payment.PrincipalPortion.StringFixed(2))
	s.Equal(domain.PaymentConfirmed, payment.Status)

	savedMovement := s.paymentRepo.Calls[0].Arguments.Get(2).(domain.Movement)
	s.Equal("970.00", savedMovement.Debt.PrincipalRemaining.StringFixed(2))
	s.Equal("80.00", savedMovement.EffectiveAmount.StringFixed(2))
	s.Equal(domain.StatusPartiallyPaid, savedMovement.Status)

	// Paying down a payable debt reduces the account balance.
	savedDelta := s.paymentRepo.Calls[0].Arguments.Get(3).(decimal.Decimal)
	s.Equal("-80.00", savedDelta.StringFixed(2))
}

func (s *paymentServiceSuite) TestRecordPaymentRejectsOverpayment() {
	movement := s.payableDebt()
	movement.EffectiveAmount = decimal.RequireFromString("450.00")
	movement.TotalAmount = decimal.RequireFromString("500.00")
	movement.Debt.PrincipalRemaining = decimal.RequireFromString("50.00")
	movement.RecomputeStatus()
	s.movementRepo.On("FindMovementByID", s.ctx, "mov-1").Return(movement, nil)

	_, err := s.svc.RecordPayment(s.ctx, "mov-1", dto.RecordPaymentRequest{Amount: "60.00", Type: "PRINCIPAL"}, s.userID)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrStateConflict)

	// Nothing was persisted and the movement state stayed put.
	s.paymentRepo.AssertNotCalled(s.T(), "SavePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.Equal("450.00", movement.EffectiveAmount.StringFixed(2))
}

func (s *paymentServiceSuite) TestRecordPaymentRejectsMalformedAmount() {
	movement := s.payableDebt()
	s.movementRepo.On("FindMovementByID", s.ctx, "mov-1").Return(movement, nil)

	_, err := s.svc.RecordPayment(s.ctx, "mov-1", dto.RecordPaymentRequest{Amount: "10.005"}, s.userID)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *paymentServiceSuite) TestRecordPaymentObscuresForeignMovement() {
	movement := s.payableDebt()
	movement.OwnerUserID = "someone-else"
	s.movementRepo.On("FindMovementByID", s.ctx, "mov-1").Return(movement, nil)

	_, err := s.svc.RecordPayment(s.ctx, "mov-1", dto.RecordPaymentRequest{Amount: "10.00"}, s.userID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *paymentServiceSuite) TestRecordPaymentDefaultsDateFromClock() {
	movement := s.payableDebt()
	s.movementRepo.On("FindMovementByID", s.ctx, "mov-1").Return(movement, nil)
	s.paymentRepo.On("SavePayment", s.ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	payment, err := s.svc.RecordPayment(s.ctx, "mov-1", dto.RecordPaymentRequest{Amount: "10.00"}, s.userID)
	s.Require().NoError(err)
	s.Equal(s.now, payment.Date)
}

func (s *paymentServiceSuite) TestCancelPaymentReversesOnce() {
	movement := s.payableDebt()
	movement.EffectiveAmount = decimal.RequireFromString("80.00")
	movement.Debt.PrincipalRemaining = decimal.RequireFromString("970.00")
	movement.RecomputeStatus()

	payment := &domain.Payment{
		PaymentID:        "pay-1",
		OwnerUserID:      s.userID,
		MovementID:       "mov-1",
		Amount:           decimal.RequireFromString("80.00"),
		PrincipalPortion: decimal.RequireFromString("30.00"),
		InterestPortion:  decimal.RequireFromString("50.00"),
		Type:             domain.PaymentMixed,
		Status:           domain.PaymentConfirmed,
		Date:             s.now.AddDate(0, 0, -1),
	}

	s.paymentRepo.On("FindPaymentByID", s.ctx, "pay-1").Return(payment, nil)
	s.movementRepo.On("FindMovementByID", s.ctx, "mov-1").Return(movement, nil)
	s.paymentRepo.On("CancelPayment", s.ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	cancelled, err := s.svc.CancelPayment(s.ctx, "pay-1", s.userID)
	s.Require().NoError(err)
	s.Equal(domain.PaymentCancelled, cancelled.Status)

	// The movement returned to its pre-payment state.
	s.Equal("0.00", movement.EffectiveAmount.StringFixed(2))
	s.Equal("1000.00", movement.Debt.PrincipalRemaining.StringFixed(2))
	s.Equal(domain.StatusUnpaid, movement.Status)
}

func (s *paymentServiceSuite) TestCancelPaymentTwiceIsStateConflict() {
	payment := &domain.Payment{
		PaymentID:   "pay-1",
		OwnerUserID: s.userID,
		MovementID:  "mov-1",
		Amount:      decimal.RequireFromString("80.00"),
		Status:      domain.PaymentCancelled,
	}
	s.paymentRepo.On("FindPaymentByID", s.ctx, "pay-1").Return(payment, nil)

	_, err := s.svc.CancelPayment(s.ctx, "pay-1", s.userID)
	s.ErrorIs(err, apperrors.ErrStateConflict)
	s.paymentRepo.AssertNotCalled(s.T(), "CancelPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *paymentServiceSuite) TestRecordPaymentOnPaidMovementFails() {
	movement := s.payableDebt()
	movement.EffectiveAmount = movement.TotalAmount
	movement.RecomputeStatus()
	s.movementRepo.On("FindMovementByID", s.ctx, "mov-1").Return(movement, nil)

	_, err := s.svc.RecordPayment(s.ctx, "mov-1", dto.RecordPaymentRequest{Amount: "1.00"}, s.userID)
	s.ErrorIs(err, apperrors.ErrStateConflict)
}
