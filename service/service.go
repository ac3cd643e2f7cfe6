package service

import (
	"context"
	"time"

	"github.com/azadgupta1010/GD-2.0/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Service records godown business events. Every write runs in one database
// transaction on the injected pool: it commits as a whole or not at all.
// Lookups by id take the caller's company and treat rows of any other
// company as missing.
type Service interface {
	// purchases and sales
	RecordPurchase(ctx context.Context, in PurchaseInput) (uuid.UUID, error)
	RecordSale(ctx context.Context, in SaleInput) (uuid.UUID, error)
	ListFeriwala(ctx context.Context, f PurchaseFilter) ([]models.FeriwalaRecord, error)
	ListKabadiwala(ctx context.Context, f PurchaseFilter) ([]models.KabadiwalaRecord, error)
	ListSales(ctx context.Context, companyID uuid.UUID) ([]models.MaalOut, error)

	// maal in
	RecordInboundStock(ctx context.Context, in InboundInput) (models.MaalIn, error)
	AddLineItems(ctx context.Context, companyID, maalInID uuid.UUID, items []models.LineItem) (models.MaalIn, error)
	ApproveOrReject(ctx context.Context, companyID, maalInID uuid.UUID, action, approver string) (models.MaalIn, error)
	RecordPayment(ctx context.Context, companyID, maalInID uuid.UUID, in PaymentInput) (models.MaalInPayment, models.PaymentStatus, error)
	GetInbound(ctx context.Context, companyID, maalInID uuid.UUID) (models.MaalIn, error)
	DeleteInbound(ctx context.Context, companyID, maalInID uuid.UUID) (models.MaalIn, error)
	ListInbound(ctx context.Context, f InboundFilter) ([]InboundSummary, error)
	ListInboundRange(ctx context.Context, f RangeFilter) ([]InboundSummary, error)

	// labour
	AddLabour(ctx context.Context, in LabourInput) (models.Labour, error)
	ListLabour(ctx context.Context, companyID, godownID uuid.UUID) ([]LabourSummary, error)
	MarkAttendance(ctx context.Context, in AttendanceInput) (models.Attendance, error)
	RecordLabourPayment(ctx context.Context, in LabourPaymentInput) (models.LabourWithdrawal, error)

	// accounts
	CreateAccount(ctx context.Context, in AccountInput) (models.Account, error)
	ListAccounts(ctx context.Context, companyID uuid.UUID, godownID *uuid.UUID) ([]models.Account, error)
	GetAccount(ctx context.Context, companyID, accountID uuid.UUID) (models.Account, error)
	ListAccountTransactions(ctx context.Context, companyID, accountID uuid.UUID) ([]models.AccountTransaction, error)

	// dashboard users
	Authenticate(ctx context.Context, username, password string) (models.User, error)
	CreateUser(ctx context.Context, in UserInput) (models.User, error)
}

type service struct {
	db    *gorm.DB
	log   *logrus.Logger
	stock StockAdjuster
	now   func() time.Time
}

type Option func(*service)

// WithStockAdjuster replaces the hook that moves godown stock on maal in approval.
func WithStockAdjuster(a StockAdjuster) Option {
	return func(s *service) { s.stock = a }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func NewService(db *gorm.DB, log *logrus.Logger, opts ...Option) Service {
	s := &service{
		db:    db,
		log:   log,
		stock: GodownStockAdjuster{},
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *service) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
