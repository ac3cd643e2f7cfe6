package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/azadgupta1010/GD-2.0/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

var (
	rangeStart = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd   = time.Date(2999, 12, 31, 0, 0, 0, 0, time.UTC)
)

// InboundSummary is a maal in header with its line and payment aggregates.
type InboundSummary struct {
	models.MaalIn
	ItemCount   int64           `json:"item_count"`
	TotalWeight decimal.Decimal `json:"total_weight"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`

	// list rows carry the aggregates above, not child rows
	Items    []models.MaalInItem    `json:"items,omitempty"`
	Payments []models.MaalInPayment `json:"payments,omitempty"`
}

// RecordInboundStock opens a submitted maal in header with no items and no
// ledger effect.
func (s *service) RecordInboundStock(ctx context.Context, in InboundInput) (models.MaalIn, error) {
	if err := in.validate(); err != nil {
		return models.MaalIn{}, err
	}
	m := models.MaalIn{
		CompanyID:     in.CompanyID,
		GodownID:      in.GodownID,
		Date:          datatypes.Date(in.Date),
		SupplierName:  strings.TrimSpace(in.SupplierName),
		SellerType:    strings.TrimSpace(in.SellerType),
		PaymentMode:   strings.TrimSpace(in.PaymentMode),
		Meta:          in.Meta,
		Status:        models.MaalInSubmitted,
		TotalAmount:   decimal.Zero,
		PaymentStatus: models.PaymentPending,
	}
	if err := s.db.WithContext(ctx).Omit("Items", "Payments").Create(&m).Error; err != nil {
		return models.MaalIn{}, err
	}
	withChildren(&m)
	return m, nil
}

func lockMaalIn(tx *gorm.DB, companyID, id uuid.UUID) (models.MaalIn, error) {
	var m models.MaalIn
	err := tx.Clauses(clauseUpdateLock()).
		First(&m, "id = ? AND company_id = ?", id, companyID).Error
	return m, notFound(err, ErrMaalInNotFound)
}

// loadInbound reads a bill with its items and payments. Both lists are
// non-nil so an empty bill still reports them.
func loadInbound(db *gorm.DB, companyID, id uuid.UUID) (models.MaalIn, error) {
	var m models.MaalIn
	err := db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC, created_at ASC") }).
		First(&m, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		return models.MaalIn{}, notFound(err, ErrMaalInNotFound)
	}
	withChildren(&m)
	return m, nil
}

func withChildren(m *models.MaalIn) {
	if m.Items == nil {
		m.Items = []models.MaalInItem{}
	}
	if m.Payments == nil {
		m.Payments = []models.MaalInPayment{}
	}
}

func sumColumn(tx *gorm.DB, model any, column string, maalInID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := tx.Model(model).
		Select("COALESCE(SUM("+column+"), 0)").
		Where("maal_in_id = ?", maalInID).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total.Round(2), nil
}

// refreshTotals recomputes total_amount and payment_status from the stored
// child rows. Calling it again without new rows changes nothing.
func refreshTotals(tx *gorm.DB, id uuid.UUID) error {
	total, err := sumColumn(tx, &models.MaalInItem{}, "amount", id)
	if err != nil {
		return err
	}
	paid, err := sumColumn(tx, &models.MaalInPayment{}, "amount", id)
	if err != nil {
		return err
	}
	return tx.Model(&models.MaalIn{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_amount":   total,
			"payment_status": models.ClassifyPayment(paid, total),
		}).Error
}

func (s *service) AddLineItems(ctx context.Context, companyID, id uuid.UUID, items []models.LineItem) (models.MaalIn, error) {
	if len(items) == 0 {
		return models.MaalIn{}, invalid("items are required")
	}
	if err := validateItems(items); err != nil {
		return models.MaalIn{}, err
	}
	items = normalizeItems(items)

	var out models.MaalIn
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := lockMaalIn(tx, companyID, id)
		if err != nil {
			return err
		}
		if m.Status != models.MaalInSubmitted {
			return ErrNotEditable
		}

		rows := make([]models.MaalInItem, 0, len(items))
		for _, it := range items {
			rows = append(rows, models.MaalInItem{MaalInID: m.ID, LineItem: it})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		if err := refreshTotals(tx, m.ID); err != nil {
			return err
		}
		out, err = loadInbound(tx, companyID, m.ID)
		return err
	})
	return out, err
}

// ApproveOrReject moves a submitted bill to approved or rejected. Both are
// terminal. Approval stamps approved_at and hands the items to the stock adjuster.
func (s *service) ApproveOrReject(ctx context.Context, companyID, id uuid.UUID, action, approver string) (models.MaalIn, error) {
	action = strings.ToLower(strings.TrimSpace(action))
	if action != ActionApprove && action != ActionReject {
		return models.MaalIn{}, invalid("action must be approve or reject")
	}
	approver = strings.TrimSpace(approver)

	var out models.MaalIn
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := lockMaalIn(tx, companyID, id)
		if err != nil {
			return err
		}
		if m.Status != models.MaalInSubmitted {
			return ErrInvalidTransition
		}

		updates := map[string]any{"status": models.MaalInRejected}
		if approver != "" {
			updates["approved_by"] = approver
		}
		if action == ActionApprove {
			updates["status"] = models.MaalInApproved
			updates["approved_at"] = s.now()
		}

		// only a still-submitted row may move
		res := tx.Model(&models.MaalIn{}).
			Where("id = ? AND status = ?", m.ID, models.MaalInSubmitted).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}

		if action == ActionApprove {
			var items []models.MaalInItem
			if err := tx.Where("maal_in_id = ?", m.ID).Find(&items).Error; err != nil {
				return err
			}
			if err := s.stock.Receive(tx, &m, items); err != nil {
				return err
			}
		}
		out, err = loadInbound(tx, companyID, m.ID)
		return err
	})
	if err != nil {
		return models.MaalIn{}, err
	}

	s.log.WithFields(logrus.Fields{"maal_in_id": id, "status": out.Status}).Info("maal in processed")
	return out, nil
}

func (s *service) RecordPayment(ctx context.Context, companyID, id uuid.UUID, in PaymentInput) (models.MaalInPayment, models.PaymentStatus, error) {
	if err := in.validate(); err != nil {
		return models.MaalInPayment{}, "", err
	}
	mode := strings.TrimSpace(in.Mode)
	if mode == "" {
		mode = "cash"
	}
	amount := in.Amount.Round(2)

	var (
		pay    models.MaalInPayment
		status models.PaymentStatus
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := lockMaalIn(tx, companyID, id)
		if err != nil {
			return err
		}
		if m.Status == models.MaalInRejected {
			return ErrNotEditable
		}

		pay = models.MaalInPayment{
			MaalInID:  m.ID,
			Amount:    amount,
			Mode:      mode,
			Date:      datatypes.Date(in.Date),
			AccountID: in.AccountID,
		}
		if err := tx.Create(&pay).Error; err != nil {
			return err
		}

		if in.AccountID != nil {
			if _, err := postLedger(tx, ledgerEntry{
				companyID: m.CompanyID,
				godownID:  m.GodownID,
				accountID: *in.AccountID,
				direction: models.TxDebit,
				amount:    amount,
				category:  models.CategoryMaalInPayment,
				reference: "Payment to " + m.SupplierName,
			}); err != nil {
				return err
			}
		}

		paid, err := sumColumn(tx, &models.MaalInPayment{}, "amount", m.ID)
		if err != nil {
			return err
		}
		status = models.ClassifyPayment(paid, m.TotalAmount)
		return tx.Model(&models.MaalIn{}).
			Where("id = ?", m.ID).
			Update("payment_status", status).Error
	})
	if err != nil {
		return models.MaalInPayment{}, "", err
	}
	return pay, status, nil
}

func (s *service) GetInbound(ctx context.Context, companyID, id uuid.UUID) (models.MaalIn, error) {
	return loadInbound(s.db.WithContext(ctx), companyID, id)
}

// DeleteInbound removes a bill with its items and payments. Stock received on
// approval is taken back out, and payments drawn from an account are refunded
// with a credit entry; the ledger itself is never rewritten.
func (s *service) DeleteInbound(ctx context.Context, companyID, id uuid.UUID) (models.MaalIn, error) {
	var out models.MaalIn
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := lockMaalIn(tx, companyID, id)
		if err != nil {
			return err
		}

		var items []models.MaalInItem
		if err := tx.Where("maal_in_id = ?", m.ID).Find(&items).Error; err != nil {
			return err
		}
		if m.Status == models.MaalInApproved {
			if err := s.stock.Revert(tx, &m, items); err != nil {
				return err
			}
		}

		var pays []models.MaalInPayment
		if err := tx.Where("maal_in_id = ?", m.ID).Order("created_at ASC").Find(&pays).Error; err != nil {
			return err
		}
		for _, p := range pays {
			if p.AccountID == nil || !p.Amount.IsPositive() {
				continue
			}
			if _, err := postLedger(tx, ledgerEntry{
				companyID: m.CompanyID,
				godownID:  m.GodownID,
				accountID: *p.AccountID,
				direction: models.TxCredit,
				amount:    p.Amount,
				category:  models.CategoryMaalInPayment,
				reference: "Refund of payment to " + m.SupplierName + " (maal in deleted)",
				refund:    true,
			}); err != nil && !errors.Is(err, ErrAccountNotFound) {
				return err
			}
		}

		if err := tx.Where("maal_in_id = ?", m.ID).Delete(&models.MaalInPayment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("maal_in_id = ?", m.ID).Delete(&models.MaalInItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.MaalIn{}, "id = ?", m.ID).Error; err != nil {
			return err
		}
		m.Items = items
		m.Payments = pays
		withChildren(&m)
		out = m
		return nil
	})
	if err != nil {
		return models.MaalIn{}, err
	}
	s.log.WithField("maal_in_id", id).Info("maal in deleted")
	return out, nil
}

func (s *service) ListInbound(ctx context.Context, f InboundFilter) ([]InboundSummary, error) {
	if f.CompanyID == uuid.Nil || f.GodownID == uuid.Nil {
		return nil, invalid("company_id and godown_id are required")
	}
	q := s.db.WithContext(ctx).
		Where("company_id = ? AND godown_id = ?", f.CompanyID, f.GodownID)
	if f.Date != nil {
		q = q.Where("date = ?", datatypes.Date(*f.Date))
	}
	if st := strings.TrimSpace(f.Status); st != "" {
		q = q.Where("status = ?", strings.ToLower(st))
	}

	var headers []models.MaalIn
	if err := q.Order("date DESC, created_at DESC").Find(&headers).Error; err != nil {
		return nil, err
	}
	return s.summarize(ctx, headers)
}

// ListInboundRange lists bills dated within [Start, End], both inclusive.
// Open ends default to a range wide enough to cover every record.
func (s *service) ListInboundRange(ctx context.Context, f RangeFilter) ([]InboundSummary, error) {
	if f.CompanyID == uuid.Nil || f.GodownID == uuid.Nil {
		return nil, invalid("company_id and godown_id are required")
	}
	start, end := rangeStart, rangeEnd
	if f.Start != nil {
		start = *f.Start
	}
	if f.End != nil {
		end = *f.End
	}
	if end.Before(start) {
		return nil, invalid("end_date must not be before start_date")
	}

	var headers []models.MaalIn
	if err := s.db.WithContext(ctx).
		Where("company_id = ? AND godown_id = ?", f.CompanyID, f.GodownID).
		Where("date BETWEEN ? AND ?", datatypes.Date(start), datatypes.Date(end)).
		Order("date DESC, created_at DESC").
		Find(&headers).Error; err != nil {
		return nil, err
	}
	return s.summarize(ctx, headers)
}

type itemAgg struct {
	MaalInID    uuid.UUID
	ItemCount   int64
	TotalWeight decimal.Decimal
}

type payAgg struct {
	MaalInID   uuid.UUID
	AmountPaid decimal.Decimal
}

func (s *service) summarize(ctx context.Context, headers []models.MaalIn) ([]InboundSummary, error) {
	out := make([]InboundSummary, 0, len(headers))
	if len(headers) == 0 {
		return out, nil
	}
	ids := make([]uuid.UUID, 0, len(headers))
	for _, h := range headers {
		ids = append(ids, h.ID)
	}

	var items []itemAgg
	if err := s.db.WithContext(ctx).Model(&models.MaalInItem{}).
		Select("maal_in_id, COUNT(*) AS item_count, COALESCE(SUM(weight), 0) AS total_weight").
		Where("maal_in_id IN ?", ids).
		Group("maal_in_id").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	var pays []payAgg
	if err := s.db.WithContext(ctx).Model(&models.MaalInPayment{}).
		Select("maal_in_id, COALESCE(SUM(amount), 0) AS amount_paid").
		Where("maal_in_id IN ?", ids).
		Group("maal_in_id").
		Scan(&pays).Error; err != nil {
		return nil, err
	}

	byItem := make(map[uuid.UUID]itemAgg, len(items))
	for _, a := range items {
		byItem[a.MaalInID] = a
	}
	byPay := make(map[uuid.UUID]decimal.Decimal, len(pays))
	for _, p := range pays {
		byPay[p.MaalInID] = p.AmountPaid
	}

	for _, h := range headers {
		ia := byItem[h.ID]
		out = append(out, InboundSummary{
			MaalIn:      h,
			ItemCount:   ia.ItemCount,
			TotalWeight: ia.TotalWeight.Round(3),
			AmountPaid:  byPay[h.ID].Round(2),
		})
	}
	return out, nil
}
