package service

import (
	"context"
	"strings"

	"github.com/azadgupta1010/GD-2.0/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type header interface {
	HeaderID() uuid.UUID
}

// tradeEntry describes one header + line items + ledger posting.
type tradeEntry struct {
	companyID uuid.UUID
	godownID  uuid.UUID
	accountID uuid.UUID
	items     []models.LineItem

	header   func(total decimal.Decimal) header
	children func(headerID uuid.UUID) any

	direction models.TxDirection
	category  string
	reference string
}

func (s *service) recordTrade(ctx context.Context, e tradeEntry) (uuid.UUID, error) {
	total := models.SumAmounts(e.items)

	var id uuid.UUID
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		h := e.header(total)
		if err := tx.Omit(clause.Associations).Create(h).Error; err != nil {
			return err
		}
		id = h.HeaderID()

		if err := tx.Create(e.children(id)).Error; err != nil {
			return err
		}

		_, err := postLedger(tx, ledgerEntry{
			companyID: e.companyID,
			godownID:  e.godownID,
			accountID: e.accountID,
			direction: e.direction,
			amount:    total,
			category:  e.category,
			reference: e.reference,
		})
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.log.WithFields(logrus.Fields{
		"category": e.category,
		"id":       id,
		"total":    total.String(),
	}).Info("trade recorded")
	return id, nil
}

// RecordPurchase books a feriwala or kabadiwala purchase: the record, its
// scraps, one debit ledger entry and the account balance decrement.
func (s *service) RecordPurchase(ctx context.Context, in PurchaseInput) (uuid.UUID, error) {
	if err := in.validate(); err != nil {
		return uuid.Nil, err
	}
	name := strings.TrimSpace(in.Counterparty)
	items := normalizeItems(in.Items)
	date := datatypes.Date(s.today())

	e := tradeEntry{
		companyID: in.CompanyID,
		godownID:  in.GodownID,
		accountID: in.AccountID,
		items:     items,
		direction: models.TxDebit,
		reference: "Purchase from " + name,
	}

	switch in.Kind {
	case Feriwala:
		e.category = models.CategoryFeriwalaPurchase
		e.header = func(total decimal.Decimal) header {
			return &models.FeriwalaRecord{
				CompanyID:    in.CompanyID,
				GodownID:     in.GodownID,
				Date:         date,
				FeriwalaName: name,
				TotalAmount:  total,
			}
		}
		e.children = func(id uuid.UUID) any {
			rows := make([]models.FeriwalaScrap, 0, len(items))
			for _, it := range items {
				rows = append(rows, models.FeriwalaScrap{FeriwalaID: id, LineItem: it})
			}
			return &rows
		}
	case Kabadiwala:
		e.category = models.CategoryKabadiwalaPurchase
		e.header = func(total decimal.Decimal) header {
			return &models.KabadiwalaRecord{
				CompanyID:      in.CompanyID,
				GodownID:       in.GodownID,
				Date:           date,
				KabadiwalaName: name,
				TotalAmount:    total,
			}
		}
		e.children = func(id uuid.UUID) any {
			rows := make([]models.KabadiwalaScrap, 0, len(items))
			for _, it := range items {
				rows = append(rows, models.KabadiwalaScrap{KabadiwalaID: id, LineItem: it})
			}
			return &rows
		}
	default:
		return uuid.Nil, invalid("unknown purchase kind %q", in.Kind)
	}

	return s.recordTrade(ctx, e)
}

// RecordSale is the mirror of a purchase: credit entry, balance increment.
func (s *service) RecordSale(ctx context.Context, in SaleInput) (uuid.UUID, error) {
	if err := in.validate(); err != nil {
		return uuid.Nil, err
	}
	buyer := strings.TrimSpace(in.Buyer)
	items := normalizeItems(in.Items)
	date := datatypes.Date(s.today())

	return s.recordTrade(ctx, tradeEntry{
		companyID: in.CompanyID,
		godownID:  in.GodownID,
		accountID: in.AccountID,
		items:     items,
		direction: models.TxCredit,
		category:  models.CategorySale,
		reference: "Sale to " + buyer,
		header: func(total decimal.Decimal) header {
			return &models.MaalOut{
				CompanyID:   in.CompanyID,
				GodownID:    in.GodownID,
				Date:        date,
				Buyer:       buyer,
				TotalAmount: total,
			}
		},
		children: func(id uuid.UUID) any {
			rows := make([]models.MaalOutItem, 0, len(items))
			for _, it := range items {
				rows = append(rows, models.MaalOutItem{MaalOutID: id, LineItem: it})
			}
			return &rows
		},
	})
}

func purchaseScope(db *gorm.DB, f PurchaseFilter) *gorm.DB {
	q := db.Where("company_id = ?", f.CompanyID)
	if f.GodownID != nil {
		q = q.Where("godown_id = ?", *f.GodownID)
	}
	if f.AsOf != nil {
		q = q.Where("date <= ?", datatypes.Date(*f.AsOf))
	}
	return q.Order("date DESC, created_at DESC")
}

func (s *service) ListFeriwala(ctx context.Context, f PurchaseFilter) ([]models.FeriwalaRecord, error) {
	if f.CompanyID == uuid.Nil || f.GodownID == nil || *f.GodownID == uuid.Nil {
		return nil, invalid("company_id and godown_id are required")
	}
	rows := []models.FeriwalaRecord{}
	err := purchaseScope(s.db.WithContext(ctx), f).
		Preload("Scraps").
		Find(&rows).Error
	return rows, err
}

func (s *service) ListKabadiwala(ctx context.Context, f PurchaseFilter) ([]models.KabadiwalaRecord, error) {
	if f.CompanyID == uuid.Nil {
		return nil, invalid("company_id is required")
	}
	rows := []models.KabadiwalaRecord{}
	err := purchaseScope(s.db.WithContext(ctx), f).
		Preload("Scraps").
		Find(&rows).Error
	return rows, err
}

func (s *service) ListSales(ctx context.Context, companyID uuid.UUID) ([]models.MaalOut, error) {
	if companyID == uuid.Nil {
		return nil, invalid("company_id is required")
	}
	rows := []models.MaalOut{}
	err := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Preload("Items").
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
