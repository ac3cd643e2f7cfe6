package service

import (
	"errors"

	"github.com/azadgupta1010/GD-2.0/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockAdjuster moves godown inventory when a maal in bill is approved, and
// takes it back out when an approved bill is deleted. Both run on the
// caller's transaction.
type StockAdjuster interface {
	Receive(tx *gorm.DB, m *models.MaalIn, items []models.MaalInItem) error
	Revert(tx *gorm.DB, m *models.MaalIn, items []models.MaalInItem) error
}

// GodownStockAdjuster keeps per-material weights in godown_stocks and writes a
// stock_histories row for every change.
type GodownStockAdjuster struct{}

func (GodownStockAdjuster) Receive(tx *gorm.DB, m *models.MaalIn, items []models.MaalInItem) error {
	for _, it := range items {
		if err := moveStock(tx, m.CompanyID, m.GodownID, it.Material, it.Weight, "maal in approved", m.ID); err != nil {
			return err
		}
	}
	return nil
}

func (GodownStockAdjuster) Revert(tx *gorm.DB, m *models.MaalIn, items []models.MaalInItem) error {
	for _, it := range items {
		if err := moveStock(tx, m.CompanyID, m.GodownID, it.Material, it.Weight.Neg(), "maal in deleted", m.ID); err != nil {
			return err
		}
	}
	return nil
}

func moveStock(tx *gorm.DB, companyID, godownID uuid.UUID, material string, delta decimal.Decimal, reason string, refID uuid.UUID) error {
	if delta.IsZero() {
		return nil
	}

	var st models.GodownStock
	err := tx.Clauses(clauseUpdateLock()).
		Where("company_id = ? AND godown_id = ? AND material = ?", companyID, godownID, material).
		First(&st).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		st = models.GodownStock{
			CompanyID: companyID,
			GodownID:  godownID,
			Material:  material,
			Weight:    decimal.Zero,
		}
		if err := tx.Create(&st).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	}

	oldW := st.Weight
	newW := oldW.Add(delta)
	if err := tx.Model(&models.GodownStock{}).
		Where("id = ?", st.ID).
		Update("weight", newW).Error; err != nil {
		return err
	}

	return tx.Create(&models.StockHistory{
		GodownStockID: st.ID,
		OldWeight:     oldW,
		NewWeight:     newW,
		Delta:         delta,
		Reason:        reason,
		RefID:         refID,
	}).Error
}
