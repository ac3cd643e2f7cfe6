package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// LineItem is the material line shared by every scrap/material child table.
// Amount is taken as supplied; it is not reconciled against weight * rate.
type LineItem struct {
	Material string          `gorm:"size:120;not null" json:"material"`
	Weight   decimal.Decimal `gorm:"type:decimal(14,3);not null" json:"weight"`
	Rate     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"rate"`
	Amount   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
}

func SumAmounts(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}
