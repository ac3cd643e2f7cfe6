package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TxDirection string

const (
	TxDebit  TxDirection = "debit"  // money out, balance decreases
	TxCredit TxDirection = "credit" // money in, balance increases
)

const (
	CategoryFeriwalaPurchase   = "feriwala purchase"
	CategoryKabadiwalaPurchase = "kabadiwala purchase"
	CategorySale               = "sale"
	CategoryMaalInPayment      = "maal in payment"
	CategoryOpeningBalance     = "opening balance"
)

// AccountTransaction is the append-only ledger. Rows are never updated or deleted.
type AccountTransaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;index;not null" json:"company_id"`
	GodownID  uuid.UUID `gorm:"type:uuid;index;not null" json:"godown_id"`
	AccountID uuid.UUID `gorm:"type:uuid;index;not null" json:"account_id"`

	Type     TxDirection     `gorm:"size:6;not null" json:"type"`
	Amount   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Category string          `gorm:"size:60;not null" json:"category"`

	Reference string         `gorm:"size:255" json:"reference"`
	Metadata  datatypes.JSON `gorm:"not null" json:"metadata"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (t *AccountTransaction) BeforeCreate(tx *gorm.DB) error {
	assignID(&t.ID)
	if len(t.Metadata) == 0 {
		t.Metadata = datatypes.JSON("{}")
	}
	return nil
}
