package service

import (
	"github.com/azadgupta1010/GD-2.0/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func clauseUpdateLock() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

type ledgerEntry struct {
	companyID uuid.UUID
	godownID  uuid.UUID
	accountID uuid.UUID
	direction models.TxDirection
	amount    decimal.Decimal
	category  string
	reference string
	metadata  datatypes.JSON
	// refund entries give money back and are accepted on inactive accounts
	refund bool
}

// postLedger appends one ledger row and applies exactly one matching balance
// change to the account, both on tx. The account row stays locked until tx ends.
func postLedger(tx *gorm.DB, e ledgerEntry) (models.Account, error) {
	var acc models.Account
	if err := tx.Clauses(clauseUpdateLock()).
		First(&acc, "id = ?", e.accountID).Error; err != nil {
		return acc, notFound(err, ErrAccountNotFound)
	}
	if acc.CompanyID != e.companyID {
		return acc, ErrAccountNotFound
	}
	if !acc.IsActive && !e.refund {
		return acc, invalid("account %s is not active", acc.Name)
	}

	amount := e.amount.Round(2)
	entry := models.AccountTransaction{
		CompanyID: e.companyID,
		GodownID:  e.godownID,
		AccountID: acc.ID,
		Type:      e.direction,
		Amount:    amount,
		Category:  e.category,
		Reference: e.reference,
		Metadata:  e.metadata,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return acc, err
	}

	delta := amount
	if e.direction == models.TxDebit {
		delta = delta.Neg()
	}
	newBal := acc.Balance.Add(delta)
	if err := tx.Model(&models.Account{}).
		Where("id = ?", acc.ID).
		Update("balance", newBal).Error; err != nil {
		return acc, err
	}
	acc.Balance = newBal
	return acc, nil
}
