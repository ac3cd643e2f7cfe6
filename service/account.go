package service

import (
	"context"
	"strings"

	"github.com/azadgupta1010/GD-2.0/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateAccount opens a cash or bank account at zero and, when an opening
// balance is given, posts it as a credit so the ledger explains the balance.
func (s *service) CreateAccount(ctx context.Context, in AccountInput) (models.Account, error) {
	if err := in.validate(); err != nil {
		return models.Account{}, err
	}

	acc := models.Account{
		CompanyID: in.CompanyID,
		GodownID:  in.GodownID,
		Type:      in.Type,
		Name:      strings.TrimSpace(in.Name),
		Balance:   decimal.Zero,
		BankName:  strings.TrimSpace(in.BankName),
		AccountNo: strings.TrimSpace(in.AccountNo),
		IsActive:  true,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&acc).Error; err != nil {
			return err
		}
		if !in.OpeningBalance.Round(2).IsPositive() {
			return nil
		}
		updated, err := postLedger(tx, ledgerEntry{
			companyID: acc.CompanyID,
			godownID:  acc.GodownID,
			accountID: acc.ID,
			direction: models.TxCredit,
			amount:    in.OpeningBalance,
			category:  models.CategoryOpeningBalance,
			reference: "Opening balance",
		})
		if err != nil {
			return err
		}
		acc.Balance = updated.Balance
		return nil
	})
	if err != nil {
		return models.Account{}, err
	}
	return acc, nil
}

func (s *service) ListAccounts(ctx context.Context, companyID uuid.UUID, godownID *uuid.UUID) ([]models.Account, error) {
	if companyID == uuid.Nil {
		return nil, invalid("company_id is required")
	}
	q := s.db.WithContext(ctx).Where("company_id = ? AND is_active = ?", companyID, true)
	if godownID != nil {
		q = q.Where("godown_id = ?", *godownID)
	}
	rows := []models.Account{}
	err := q.Order("type ASC, name ASC").Find(&rows).Error
	return rows, err
}

func (s *service) GetAccount(ctx context.Context, companyID, id uuid.UUID) (models.Account, error) {
	var acc models.Account
	err := s.db.WithContext(ctx).First(&acc, "id = ? AND company_id = ?", id, companyID).Error
	return acc, notFound(err, ErrAccountNotFound)
}

func (s *service) ListAccountTransactions(ctx context.Context, companyID, id uuid.UUID) ([]models.AccountTransaction, error) {
	if _, err := s.GetAccount(ctx, companyID, id); err != nil {
		return nil, err
	}
	rows := []models.AccountTransaction{}
	err := s.db.WithContext(ctx).
		Where("account_id = ?", id).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
