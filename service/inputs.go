package service

import (
	"strings"
	"time"

	"github.com/azadgupta1010/GD-2.0/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type PurchaseKind string

const (
	Feriwala   PurchaseKind = "feriwala"
	Kabadiwala PurchaseKind = "kabadiwala"
)

type PurchaseInput struct {
	Kind         PurchaseKind
	CompanyID    uuid.UUID
	GodownID     uuid.UUID
	Counterparty string
	Items        []models.LineItem
	AccountID    uuid.UUID
}

func (in PurchaseInput) validate() error {
	if in.CompanyID == uuid.Nil || in.GodownID == uuid.Nil ||
		strings.TrimSpace(in.Counterparty) == "" || len(in.Items) == 0 {
		return invalid("Missing required fields")
	}
	if in.AccountID == uuid.Nil {
		return invalid("Account ID is required to pay %s", in.Kind)
	}
	return validateItems(in.Items)
}

type SaleInput struct {
	CompanyID uuid.UUID
	GodownID  uuid.UUID
	Buyer     string
	Items     []models.LineItem
	AccountID uuid.UUID
}

func (in SaleInput) validate() error {
	if in.CompanyID == uuid.Nil || in.GodownID == uuid.Nil ||
		strings.TrimSpace(in.Buyer) == "" || len(in.Items) == 0 {
		return invalid("Missing required fields")
	}
	if in.AccountID == uuid.Nil {
		return invalid("Account ID is required to receive payment")
	}
	return validateItems(in.Items)
}

func validateItems(items []models.LineItem) error {
	for i, it := range items {
		if strings.TrimSpace(it.Material) == "" {
			return invalid("item %d: material is required", i+1)
		}
		if it.Weight.IsNegative() || it.Rate.IsNegative() || it.Amount.IsNegative() {
			return invalid("item %d: weight, rate and amount cannot be negative", i+1)
		}
	}
	return nil
}

// normalizeItems trims materials and rounds every figure to its column scale
// (weight 3, rate and amount 2), so totals summed in Go equal the sums of the
// stored rows.
func normalizeItems(items []models.LineItem) []models.LineItem {
	out := make([]models.LineItem, len(items))
	for i, it := range items {
		it.Material = strings.TrimSpace(it.Material)
		it.Weight = it.Weight.Round(3)
		it.Rate = it.Rate.Round(2)
		it.Amount = it.Amount.Round(2)
		out[i] = it
	}
	return out
}

// PurchaseFilter scopes purchase listings. A nil GodownID lists every godown
// of the company; AsOf keeps records dated on or before it.
type PurchaseFilter struct {
	CompanyID uuid.UUID
	GodownID  *uuid.UUID
	AsOf      *time.Time
}

type InboundInput struct {
	CompanyID    uuid.UUID
	GodownID     uuid.UUID
	Date         time.Time
	SupplierName string
	SellerType   string
	PaymentMode  string
	Meta         datatypes.JSON
}

func (in InboundInput) validate() error {
	if in.CompanyID == uuid.Nil || in.GodownID == uuid.Nil ||
		strings.TrimSpace(in.SupplierName) == "" || in.Date.IsZero() {
		return invalid("company_id, godown_id, date and supplier_name are required")
	}
	return nil
}

type PaymentInput struct {
	Amount    decimal.Decimal
	Mode      string
	Date      time.Time
	AccountID *uuid.UUID
}

func (in PaymentInput) validate() error {
	if !in.Amount.Round(2).IsPositive() {
		return invalid("amount must be greater than zero")
	}
	if in.Date.IsZero() {
		return invalid("date is required")
	}
	return nil
}

type InboundFilter struct {
	CompanyID uuid.UUID
	GodownID  uuid.UUID
	Date      *time.Time
	Status    string
}

type RangeFilter struct {
	CompanyID uuid.UUID
	GodownID  uuid.UUID
	Start     *time.Time
	End       *time.Time
}

type LabourInput struct {
	CompanyID     uuid.UUID
	GodownID      uuid.UUID
	Name          string
	Contact       string
	Role          string
	WorkerType    string
	DailyWage     decimal.Decimal
	MonthlySalary decimal.Decimal
	PerKgRate     decimal.Decimal
	Status        string
	CreatedBy     *uuid.UUID
}

func (in LabourInput) validate() error {
	if in.CompanyID == uuid.Nil || in.GodownID == uuid.Nil || strings.TrimSpace(in.Name) == "" {
		return invalid("Missing required fields")
	}
	if in.DailyWage.IsNegative() || in.MonthlySalary.IsNegative() || in.PerKgRate.IsNegative() {
		return invalid("wages cannot be negative")
	}
	return nil
}

type AttendanceInput struct {
	CompanyID uuid.UUID
	LabourID  uuid.UUID
	Date      time.Time
	Status    string
}

func (in AttendanceInput) validate() error {
	if in.CompanyID == uuid.Nil || in.LabourID == uuid.Nil || in.Date.IsZero() || strings.TrimSpace(in.Status) == "" {
		return invalid("labour_id, date and status are required")
	}
	return nil
}

type LabourPaymentInput struct {
	CompanyID uuid.UUID
	LabourID  uuid.UUID
	Amount    decimal.Decimal
	Date      time.Time
	Mode      string
	Type      string
}

func (in LabourPaymentInput) validate() error {
	if in.CompanyID == uuid.Nil || in.LabourID == uuid.Nil || in.Date.IsZero() {
		return invalid("labour_id and date are required")
	}
	if !in.Amount.Round(2).IsPositive() {
		return invalid("amount must be greater than zero")
	}
	return nil
}

type AccountInput struct {
	CompanyID      uuid.UUID
	GodownID       uuid.UUID
	Name           string
	Type           models.AccountType
	OpeningBalance decimal.Decimal
	BankName       string
	AccountNo      string
}

func (in AccountInput) validate() error {
	if in.CompanyID == uuid.Nil || in.GodownID == uuid.Nil || strings.TrimSpace(in.Name) == "" {
		return invalid("company_id, godown_id and name are required")
	}
	if in.Type != models.AccountCash && in.Type != models.AccountBank {
		return invalid("type must be cash or bank")
	}
	if in.OpeningBalance.Round(2).IsNegative() {
		return invalid("opening_balance cannot be negative")
	}
	return nil
}

type UserInput struct {
	CompanyID uuid.UUID
	Username  string
	FullName  string
	Password  string
	Role      models.Role
}

func (in UserInput) validate() error {
	if in.CompanyID == uuid.Nil || strings.TrimSpace(in.Username) == "" {
		return invalid("company_id and username are required")
	}
	if len(in.Password) < 6 {
		return invalid("password must be at least 6 characters")
	}
	if in.Role != models.RoleOwner && in.Role != models.RoleManager {
		return invalid("role must be owner or manager")
	}
	return nil
}
