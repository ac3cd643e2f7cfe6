package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/azadgupta1010/GD-2.0/models"
	"github.com/azadgupta1010/GD-2.0/service"
	"github.com/azadgupta1010/GD-2.0/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type AccountCreateInput struct {
	CompanyID      uuid.UUID          `json:"company_id"`
	GodownID       uuid.UUID          `json:"godown_id"`
	Name           string             `json:"name"`
	Type           models.AccountType `json:"type"`
	OpeningBalance decimal.Decimal    `json:"opening_balance"`
	BankName       string             `json:"bank_name"`
	AccountNo      string             `json:"account_no"`
}

// POST /accounts
func (h *Handler) AccountCreate(c *gin.Context) {
	var in AccountCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !requireCompany(c, in.CompanyID) {
		return
	}
	acc, err := h.svc.CreateAccount(c.Request.Context(), service.AccountInput{
		CompanyID:      in.CompanyID,
		GodownID:       in.GodownID,
		Name:           in.Name,
		Type:           in.Type,
		OpeningBalance: in.OpeningBalance,
		BankName:       in.BankName,
		AccountNo:      in.AccountNo,
	})
	if err != nil {
		h.fail(c, err, "Failed to create account")
		return
	}
	utils.Success(c, http.StatusCreated, gin.H{"account": acc})
}

// GET /accounts?company_id=&godown_id=
func (h *Handler) AccountList(c *gin.Context) {
	companyID, err := parseID("company_id", c.Query("company_id"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	if companyID == uuid.Nil {
		badRequest(c, "company_id is required")
		return
	}
	if !requireCompany(c, companyID) {
		return
	}
	godownID, err := parseOptionalID("godown_id", c.Query("godown_id"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	rows, err := h.svc.ListAccounts(c.Request.Context(), companyID, godownID)
	if err != nil {
		h.fail(c, err, "Failed to fetch accounts")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"accounts": rows})
}

// GET /accounts/:id/transactions
func (h *Handler) AccountTransactions(c *gin.Context) {
	companyID, id, ok := ownedPathID(c)
	if !ok {
		return
	}
	rows, err := h.svc.ListAccountTransactions(c.Request.Context(), companyID, id)
	if err != nil {
		h.fail(c, err, "Failed to fetch transactions")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"transactions": rows})
}

// GET /accounts/:id/transactions/export
func (h *Handler) AccountTransactionsExport(c *gin.Context) {
	companyID, id, ok := ownedPathID(c)
	if !ok {
		return
	}
	acc, err := h.svc.GetAccount(c.Request.Context(), companyID, id)
	if err != nil {
		h.fail(c, err, "Failed to export transactions")
		return
	}
	rows, err := h.svc.ListAccountTransactions(c.Request.Context(), companyID, id)
	if err != nil {
		h.fail(c, err, "Failed to export transactions")
		return
	}

	f, err := ledgerWorkbook(acc, rows)
	if err != nil {
		h.fail(c, err, "Failed to export transactions")
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"ledger_%s_%s.xlsx\"",
		acc.ID.String()[:8], time.Now().UTC().Format("20060102")))
	if err := f.Write(c.Writer); err != nil {
		h.log.WithError(err).Error("write ledger workbook")
	}
}

const ledgerSheet = "Ledger"

func ledgerWorkbook(acc models.Account, rows []models.AccountTransaction) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ledgerSheet); err != nil {
		f.Close()
		return nil, err
	}

	f.SetCellValue(ledgerSheet, "A1", acc.Name)
	f.SetCellValue(ledgerSheet, "B1", string(acc.Type))
	f.SetCellValue(ledgerSheet, "C1", "Balance")
	f.SetCellValue(ledgerSheet, "D1", acc.Balance.InexactFloat64())

	headers := []string{"Date", "Type", "Category", "Amount", "Reference"}
	for i, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(ledgerSheet, cell, title)
	}

	for idx, t := range rows {
		row := idx + 4
		f.SetCellValue(ledgerSheet, fmt.Sprintf("A%d", row), t.CreatedAt.UTC().Format("2006-01-02 15:04"))
		f.SetCellValue(ledgerSheet, fmt.Sprintf("B%d", row), string(t.Type))
		f.SetCellValue(ledgerSheet, fmt.Sprintf("C%d", row), t.Category)
		f.SetCellValue(ledgerSheet, fmt.Sprintf("D%d", row), t.Amount.InexactFloat64())
		f.SetCellValue(ledgerSheet, fmt.Sprintf("E%d", row), t.Reference)
	}

	f.SetColWidth(ledgerSheet, "A", "A", 18)
	f.SetColWidth(ledgerSheet, "B", "B", 10)
	f.SetColWidth(ledgerSheet, "C", "C", 22)
	f.SetColWidth(ledgerSheet, "D", "D", 14)
	f.SetColWidth(ledgerSheet, "E", "E", 36)
	return f, nil
}
