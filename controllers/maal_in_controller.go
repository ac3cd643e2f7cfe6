package controllers

import (
	"net/http"

	"github.com/azadgupta1010/GD-2.0/models"
	"github.com/azadgupta1010/GD-2.0/service"
	"github.com/azadgupta1010/GD-2.0/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type MaalInCreateInput struct {
	CompanyID    uuid.UUID      `json:"company_id"`
	GodownID     uuid.UUID      `json:"godown_id"`
	Date         string         `json:"date"`
	SupplierName string         `json:"supplier_name"`
	SellerType   string         `json:"seller_type"`
	PaymentMode  string         `json:"payment_mode"`
	Meta         datatypes.JSON `json:"meta"`
}

// POST /maalin
func (h *Handler) MaalInCreate(c *gin.Context) {
	var in MaalInCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !requireCompany(c, in.CompanyID) {
		return
	}
	date, err := parseDateField("date", in.Date)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	m, err := h.svc.RecordInboundStock(c.Request.Context(), service.InboundInput{
		CompanyID:    in.CompanyID,
		GodownID:     in.GodownID,
		Date:         date,
		SupplierName: in.SupplierName,
		SellerType:   in.SellerType,
		PaymentMode:  in.PaymentMode,
		Meta:         in.Meta,
	})
	if err != nil {
		h.fail(c, err, "Failed to create maal in")
		return
	}
	utils.Success(c, http.StatusCreated, gin.H{"maal_in": m})
}

type MaalInItemsInput struct {
	Items []models.LineItem `json:"items"`
}

// POST /maalin/:id/items
func (h *Handler) MaalInAddItems(c *gin.Context) {
	companyID, id, ok := ownedPathID(c)
	if !ok {
		return
	}
	var in MaalInItemsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	m, err := h.svc.AddLineItems(c.Request.Context(), companyID, id, in.Items)
	if err != nil {
		h.fail(c, err, "Failed to add maal in items")
		return
	}
	utils.Success(c, http.StatusCreated, gin.H{"maal_in": m})
}

type MaalInApproveInput struct {
	Action     string `json:"action"`
	ApprovedBy string `json:"approved_by"`
}

// POST /maalin/:id/approve
func (h *Handler) MaalInApprove(c *gin.Context) {
	companyID, id, ok := ownedPathID(c)
	if !ok {
		return
	}
	var in MaalInApproveInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if in.ApprovedBy == "" {
		if claims, err := currentClaims(c); err == nil {
			in.ApprovedBy = claims.Username
		}
	}

	m, err := h.svc.ApproveOrReject(c.Request.Context(), companyID, id, in.Action, in.ApprovedBy)
	if err != nil {
		h.fail(c, err, "Failed to update maal in status")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"maal_in": m})
}

type MaalInPayInput struct {
	Amount    decimal.Decimal `json:"amount"`
	Mode      string          `json:"mode"`
	Date      string          `json:"date"`
	AccountID *uuid.UUID      `json:"account_id"`
}

// POST /maalin/:id/pay
func (h *Handler) MaalInPay(c *gin.Context) {
	companyID, id, ok := ownedPathID(c)
	if !ok {
		return
	}
	var in MaalInPayInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	date, err := parseDateField("date", in.Date)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	if in.AccountID != nil && *in.AccountID == uuid.Nil {
		in.AccountID = nil
	}

	p, status, err := h.svc.RecordPayment(c.Request.Context(), companyID, id, service.PaymentInput{
		Amount:    in.Amount,
		Mode:      in.Mode,
		Date:      date,
		AccountID: in.AccountID,
	})
	if err != nil {
		h.fail(c, err, "Failed to record payment")
		return
	}
	utils.Success(c, http.StatusCreated, gin.H{
		"payment":        p,
		"payment_status": status,
	})
}

// GET /maalin/:id
func (h *Handler) MaalInGet(c *gin.Context) {
	companyID, id, ok := ownedPathID(c)
	if !ok {
		return
	}
	m, err := h.svc.GetInbound(c.Request.Context(), companyID, id)
	if err != nil {
		h.fail(c, err, "Failed to fetch maal in")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"maal_in": m})
}

// DELETE /maalin/:id
func (h *Handler) MaalInDelete(c *gin.Context) {
	companyID, id, ok := ownedPathID(c)
	if !ok {
		return
	}
	m, err := h.svc.DeleteInbound(c.Request.Context(), companyID, id)
	if err != nil {
		h.fail(c, err, "Failed to delete maal in")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"maal_in": m})
}

// GET /maalin/list?company_id=&godown_id=&date=&status=
func (h *Handler) MaalInList(c *gin.Context) {
	companyID, godownID, ok := scopeQuery(c)
	if !ok {
		return
	}
	date, err := parseOptionalDateField("date", c.Query("date"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	rows, err := h.svc.ListInbound(c.Request.Context(), service.InboundFilter{
		CompanyID: companyID,
		GodownID:  godownID,
		Date:      date,
		Status:    c.Query("status"),
	})
	if err != nil {
		h.fail(c, err, "Failed to fetch maal in list")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"data": rows})
}

// GET /maalin/range?company_id=&godown_id=&start_date=&end_date=
func (h *Handler) MaalInRange(c *gin.Context) {
	companyID, godownID, ok := scopeQuery(c)
	if !ok {
		return
	}
	start, err := parseOptionalDateField("start_date", c.Query("start_date"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	end, err := parseOptionalDateField("end_date", c.Query("end_date"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	rows, err := h.svc.ListInboundRange(c.Request.Context(), service.RangeFilter{
		CompanyID: companyID,
		GodownID:  godownID,
		Start:     start,
		End:       end,
	})
	if err != nil {
		h.fail(c, err, "Failed to fetch maal in range")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"data": rows})
}

// scopeQuery reads the company_id and godown_id query pair. It writes the
// error response itself and reports ok=false on a malformed or foreign id.
func scopeQuery(c *gin.Context) (companyID, godownID uuid.UUID, ok bool) {
	var err error
	if companyID, err = parseID("company_id", c.Query("company_id")); err != nil {
		badRequest(c, err.Error())
		return uuid.Nil, uuid.Nil, false
	}
	if godownID, err = parseID("godown_id", c.Query("godown_id")); err != nil {
		badRequest(c, err.Error())
		return uuid.Nil, uuid.Nil, false
	}
	if !requireCompany(c, companyID) {
		return uuid.Nil, uuid.Nil, false
	}
	return companyID, godownID, true
}
