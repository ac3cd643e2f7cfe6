package controllers

import (
	"net/http"

	"github.com/azadgupta1010/GD-2.0/models"
	"github.com/azadgupta1010/GD-2.0/service"
	"github.com/azadgupta1010/GD-2.0/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaalOutAddInput struct {
	CompanyID uuid.UUID         `json:"company_id"`
	GodownID  uuid.UUID         `json:"godown_id"`
	Buyer     string            `json:"buyer"`
	AccountID uuid.UUID         `json:"account_id"`
	Items     []models.LineItem `json:"items"`
}

// POST /maalOut/add
func (h *Handler) MaalOutAdd(c *gin.Context) {
	var in MaalOutAddInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !requireCompany(c, in.CompanyID) {
		return
	}

	id, err := h.svc.RecordSale(c.Request.Context(), service.SaleInput{
		CompanyID: in.CompanyID,
		GodownID:  in.GodownID,
		Buyer:     in.Buyer,
		Items:     in.Items,
		AccountID: in.AccountID,
	})
	if err != nil {
		h.fail(c, err, "Failed to record sale")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"maal_out_id": id})
}

// GET /maalOut/list/:company_id
func (h *Handler) MaalOutList(c *gin.Context) {
	companyID, err := parseID("company_id", c.Param("company_id"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	if !requireCompany(c, companyID) {
		return
	}
	rows, err := h.svc.ListSales(c.Request.Context(), companyID)
	if err != nil {
		h.fail(c, err, "Failed to fetch sales")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"data": rows})
}
