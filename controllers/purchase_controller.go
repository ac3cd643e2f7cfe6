package controllers

import (
	"net/http"

	"github.com/azadgupta1010/GD-2.0/models"
	"github.com/azadgupta1010/GD-2.0/service"
	"github.com/azadgupta1010/GD-2.0/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FeriwalaAddInput struct {
	CompanyID    uuid.UUID         `json:"company_id"`
	GodownID     uuid.UUID         `json:"godown_id"`
	FeriwalaName string            `json:"feriwala_name"`
	Scraps       []models.LineItem `json:"scraps"`
	AccountID    uuid.UUID         `json:"account_id"`
}

// POST /feriwala/add
func (h *Handler) FeriwalaAdd(c *gin.Context) {
	var in FeriwalaAddInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !requireCompany(c, in.CompanyID) {
		return
	}

	id, err := h.svc.RecordPurchase(c.Request.Context(), service.PurchaseInput{
		Kind:         service.Feriwala,
		CompanyID:    in.CompanyID,
		GodownID:     in.GodownID,
		Counterparty: in.FeriwalaName,
		Items:        in.Scraps,
		AccountID:    in.AccountID,
	})
	if err != nil {
		h.fail(c, err, "Internal server error")
		return
	}

	utils.Success(c, http.StatusCreated, gin.H{
		"feriwala_id": id,
		"message":     "Feriwala purchase added successfully",
	})
}

// GET /feriwala/list?company_id=&godown_id=&date=
func (h *Handler) FeriwalaList(c *gin.Context) {
	companyID, godownID, ok := scopeQuery(c)
	if !ok {
		return
	}
	asOf, err := parseOptionalDateField("date", c.Query("date"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	rows, err := h.svc.ListFeriwala(c.Request.Context(), service.PurchaseFilter{
		CompanyID: companyID,
		GodownID:  &godownID,
		AsOf:      asOf,
	})
	if err != nil {
		h.fail(c, err, "Failed to fetch feriwala records")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"records": rows})
}

type KabadiwalaAddInput struct {
	CompanyID      uuid.UUID         `json:"company_id"`
	GodownID       uuid.UUID         `json:"godown_id"`
	KabadiwalaName string            `json:"kabadiwala_name"`
	Scraps         []models.LineItem `json:"scraps"`
	AccountID      uuid.UUID         `json:"account_id"`
}

// POST /kabadiwala/add
func (h *Handler) KabadiwalaAdd(c *gin.Context) {
	var in KabadiwalaAddInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !requireCompany(c, in.CompanyID) {
		return
	}

	id, err := h.svc.RecordPurchase(c.Request.Context(), service.PurchaseInput{
		Kind:         service.Kabadiwala,
		CompanyID:    in.CompanyID,
		GodownID:     in.GodownID,
		Counterparty: in.KabadiwalaName,
		Items:        in.Scraps,
		AccountID:    in.AccountID,
	})
	if err != nil {
		h.fail(c, err, "Failed to record kabadiwala purchase")
		return
	}
	utils.Success(c, http.StatusCreated, gin.H{"kabadiwala_id": id})
}

// GET /kabadiwala/list/:company_id
func (h *Handler) KabadiwalaList(c *gin.Context) {
	companyID, err := parseID("company_id", c.Param("company_id"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	if !requireCompany(c, companyID) {
		return
	}
	rows, err := h.svc.ListKabadiwala(c.Request.Context(), service.PurchaseFilter{CompanyID: companyID})
	if err != nil {
		h.fail(c, err, "Failed to fetch kabadiwala records")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"data": rows})
}
