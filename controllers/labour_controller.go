package controllers

import (
	"net/http"

	"github.com/azadgupta1010/GD-2.0/service"
	"github.com/azadgupta1010/GD-2.0/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LabourAddInput struct {
	CompanyID     uuid.UUID       `json:"company_id"`
	GodownID      uuid.UUID       `json:"godown_id"`
	Name          string          `json:"name"`
	Contact       string          `json:"contact"`
	Role          string          `json:"role"`
	WorkerType    string          `json:"worker_type"`
	DailyWage     decimal.Decimal `json:"daily_wage"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	PerKgRate     decimal.Decimal `json:"per_kg_rate"`
	Status        string          `json:"status"`
}

// POST /labour/add
func (h *Handler) LabourAdd(c *gin.Context) {
	var in LabourAddInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !requireCompany(c, in.CompanyID) {
		return
	}

	var createdBy *uuid.UUID
	if claims, err := currentClaims(c); err == nil {
		if id, err := uuid.Parse(claims.UserID); err == nil {
			createdBy = &id
		}
	}

	l, err := h.svc.AddLabour(c.Request.Context(), service.LabourInput{
		CompanyID:     in.CompanyID,
		GodownID:      in.GodownID,
		Name:          in.Name,
		Contact:       in.Contact,
		Role:          in.Role,
		WorkerType:    in.WorkerType,
		DailyWage:     in.DailyWage,
		MonthlySalary: in.MonthlySalary,
		PerKgRate:     in.PerKgRate,
		Status:        in.Status,
		CreatedBy:     createdBy,
	})
	if err != nil {
		h.fail(c, err, "Failed to add labour")
		return
	}
	utils.Success(c, http.StatusCreated, gin.H{"labour": l})
}

// GET /labour/all?company_id=&godown_id=
func (h *Handler) LabourAll(c *gin.Context) {
	companyID, godownID, ok := scopeQuery(c)
	if !ok {
		return
	}
	rows, err := h.svc.ListLabour(c.Request.Context(), companyID, godownID)
	if err != nil {
		h.fail(c, err, "Failed to fetch labour")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"labour": rows})
}

type AttendanceMarkInput struct {
	LabourID uuid.UUID `json:"labour_id"`
	Date     string    `json:"date"`
	Status   string    `json:"status"`
}

// POST /labour/attendance/mark
func (h *Handler) AttendanceMark(c *gin.Context) {
	var in AttendanceMarkInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	date, err := parseDateField("date", in.Date)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	companyID, ok := callerCompany(c)
	if !ok {
		return
	}

	a, err := h.svc.MarkAttendance(c.Request.Context(), service.AttendanceInput{
		CompanyID: companyID,
		LabourID:  in.LabourID,
		Date:      date,
		Status:    in.Status,
	})
	if err != nil {
		h.fail(c, err, "Failed to mark attendance")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{
		"attendance": a,
		"message":    "Attendance marked",
	})
}

type LabourPaymentRequest struct {
	LabourID uuid.UUID       `json:"labour_id"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
	Mode     string          `json:"mode"`
	Type     string          `json:"type"`
}

// POST /labour/payment
func (h *Handler) LabourPayment(c *gin.Context) {
	var in LabourPaymentRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	date, err := parseDateField("date", in.Date)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	companyID, ok := callerCompany(c)
	if !ok {
		return
	}

	w, err := h.svc.RecordLabourPayment(c.Request.Context(), service.LabourPaymentInput{
		CompanyID: companyID,
		LabourID:  in.LabourID,
		Amount:    in.Amount,
		Date:      date,
		Mode:      in.Mode,
		Type:      in.Type,
	})
	if err != nil {
		h.fail(c, err, "Failed to record labour payment")
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"withdrawal": w})
}
