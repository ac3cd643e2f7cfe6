package service

import (
	"context"
	"strings"

	"github.com/azadgupta1010/GD-2.0/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LabourSummary is a labour row with its lifetime withdrawals and accrued salary.
type LabourSummary struct {
	models.Labour
	TotalWithdrawn    decimal.Decimal `json:"total_withdrawn"`
	TotalSalaryEarned decimal.Decimal `json:"total_salary_earned"`
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// AddLabour inserts the labour and opens its salary summary for the current month.
func (s *service) AddLabour(ctx context.Context, in LabourInput) (models.Labour, error) {
	if err := in.validate(); err != nil {
		return models.Labour{}, err
	}
	workerType := strings.TrimSpace(in.WorkerType)
	if workerType == "" {
		workerType = "Labour"
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = "Active"
	}

	l := models.Labour{
		CompanyID:     in.CompanyID,
		GodownID:      in.GodownID,
		Name:          strings.TrimSpace(in.Name),
		Contact:       optional(in.Contact),
		Role:          optional(in.Role),
		WorkerType:    workerType,
		DailyWage:     in.DailyWage.Round(2),
		MonthlySalary: in.MonthlySalary.Round(2),
		PerKgRate:     in.PerKgRate.Round(3),
		Status:        status,
		CreatedBy:     in.CreatedBy,
	}

	now := s.now()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&l).Error; err != nil {
			return err
		}
		return tx.Create(&models.LabourSalarySummary{
			CompanyID:   l.CompanyID,
			GodownID:    l.GodownID,
			LabourID:    l.ID,
			Month:       int(now.Month()),
			Year:        now.Year(),
			TotalEarned: decimal.Zero,
			TotalPaid:   decimal.Zero,
			NetBalance:  decimal.Zero,
		}).Error
	})
	if err != nil {
		return models.Labour{}, err
	}
	return l, nil
}

type labourAgg struct {
	LabourID uuid.UUID
	Total    decimal.Decimal
}

func (s *service) sumByLabour(ctx context.Context, model any, ids []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	var rows []labourAgg
	if err := s.db.WithContext(ctx).Model(model).
		Select("labour_id, COALESCE(SUM(amount), 0) AS total").
		Where("labour_id IN ?", ids).
		Group("labour_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, r := range rows {
		out[r.LabourID] = r.Total.Round(2)
	}
	return out, nil
}

func (s *service) ListLabour(ctx context.Context, companyID, godownID uuid.UUID) ([]LabourSummary, error) {
	if companyID == uuid.Nil || godownID == uuid.Nil {
		return nil, invalid("company_id and godown_id are required")
	}

	var rows []models.Labour
	if err := s.db.WithContext(ctx).
		Where("company_id = ? AND godown_id = ?", companyID, godownID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]LabourSummary, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, l := range rows {
		ids = append(ids, l.ID)
	}

	withdrawn, err := s.sumByLabour(ctx, &models.LabourWithdrawal{}, ids)
	if err != nil {
		return nil, err
	}
	earned, err := s.sumByLabour(ctx, &models.LabourSalary{}, ids)
	if err != nil {
		return nil, err
	}

	for _, l := range rows {
		out = append(out, LabourSummary{
			Labour:            l,
			TotalWithdrawn:    withdrawn[l.ID],
			TotalSalaryEarned: earned[l.ID],
		})
	}
	return out, nil
}

// MarkAttendance writes one attendance row per labour and day. The unique
// index on (labour_id, date) rejects a second mark even under concurrent
// requests. A present mark also accrues one unpaid day of wage.
func (s *service) MarkAttendance(ctx context.Context, in AttendanceInput) (models.Attendance, error) {
	if err := in.validate(); err != nil {
		return models.Attendance{}, err
	}
	status := strings.ToLower(strings.TrimSpace(in.Status))

	var att models.Attendance
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var l models.Labour
		if err := tx.First(&l, "id = ? AND company_id = ?", in.LabourID, in.CompanyID).Error; err != nil {
			return notFound(err, ErrLabourNotFound)
		}

		att = models.Attendance{
			CompanyID: l.CompanyID,
			GodownID:  l.GodownID,
			LabourID:  l.ID,
			Date:      datatypes.Date(in.Date),
			Status:    status,
		}
		if err := tx.Create(&att).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateAttendance
			}
			return err
		}

		if status != models.AttendancePresent {
			return nil
		}
		// zero-value decimal when no wage is configured
		return tx.Create(&models.LabourSalary{
			CompanyID: l.CompanyID,
			GodownID:  l.GodownID,
			LabourID:  l.ID,
			Date:      datatypes.Date(in.Date),
			Amount:    l.DailyWage,
			Paid:      false,
		}).Error
	})
	if err != nil {
		return models.Attendance{}, err
	}
	return att, nil
}

func (s *service) RecordLabourPayment(ctx context.Context, in LabourPaymentInput) (models.LabourWithdrawal, error) {
	if err := in.validate(); err != nil {
		return models.LabourWithdrawal{}, err
	}
	mode := strings.ToLower(strings.TrimSpace(in.Mode))
	if mode == "" {
		mode = "cash"
	}
	typ := strings.ToLower(strings.TrimSpace(in.Type))
	if typ == "" {
		typ = "salary"
	}

	db := s.db.WithContext(ctx)
	var l models.Labour
	if err := db.First(&l, "id = ? AND company_id = ?", in.LabourID, in.CompanyID).Error; err != nil {
		return models.LabourWithdrawal{}, notFound(err, ErrLabourNotFound)
	}

	w := models.LabourWithdrawal{
		CompanyID: l.CompanyID,
		GodownID:  l.GodownID,
		LabourID:  l.ID,
		Date:      datatypes.Date(in.Date),
		Amount:    in.Amount.Round(2),
		Mode:      mode,
		Type:      typ,
	}
	if err := db.Create(&w).Error; err != nil {
		return models.LabourWithdrawal{}, err
	}
	return w, nil
}
