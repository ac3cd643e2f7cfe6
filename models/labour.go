package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

type Labour struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"company_id"`
	GodownID      uuid.UUID       `gorm:"type:uuid;index;not null" json:"godown_id"`
	Name          string          `gorm:"size:180;not null" json:"name"`
	Contact       *string         `gorm:"size:40" json:"contact"`
	Role          *string         `gorm:"size:80" json:"role"`
	WorkerType    string          `gorm:"size:40;not null" json:"worker_type"` // Labour / Contractor
	DailyWage     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"daily_wage"`
	MonthlySalary decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monthly_salary"`
	PerKgRate     decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"per_kg_rate"`
	Status        string          `gorm:"size:20;not null" json:"status"`
	CreatedBy     *uuid.UUID      `gorm:"type:uuid" json:"created_by"`
	CreatedAt     time.Time       `gorm:"index" json:"created_at"`
}

func (Labour) TableName() string { return "labour" }

// LabourSalarySummary is opened with zero totals for the month a labour joins.
type LabourSalarySummary struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID   uuid.UUID       `gorm:"type:uuid;not null" json:"company_id"`
	GodownID    uuid.UUID       `gorm:"type:uuid;not null" json:"godown_id"`
	LabourID    uuid.UUID       `gorm:"type:uuid;index;not null" json:"labour_id"`
	Month       int             `gorm:"not null" json:"month"`
	Year        int             `gorm:"not null" json:"year"`
	TotalDays   int             `gorm:"not null" json:"total_days"`
	PresentDays int             `gorm:"not null" json:"present_days"`
	TotalEarned decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_earned"`
	TotalPaid   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_paid"`
	NetBalance  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"net_balance"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (LabourSalarySummary) TableName() string { return "labour_salary_summary" }

// Attendance is unique per labour and day at the storage level.
type Attendance struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID uuid.UUID      `gorm:"type:uuid;not null" json:"company_id"`
	GodownID  uuid.UUID      `gorm:"type:uuid;not null" json:"godown_id"`
	LabourID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_labour_date" json:"labour_id"`
	Date      datatypes.Date `gorm:"type:date;not null;uniqueIndex:idx_attendance_labour_date" json:"date"`
	Status    string         `gorm:"size:20;not null" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

func (Attendance) TableName() string { return "attendance" }

// LabourSalary is a daily wage accrual written when attendance is marked present.
type LabourSalary struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID uuid.UUID       `gorm:"type:uuid;not null" json:"company_id"`
	GodownID  uuid.UUID       `gorm:"type:uuid;not null" json:"godown_id"`
	LabourID  uuid.UUID       `gorm:"type:uuid;index;not null" json:"labour_id"`
	Date      datatypes.Date  `gorm:"type:date;not null" json:"date"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Paid      bool            `gorm:"not null" json:"paid"`
	CreatedAt time.Time       `json:"created_at"`
}

func (LabourSalary) TableName() string { return "labour_salary" }

type LabourWithdrawal struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID uuid.UUID       `gorm:"type:uuid;not null" json:"company_id"`
	GodownID  uuid.UUID       `gorm:"type:uuid;not null" json:"godown_id"`
	LabourID  uuid.UUID       `gorm:"type:uuid;index;not null" json:"labour_id"`
	Date      datatypes.Date  `gorm:"type:date;not null" json:"date"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Mode      string          `gorm:"size:20;not null" json:"mode"` // cash / bank / upi
	Type      string          `gorm:"size:20;not null" json:"type"` // salary / advance
	CreatedAt time.Time       `json:"created_at"`
}

func (l *Labour) BeforeCreate(tx *gorm.DB) error {
	assignID(&l.ID)
	return nil
}

func (s *LabourSalarySummary) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	return nil
}

func (s *LabourSalary) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}

func (w *LabourWithdrawal) BeforeCreate(tx *gorm.DB) error {
	assignID(&w.ID)
	return nil
}
