package config

import (
	"fmt"

	"github.com/azadgupta1010/GD-2.0/models"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the dashboard uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Account{},
		&models.AccountTransaction{},
		&models.FeriwalaRecord{},
		&models.FeriwalaScrap{},
		&models.KabadiwalaRecord{},
		&models.KabadiwalaScrap{},
		&models.MaalOut{},
		&models.MaalOutItem{},
		&models.MaalIn{},
		&models.MaalInItem{},
		&models.MaalInPayment{},
		&models.GodownStock{},
		&models.StockHistory{},
		&models.Labour{},
		&models.LabourSalarySummary{},
		&models.Attendance{},
		&models.LabourSalary{},
		&models.LabourWithdrawal{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
