package config

import (
	"fmt"

	"github.com/azadgupta1010/GD-2.0/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedOwner creates the first owner login when the users table is empty and
// bootstrap credentials are configured. It returns true when a user was created.
func SeedOwner(db *gorm.DB, cfg BootstrapConfig) (bool, error) {
	if cfg.OwnerUsername == "" || cfg.OwnerPassword == "" {
		return false, nil
	}

	var cnt int64
	if err := db.Model(&models.User{}).Count(&cnt).Error; err != nil {
		return false, err
	}
	if cnt > 0 {
		return false, nil
	}

	companyID := uuid.New()
	if cfg.CompanyID != "" {
		id, err := uuid.Parse(cfg.CompanyID)
		if err != nil {
			return false, fmt.Errorf("bootstrap company_id: %w", err)
		}
		companyID = id
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	owner := models.User{
		CompanyID:    companyID,
		Username:     cfg.OwnerUsername,
		FullName:     "Owner",
		PasswordHash: string(hash),
		Role:         models.RoleOwner,
		IsActive:     true,
	}
	if err := db.Create(&owner).Error; err != nil {
		return false, err
	}
	return true, nil
}
