package service

import (
	"context"
	"errors"
	"strings"

	"github.com/azadgupta1010/GD-2.0/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func (s *service) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).
		Where("username = ? AND is_active = ?", strings.TrimSpace(username), true).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}

	now := s.now()
	if err := s.db.WithContext(ctx).Model(&u).Update("last_login_at", now).Error; err != nil {
		s.log.WithError(err).Warn("update last_login_at failed")
	}
	u.LastLoginAt = &now
	return u, nil
}

func (s *service) CreateUser(ctx context.Context, in UserInput) (models.User, error) {
	if err := in.validate(); err != nil {
		return models.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	u := models.User{
		CompanyID:    in.CompanyID,
		Username:     strings.TrimSpace(in.Username),
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: string(hash),
		Role:         in.Role,
		IsActive:     true,
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		if isUniqueViolation(err) {
			return models.User{}, invalid("username %q is already taken", u.Username)
		}
		return models.User{}, err
	}
	return u, nil
}
