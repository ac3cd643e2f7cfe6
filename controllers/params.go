package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/azadgupta1010/GD-2.0/middlewares"
	"github.com/azadgupta1010/GD-2.0/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func currentClaims(c *gin.Context) (*utils.Claims, error) {
	v, ok := c.Get(middlewares.ClaimsKey)
	if !ok {
		return nil, errors.New("claims not in context")
	}
	claims, ok := v.(*utils.Claims)
	if !ok || claims == nil {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// parseID reads an optional uuid; empty input gives uuid.Nil so the service
// reports the field as missing.
func parseID(name, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

func parseOptionalID(name, raw string) (*uuid.UUID, error) {
	id, err := parseID(name, raw)
	if err != nil || id == uuid.Nil {
		return nil, err
	}
	return &id, nil
}

func pathID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.New("invalid id")
	}
	return id, nil
}

// ownedPathID reads :id together with the caller's company, which scopes the
// lookup: rows of other companies are reported as not found.
func ownedPathID(c *gin.Context) (companyID, id uuid.UUID, ok bool) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err.Error())
		return uuid.Nil, uuid.Nil, false
	}
	if companyID, ok = callerCompany(c); !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return companyID, id, true
}

func parseDateField(name, raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, nil
	}
	t, err := utils.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

func parseOptionalDateField(name, raw string) (*time.Time, error) {
	t, err := utils.ParseOptionalDate(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

// callerCompany is the company carried by the caller's token. It writes the
// 401 itself when the claim is unusable.
func callerCompany(c *gin.Context) (uuid.UUID, bool) {
	claims, err := currentClaims(c)
	if err == nil {
		if id, err := uuid.Parse(claims.CompanyID); err == nil && id != uuid.Nil {
			return id, true
		}
	}
	utils.Error(c, http.StatusUnauthorized, "Unauthorized")
	return uuid.Nil, false
}

// requireCompany answers 403 when a requested company is not the caller's.
// A nil id passes so the service can report it as missing.
func requireCompany(c *gin.Context, id uuid.UUID) bool {
	if id == uuid.Nil {
		return true
	}
	own, ok := callerCompany(c)
	if !ok {
		return false
	}
	if own != id {
		utils.Error(c, http.StatusForbidden, "company not accessible with this token")
		return false
	}
	return true
}
