package controllers

import (
	"errors"
	"net/http"

	"github.com/azadgupta1010/GD-2.0/models"
	"github.com/azadgupta1010/GD-2.0/service"
	"github.com/azadgupta1010/GD-2.0/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "username and password are required")
		return
	}

	u, err := h.svc.Authenticate(c.Request.Context(), in.Username, in.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		utils.Error(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err != nil {
		h.fail(c, err, "Login failed")
		return
	}

	token, err := utils.GenerateToken(h.jwtSecret, utils.Claims{
		UserID:    u.ID.String(),
		Username:  u.Username,
		Role:      string(u.Role),
		CompanyID: u.CompanyID.String(),
	}, h.tokenTTL)
	if err != nil {
		h.fail(c, err, "Failed to issue token")
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user":  u,
	})
}

type UserCreateInput struct {
	Username string      `json:"username"`
	FullName string      `json:"full_name"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// POST /auth/users (owner only). The new user joins the caller's company.
func (h *Handler) UserCreate(c *gin.Context) {
	claims, err := currentClaims(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	companyID, err := uuid.Parse(claims.CompanyID)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var in UserCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if in.Role == "" {
		in.Role = models.RoleManager
	}

	u, err := h.svc.CreateUser(c.Request.Context(), service.UserInput{
		CompanyID: companyID,
		Username:  in.Username,
		FullName:  in.FullName,
		Password:  in.Password,
		Role:      in.Role,
	})
	if err != nil {
		h.fail(c, err, "Failed to create user")
		return
	}
	utils.Success(c, http.StatusCreated, gin.H{"user": u})
}
