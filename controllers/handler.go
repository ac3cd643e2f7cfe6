package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/azadgupta1010/GD-2.0/service"
	"github.com/azadgupta1010/GD-2.0/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler serves every dashboard route on top of the injected service.
type Handler struct {
	svc       service.Service
	log       *logrus.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewHandler(svc service.Service, log *logrus.Logger, jwtSecret []byte, tokenTTL time.Duration) *Handler {
	return &Handler{
		svc:       svc,
		log:       log,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// fail maps a service error to a response. Request problems are echoed back;
// anything else is logged and answered with the route's generic message.
func (h *Handler) fail(c *gin.Context, err error, generic string) {
	switch {
	case service.IsClientError(err):
		utils.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		utils.Error(c, http.StatusNotFound, err.Error())
	default:
		h.log.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error(generic)
		utils.Error(c, http.StatusInternalServerError, generic)
	}
}

func badRequest(c *gin.Context, msg string) {
	utils.Error(c, http.StatusBadRequest, msg)
}
