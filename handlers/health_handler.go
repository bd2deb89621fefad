package handlers

import (
	"time"

	"newsbridge-api/helper"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Helper *helper.HTTPHelper
}

func NewHealthHandler(h *helper.HTTPHelper) *HealthHandler {
	return &HealthHandler{Helper: h}
}

func (h *HealthHandler) Check(c *gin.Context) {
	h.Helper.SendSuccess(c, "Success", gin.H{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
