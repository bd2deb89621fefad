package handlers

import (
	"newsbridge-api/helper"
	"newsbridge-api/models"
	"newsbridge-api/services"

	"github.com/gin-gonic/gin"
)

type PreferenceHandler struct {
	preferenceService services.PreferenceService
	Helper            *helper.HTTPHelper
}

func NewPreferenceHandler(preferenceService services.PreferenceService, h *helper.HTTPHelper) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService, Helper: h}
}

func (h *PreferenceHandler) GetUserPreferences(c *gin.Context) {
	var params models.GetPreferencesParams
	if !h.Helper.BindAndValidate(c, &params) {
		return
	}

	pref, err := h.preferenceService.GetPreferences(params.UserID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", pref)
}

func (h *PreferenceHandler) UpdateUserPreferences(c *gin.Context) {
	var req models.UpdatePreferencesRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	pref, err := h.preferenceService.UpdatePreferences(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Preferences saved", pref)
}
