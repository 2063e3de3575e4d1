package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zenetodev/emailclassifier/internal/usecase"
)

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsUC usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{settingsUC: settingsUC}
}

// Get handles GET /api/v1/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsUC.Get(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, settings)
}

// Update handles PUT /api/v1/settings. Only the fields present in the body
// are changed.
func (h *SettingsHandler) Update(c *gin.Context) {
	var input usecase.UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	settings, err := h.settingsUC.Update(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, settings)
}
