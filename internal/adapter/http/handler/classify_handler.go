package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zenetodev/emailclassifier/internal/usecase"
)

// ClassifyHandler handles classification HTTP requests
type ClassifyHandler struct {
	classifyUC usecase.ClassifyUsecase
}

// NewClassifyHandler creates a new classify handler
func NewClassifyHandler(classifyUC usecase.ClassifyUsecase) *ClassifyHandler {
	return &ClassifyHandler{classifyUC: classifyUC}
}

// Classify handles POST /api/v1/classify
func (h *ClassifyHandler) Classify(c *gin.Context) {
	var input usecase.ClassifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleInvalidRequest(c, "Nenhum texto fornecido")
		return
	}

	output, err := h.classifyUC.Submit(c.Request.Context(), input.Text)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// ClassifyAuto handles POST /api/v1/classify/auto. The submission is
// debounced: it only reaches the classification service after the quiescence
// window passes with no further drafts, and later drafts supersede it.
func (h *ClassifyHandler) ClassifyAuto(c *gin.Context) {
	var input usecase.ClassifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleInvalidRequest(c, "Nenhum texto fornecido")
		return
	}

	scheduled := h.classifyUC.SubmitDebounced(input.Text, nil)
	respondSuccess(c, http.StatusAccepted, gin.H{"scheduled": scheduled})
}

// Stats handles GET /api/v1/stats
func (h *ClassifyHandler) Stats(c *gin.Context) {
	output, err := h.classifyUC.Stats(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}
