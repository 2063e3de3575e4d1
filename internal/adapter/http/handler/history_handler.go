package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zenetodev/emailclassifier/internal/domain/repository"
)

// HistoryHandler handles classification history HTTP requests
type HistoryHandler struct {
	history repository.HistoryRepository
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(history repository.HistoryRepository) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// List handles GET /api/v1/history
func (h *HistoryHandler) List(c *gin.Context) {
	p := ParsePagination(c)

	entries, total, err := h.history.List(c.Request.Context(), p.Limit, p.Offset)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, map[string]interface{}{
		"history":  entries,
		"total":    total,
		"limit":    p.Limit,
		"offset":   p.Offset,
		"has_more": int64(p.Offset+p.Limit) < total,
	})
}

// Clear handles DELETE /api/v1/history
func (h *HistoryHandler) Clear(c *gin.Context) {
	if err := h.history.Clear(c.Request.Context()); err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"cleared": true})
}
