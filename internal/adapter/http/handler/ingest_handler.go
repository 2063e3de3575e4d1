package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zenetodev/emailclassifier/internal/usecase"
)

// IngestHandler handles file ingestion HTTP requests
type IngestHandler struct {
	ingestUC usecase.IngestUsecase
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(ingestUC usecase.IngestUsecase) *IngestHandler {
	return &IngestHandler{ingestUC: ingestUC}
}

// Ingest handles POST /api/v1/ingest. The file arrives as multipart form
// data under the "file" field.
func (h *IngestHandler) Ingest(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		HandleInvalidRequest(c, "Nenhum arquivo fornecido")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		HandleUsecaseError(c, usecase.ErrFileUnreadable)
		return
	}
	defer func() { _ = f.Close() }()

	output, err := h.ingestUC.Ingest(c.Request.Context(), &usecase.IngestInput{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Reader:   f,
	})
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}
