package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zenetodev/emailclassifier/internal/adapter/client"
	"github.com/zenetodev/emailclassifier/internal/usecase"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapUsecaseError maps usecase and client errors to HTTP error responses.
// It provides consistent error handling across all handlers. User-facing
// messages are in Portuguese, matching the classification wire format.
func MapUsecaseError(err error) ErrorResponse {
	var serverErr *client.ServerError
	var networkErr *client.NetworkError

	switch {
	case errors.Is(err, usecase.ErrTextEmpty):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "INVALID_REQUEST",
			Message:    "Nenhum texto fornecido",
		}
	case errors.Is(err, usecase.ErrTextTooShort):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "INVALID_REQUEST",
			Message:    "Texto muito curto para classificação (mínimo 10 caracteres)",
		}
	case errors.Is(err, usecase.ErrTextTooLong):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "INVALID_REQUEST",
			Message:    "Texto muito longo (máximo 10000 caracteres)",
		}
	case errors.Is(err, usecase.ErrBusy):
		return ErrorResponse{
			StatusCode: http.StatusTooManyRequests,
			Code:       "BUSY",
			Message:    "Já existe uma classificação em andamento",
		}
	case errors.Is(err, usecase.ErrUnsupportedFormat):
		return ErrorResponse{
			StatusCode: http.StatusUnsupportedMediaType,
			Code:       "UNSUPPORTED_FORMAT",
			Message:    "Formato de arquivo não suportado. Use .txt ou .pdf",
		}
	case errors.Is(err, usecase.ErrFileTooLarge):
		return ErrorResponse{
			StatusCode: http.StatusRequestEntityTooLarge,
			Code:       "FILE_TOO_LARGE",
			Message:    "Arquivo muito grande. O tamanho máximo é 5MB",
		}
	case errors.Is(err, usecase.ErrFileUnreadable):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "INVALID_REQUEST",
			Message:    "Não foi possível ler o arquivo",
		}
	case errors.Is(err, usecase.ErrInvalidSettings):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "INVALID_REQUEST",
			Message:    "Configurações inválidas",
		}
	case errors.As(err, &serverErr):
		return ErrorResponse{
			StatusCode: http.StatusBadGateway,
			Code:       "UPSTREAM_ERROR",
			Message:    "O serviço de classificação retornou um erro",
		}
	case errors.As(err, &networkErr):
		return ErrorResponse{
			StatusCode: http.StatusServiceUnavailable,
			Code:       "SERVICE_UNAVAILABLE",
			Message:    "Não foi possível conectar ao serviço de classificação. Verifique sua conexão.",
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       "INTERNAL_ERROR",
			Message:    "internal server error",
		}
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP response.
// It maps the error to an HTTP status and sends a JSON error response.
func HandleUsecaseError(c *gin.Context, err error) {
	errResp := MapUsecaseError(err)
	respondError(c, errResp.StatusCode, errResp.Code, errResp.Message)
}

// HandleInvalidRequest handles a generic invalid request error.
func HandleInvalidRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "INVALID_REQUEST", message)
}
