package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zenetodev/emailclassifier/internal/domain/service"
)

// Error definitions for the ingest usecase
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrFileTooLarge      = errors.New("file too large")
	ErrFileUnreadable    = errors.New("file could not be read")
)

// File ingestion thresholds. Files at or above inlineReadLimit are handed to
// the remote upload endpoint instead of being read here.
const (
	maxFileSize     = 5 << 20   // 5MB
	inlineReadLimit = 100 << 10 // 100KB
)

// pdfPlaceholder stands in for PDF content: text extraction from PDFs is not
// implemented in the gateway, the server does it during upload.
const pdfPlaceholder = "[Arquivo PDF selecionado. O conteúdo será extraído e classificado pelo servidor através do envio do arquivo.]"

// IngestInput describes a file selected by the user
type IngestInput struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// IngestOutput carries either the inline file content or, for files routed
// to the upload endpoint, the classification the server produced
type IngestOutput struct {
	Content  string          `json:"content,omitempty"`
	Uploaded bool            `json:"uploaded"`
	Result   *ClassifyOutput `json:"result,omitempty"`
}

// IngestUsecase defines the interface for file ingestion
type IngestUsecase interface {
	// Ingest validates the file and either returns its content inline or
	// forwards it to the remote upload endpoint
	Ingest(ctx context.Context, input *IngestInput) (*IngestOutput, error)
}

type ingestUsecase struct {
	uploader service.Uploader
	logger   *zap.Logger
}

// NewIngestUsecase creates a new ingest usecase
func NewIngestUsecase(uploader service.Uploader, logger *zap.Logger) IngestUsecase {
	return &ingestUsecase{uploader: uploader, logger: logger}
}

func (u *ingestUsecase) Ingest(ctx context.Context, input *IngestInput) (*IngestOutput, error) {
	ext := strings.ToLower(filepath.Ext(input.Filename))
	if ext != ".txt" && ext != ".pdf" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if input.Size > maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, input.Size)
	}

	if input.Size >= inlineReadLimit {
		u.logger.Info("routing file to upload endpoint",
			zap.String("filename", input.Filename),
			zap.Int64("size", input.Size))

		start := time.Now()
		result, err := u.uploader.Upload(ctx, input.Filename, input.Reader)
		if err != nil {
			return nil, err
		}
		return &IngestOutput{
			Uploaded: true,
			Result:   toClassifyOutput(result, time.Since(start).Milliseconds()),
		}, nil
	}

	// PDFs never get read here regardless of size: extraction is deferred
	// to the server, the UI shows a placeholder instead.
	if ext == ".pdf" {
		return &IngestOutput{Content: pdfPlaceholder}, nil
	}

	content, err := io.ReadAll(io.LimitReader(input.Reader, inlineReadLimit))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileUnreadable, err)
	}

	u.logger.Debug("file read inline",
		zap.String("filename", input.Filename),
		zap.Int("bytes", len(content)))

	return &IngestOutput{Content: string(content)}, nil
}
