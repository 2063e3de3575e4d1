package service

import (
	"context"
	"io"

	"github.com/zenetodev/emailclassifier/internal/domain/entity"
)

// Classifier defines the interface for the remote classification service
type Classifier interface {
	// Classify submits a single text and returns its classification
	Classify(ctx context.Context, text string) (*entity.ClassificationResult, error)
}

// Uploader defines the interface for forwarding a file to the remote upload
// endpoint. The remote side extracts the text and classifies it in one pass.
type Uploader interface {
	Upload(ctx context.Context, filename string, content io.Reader) (*entity.ClassificationResult, error)
}

// SettingsStore defines the interface for the single-blob settings storage
type SettingsStore interface {
	// Load retrieves the stored settings; implementations return defaults
	// when nothing is stored or the stored blob cannot be parsed
	Load(ctx context.Context) (*entity.Settings, error)

	// Save persists the settings
	Save(ctx context.Context, settings *entity.Settings) error
}
