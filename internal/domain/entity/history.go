package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxHistoryEntries bounds the classification history; the oldest entry is
// evicted first once the cap is reached.
const MaxHistoryEntries = 50

// historyTextLimit caps how much of the original text a history entry keeps.
const historyTextLimit = 200

// HistoryEntry records one completed classification
type HistoryEntry struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Category       Category  `json:"categoria" gorm:"type:varchar(20);not null"`
	Confidence     float64   `json:"confianca" gorm:"type:decimal(5,4)"`
	SuggestedReply string    `json:"resposta_sugerida" gorm:"type:text"`
	OriginalText   string    `json:"texto_original" gorm:"type:varchar(200);not null"`
	ModelUsed      string    `json:"modelo_utilizado" gorm:"type:varchar(100)"`
	ClientTimeMs   int64     `json:"tempo_cliente_ms" gorm:"default:0"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName returns the table name for GORM
func (HistoryEntry) TableName() string {
	return "classification_history"
}

// NewHistoryEntry creates a history entry from a result and the submitted text
func NewHistoryEntry(result *ClassificationResult, originalText string, clientTimeMs int64) *HistoryEntry {
	return &HistoryEntry{
		ID:             uuid.New(),
		Category:       result.Category,
		Confidence:     result.Confidence,
		SuggestedReply: result.SuggestedReply,
		OriginalText:   TruncateText(originalText, historyTextLimit),
		ModelUsed:      result.ModelUsed,
		ClientTimeMs:   clientTimeMs,
		CreatedAt:      time.Now().UTC(),
	}
}

// TruncateText shortens s to at most max runes, appending an ellipsis when cut
func TruncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
