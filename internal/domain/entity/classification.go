package entity

import "strings"

// Category represents the triage category assigned to a message
type Category string

const (
	CategoryProductive   Category = "Produtivo"
	CategoryUnproductive Category = "Improdutivo"
)

// Text length limits applied to classification input after trimming
const (
	MinTextLength = 10
	MaxTextLength = 10000
)

// CategoryFromString parses a category label case-insensitively
func CategoryFromString(value string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "produtivo":
		return CategoryProductive, true
	case "improdutivo":
		return CategoryUnproductive, true
	}
	return "", false
}

// IsValid returns true if the category is a known label
func (c Category) IsValid() bool {
	return c == CategoryProductive || c == CategoryUnproductive
}

// ClassificationResult represents the outcome returned by the classification service
type ClassificationResult struct {
	Category       Category `json:"categoria"`
	Confidence     float64  `json:"confianca"`
	SuggestedReply string   `json:"resposta_sugerida"`
	ProcessedText  string   `json:"texto_processado"`
	ModelUsed      string   `json:"modelo_utilizado,omitempty"`
	ServerTime     string   `json:"tempo_processamento,omitempty"`
}

// ConfidenceLevel returns a coarse textual band for the confidence score
func (r *ClassificationResult) ConfidenceLevel() string {
	switch {
	case r.Confidence >= 0.9:
		return "very high"
	case r.Confidence >= 0.7:
		return "high"
	case r.Confidence >= 0.5:
		return "medium"
	default:
		return "low"
	}
}
