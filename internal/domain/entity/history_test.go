package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHistoryEntry(t *testing.T) {
	result := &ClassificationResult{
		Category:       CategoryProductive,
		Confidence:     0.87,
		SuggestedReply: "Recebemos sua solicitação e retornaremos em breve.",
		ProcessedText:  "resumo",
		ModelUsed:      "distilbert-triage-v2",
	}

	entry := NewHistoryEntry(result, "Preciso de ajuda com o sistema de pagamentos", 142)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, CategoryProductive, entry.Category)
	assert.Equal(t, 0.87, entry.Confidence)
	assert.Equal(t, result.SuggestedReply, entry.SuggestedReply)
	assert.Equal(t, "Preciso de ajuda com o sistema de pagamentos", entry.OriginalText)
	assert.Equal(t, "distilbert-triage-v2", entry.ModelUsed)
	assert.Equal(t, int64(142), entry.ClientTimeMs)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestNewHistoryEntry_TruncatesLongText(t *testing.T) {
	result := &ClassificationResult{Category: CategoryUnproductive, Confidence: 0.5}
	long := strings.Repeat("a", 500)

	entry := NewHistoryEntry(result, long, 10)

	assert.Len(t, []rune(entry.OriginalText), 200)
	assert.True(t, strings.HasSuffix(entry.OriginalText, "..."))
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{
			name:     "shorter than limit",
			input:    "hello",
			max:      10,
			expected: "hello",
		},
		{
			name:     "exactly at limit",
			input:    "hello",
			max:      5,
			expected: "hello",
		},
		{
			name:     "over limit gets ellipsis",
			input:    "hello world",
			max:      8,
			expected: "hello...",
		},
		{
			name:     "tiny limit",
			input:    "hello",
			max:      2,
			expected: "he",
		},
		{
			name:     "multibyte runes counted not bytes",
			input:    "solicitação urgente de suporte técnico",
			max:      15,
			expected: "solicitação ...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateText(tt.input, tt.max))
		})
	}
}
