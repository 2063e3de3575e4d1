package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/zenetodev/emailclassifier/internal/debounce"
	"github.com/zenetodev/emailclassifier/internal/domain/entity"
	"github.com/zenetodev/emailclassifier/internal/domain/repository"
	"github.com/zenetodev/emailclassifier/internal/domain/service"
	"github.com/zenetodev/emailclassifier/internal/metrics"
)

// Error definitions for the classify usecase
var (
	ErrTextEmpty    = errors.New("text is empty")
	ErrTextTooShort = errors.New("text is too short")
	ErrTextTooLong  = errors.New("text is too long")
	ErrBusy         = errors.New("a classification is already in flight")
)

// Auto-classify gating: drafts are only submitted when the text is longer
// than this, after the quiescence window with no further edits.
const (
	autoClassifyMinLength  = 50
	autoClassifyQuiescence = 1000 * time.Millisecond
)

// ClassifyInput represents a classification submission
type ClassifyInput struct {
	Text string `json:"texto" binding:"required"`
}

// ClassifyOutput represents the result returned to the presentation layer
type ClassifyOutput struct {
	Category        string  `json:"categoria"`
	Confidence      float64 `json:"confianca"`
	ConfidenceLevel string  `json:"nivel_confianca"`
	SuggestedReply  string  `json:"resposta_sugerida"`
	ProcessedText   string  `json:"texto_processado"`
	ModelUsed       string  `json:"modelo_utilizado,omitempty"`
	ServerTime      string  `json:"tempo_processamento,omitempty"`
	ClientTimeMs    int64   `json:"tempo_cliente_ms"`
}

// StatsOutput summarizes processing counters since startup
type StatsOutput struct {
	TotalProcessed  int64   `json:"total_processed"`
	Productive      int64   `json:"productive"`
	Unproductive    int64   `json:"unproductive"`
	AvgClientTimeMs float64 `json:"avg_client_time_ms"`
	HistoryCount    int64   `json:"history_count"`
}

// ClassifyUsecase defines the interface for classification orchestration
type ClassifyUsecase interface {
	// Submit validates the text and issues a single classification request.
	// At most one request is in flight at any time; concurrent calls get
	// ErrBusy instead of being queued.
	Submit(ctx context.Context, text string) (*ClassifyOutput, error)

	// SubmitDebounced schedules a trailing-edge debounced Submit for a draft
	// text. Returns true if scheduled, false when gated off (auto-classify
	// disabled or text too short). done may be nil.
	SubmitDebounced(text string, done func(*ClassifyOutput, error)) bool

	// Stats returns processing counters since startup
	Stats(ctx context.Context) (*StatsOutput, error)
}

type classifyUsecase struct {
	classifier    service.Classifier
	history       repository.HistoryRepository
	settingsStore service.SettingsStore
	logger        *zap.Logger

	inFlight  atomic.Bool
	debouncer *debounce.Debouncer

	statsMu       sync.Mutex
	total         int64
	productive    int64
	unproductive  int64
	totalClientMs int64
}

// NewClassifyUsecase creates a new classify usecase
func NewClassifyUsecase(
	classifier service.Classifier,
	history repository.HistoryRepository,
	settingsStore service.SettingsStore,
	logger *zap.Logger,
) ClassifyUsecase {
	return &classifyUsecase{
		classifier:    classifier,
		history:       history,
		settingsStore: settingsStore,
		logger:        logger,
		debouncer:     debounce.New(autoClassifyQuiescence),
	}
}

func (u *classifyUsecase) Submit(ctx context.Context, text string) (*ClassifyOutput, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrTextEmpty
	}
	length := len([]rune(trimmed))
	if length < entity.MinTextLength {
		return nil, ErrTextTooShort
	}
	if length > entity.MaxTextLength {
		return nil, ErrTextTooLong
	}

	if !u.inFlight.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer u.inFlight.Store(false)

	start := time.Now()
	result, err := u.classifier.Classify(ctx, trimmed)
	if err != nil {
		metrics.ClassificationFailures.WithLabelValues("upstream").Inc()
		u.logger.Warn("classification request failed",
			zap.Int("text_length", length),
			zap.Error(err))
		return nil, err
	}
	elapsed := time.Since(start)
	elapsedMs := elapsed.Milliseconds()

	entry := entity.NewHistoryEntry(result, trimmed, elapsedMs)
	if err := u.history.Append(ctx, entry); err != nil {
		// The classification succeeded; losing the history row is not a
		// reason to fail the submission.
		u.logger.Warn("failed to record history entry", zap.Error(err))
	}

	u.recordStats(result.Category, elapsedMs)
	metrics.ClassificationsTotal.WithLabelValues(string(result.Category)).Inc()
	metrics.ClassificationDuration.Observe(elapsed.Seconds())

	u.logger.Info("text classified",
		zap.String("category", string(result.Category)),
		zap.Float64("confidence", result.Confidence),
		zap.Int64("client_time_ms", elapsedMs))

	return toClassifyOutput(result, elapsedMs), nil
}

func (u *classifyUsecase) SubmitDebounced(text string, done func(*ClassifyOutput, error)) bool {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) <= autoClassifyMinLength {
		return false
	}

	current, err := u.settingsStore.Load(context.Background())
	if err != nil {
		u.logger.Warn("failed to load settings for auto-classify", zap.Error(err))
		return false
	}
	if !current.AutoClassify {
		return false
	}

	u.debouncer.Do(func() {
		out, err := u.Submit(context.Background(), trimmed)
		if err != nil {
			u.logger.Debug("auto-classify submission failed", zap.Error(err))
		}
		if done != nil {
			done(out, err)
		}
	})
	return true
}

func (u *classifyUsecase) Stats(ctx context.Context) (*StatsOutput, error) {
	historyCount, err := u.history.Count(ctx)
	if err != nil {
		return nil, err
	}

	u.statsMu.Lock()
	defer u.statsMu.Unlock()

	var avg float64
	if u.total > 0 {
		avg = float64(u.totalClientMs) / float64(u.total)
	}

	return &StatsOutput{
		TotalProcessed:  u.total,
		Productive:      u.productive,
		Unproductive:    u.unproductive,
		AvgClientTimeMs: avg,
		HistoryCount:    historyCount,
	}, nil
}

func (u *classifyUsecase) recordStats(category entity.Category, clientMs int64) {
	u.statsMu.Lock()
	defer u.statsMu.Unlock()

	u.total++
	u.totalClientMs += clientMs
	if category == entity.CategoryProductive {
		u.productive++
	} else {
		u.unproductive++
	}
}

func toClassifyOutput(result *entity.ClassificationResult, clientMs int64) *ClassifyOutput {
	return &ClassifyOutput{
		Category:        string(result.Category),
		Confidence:      result.Confidence,
		ConfidenceLevel: result.ConfidenceLevel(),
		SuggestedReply:  result.SuggestedReply,
		ProcessedText:   result.ProcessedText,
		ModelUsed:       result.ModelUsed,
		ServerTime:      result.ServerTime,
		ClientTimeMs:    clientMs,
	}
}
