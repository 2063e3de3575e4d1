package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zenetodev/emailclassifier/internal/domain/entity"
)

// MockClassifier is a mock implementation of service.Classifier
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, text string) (*entity.ClassificationResult, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ClassificationResult), args.Error(1)
}

// MockHistoryRepository is a mock implementation of repository.HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Append(ctx context.Context, entry *entity.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) List(ctx context.Context, limit, offset int) ([]*entity.HistoryEntry, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.HistoryEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockHistoryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHistoryRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockSettingsStore is a mock implementation of service.SettingsStore
type MockSettingsStore struct {
	mock.Mock
}

func (m *MockSettingsStore) Load(ctx context.Context) (*entity.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Settings), args.Error(1)
}

func (m *MockSettingsStore) Save(ctx context.Context, settings *entity.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// blockingClassifier holds a classification open until released, to exercise
// the in-flight guard
type blockingClassifier struct {
	started chan struct{}
	release chan struct{}
}

func (c *blockingClassifier) Classify(context.Context, string) (*entity.ClassificationResult, error) {
	close(c.started)
	<-c.release
	return &entity.ClassificationResult{Category: entity.CategoryProductive, Confidence: 0.9}, nil
}

func productiveResult() *entity.ClassificationResult {
	return &entity.ClassificationResult{
		Category:       entity.CategoryProductive,
		Confidence:     0.92,
		SuggestedReply: "Recebemos sua solicitação e retornaremos em breve.",
		ProcessedText:  "resumo do texto",
		ModelUsed:      "distilbert-triage-v2",
		ServerTime:     "0.312s",
	}
}

func newTestUsecase(classifier *MockClassifier, history *MockHistoryRepository, store *MockSettingsStore) ClassifyUsecase {
	return NewClassifyUsecase(classifier, history, store, zap.NewNop())
}

func TestClassifyUsecase_Submit_Validation(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		expectedErr error
	}{
		{
			name:        "empty text",
			text:        "",
			expectedErr: ErrTextEmpty,
		},
		{
			name:        "whitespace only",
			text:        "   \n\t  ",
			expectedErr: ErrTextEmpty,
		},
		{
			name:        "single character",
			text:        "a",
			expectedErr: ErrTextTooShort,
		},
		{
			name:        "nine characters after trim",
			text:        "  123456789  ",
			expectedErr: ErrTextTooShort,
		},
		{
			name:        "over maximum length",
			text:        strings.Repeat("a", entity.MaxTextLength+1),
			expectedErr: ErrTextTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := new(MockClassifier)
			history := new(MockHistoryRepository)
			uc := newTestUsecase(classifier, history, new(MockSettingsStore))

			output, err := uc.Submit(context.Background(), tt.text)

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, output)
			classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
			history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		})
	}
}

func TestClassifyUsecase_Submit_BoundaryLengths(t *testing.T) {
	t.Run("exactly minimum length is accepted", func(t *testing.T) {
		classifier := new(MockClassifier)
		history := new(MockHistoryRepository)
		uc := newTestUsecase(classifier, history, new(MockSettingsStore))

		text := strings.Repeat("a", entity.MinTextLength)
		classifier.On("Classify", mock.Anything, text).Return(productiveResult(), nil)
		history.On("Append", mock.Anything, mock.AnythingOfType("*entity.HistoryEntry")).Return(nil)

		output, err := uc.Submit(context.Background(), text)

		require.NoError(t, err)
		assert.NotNil(t, output)
	})

	t.Run("exactly maximum length is accepted", func(t *testing.T) {
		classifier := new(MockClassifier)
		history := new(MockHistoryRepository)
		uc := newTestUsecase(classifier, history, new(MockSettingsStore))

		text := strings.Repeat("a", entity.MaxTextLength)
		classifier.On("Classify", mock.Anything, text).Return(productiveResult(), nil)
		history.On("Append", mock.Anything, mock.AnythingOfType("*entity.HistoryEntry")).Return(nil)

		_, err := uc.Submit(context.Background(), text)

		require.NoError(t, err)
	})
}

func TestClassifyUsecase_Submit_Success(t *testing.T) {
	classifier := new(MockClassifier)
	history := new(MockHistoryRepository)
	uc := newTestUsecase(classifier, history, new(MockSettingsStore))

	text := "Preciso de ajuda com o sistema de pagamentos, está travando"
	classifier.On("Classify", mock.Anything, text).Return(productiveResult(), nil)
	history.On("Append", mock.Anything, mock.AnythingOfType("*entity.HistoryEntry")).Return(nil)

	output, err := uc.Submit(context.Background(), text)

	require.NoError(t, err)
	assert.Equal(t, "Produtivo", output.Category)
	assert.Equal(t, 0.92, output.Confidence)
	assert.Equal(t, "very high", output.ConfidenceLevel)
	assert.Equal(t, "Recebemos sua solicitação e retornaremos em breve.", output.SuggestedReply)
	assert.Equal(t, "distilbert-triage-v2", output.ModelUsed)
	assert.GreaterOrEqual(t, output.ClientTimeMs, int64(0))

	classifier.AssertNumberOfCalls(t, "Classify", 1)
	history.AssertExpectations(t)
}

func TestClassifyUsecase_Submit_TrimsBeforeSending(t *testing.T) {
	classifier := new(MockClassifier)
	history := new(MockHistoryRepository)
	uc := newTestUsecase(classifier, history, new(MockSettingsStore))

	classifier.On("Classify", mock.Anything, "texto com espaços em volta").Return(productiveResult(), nil)
	history.On("Append", mock.Anything, mock.AnythingOfType("*entity.HistoryEntry")).Return(nil)

	_, err := uc.Submit(context.Background(), "   texto com espaços em volta   ")

	require.NoError(t, err)
	classifier.AssertExpectations(t)
}

func TestClassifyUsecase_Submit_UpstreamError(t *testing.T) {
	classifier := new(MockClassifier)
	history := new(MockHistoryRepository)
	uc := newTestUsecase(classifier, history, new(MockSettingsStore))

	upstreamErr := errors.New("classification service returned status 500: boom")
	classifier.On("Classify", mock.Anything, mock.Anything).Return(nil, upstreamErr).Once()

	output, err := uc.Submit(context.Background(), "texto válido de teste para envio")

	assert.Nil(t, output)
	assert.Equal(t, upstreamErr, err)
	history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)

	// Idle state restored: a follow-up submission goes through
	classifier.On("Classify", mock.Anything, mock.Anything).Return(productiveResult(), nil).Once()
	history.On("Append", mock.Anything, mock.AnythingOfType("*entity.HistoryEntry")).Return(nil)

	_, err = uc.Submit(context.Background(), "texto válido de teste para envio")
	require.NoError(t, err)
}

func TestClassifyUsecase_Submit_RejectsConcurrent(t *testing.T) {
	blocking := &blockingClassifier{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	history := new(MockHistoryRepository)
	history.On("Append", mock.Anything, mock.AnythingOfType("*entity.HistoryEntry")).Return(nil)
	uc := NewClassifyUsecase(blocking, history, new(MockSettingsStore), zap.NewNop())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := uc.Submit(context.Background(), "primeiro texto válido em andamento")
		assert.NoError(t, err)
	}()

	<-blocking.started

	// Second submission while the first is in flight
	output, err := uc.Submit(context.Background(), "segundo texto válido concorrente")
	assert.ErrorIs(t, err, ErrBusy)
	assert.Nil(t, output)

	close(blocking.release)
	wg.Wait()
}

func TestClassifyUsecase_SubmitDebounced(t *testing.T) {
	t.Run("gated off when auto-classify disabled", func(t *testing.T) {
		classifier := new(MockClassifier)
		store := new(MockSettingsStore)
		store.On("Load", mock.Anything).Return(&entity.Settings{AutoClassify: false}, nil)
		uc := newTestUsecase(classifier, new(MockHistoryRepository), store)

		scheduled := uc.SubmitDebounced(strings.Repeat("a", 60), nil)

		assert.False(t, scheduled)
	})

	t.Run("gated off when text too short", func(t *testing.T) {
		classifier := new(MockClassifier)
		store := new(MockSettingsStore)
		uc := newTestUsecase(classifier, new(MockHistoryRepository), store)

		scheduled := uc.SubmitDebounced(strings.Repeat("a", 50), nil)

		assert.False(t, scheduled)
		store.AssertNotCalled(t, "Load", mock.Anything)
	})

	t.Run("coalesces rapid drafts into one submission of the final text", func(t *testing.T) {
		classifier := new(MockClassifier)
		history := new(MockHistoryRepository)
		store := new(MockSettingsStore)
		store.On("Load", mock.Anything).Return(&entity.Settings{AutoClassify: true}, nil)
		uc := newTestUsecase(classifier, history, store)

		finalText := strings.Repeat("b", 80)
		classifier.On("Classify", mock.Anything, finalText).Return(productiveResult(), nil)
		history.On("Append", mock.Anything, mock.AnythingOfType("*entity.HistoryEntry")).Return(nil)

		done := make(chan struct{})
		for i, text := range []string{strings.Repeat("a", 60), strings.Repeat("a", 70), finalText} {
			var cb func(*ClassifyOutput, error)
			if i == 2 {
				cb = func(*ClassifyOutput, error) { close(done) }
			}
			assert.True(t, uc.SubmitDebounced(text, cb))
			time.Sleep(10 * time.Millisecond)
		}

		select {
		case <-done:
		case <-time.After(3 * time.Second):
			t.Fatal("debounced submission never fired")
		}

		classifier.AssertNumberOfCalls(t, "Classify", 1)
		classifier.AssertExpectations(t)
	})
}

func TestClassifyUsecase_Stats(t *testing.T) {
	classifier := new(MockClassifier)
	history := new(MockHistoryRepository)
	uc := newTestUsecase(classifier, history, new(MockSettingsStore))

	classifier.On("Classify", mock.Anything, mock.Anything).
		Return(productiveResult(), nil).Once()
	classifier.On("Classify", mock.Anything, mock.Anything).
		Return(&entity.ClassificationResult{Category: entity.CategoryUnproductive, Confidence: 0.7}, nil).Once()
	history.On("Append", mock.Anything, mock.AnythingOfType("*entity.HistoryEntry")).Return(nil)
	history.On("Count", mock.Anything).Return(int64(2), nil)

	_, err := uc.Submit(context.Background(), "primeiro texto válido para estatística")
	require.NoError(t, err)
	_, err = uc.Submit(context.Background(), "segundo texto válido para estatística")
	require.NoError(t, err)

	stats, err := uc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalProcessed)
	assert.Equal(t, int64(1), stats.Productive)
	assert.Equal(t, int64(1), stats.Unproductive)
	assert.Equal(t, int64(2), stats.HistoryCount)
}
