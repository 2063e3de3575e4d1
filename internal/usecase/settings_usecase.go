package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/zenetodev/emailclassifier/internal/domain/entity"
	"github.com/zenetodev/emailclassifier/internal/domain/service"
)

// ErrInvalidSettings is returned when an update carries an unknown value
var ErrInvalidSettings = errors.New("invalid settings")

// EndpointConfigurer receives the effective classifier base URL whenever
// the stored settings change it
type EndpointConfigurer interface {
	SetBaseURL(baseURL string)
}

// UpdateSettingsInput is a partial settings update; nil fields are left
// unchanged
type UpdateSettingsInput struct {
	AutoClassify  *bool   `json:"auto_classify"`
	ResponseStyle *string `json:"response_style"`
	EndpointURL   *string `json:"endpoint_url"`
}

// SettingsUsecase defines the interface for settings management
type SettingsUsecase interface {
	// Get returns the current settings, defaults included
	Get(ctx context.Context) (*entity.Settings, error)

	// Update merges the given fields over the stored settings and saves
	Update(ctx context.Context, input *UpdateSettingsInput) (*entity.Settings, error)

	// ApplyEndpoint pushes the stored endpoint override (if any) to the
	// classifier client. Called once at startup.
	ApplyEndpoint(ctx context.Context) error
}

type settingsUsecase struct {
	store          service.SettingsStore
	endpoint       EndpointConfigurer
	defaultBaseURL string
	logger         *zap.Logger
}

// NewSettingsUsecase creates a new settings usecase. defaultBaseURL is the
// environment-selected classifier base used when no override is stored.
func NewSettingsUsecase(
	store service.SettingsStore,
	endpoint EndpointConfigurer,
	defaultBaseURL string,
	logger *zap.Logger,
) SettingsUsecase {
	return &settingsUsecase{
		store:          store,
		endpoint:       endpoint,
		defaultBaseURL: defaultBaseURL,
		logger:         logger,
	}
}

func (u *settingsUsecase) Get(ctx context.Context) (*entity.Settings, error) {
	return u.store.Load(ctx)
}

func (u *settingsUsecase) Update(ctx context.Context, input *UpdateSettingsInput) (*entity.Settings, error) {
	current, err := u.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if input.AutoClassify != nil {
		current.AutoClassify = *input.AutoClassify
	}
	if input.ResponseStyle != nil {
		style := entity.ResponseStyle(*input.ResponseStyle)
		if !style.IsValid() {
			return nil, fmt.Errorf("%w: unknown response style %q", ErrInvalidSettings, *input.ResponseStyle)
		}
		current.ResponseStyle = style
	}
	if input.EndpointURL != nil {
		current.EndpointURL = *input.EndpointURL
	}

	if err := u.store.Save(ctx, current); err != nil {
		return nil, err
	}

	u.applyEndpoint(current)
	u.logger.Info("settings updated",
		zap.Bool("auto_classify", current.AutoClassify),
		zap.String("response_style", string(current.ResponseStyle)))

	return current, nil
}

func (u *settingsUsecase) ApplyEndpoint(ctx context.Context) error {
	current, err := u.store.Load(ctx)
	if err != nil {
		return err
	}
	u.applyEndpoint(current)
	return nil
}

func (u *settingsUsecase) applyEndpoint(s *entity.Settings) {
	if u.endpoint == nil {
		return
	}
	if s.EndpointURL != "" {
		u.endpoint.SetBaseURL(s.EndpointURL)
		return
	}
	u.endpoint.SetBaseURL(u.defaultBaseURL)
}
