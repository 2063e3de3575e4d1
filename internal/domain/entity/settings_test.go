package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.False(t, s.AutoClassify)
	assert.Equal(t, ResponseStyleFormal, s.ResponseStyle)
	assert.Empty(t, s.EndpointURL)
}

func TestSettings_Normalize(t *testing.T) {
	t.Run("fills missing response style", func(t *testing.T) {
		s := &Settings{AutoClassify: true}
		s.Normalize()

		assert.Equal(t, ResponseStyleFormal, s.ResponseStyle)
		assert.True(t, s.AutoClassify)
	})

	t.Run("rejects unknown response style", func(t *testing.T) {
		s := &Settings{ResponseStyle: "sarcastic"}
		s.Normalize()

		assert.Equal(t, ResponseStyleFormal, s.ResponseStyle)
	})

	t.Run("keeps valid values untouched", func(t *testing.T) {
		s := &Settings{
			AutoClassify:  true,
			ResponseStyle: ResponseStyleCasual,
			EndpointURL:   "http://localhost:5000",
		}
		s.Normalize()

		assert.True(t, s.AutoClassify)
		assert.Equal(t, ResponseStyleCasual, s.ResponseStyle)
		assert.Equal(t, "http://localhost:5000", s.EndpointURL)
	})
}

func TestSettings_RoundTrip(t *testing.T) {
	original := &Settings{
		AutoClassify:  true,
		ResponseStyle: ResponseStyleTechnical,
		EndpointURL:   "https://classifier.example.com",
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored Settings
	require.NoError(t, json.Unmarshal(data, &restored))
	restored.Normalize()

	assert.Equal(t, *original, restored)
}

func TestSettings_PartialBlobGetsDefaults(t *testing.T) {
	var s Settings
	require.NoError(t, json.Unmarshal([]byte(`{"auto_classify": true}`), &s))
	s.Normalize()

	assert.True(t, s.AutoClassify)
	assert.Equal(t, ResponseStyleFormal, s.ResponseStyle)
}

func TestResponseStyle_IsValid(t *testing.T) {
	assert.True(t, ResponseStyleFormal.IsValid())
	assert.True(t, ResponseStyleCasual.IsValid())
	assert.True(t, ResponseStyleTechnical.IsValid())
	assert.False(t, ResponseStyle("").IsValid())
	assert.False(t, ResponseStyle("poetic").IsValid())
}
