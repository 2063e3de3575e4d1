package entity

// ResponseStyle selects the tone of suggested replies
type ResponseStyle string

const (
	ResponseStyleFormal    ResponseStyle = "formal"
	ResponseStyleCasual    ResponseStyle = "casual"
	ResponseStyleTechnical ResponseStyle = "technical"
)

// IsValid returns true if the style is a known value
func (s ResponseStyle) IsValid() bool {
	switch s {
	case ResponseStyleFormal, ResponseStyleCasual, ResponseStyleTechnical:
		return true
	}
	return false
}

// Settings holds the user-tunable preferences of the gateway. A single
// instance exists per application; it is loaded at startup and saved on
// demand as one JSON blob.
type Settings struct {
	AutoClassify  bool          `json:"auto_classify"`
	ResponseStyle ResponseStyle `json:"response_style"`
	// EndpointURL overrides the environment-selected classifier base URL
	// when non-empty.
	EndpointURL string `json:"endpoint_url,omitempty"`
}

// DefaultSettings returns the settings used when nothing is stored
func DefaultSettings() *Settings {
	return &Settings{
		AutoClassify:  false,
		ResponseStyle: ResponseStyleFormal,
	}
}

// Normalize fills defaults under any missing or invalid fields. Stored
// settings always pass through here so a partial blob never surfaces
// half-initialized values.
func (s *Settings) Normalize() {
	if !s.ResponseStyle.IsValid() {
		s.ResponseStyle = ResponseStyleFormal
	}
}
