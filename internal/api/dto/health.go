package dto

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status             string            `json:"status"`
	Provider           string            `json:"provider"`
	SupportedLanguages []string          `json:"supported_languages"`
	SignStore          string            `json:"sign_store,omitempty"`
	Providers          map[string]string `json:"providers,omitempty"`
}
