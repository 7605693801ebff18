package domain

import "context"

const MaxQuizStyles = 3

type StyleQuizInput struct {
	Room        string   `json:"room"`
	StyleImages []string `json:"style_images"`
	Colors      []string `json:"colors"`
}

type StyleRecommendation struct {
	Category  string `json:"category"`
	Reasoning string `json:"reasoning"`
}

type StyleProfile struct {
	StyleName        string                `json:"style_name"`
	StyleDescription string                `json:"style_description"`
	Recommendations  []StyleRecommendation `json:"recommendations"`
}

type StyleQuizResult struct {
	Profile  StyleProfile `json:"profile"`
	Products []Product    `json:"products"`
}

type RecommendationInput struct {
	BrowsingHistory     string `json:"browsing_history"`
	StylePreferences    string `json:"style_preferences"`
	RoomCharacteristics string `json:"room_characteristics"`
}

type Recommendation struct {
	Recommendations string `json:"recommendations"`
}

// StyleAdvisor es el servicio externo de prompts (modelo generativo).
type StyleAdvisor interface {
	StyleProfile(ctx context.Context, in StyleQuizInput, categories []string) (*StyleProfile, error)
	Recommend(ctx context.Context, in RecommendationInput) (*Recommendation, error)
}
