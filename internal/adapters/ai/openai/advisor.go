package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	goopenai "github.com/sashabaranov/go-openai"

	"github.com/phenrril/vishwakarma/internal/domain"
)

const (
	DefaultModel   = "gpt-4o-mini"
	requestTimeout = 60 * time.Second
)

// Advisor implementa domain.StyleAdvisor sobre la API de chat de OpenAI.
type Advisor struct {
	client *goopenai.Client
	model  string
}

func New(apiKey, model, baseURL string) *Advisor {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if model == "" {
		model = DefaultModel
	}
	return &Advisor{client: goopenai.NewClientWithConfig(cfg), model: model}
}

func (a *Advisor) StyleProfile(ctx context.Context, in domain.StyleQuizInput, categories []string) (*domain.StyleProfile, error) {
	prompt := fmt.Sprintf(`The user is decorating their: %s
They like styles described as: %s
Their preferred colors are: %s

Create a style profile for the user with a creative name (e.g. "Urban Modernist", "Earthy Minimalist", "Coastal Comfort").
Then recommend 3-4 furniture categories from this list that fit the style, each with a brief reasoning.

Available furniture categories: %s

Return JSON: {"styleName":"...","styleDescription":"...","recommendations":[{"category":"...","reasoning":"..."}]}`,
		in.Room, strings.Join(in.StyleImages, ", "), strings.Join(in.Colors, ", "), strings.Join(categories, ", "))

	content, err := a.complete(ctx, "You are an expert interior designer AI. Always answer with valid JSON.", prompt)
	if err != nil {
		return nil, err
	}
	var out struct {
		StyleName        string `json:"styleName"`
		StyleDescription string `json:"styleDescription"`
		Recommendations  []struct {
			Category  string `json:"category"`
			Reasoning string `json:"reasoning"`
		} `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		log.Error().Str("content", content).Err(err).Msg("respuesta de OpenAI no es JSON")
		return nil, fmt.Errorf("openai: parse style profile: %w", err)
	}
	if strings.TrimSpace(out.StyleName) == "" {
		return nil, errors.New("openai: perfil sin nombre")
	}
	p := &domain.StyleProfile{StyleName: out.StyleName, StyleDescription: out.StyleDescription}
	for _, r := range out.Recommendations {
		cat, ok := matchCategory(categories, r.Category)
		if !ok {
			log.Warn().Str("category", r.Category).Msg("categoría recomendada desconocida")
			continue
		}
		p.Recommendations = append(p.Recommendations, domain.StyleRecommendation{Category: cat, Reasoning: r.Reasoning})
	}
	return p, nil
}

func (a *Advisor) Recommend(ctx context.Context, in domain.RecommendationInput) (*domain.Recommendation, error) {
	prompt := fmt.Sprintf(`Browsing History: %s
Style Preferences: %s
Room Characteristics: %s

Provide a list of furniture recommendations that are suitable for the user.
Return JSON: {"recommendations":"..."}`, in.BrowsingHistory, in.StylePreferences, in.RoomCharacteristics)

	content, err := a.complete(ctx, "You are an AI furniture recommender. Always answer with valid JSON.", prompt)
	if err != nil {
		return nil, err
	}
	var out domain.Recommendation
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("openai: parse recommendations: %w", err)
	}
	return &out, nil
}

func (a *Advisor) complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	resp, err := a.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: a.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: system},
			{Role: goopenai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{Type: goopenai.ChatCompletionResponseFormatTypeJSONObject},
		MaxTokens:      1200,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: respuesta vacía")
	}
	return stripFences(resp.Choices[0].Message.Content), nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func matchCategory(known []string, got string) (string, bool) {
	got = strings.TrimSpace(got)
	if len(known) == 0 {
		return got, got != ""
	}
	for _, k := range known {
		if strings.EqualFold(k, got) {
			return k, true
		}
	}
	return "", false
}
