package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type GeminiService interface {
	GenerateStructured(ctx context.Context, parts []*genai.Part, schema *genai.Schema) (string, error)
}

type geminiService struct {
	client      *genai.Client
	modelName   string
	temperature float32
}

func NewGeminiService(ctx context.Context, apiKey, modelName string, temperature float32) (GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:      client,
		modelName:   modelName,
		temperature: temperature,
	}, nil
}

// GenerateStructured sends the user parts together with a declared response
// schema and returns the JSON answer text. Conformance to the schema is the
// backend's responsibility; callers only unmarshal the result.
func (g *geminiService) GenerateStructured(ctx context.Context, parts []*genai.Part, schema *genai.Schema) (string, error) {
	contents := []*genai.Content{{
		Role:  "user",
		Parts: parts,
	}}

	config := &genai.GenerateContentConfig{
		Temperature:      &g.temperature,
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response generated")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
