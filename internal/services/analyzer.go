package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"cvmatch/cv-job-match/internal/models"
)

type AnalyzerService interface {
	AnalyzeCv(ctx context.Context, req models.AnalyzeCvRequest) (*models.CvAnalysis, error)
	AnalyzeJobDescription(ctx context.Context, req models.AnalyzeJobRequest) (*models.JobRequirements, error)
	MatchCvToJob(ctx context.Context, req models.MatchRequest) (*models.MatchResult, error)
}

type analyzerService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(gemini GeminiService) AnalyzerService {
	return &analyzerService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// AnalyzeCv implements AnalyzerService. The CV is forwarded to the model as
// an inline data part, whatever its format; no local parsing happens here.
func (a *analyzerService) AnalyzeCv(ctx context.Context, req models.AnalyzeCvRequest) (*models.CvAnalysis, error) {
	mediaType, data, err := models.ParseDataURI(req.CvDataURI)
	if err != nil {
		return nil, fmt.Errorf("invalid cv blob: %w", err)
	}

	parts := []*genai.Part{
		{Text: a.promptBuilder.BuildCvAnalysisPrompt()},
		{InlineData: &genai.Blob{MIMEType: mediaType, Data: data}},
	}

	response, err := a.gemini.GenerateStructured(ctx, parts, cvAnalysisSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CV analysis: %w", err)
	}

	var result models.CvAnalysis
	if err := a.parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse CV analysis response: %w", err)
	}

	return &result, nil
}

// AnalyzeJobDescription implements AnalyzerService.
func (a *analyzerService) AnalyzeJobDescription(ctx context.Context, req models.AnalyzeJobRequest) (*models.JobRequirements, error) {
	parts := []*genai.Part{
		{Text: a.promptBuilder.BuildJobAnalysisPrompt(req.JobDescription)},
	}

	response, err := a.gemini.GenerateStructured(ctx, parts, jobRequirementsSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to generate job description analysis: %w", err)
	}

	var result models.JobRequirements
	if err := a.parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse job description analysis response: %w", err)
	}

	return &result, nil
}

// MatchCvToJob implements AnalyzerService. The color classification is
// recomputed locally from the score; the model's paired color is not trusted.
func (a *analyzerService) MatchCvToJob(ctx context.Context, req models.MatchRequest) (*models.MatchResult, error) {
	parts := []*genai.Part{
		{Text: a.promptBuilder.BuildMatchPrompt(req.JobDescription, req.CvText)},
	}

	response, err := a.gemini.GenerateStructured(ctx, parts, matchResultSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to generate match: %w", err)
	}

	var result models.MatchResult
	if err := a.parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse match response: %w", err)
	}

	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 100 {
		result.Score = 100
	}
	result.Color = models.ColorForScore(result.Score)

	return &result, nil
}

func (a *analyzerService) parseJSONResponse(response string, target any) error {
	if err := json.Unmarshal([]byte(stripFences(response)), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return nil
}

// stripFences removes markdown code fences some models still wrap around
// JSON output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
