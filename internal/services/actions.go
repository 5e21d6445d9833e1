package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"cvmatch/cv-job-match/internal/models"
)

// Operation names as they appear in user-facing failure messages.
const (
	opAnalyzeCv  = "analyze CV"
	opAnalyzeJob = "analyze job description"
	opMatch      = "match CV to job description"
)

type actionService struct {
	analyzer AnalyzerService
}

// NewActionService wraps an AnalyzerService with the remote-facing error
// policy: the original error is logged for operators and replaced by a
// sanitized "Failed to <operation>" message. Successful responses pass
// through unchanged. No retries, no partial results.
func NewActionService(analyzer AnalyzerService) AnalyzerService {
	return &actionService{analyzer: analyzer}
}

func (s *actionService) AnalyzeCv(ctx context.Context, req models.AnalyzeCvRequest) (*models.CvAnalysis, error) {
	result, err := s.analyzer.AnalyzeCv(ctx, req)
	if err != nil {
		return nil, s.fail(opAnalyzeCv, err)
	}
	return result, nil
}

func (s *actionService) AnalyzeJobDescription(ctx context.Context, req models.AnalyzeJobRequest) (*models.JobRequirements, error) {
	result, err := s.analyzer.AnalyzeJobDescription(ctx, req)
	if err != nil {
		return nil, s.fail(opAnalyzeJob, err)
	}
	return result, nil
}

func (s *actionService) MatchCvToJob(ctx context.Context, req models.MatchRequest) (*models.MatchResult, error) {
	result, err := s.analyzer.MatchCvToJob(ctx, req)
	if err != nil {
		return nil, s.fail(opMatch, err)
	}
	return result, nil
}

func (s *actionService) fail(operation string, err error) error {
	log.Error().Err(err).Str("operation", operation).Msg("operation failed")

	msg := err.Error()
	if msg == "" {
		msg = "an unknown error occurred"
	}
	return fmt.Errorf("Failed to %s: %s", operation, msg)
}
