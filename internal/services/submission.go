package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"cvmatch/cv-job-match/internal/models"
)

type SubmissionService interface {
	Process(ctx context.Context, jobDescription, fileName, mediaType string, data []byte) (*models.SubmissionResult, error)
}

type submissionService struct {
	analyzer  AnalyzerService
	extractor TextExtractorService
}

func NewSubmissionService(analyzer AnalyzerService, extractor TextExtractorService) SubmissionService {
	return &submissionService{
		analyzer:  analyzer,
		extractor: extractor,
	}
}

// Process runs one submission end to end: the file is encoded once as a
// self-describing blob for CV analysis and once as extracted text for the
// match operation, then all three operations run concurrently. The join is
// fail-fast: if any one operation fails, the whole submission fails and no
// partial results are returned.
func (s *submissionService) Process(ctx context.Context, jobDescription, fileName, mediaType string, data []byte) (*models.SubmissionResult, error) {
	cvDataURI := models.EncodeDataURI(mediaType, data)

	cvText, err := s.extractor.ExtractText(data, mediaType)
	if err != nil {
		log.Warn().Err(err).Str("file", fileName).
			Msg("CV text extraction failed, matching against fallback placeholder")
		cvText = ExtractionFallback
	}

	result := &models.SubmissionResult{
		ID: uuid.New().String(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		analysis, err := s.analyzer.AnalyzeCv(ctx, models.AnalyzeCvRequest{CvDataURI: cvDataURI})
		if err != nil {
			return err
		}
		result.CvAnalysis = analysis
		return nil
	})

	g.Go(func() error {
		requirements, err := s.analyzer.AnalyzeJobDescription(ctx, models.AnalyzeJobRequest{JobDescription: jobDescription})
		if err != nil {
			return err
		}
		result.JobAnalysis = requirements
		return nil
	})

	g.Go(func() error {
		match, err := s.analyzer.MatchCvToJob(ctx, models.MatchRequest{
			JobDescription: jobDescription,
			CvText:         cvText,
		})
		if err != nil {
			return err
		}
		result.Match = match
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Str("submission_id", result.ID).Str("file", fileName).
		Int("score", result.Match.Score).Msg("submission processed")

	return result, nil
}
