package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvmatch/cv-job-match/internal/models"
)

// recordingAnalyzer captures each operation's request and can fail selected
// operations. Each operation writes only its own fields, so the concurrent
// fan-out needs no extra locking.
type recordingAnalyzer struct {
	cvErr    error
	jobErr   error
	matchErr error

	cvCalls    int
	jobCalls   int
	matchCalls int

	cvReq    models.AnalyzeCvRequest
	jobReq   models.AnalyzeJobRequest
	matchReq models.MatchRequest
}

func (r *recordingAnalyzer) AnalyzeCv(_ context.Context, req models.AnalyzeCvRequest) (*models.CvAnalysis, error) {
	r.cvCalls++
	r.cvReq = req
	if r.cvErr != nil {
		return nil, r.cvErr
	}
	return &models.CvAnalysis{Skills: []string{"Go"}, Experience: "exp", Qualifications: "quals"}, nil
}

func (r *recordingAnalyzer) AnalyzeJobDescription(_ context.Context, req models.AnalyzeJobRequest) (*models.JobRequirements, error) {
	r.jobCalls++
	r.jobReq = req
	if r.jobErr != nil {
		return nil, r.jobErr
	}
	return &models.JobRequirements{RequiredSkills: []string{"Go"}, RequiredExperience: "3y", RequiredQualifications: "BSc"}, nil
}

func (r *recordingAnalyzer) MatchCvToJob(_ context.Context, req models.MatchRequest) (*models.MatchResult, error) {
	r.matchCalls++
	r.matchReq = req
	if r.matchErr != nil {
		return nil, r.matchErr
	}
	return &models.MatchResult{Score: 80, HighlightedCv: "<mark>Go</mark>", Color: models.ColorGreen}, nil
}

const testJobDesc = "We are looking for a Go developer with API experience." // 54 chars

func TestProcessRunsAllThreeOperationsWithLiteralInputs(t *testing.T) {
	analyzer := &recordingAnalyzer{}
	svc := NewSubmissionService(analyzer, NewTextExtractorService())

	cvBytes := []byte(strings.Repeat("Go developer. ", 100))
	result, err := svc.Process(context.Background(), testJobDesc, "cv.txt", MimeTextPlain, cvBytes)
	require.NoError(t, err)

	assert.Equal(t, 1, analyzer.cvCalls)
	assert.Equal(t, 1, analyzer.jobCalls)
	assert.Equal(t, 1, analyzer.matchCalls)

	// The blob round-trips to the literal uploaded bytes.
	mediaType, data, err := models.ParseDataURI(analyzer.cvReq.CvDataURI)
	require.NoError(t, err)
	assert.Equal(t, MimeTextPlain, mediaType)
	assert.Equal(t, cvBytes, data)

	// Literal job description and literal extracted text.
	assert.Equal(t, testJobDesc, analyzer.jobReq.JobDescription)
	assert.Equal(t, testJobDesc, analyzer.matchReq.JobDescription)
	assert.Equal(t, string(cvBytes), analyzer.matchReq.CvText)

	// All three responses surface unchanged.
	require.NotNil(t, result.CvAnalysis)
	require.NotNil(t, result.JobAnalysis)
	require.NotNil(t, result.Match)
	assert.Equal(t, 80, result.Match.Score)
	assert.NotEmpty(t, result.ID)
}

func TestProcessFailsWholeSubmissionWhenAnyOperationFails(t *testing.T) {
	cases := []struct {
		name     string
		analyzer *recordingAnalyzer
	}{
		{"cv analysis fails", &recordingAnalyzer{cvErr: errors.New("cv failed")}},
		{"job analysis fails", &recordingAnalyzer{jobErr: errors.New("job failed")}},
		{"match fails", &recordingAnalyzer{matchErr: errors.New("match failed")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewSubmissionService(tc.analyzer, NewTextExtractorService())

			result, err := svc.Process(context.Background(), testJobDesc, "cv.txt", MimeTextPlain, []byte("cv"))
			assert.Error(t, err)
			assert.Nil(t, result, "no partial results on failure")
		})
	}
}

func TestProcessFallsBackToPlaceholderWhenExtractionFails(t *testing.T) {
	analyzer := &recordingAnalyzer{}
	svc := NewSubmissionService(analyzer, NewTextExtractorService())

	// Legacy .doc has no decoder; the match still runs with degraded input.
	docBytes := []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1}
	_, err := svc.Process(context.Background(), testJobDesc, "cv.doc", MimeDoc, docBytes)
	require.NoError(t, err)

	assert.Equal(t, ExtractionFallback, analyzer.matchReq.CvText)

	// CV analysis still receives the original blob untouched.
	mediaType, data, err := models.ParseDataURI(analyzer.cvReq.CvDataURI)
	require.NoError(t, err)
	assert.Equal(t, MimeDoc, mediaType)
	assert.Equal(t, docBytes, data)
}
