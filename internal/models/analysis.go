package models

type ColorCode string

const (
	ColorGreen  ColorCode = "green"
	ColorOrange ColorCode = "orange"
	ColorRed    ColorCode = "red"
)

// ColorForScore classifies a 0-100 match score under the fixed thresholds:
// above 75 green, 51-75 orange, 50 and below red.
func ColorForScore(score int) ColorCode {
	switch {
	case score > 75:
		return ColorGreen
	case score > 50:
		return ColorOrange
	default:
		return ColorRed
	}
}

type AnalyzeCvRequest struct {
	// CvDataURI carries the uploaded CV as a self-describing
	// "data:<media type>;base64,<payload>" blob.
	CvDataURI string `json:"cv_data_uri"`
}

type CvAnalysis struct {
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
	Qualifications string   `json:"qualifications"`
}

type AnalyzeJobRequest struct {
	JobDescription string `json:"job_description"`
}

type JobRequirements struct {
	RequiredSkills         []string `json:"required_skills"`
	RequiredExperience     string   `json:"required_experience"`
	RequiredQualifications string   `json:"required_qualifications"`
}

type MatchRequest struct {
	JobDescription string `json:"job_description"`
	// CvText is the plain-text rendition of the CV, not the encoded blob.
	CvText string `json:"cv_text"`
}

type MatchResult struct {
	Score int `json:"score"`
	// HighlightedCv is the CV text with segments relevant to the job
	// description wrapped in <mark> tags.
	HighlightedCv string    `json:"highlighted_cv"`
	Color         ColorCode `json:"color"`
}

type SubmissionResult struct {
	ID          string           `json:"id"`
	CvAnalysis  *CvAnalysis      `json:"cv_analysis"`
	JobAnalysis *JobRequirements `json:"job_analysis"`
	Match       *MatchResult     `json:"match"`
}
