package services

import "google.golang.org/genai"

// Declared response shapes for the three operations. The per-field
// descriptions steer the model; the structured-output backend guarantees
// the returned JSON matches the shape.

var cvAnalysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"skills": {
			Type:        genai.TypeArray,
			Description: "A list of skills mentioned in the CV. Use atomic keywords (e.g., 'Go', 'PostgreSQL', 'Team Leadership').",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
		"experience": {
			Type:        genai.TypeString,
			Description: "A summary of the candidate's work experience.",
		},
		"qualifications": {
			Type:        genai.TypeString,
			Description: "A summary of the candidate's qualifications, education and certifications.",
		},
	},
	Required: []string{"skills", "experience", "qualifications"},
}

var jobRequirementsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"required_skills": {
			Type:        genai.TypeArray,
			Description: "A list of skills the job requires. Use atomic keywords.",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
		"required_experience": {
			Type:        genai.TypeString,
			Description: "A summary of the experience the job requires.",
		},
		"required_qualifications": {
			Type:        genai.TypeString,
			Description: "A summary of the qualifications and education the job requires.",
		},
	},
	Required: []string{"required_skills", "required_experience", "required_qualifications"},
}

var matchResultSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score": {
			Type:        genai.TypeInteger,
			Description: "How well the CV matches the job description, as an integer from 0 to 100.",
		},
		"highlighted_cv": {
			Type:        genai.TypeString,
			Description: "The full CV text with the segments relevant to the job description wrapped in <mark> tags.",
		},
		"color": {
			Type:        genai.TypeString,
			Description: "green if the score is above 75, orange if it is between 51 and 75, red if it is 50 or below.",
			Enum:        []string{"green", "orange", "red"},
		},
	},
	Required: []string{"score", "highlighted_cv", "color"},
}
