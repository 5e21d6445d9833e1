package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCvAnalysisPrompt creates the instruction that accompanies the inline
// CV file part. The document itself is attached as a separate part.
func (pb *PromptBuilder) BuildCvAnalysisPrompt() string {
	return `You are an expert HR analyst. Analyze the attached CV document.

Extract the following:
1. The skills the candidate lists or demonstrates.
2. A summary of the candidate's work experience.
3. A summary of the candidate's qualifications, education and certifications.

Base your answer only on the content of the document. Do not invent skills
or experience that are not present.`
}

// BuildJobAnalysisPrompt creates the prompt for job-description analysis.
func (pb *PromptBuilder) BuildJobAnalysisPrompt(jobDescription string) string {
	return fmt.Sprintf(`You are an expert recruiter. Analyze the following job description.

JOB DESCRIPTION:
%s

Extract the following:
1. The skills the job requires.
2. A summary of the experience the job requires.
3. A summary of the qualifications and education the job requires.

Base your answer only on the text provided. Do not invent requirements that
are not stated or clearly implied.`, jobDescription)
}

// BuildMatchPrompt creates the prompt for scoring a CV against a job
// description and highlighting the relevant CV text.
func (pb *PromptBuilder) BuildMatchPrompt(jobDescription, cvText string) string {
	return fmt.Sprintf(`You are an expert HR recruiter judging how well a candidate's CV matches a job description.

JOB DESCRIPTION:
%s

CANDIDATE CV:
%s

Your task:
1. Assign a match score from 0 to 100, where 100 is a perfect match.
2. Return the full CV text with every segment that is relevant to the job
   description wrapped in <mark> tags. Do not alter the CV text otherwise.
3. Classify the score as a color: green if the score is above 75, orange if
   it is between 51 and 75, red if it is 50 or below.

Be objective. Base the score only on the provided job description and CV.`, jobDescription, cvText)
}
