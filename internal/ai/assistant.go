package ai

import "context"

// Fallback answers free-form questions that the phrase table does not know.
type Fallback interface {
	Answer(ctx context.Context, question string) (string, error)
}

// ResumeReviewer produces improvement advice for a resume against a set of skills.
type ResumeReviewer interface {
	Review(ctx context.Context, resumeText string, skills []string) (string, error)
}
