package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/hey-rash/PlacementNex/internal/ai"
	"github.com/hey-rash/PlacementNex/internal/placement"
	"github.com/hey-rash/PlacementNex/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
}

var (
	_ ai.Fallback       = (*Advisor)(nil)
	_ ai.ResumeReviewer = (*Advisor)(nil)
)

//go:embed chat_prompt.md
var chatPromptTemplate string

//go:embed resume_prompt.md
var resumePromptTemplate string

const defaultMaxLogLength = 200

// Advisor answers placement questions and reviews resumes through a content generator.
type Advisor struct {
	generator contentGenerator
	dataset   *placement.Dataset
	logger    *zap.Logger
	maxLogLen int
}

func NewAdvisor(generator contentGenerator, dataset *placement.Dataset, logger *zap.Logger, maxLogLength int) *Advisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Advisor{
		generator: generator,
		dataset:   dataset,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Answer asks the model a free-form question about the dataset.
func (a *Advisor) Answer(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.New("question must not be empty")
	}

	digest, err := datasetDigest(a.dataset)
	if err != nil {
		return "", err
	}

	system := strings.ReplaceAll(chatPromptTemplate, "{{DATASET_JSON}}", digest)
	return a.generate(ctx, "chat", system, question)
}

// Review asks the model for resume improvement advice against the skills.
func (a *Advisor) Review(ctx context.Context, resumeText string, skills []string) (string, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return "", errors.New("resume text must not be empty")
	}

	list := "- (none specified)"
	if canonical := placement.CanonicalSkills(skills); len(canonical) > 0 {
		list = "- " + strings.Join(canonical, "\n- ")
	}

	system := strings.ReplaceAll(resumePromptTemplate, "{{SKILLS}}", list)
	return a.generate(ctx, "resume", system, resumeText)
}

func (a *Advisor) generate(ctx context.Context, kind, system, message string) (string, error) {
	a.logger.Debug("gemini generate content request",
		zap.String("kind", kind),
		zap.Int("prompt_length", utf8.RuneCountInString(system)+utf8.RuneCountInString(message)),
		zap.String("message_preview", utils.TruncateForLog(message, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, system, message)
	if err != nil {
		return "", err
	}

	a.logger.Debug("gemini generate content response",
		zap.String("kind", kind),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	return strings.TrimSpace(raw), nil
}

type candidateDigest struct {
	Name    string  `json:"name"`
	Branch  string  `json:"branch"`
	GPA     float64 `json:"gpa"`
	Placed  bool    `json:"placed"`
	Company string  `json:"company,omitempty"`
	Package float64 `json:"package_lpa,omitempty"`
}

type organizationDigest struct {
	Name    string   `json:"name"`
	Role    string   `json:"role"`
	Package float64  `json:"package_lpa"`
	MinGPA  float64  `json:"min_gpa"`
	Arrival string   `json:"arrival_date"`
	Skills  []string `json:"required_skills"`
}

// datasetDigest renders the part of the dataset the model needs as compact JSON.
func datasetDigest(ds *placement.Dataset) (string, error) {
	if ds == nil {
		return "{}", nil
	}

	names := make(map[string]string, len(ds.Organizations))
	orgs := make([]organizationDigest, 0, len(ds.Organizations))
	for _, o := range ds.Organizations {
		names[o.ID] = o.Name
		orgs = append(orgs, organizationDigest{
			Name:    o.Name,
			Role:    o.Role,
			Package: o.Package,
			MinGPA:  o.MinGPA,
			Arrival: o.ArrivalDate.Format(placement.DateLayout),
			Skills:  o.RequiredSkills,
		})
	}

	students := make([]candidateDigest, 0, len(ds.Candidates))
	for _, c := range ds.Candidates {
		students = append(students, candidateDigest{
			Name:    c.Name,
			Branch:  c.Branch,
			GPA:     c.GPA,
			Placed:  c.Placed,
			Company: names[c.CompanyID],
			Package: c.PackageOrZero(),
		})
	}

	payload, err := json.Marshal(map[string]any{
		"students":  students,
		"companies": orgs,
	})
	if err != nil {
		return "", fmt.Errorf("marshal dataset digest: %w", err)
	}

	return string(payload), nil
}
