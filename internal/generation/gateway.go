package generation

import (
	"context"
	"strings"
	"time"

	"cvbuilder-backend/internal/llm"
	"cvbuilder-backend/internal/resume"
	"cvbuilder-backend/internal/shared/telemetry"
)

// Source records which path produced a gateway result.
type Source string

const (
	// SourceRemote marks a result parsed from the remote generator.
	SourceRemote Source = "remote"
	// SourceFallback marks a locally computed substitute result.
	SourceFallback Source = "fallback"
)

// Outcome describes how an operation resolved. Operations never return an
// error; a failed remote call resolves to the documented fallback and the
// outcome says so, which lets tests assert the path taken.
type Outcome struct {
	Source Source
	Reason string
}

func remoteOutcome() Outcome {
	return Outcome{Source: SourceRemote}
}

func fallbackOutcome(op string, reason string) Outcome {
	telemetry.Warn("generation.fallback", map[string]any{
		"operation": op,
		"reason":    reason,
	})
	return Outcome{Source: SourceFallback, Reason: reason}
}

// OptimizedExperience is the result shape of OptimizeExperience.
type OptimizedExperience struct {
	Responsibilities []string `json:"responsibilities"`
	Achievements     []string `json:"achievements"`
}

// JobOptimization is the result shape of OptimizeForJob.
type JobOptimization struct {
	Keywords               []string `json:"keywords"`
	SkillSuggestions       []string `json:"skillSuggestions"`
	ExperienceImprovements []string `json:"experienceImprovements"`
	SummaryImprovement     string   `json:"summaryImprovement"`
	MissingQualifications  []string `json:"missingQualifications"`
	OverallScore           int      `json:"overallScore"`
}

const defaultTimeout = 30 * time.Second

// Gateway translates resume requests into natural-language instructions for
// a generative-text client and coerces raw responses into typed results.
// Construct it with an injected client so tests can supply doubles.
type Gateway struct {
	client  llm.Client
	timeout time.Duration
}

// NewGateway constructs a Gateway. A non-positive timeout falls back to 30s.
func NewGateway(client llm.Client, timeout time.Duration) *Gateway {
	if client == nil {
		client = llm.PlaceholderClient{}
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Gateway{client: client, timeout: timeout}
}

// complete submits a prompt with a bounded wait. Expiry is treated the same
// as transport failure by callers.
func (g *Gateway) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.client.Complete(ctx, prompt)
}

// GenerateSummary produces a professional summary from the personal info and
// work history. Falls back to a profession-templated sentence.
func (g *Gateway) GenerateSummary(ctx context.Context, info resume.PersonalInfo, experience []resume.Experience, profession string) (string, Outcome) {
	raw, err := g.complete(ctx, summaryPrompt(info, experience, profession))
	if err != nil {
		return fallbackSummary(profession), fallbackOutcome("generate_summary", err.Error())
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return fallbackSummary(profession), fallbackOutcome("generate_summary", "empty response")
	}
	return text, remoteOutcome()
}

// OptimizeExperience rewrites one experience entry's bullet points. Falls
// back to the existing responsibilities plus generic achievements.
func (g *Gateway) OptimizeExperience(ctx context.Context, entry resume.Experience, profession string) (OptimizedExperience, Outcome) {
	raw, err := g.complete(ctx, experiencePrompt(entry, profession))
	if err != nil {
		return fallbackExperience(entry), fallbackOutcome("optimize_experience", err.Error())
	}

	var parsed OptimizedExperience
	if ok := parseJSON(raw, &parsed); ok && len(parsed.Responsibilities) > 0 {
		return parsed, remoteOutcome()
	}
	return fallbackExperience(entry), fallbackOutcome("optimize_experience", "unparsable response")
}

// GenerateCoverLetter writes a cover letter for the given job description.
// Falls back to a deterministic template interpolating the document.
func (g *Gateway) GenerateCoverLetter(ctx context.Context, doc *resume.Document, jobDescription, profession string) (string, Outcome) {
	raw, err := g.complete(ctx, coverLetterPrompt(doc, jobDescription, profession))
	if err != nil {
		return fallbackCoverLetter(doc, profession), fallbackOutcome("generate_cover_letter", err.Error())
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return fallbackCoverLetter(doc, profession), fallbackOutcome("generate_cover_letter", "empty response")
	}
	return text, remoteOutcome()
}

// GenerateInterviewQuestions returns likely interview questions, targeting
// twelve. Falls back to eight generic behavioral questions plus up to four
// profession-specific ones.
func (g *Gateway) GenerateInterviewQuestions(ctx context.Context, profession, jobDescription, experienceLevel string) ([]string, Outcome) {
	raw, err := g.complete(ctx, questionsPrompt(profession, jobDescription, experienceLevel))
	if err != nil {
		return fallbackQuestions(profession), fallbackOutcome("generate_interview_questions", err.Error())
	}

	var parsed []string
	if ok := parseJSON(raw, &parsed); ok && len(parsed) > 0 {
		return parsed, remoteOutcome()
	}
	if questions := parseQuestionLines(raw); len(questions) > 0 {
		return questions, remoteOutcome()
	}
	return fallbackQuestions(profession), fallbackOutcome("generate_interview_questions", "unparsable response")
}

// remoteATSResult mirrors the shape expected from the remote scorer.
type remoteATSResult struct {
	Score       *int     `json:"score"`
	Suggestions []string `json:"suggestions"`
}

// CalculateATSScore attempts the remote scorer and validates its shape; the
// local rubric is the canonical result on any failure.
func (g *Gateway) CalculateATSScore(ctx context.Context, doc *resume.Document, profession string) (resume.ATSResult, Outcome) {
	raw, err := g.complete(ctx, atsPrompt(doc, profession))
	if err != nil {
		return resume.ScoreATS(doc), fallbackOutcome("calculate_ats_score", err.Error())
	}

	var parsed remoteATSResult
	if ok := parseJSON(raw, &parsed); ok && parsed.Score != nil && parsed.Suggestions != nil {
		return resume.ATSResult{
			Score:       resume.ClampScore(*parsed.Score),
			Suggestions: parsed.Suggestions,
		}, remoteOutcome()
	}
	return resume.ScoreATS(doc), fallbackOutcome("calculate_ats_score", "unparsable response")
}

// OptimizeForJob tailors the document against a job description. Transport
// and parse failures both resolve to the same structured fallback.
func (g *Gateway) OptimizeForJob(ctx context.Context, doc *resume.Document, jobDescription, profession string) (JobOptimization, Outcome) {
	raw, err := g.complete(ctx, jobOptimizationPrompt(doc, jobDescription, profession))
	if err != nil {
		return fallbackJobOptimization(), fallbackOutcome("optimize_for_job", err.Error())
	}

	var parsed JobOptimization
	if ok := parseJSON(raw, &parsed); ok && len(parsed.Keywords) > 0 {
		parsed.OverallScore = resume.ClampScore(parsed.OverallScore)
		return parsed, remoteOutcome()
	}
	return fallbackJobOptimization(), fallbackOutcome("optimize_for_job", "unparsable response")
}

// GenerateSkillSuggestions returns skills worth adding for the profession,
// targeting fifteen. Falls back to a fixed generic list.
func (g *Gateway) GenerateSkillSuggestions(ctx context.Context, profession string, experience []resume.Experience) ([]string, Outcome) {
	raw, err := g.complete(ctx, skillsPrompt(profession, experience))
	if err != nil {
		return fallbackSkills(), fallbackOutcome("generate_skill_suggestions", err.Error())
	}

	var parsed []string
	if ok := parseJSON(raw, &parsed); ok && len(parsed) > 0 {
		return parsed, remoteOutcome()
	}
	if skills := parseLines(raw); len(skills) > 0 {
		return skills, remoteOutcome()
	}
	return fallbackSkills(), fallbackOutcome("generate_skill_suggestions", "unparsable response")
}
