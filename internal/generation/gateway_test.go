package generation

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"cvbuilder-backend/internal/resume"
)

type stubClient struct {
	resp string
	err  error
}

func (s stubClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return s.resp, s.err
}

// blockingClient waits for context cancellation, simulating a hung remote.
type blockingClient struct{}

func (blockingClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = prompt
	<-ctx.Done()
	return "", ctx.Err()
}

var errTransport = errors.New("connection refused")

func failingGateway() *Gateway {
	return NewGateway(stubClient{err: errTransport}, time.Second)
}

func sampleDocument() *resume.Document {
	return &resume.Document{
		PersonalInfo: resume.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com"},
		Education:    []resume.Education{{Institution: "TU Berlin", Degree: "BSc"}},
		Experience: []resume.Experience{{
			Company:          "Acme",
			Position:         "Engineer",
			StartDate:        "2020-01",
			Responsibilities: []string{"Built the API", "Ran deployments"},
		}},
		Skills: []resume.Skill{
			{Name: "Go"},
			{Name: "Postgres"},
			{Name: "Kubernetes"},
			{Name: "Terraform"},
		},
	}
}

func TestAllOperationsResolveOnTransportFailure(t *testing.T) {
	g := failingGateway()
	ctx := context.Background()
	doc := sampleDocument()

	summary, out := g.GenerateSummary(ctx, doc.PersonalInfo, doc.Experience, "software engineer")
	if out.Source != SourceFallback || summary == "" {
		t.Fatalf("summary: expected fallback text, got source=%s text=%q", out.Source, summary)
	}

	optimized, out := g.OptimizeExperience(ctx, doc.Experience[0], "software engineer")
	if out.Source != SourceFallback || len(optimized.Responsibilities) == 0 {
		t.Fatalf("experience: expected fallback, got source=%s %v", out.Source, optimized)
	}

	letter, out := g.GenerateCoverLetter(ctx, doc, "a job", "software engineer")
	if out.Source != SourceFallback || letter == "" {
		t.Fatalf("cover letter: expected fallback, got source=%s", out.Source)
	}

	questions, out := g.GenerateInterviewQuestions(ctx, "software engineer", "", "")
	if out.Source != SourceFallback || len(questions) == 0 {
		t.Fatalf("questions: expected fallback, got source=%s", out.Source)
	}

	ats, out := g.CalculateATSScore(ctx, doc, "software engineer")
	if out.Source != SourceFallback {
		t.Fatalf("ats: expected fallback, got source=%s", out.Source)
	}
	if !reflect.DeepEqual(ats, resume.ScoreATS(doc)) {
		t.Fatalf("ats fallback must equal the local rubric result")
	}

	jobOpt, out := g.OptimizeForJob(ctx, doc, "a job", "software engineer")
	if out.Source != SourceFallback || jobOpt.OverallScore != 75 {
		t.Fatalf("job optimization: expected structured fallback with score 75, got source=%s score=%d", out.Source, jobOpt.OverallScore)
	}

	skills, out := g.GenerateSkillSuggestions(ctx, "software engineer", doc.Experience)
	if out.Source != SourceFallback || len(skills) != 5 {
		t.Fatalf("skills: expected 5 fallback skills, got source=%s %v", out.Source, skills)
	}
}

func TestGenerateSummaryRemote(t *testing.T) {
	g := NewGateway(stubClient{resp: "A seasoned engineer."}, time.Second)
	text, out := g.GenerateSummary(context.Background(), resume.PersonalInfo{FullName: "Jane"}, nil, "engineer")
	if out.Source != SourceRemote {
		t.Fatalf("expected remote source, got %s (%s)", out.Source, out.Reason)
	}
	if text != "A seasoned engineer." {
		t.Fatalf("unexpected summary %q", text)
	}
}

func TestGenerateSummaryFallbackMentionsProfession(t *testing.T) {
	g := failingGateway()
	text, _ := g.GenerateSummary(context.Background(), resume.PersonalInfo{}, nil, "data analyst")
	if !strings.Contains(text, "data analyst") {
		t.Fatalf("fallback summary must interpolate the profession: %q", text)
	}
}

func TestOptimizeExperienceParsesJSON(t *testing.T) {
	resp := "```json\n{\"responsibilities\": [\"Led the platform team\"], \"achievements\": [\"Cut costs 30%\"]}\n```"
	g := NewGateway(stubClient{resp: resp}, time.Second)

	optimized, out := g.OptimizeExperience(context.Background(), resume.Experience{Responsibilities: []string{"old"}}, "engineer")
	if out.Source != SourceRemote {
		t.Fatalf("expected remote source, got %s (%s)", out.Source, out.Reason)
	}
	if optimized.Responsibilities[0] != "Led the platform team" {
		t.Fatalf("unexpected responsibilities %v", optimized.Responsibilities)
	}
	if optimized.Achievements[0] != "Cut costs 30%" {
		t.Fatalf("unexpected achievements %v", optimized.Achievements)
	}
}

func TestOptimizeExperienceFallbackKeepsResponsibilities(t *testing.T) {
	g := NewGateway(stubClient{resp: "not json at all"}, time.Second)
	entry := resume.Experience{Responsibilities: []string{"Built the API", "Ran deployments"}}

	optimized, out := g.OptimizeExperience(context.Background(), entry, "engineer")
	if out.Source != SourceFallback {
		t.Fatalf("expected fallback source, got %s", out.Source)
	}
	want := []string{"• Built the API", "• Ran deployments"}
	if !reflect.DeepEqual(optimized.Responsibilities, want) {
		t.Fatalf("expected bullet-prefixed responsibilities, got %v", optimized.Responsibilities)
	}
	if len(optimized.Achievements) != 2 {
		t.Fatalf("expected two generic achievements, got %v", optimized.Achievements)
	}
}

func TestInterviewQuestionsLineSplitting(t *testing.T) {
	resp := "Here are some questions:\n\n1. What draws you to this role?\n2. Describe your biggest win.\n3. How do you prioritize?\n"
	g := NewGateway(stubClient{resp: resp}, time.Second)

	questions, out := g.GenerateInterviewQuestions(context.Background(), "engineer", "", "")
	if out.Source != SourceRemote {
		t.Fatalf("expected remote source, got %s", out.Source)
	}
	// Only lines ending in "?" qualify as questions.
	want := []string{"What draws you to this role?", "How do you prioritize?"}
	if !reflect.DeepEqual(questions, want) {
		t.Fatalf("expected %v, got %v", want, questions)
	}
}

func TestInterviewQuestionsFallbackLookup(t *testing.T) {
	g := failingGateway()

	generic, _ := g.GenerateInterviewQuestions(context.Background(), "veterinarian", "", "")
	if len(generic) != 8 {
		t.Fatalf("expected 8 generic questions for unknown profession, got %d", len(generic))
	}

	matched, _ := g.GenerateInterviewQuestions(context.Background(), "Senior Software Engineer", "", "")
	if len(matched) != 12 {
		t.Fatalf("expected 8+4 questions for matched profession, got %d", len(matched))
	}
}

func TestCalculateATSScoreClampsRemote(t *testing.T) {
	g := NewGateway(stubClient{resp: `{"score": 150, "suggestions": ["Do more"]}`}, time.Second)

	result, out := g.CalculateATSScore(context.Background(), sampleDocument(), "engineer")
	if out.Source != SourceRemote {
		t.Fatalf("expected remote source, got %s", out.Source)
	}
	if result.Score != 100 {
		t.Fatalf("expected clamped score 100, got %d", result.Score)
	}
}

func TestCalculateATSScoreRejectsMalformedRemote(t *testing.T) {
	doc := sampleDocument()
	for _, resp := range []string{`{}`, `{"score": 50}`, `"fine"`, "plain text"} {
		g := NewGateway(stubClient{resp: resp}, time.Second)
		result, out := g.CalculateATSScore(context.Background(), doc, "engineer")
		if out.Source != SourceFallback {
			t.Fatalf("resp %q: expected fallback, got %s", resp, out.Source)
		}
		if !reflect.DeepEqual(result, resume.ScoreATS(doc)) {
			t.Fatalf("resp %q: fallback must equal local rubric", resp)
		}
	}
}

func TestOptimizeForJobRemote(t *testing.T) {
	resp := `{"keywords": ["golang"], "skillSuggestions": ["gRPC"], "experienceImprovements": ["quantify"], "summaryImprovement": "sharpen", "missingQualifications": [], "overallScore": 88}`
	g := NewGateway(stubClient{resp: resp}, time.Second)

	result, out := g.OptimizeForJob(context.Background(), sampleDocument(), "a job", "engineer")
	if out.Source != SourceRemote {
		t.Fatalf("expected remote source, got %s (%s)", out.Source, out.Reason)
	}
	if result.OverallScore != 88 || result.Keywords[0] != "golang" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestSkillSuggestionsJSONAndLines(t *testing.T) {
	g := NewGateway(stubClient{resp: `["Go", "SQL", "Docker"]`}, time.Second)
	skills, out := g.GenerateSkillSuggestions(context.Background(), "engineer", nil)
	if out.Source != SourceRemote || !reflect.DeepEqual(skills, []string{"Go", "SQL", "Docker"}) {
		t.Fatalf("expected parsed JSON array, got source=%s %v", out.Source, skills)
	}

	g = NewGateway(stubClient{resp: "- Go\n- SQL\n\n- Docker"}, time.Second)
	skills, out = g.GenerateSkillSuggestions(context.Background(), "engineer", nil)
	if out.Source != SourceRemote || !reflect.DeepEqual(skills, []string{"Go", "SQL", "Docker"}) {
		t.Fatalf("expected line-split skills, got source=%s %v", out.Source, skills)
	}
}

func TestBoundedWaitOnHungRemote(t *testing.T) {
	g := NewGateway(blockingClient{}, 50*time.Millisecond)

	start := time.Now()
	_, out := g.GenerateSummary(context.Background(), resume.PersonalInfo{}, nil, "engineer")
	elapsed := time.Since(start)

	if out.Source != SourceFallback {
		t.Fatalf("expected fallback after timeout, got %s", out.Source)
	}
	if elapsed > time.Second {
		t.Fatalf("gateway must not block past its timeout, waited %v", elapsed)
	}
}

func TestFallbackCoverLetterInterpolatesDocument(t *testing.T) {
	g := failingGateway()
	doc := sampleDocument()

	letter, out := g.GenerateCoverLetter(context.Background(), doc, "a job", "engineer")
	if out.Source != SourceFallback {
		t.Fatalf("expected fallback source, got %s", out.Source)
	}
	for _, fragment := range []string{"Jane Doe", "Acme", "TU Berlin", "Go, Postgres, Kubernetes"} {
		if !strings.Contains(letter, fragment) {
			t.Fatalf("fallback letter missing %q:\n%s", fragment, letter)
		}
	}
	if strings.Contains(letter, "Terraform") {
		t.Fatalf("fallback letter must only use the first three skills")
	}
}

func TestFallbacksAreDeterministic(t *testing.T) {
	g := failingGateway()
	doc := sampleDocument()
	ctx := context.Background()

	first, _ := g.GenerateCoverLetter(ctx, doc, "a job", "engineer")
	second, _ := g.GenerateCoverLetter(ctx, doc, "a job", "engineer")
	if first != second {
		t.Fatalf("cover letter fallback must be deterministic")
	}

	q1, _ := g.GenerateInterviewQuestions(ctx, "marketing manager", "", "")
	q2, _ := g.GenerateInterviewQuestions(ctx, "marketing manager", "", "")
	if !reflect.DeepEqual(q1, q2) {
		t.Fatalf("question fallback must be deterministic")
	}
}
