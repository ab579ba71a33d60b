package resume

import "math"

// ATS rubric weights. They sum to 100.
const (
	personalInfoWeight = 25.0
	experienceWeight   = 30.0
	educationWeight    = 20.0
	skillsWeight       = 15.0
	extrasWeight       = 10.0
)

// Improvement suggestions emitted by the rubric, in rubric order.
const (
	SuggestPersonalInfo = "Complete all personal information fields"
	SuggestExperience   = "Add more detailed work experience"
	SuggestEducation    = "Add your educational background"
	SuggestSkills       = "Add more relevant skills"
	SuggestDefault      = "Your CV looks good! Consider adding quantified achievements."
)

// ATSResult is the outcome of scoring a document against the rubric.
type ATSResult struct {
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
}

// ScoreATS evaluates a document against the fixed point-weighted rubric.
// It is deterministic and pure: the same document always yields the same
// result, whether invoked as the primary scorer or as the fallback when
// the remote generator is unavailable.
func ScoreATS(doc *Document) ATSResult {
	if doc == nil {
		doc = &Document{}
	}

	var suggestions []string

	// Personal info: 25 points across the seven contact/social fields.
	personal := math.Min(personalInfoWeight, float64(doc.PersonalInfo.ContactFieldCount())/7.0*personalInfoWeight)
	if personal < 20 {
		suggestions = append(suggestions, SuggestPersonalInfo)
	}

	// Work experience: 10 points per entry, saturating at three entries.
	experience := math.Min(experienceWeight, float64(len(doc.Experience))*10)
	if experience < 20 {
		suggestions = append(suggestions, SuggestExperience)
	}

	// Education: 10 points per entry, saturating at two entries.
	education := math.Min(educationWeight, float64(len(doc.Education))*10)
	if education < 10 {
		suggestions = append(suggestions, SuggestEducation)
	}

	// Skills: 1.5 points per skill, saturating at ten skills.
	skills := math.Min(skillsWeight, float64(len(doc.Skills))*1.5)
	if skills < 10 {
		suggestions = append(suggestions, SuggestSkills)
	}

	// Projects and certifications combined: 2 points per entry.
	extras := math.Min(extrasWeight, float64(len(doc.Projects)+len(doc.Certifications))*2)

	if len(suggestions) == 0 {
		suggestions = append(suggestions, SuggestDefault)
	}

	total := personal + experience + education + skills + extras
	return ATSResult{
		Score:       int(math.Round(total)),
		Suggestions: suggestions,
	}
}

// ClampScore bounds a score to the valid [0,100] range.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
