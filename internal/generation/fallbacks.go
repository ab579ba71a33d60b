package generation

import (
	"fmt"
	"strings"

	"cvbuilder-backend/internal/resume"
)

// Fallbacks are deterministic: the same inputs always produce the same
// output, so a degraded gateway stays predictable for the UI.

func fallbackSummary(profession string) string {
	role := strings.TrimSpace(profession)
	if role == "" {
		role = "professional"
	}
	return fmt.Sprintf("Dedicated %s with hands-on experience delivering results in fast-paced environments. "+
		"Brings strong problem-solving skills, attention to detail, and a collaborative mindset to every project.", role)
}

func fallbackExperience(entry resume.Experience) OptimizedExperience {
	responsibilities := make([]string, 0, len(entry.Responsibilities))
	for _, r := range entry.Responsibilities {
		if trimmed := strings.TrimSpace(r); trimmed != "" {
			responsibilities = append(responsibilities, "• "+trimmed)
		}
	}
	return OptimizedExperience{
		Responsibilities: responsibilities,
		Achievements: []string{
			"Consistently met or exceeded performance targets",
			"Recognized for strong collaboration and reliability",
		},
	}
}

func fallbackCoverLetter(doc *resume.Document, profession string) string {
	if doc == nil {
		doc = &resume.Document{}
	}
	name := strings.TrimSpace(doc.PersonalInfo.FullName)
	if name == "" {
		name = "The Applicant"
	}
	role := strings.TrimSpace(profession)
	if role == "" {
		role = "professional"
	}

	var experienceLine string
	if len(doc.Experience) > 0 {
		first := doc.Experience[0]
		experienceLine = fmt.Sprintf("In my role as %s at %s, I developed the practical expertise this position calls for.",
			first.Position, first.Company)
	} else {
		experienceLine = "Through my professional experience, I have developed the practical expertise this position calls for."
	}

	var educationLine string
	if len(doc.Education) > 0 {
		first := doc.Education[0]
		educationLine = fmt.Sprintf("My %s from %s gave me a solid foundation to build on.", first.Degree, first.Institution)
	} else {
		educationLine = "My education gave me a solid foundation to build on."
	}

	var skillNames []string
	for i, skill := range doc.Skills {
		if i >= 3 {
			break
		}
		skillNames = append(skillNames, skill.Name)
	}
	skillLine := "I bring a versatile skill set to the table."
	if len(skillNames) > 0 {
		skillLine = fmt.Sprintf("My key strengths include %s.", strings.Join(skillNames, ", "))
	}

	paragraphs := []string{
		fmt.Sprintf("Dear Hiring Manager,\n\nI am writing to express my strong interest in this opportunity. As an experienced %s, I believe my background makes me a strong candidate for the role.", role),
		experienceLine + " " + educationLine,
		skillLine + " I am confident these abilities would let me contribute to your team from day one.",
		fmt.Sprintf("Thank you for considering my application. I would welcome the chance to discuss how my experience aligns with your needs.\n\nSincerely,\n%s", name),
	}
	return strings.Join(paragraphs, "\n\n")
}

var genericQuestions = []string{
	"Tell me about yourself and your professional background.",
	"What are your greatest strengths and how do they apply to this role?",
	"Describe a challenging situation at work and how you handled it.",
	"Where do you see yourself in five years?",
	"Why do you want to work for this company?",
	"Tell me about a time you had to work under pressure.",
	"How do you handle feedback and criticism?",
	"Do you have any questions for us?",
}

var professionQuestions = map[string][]string{
	"software engineer": {
		"Walk me through your approach to debugging a production issue.",
		"How do you keep your technical skills current?",
		"Describe a system you designed and the trade-offs you made.",
		"How do you approach code reviews?",
	},
	"marketing": {
		"How do you measure the success of a campaign?",
		"Describe a campaign you ran that did not perform as expected.",
		"How do you identify and segment a target audience?",
		"Which marketing channels have you found most effective?",
	},
	"manager": {
		"How do you handle underperforming team members?",
		"Describe your approach to delegating work.",
		"How do you resolve conflicts within your team?",
		"Tell me about a difficult decision you made as a leader.",
	},
}

func fallbackQuestions(profession string) []string {
	questions := make([]string, len(genericQuestions))
	copy(questions, genericQuestions)

	needle := strings.ToLower(strings.TrimSpace(profession))
	if needle != "" {
		// Fixed lookup order keeps the result deterministic for professions
		// matching more than one key.
		for _, key := range []string{"software engineer", "marketing", "manager"} {
			if strings.Contains(needle, key) || strings.Contains(key, needle) {
				questions = append(questions, professionQuestions[key]...)
				break
			}
		}
	}
	return questions
}

func fallbackJobOptimization() JobOptimization {
	return JobOptimization{
		Keywords:         []string{"teamwork", "communication", "problem solving", "leadership", "adaptability"},
		SkillSuggestions: []string{"Project management", "Data analysis", "Stakeholder communication"},
		ExperienceImprovements: []string{
			"Quantify achievements with concrete numbers where possible",
			"Mirror key phrases from the job description in your experience bullets",
			"Lead each bullet with a strong action verb",
		},
		SummaryImprovement:    "Tailor your summary to highlight the experience most relevant to this position.",
		MissingQualifications: []string{"Review the job description for required certifications or tools not yet on your CV"},
		OverallScore:          75,
	}
}

func fallbackSkills() []string {
	return []string{
		"Communication",
		"Problem solving",
		"Team collaboration",
		"Time management",
		"Adaptability",
	}
}
