package generation

import (
	"fmt"
	"strings"

	"cvbuilder-backend/internal/resume"
)

func summaryPrompt(info resume.PersonalInfo, experience []resume.Experience, profession string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a concise professional summary (3-4 sentences) for a %s's CV.\n", orDefault(profession, "professional"))
	fmt.Fprintf(&b, "Name: %s\nLocation: %s\n", info.FullName, info.Location)
	if len(experience) > 0 {
		b.WriteString("Work history:\n")
		writeExperience(&b, experience, 3)
	}
	b.WriteString("Respond with the summary text only, no headings or quotes.")
	return b.String()
}

func experiencePrompt(entry resume.Experience, profession string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rewrite the following work experience for a %s's CV so it is achievement-oriented and ATS-friendly.\n", orDefault(profession, "professional"))
	fmt.Fprintf(&b, "Position: %s at %s\n", entry.Position, entry.Company)
	b.WriteString("Current responsibilities:\n")
	for _, r := range entry.Responsibilities {
		fmt.Fprintf(&b, "- %s\n", r)
	}
	b.WriteString(`Respond with a JSON object: {"responsibilities": ["..."], "achievements": ["..."]}`)
	return b.String()
}

func coverLetterPrompt(doc *resume.Document, jobDescription, profession string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a professional cover letter (about four paragraphs) for a %s applying to the following job.\n", orDefault(profession, "professional"))
	fmt.Fprintf(&b, "Job description:\n%s\n\n", jobDescription)
	writeDocumentSummary(&b, doc)
	b.WriteString("Respond with the letter text only.")
	return b.String()
}

func questionsPrompt(profession, jobDescription, experienceLevel string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate 12 interview questions for a %s", orDefault(profession, "professional"))
	if strings.TrimSpace(experienceLevel) != "" {
		fmt.Fprintf(&b, " at %s level", experienceLevel)
	}
	b.WriteString(".\n")
	if strings.TrimSpace(jobDescription) != "" {
		fmt.Fprintf(&b, "Target job description:\n%s\n", jobDescription)
	}
	b.WriteString(`Respond with a JSON array of question strings.`)
	return b.String()
}

func atsPrompt(doc *resume.Document, profession string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Evaluate the following CV for a %s against typical applicant tracking systems.\n", orDefault(profession, "professional"))
	writeDocumentSummary(&b, doc)
	b.WriteString(`Respond with a JSON object: {"score": <integer 0-100>, "suggestions": ["..."]}`)
	return b.String()
}

func jobOptimizationPrompt(doc *resume.Document, jobDescription, profession string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze how well the following CV for a %s matches this job description, and suggest optimizations.\n", orDefault(profession, "professional"))
	fmt.Fprintf(&b, "Job description:\n%s\n\n", jobDescription)
	writeDocumentSummary(&b, doc)
	b.WriteString(`Respond with a JSON object: {"keywords": [], "skillSuggestions": [], "experienceImprovements": [], "summaryImprovement": "", "missingQualifications": [], "overallScore": <integer 0-100>}`)
	return b.String()
}

func skillsPrompt(profession string, experience []resume.Experience) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest 15 skills worth listing on a %s's CV.\n", orDefault(profession, "professional"))
	if len(experience) > 0 {
		b.WriteString("Their work history:\n")
		writeExperience(&b, experience, 3)
	}
	b.WriteString("Respond with a JSON array of skill name strings.")
	return b.String()
}

func writeExperience(b *strings.Builder, experience []resume.Experience, limit int) {
	for i, exp := range experience {
		if i >= limit {
			break
		}
		fmt.Fprintf(b, "- %s at %s (%s)\n", exp.Position, exp.Company, periodLabel(exp))
	}
}

func writeDocumentSummary(b *strings.Builder, doc *resume.Document) {
	if doc == nil {
		return
	}
	fmt.Fprintf(b, "Candidate: %s\n", doc.PersonalInfo.FullName)
	if doc.PersonalInfo.Summary != "" {
		fmt.Fprintf(b, "Summary: %s\n", doc.PersonalInfo.Summary)
	}
	if len(doc.Experience) > 0 {
		b.WriteString("Experience:\n")
		for _, exp := range doc.Experience {
			fmt.Fprintf(b, "- %s at %s (%s)\n", exp.Position, exp.Company, periodLabel(exp))
			for _, r := range exp.Responsibilities {
				fmt.Fprintf(b, "  - %s\n", r)
			}
		}
	}
	if len(doc.Education) > 0 {
		b.WriteString("Education:\n")
		for _, edu := range doc.Education {
			fmt.Fprintf(b, "- %s, %s, %s\n", edu.Degree, edu.Field, edu.Institution)
		}
	}
	if len(doc.Skills) > 0 {
		names := make([]string, 0, len(doc.Skills))
		for _, s := range doc.Skills {
			names = append(names, s.Name)
		}
		fmt.Fprintf(b, "Skills: %s\n", strings.Join(names, ", "))
	}
	if len(doc.Projects) > 0 {
		b.WriteString("Projects:\n")
		for _, p := range doc.Projects {
			fmt.Fprintf(b, "- %s: %s\n", p.Name, p.Description)
		}
	}
	if len(doc.Certifications) > 0 {
		b.WriteString("Certifications:\n")
		for _, c := range doc.Certifications {
			fmt.Fprintf(b, "- %s (%s)\n", c.Name, c.Issuer)
		}
	}
}

func periodLabel(exp resume.Experience) string {
	end := exp.EndDate
	if exp.Current {
		end = "present"
	}
	if end == "" {
		return exp.StartDate
	}
	return exp.StartDate + " - " + end
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
