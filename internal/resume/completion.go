package resume

import "strings"

// Section identifies one step of the builder wizard.
type Section string

const (
	SectionPersonalInfo Section = "personal-info"
	SectionEducation    Section = "education"
	SectionExperience   Section = "experience"
	SectionSkills       Section = "skills"
	SectionProjects     Section = "projects"
	SectionReview       Section = "review"
)

// Sections returns the wizard steps in order.
func Sections() []Section {
	return []Section{
		SectionPersonalInfo,
		SectionEducation,
		SectionExperience,
		SectionSkills,
		SectionProjects,
		SectionReview,
	}
}

// IsSectionComplete reports whether a section satisfies its completion rule.
// It is a pure function of the current document state and is recomputed on
// every call; nothing is cached.
func IsSectionComplete(doc *Document, section Section) bool {
	if doc == nil {
		return false
	}
	switch section {
	case SectionPersonalInfo:
		return strings.TrimSpace(doc.PersonalInfo.FullName) != "" &&
			strings.TrimSpace(doc.PersonalInfo.Email) != ""
	case SectionEducation:
		return len(doc.Education) > 0
	case SectionExperience:
		return len(doc.Experience) > 0
	case SectionSkills:
		return len(doc.Skills) > 0
	case SectionProjects, SectionReview:
		// Optional and terminal steps carry no gate.
		return true
	default:
		return false
	}
}

// CompletedCount returns how many sections are currently complete.
func CompletedCount(doc *Document) int {
	count := 0
	for _, section := range Sections() {
		if IsSectionComplete(doc, section) {
			count++
		}
	}
	return count
}

// CanNavigate reports whether a user on step current may move to step target.
// Revisiting the current or an earlier step is always allowed; moving ahead
// requires every intervening section to be complete.
func CanNavigate(doc *Document, current, target int) bool {
	steps := Sections()
	if target < 0 || target >= len(steps) {
		return false
	}
	if current < 0 {
		current = 0
	}
	if target <= current {
		return true
	}
	for step := current; step < target; step++ {
		if !IsSectionComplete(doc, steps[step]) {
			return false
		}
	}
	return true
}

// CanSave reports whether the final save action is enabled: every required
// section before the review step must be complete.
func CanSave(doc *Document) bool {
	steps := Sections()
	return CanNavigate(doc, 0, len(steps)-1)
}
