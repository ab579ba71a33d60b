package resume

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Skill proficiency levels offered by the builder UI.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

// Skill categories offered by the builder UI.
const (
	CategoryTechnical = "Technical"
	CategorySoft      = "Soft"
	CategoryLanguage  = "Language"
	CategoryOther     = "Other"
)

// PersonalInfo holds the contact and identity section of a resume.
// The seven contact/social fields feed the ATS personal-info sub-score;
// Summary is scored separately and excluded from that count.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// ContactFieldCount returns how many of the seven contact/social fields are set.
func (p PersonalInfo) ContactFieldCount() int {
	fields := []string{p.FullName, p.Email, p.Phone, p.Location, p.Website, p.LinkedIn, p.GitHub}
	count := 0
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			count++
		}
	}
	return count
}

// Education is one entry in the education section.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	Description string `json:"description,omitempty"`
}

// Experience is one entry in the work-experience section. Each entry owns
// its responsibilities and achievements; they are never shared across entries.
type Experience struct {
	ID               string   `json:"id"`
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate,omitempty"`
	Current          bool     `json:"current"`
	Location         string   `json:"location,omitempty"`
	Responsibilities []string `json:"responsibilities"`
	Achievements     []string `json:"achievements,omitempty"`
}

// Skill is one entry in the skills section. Level and Category are closed
// sets in the builder UI but stored as free text.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Category string `json:"category"`
}

// Project is one entry in the projects section.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	SourceURL    string   `json:"sourceUrl,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
}

// Certification is one entry in the certifications section.
type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	IssueDate    string `json:"issueDate"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
	URL          string `json:"url,omitempty"`
}

// Document is the aggregate root for one resume's content. Entry sequences
// keep insertion order and are independently owned by the document.
type Document struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"workExperience"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
}

// Normalize assigns identifiers to entries missing one so list edits
// (remove-by-id, edit-by-id) stay stable across saves.
func (d *Document) Normalize() {
	for i := range d.Education {
		if d.Education[i].ID == "" {
			d.Education[i].ID = uuid.NewString()
		}
	}
	for i := range d.Experience {
		if d.Experience[i].ID == "" {
			d.Experience[i].ID = uuid.NewString()
		}
	}
	for i := range d.Skills {
		if d.Skills[i].ID == "" {
			d.Skills[i].ID = uuid.NewString()
		}
	}
	for i := range d.Projects {
		if d.Projects[i].ID == "" {
			d.Projects[i].ID = uuid.NewString()
		}
	}
	for i := range d.Certifications {
		if d.Certifications[i].ID == "" {
			d.Certifications[i].ID = uuid.NewString()
		}
	}
}

// Validation errors reported at the persistence boundary.
var (
	ErrMissingName  = errors.New("personal info full name is required")
	ErrMissingEmail = errors.New("personal info email is required")
)

// Validate checks the document against the schema enforced at the
// repository boundary. Malformed payloads are rejected before persistence.
func (d *Document) Validate() error {
	if strings.TrimSpace(d.PersonalInfo.FullName) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(d.PersonalInfo.Email) == "" {
		return ErrMissingEmail
	}
	for i, edu := range d.Education {
		if strings.TrimSpace(edu.Institution) == "" {
			return fmt.Errorf("education entry %d: institution is required", i)
		}
	}
	for i, exp := range d.Experience {
		if strings.TrimSpace(exp.Company) == "" {
			return fmt.Errorf("experience entry %d: company is required", i)
		}
		if strings.TrimSpace(exp.Position) == "" {
			return fmt.Errorf("experience entry %d: position is required", i)
		}
		if len(nonEmpty(exp.Responsibilities)) == 0 {
			return fmt.Errorf("experience entry %d: at least one responsibility is required", i)
		}
	}
	for i, skill := range d.Skills {
		if strings.TrimSpace(skill.Name) == "" {
			return fmt.Errorf("skill entry %d: name is required", i)
		}
	}
	for i, project := range d.Projects {
		if strings.TrimSpace(project.Name) == "" {
			return fmt.Errorf("project entry %d: name is required", i)
		}
	}
	for i, cert := range d.Certifications {
		if strings.TrimSpace(cert.Name) == "" {
			return fmt.Errorf("certification entry %d: name is required", i)
		}
	}
	return nil
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
