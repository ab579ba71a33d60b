package resume

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNormalizeAssignsEntryIDs(t *testing.T) {
	doc := &Document{
		Education:      []Education{{Institution: "TU Berlin"}},
		Experience:     nExperiences(2),
		Skills:         nSkills(1),
		Projects:       []Project{{Name: "CLI tool"}},
		Certifications: []Certification{{Name: "CKA"}},
	}
	doc.Experience[0].ID = "existing-id"

	doc.Normalize()

	if doc.Experience[0].ID != "existing-id" {
		t.Fatalf("existing ids must be preserved")
	}
	if doc.Experience[1].ID == "" || doc.Education[0].ID == "" || doc.Skills[0].ID == "" ||
		doc.Projects[0].ID == "" || doc.Certifications[0].ID == "" {
		t.Fatalf("missing entry ids must be assigned")
	}
	if doc.Experience[1].ID == doc.Education[0].ID {
		t.Fatalf("assigned ids must be unique")
	}
}

func TestValidateRequiresNameAndEmail(t *testing.T) {
	doc := &Document{}
	if err := doc.Validate(); !errors.Is(err, ErrMissingName) {
		t.Fatalf("expected ErrMissingName, got %v", err)
	}

	doc.PersonalInfo.FullName = "Jane Doe"
	if err := doc.Validate(); !errors.Is(err, ErrMissingEmail) {
		t.Fatalf("expected ErrMissingEmail, got %v", err)
	}

	doc.PersonalInfo.Email = "jane@example.com"
	if err := doc.Validate(); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
}

func TestValidateRejectsExperienceWithoutResponsibilities(t *testing.T) {
	doc := startedDoc()
	doc.Experience = []Experience{{Company: "Acme", Position: "Engineer"}}
	if err := doc.Validate(); err == nil {
		t.Fatalf("expected error for experience entry without responsibilities")
	}

	doc.Experience[0].Responsibilities = []string{"  "}
	if err := doc.Validate(); err == nil {
		t.Fatalf("blank responsibilities must not count")
	}

	doc.Experience[0].Responsibilities = []string{"Shipped the API"}
	if err := doc.Validate(); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
}

func TestDocumentJSONShape(t *testing.T) {
	doc := startedDoc()
	doc.Experience = nExperiences(1)
	doc.Normalize()

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Document
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.PersonalInfo.FullName != "Jane Doe" {
		t.Fatalf("personal info lost in round trip")
	}
	if len(decoded.Experience) != 1 || decoded.Experience[0].ID == "" {
		t.Fatalf("experience entries lost in round trip")
	}

	// The wizard exchanges this payload with the API; field names are part
	// of the contract.
	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err != nil {
		t.Fatalf("unmarshal to map: %v", err)
	}
	if _, ok := asMap["workExperience"]; !ok {
		t.Fatalf("expected workExperience key in JSON payload")
	}
	if _, ok := asMap["personalInfo"]; !ok {
		t.Fatalf("expected personalInfo key in JSON payload")
	}
}
