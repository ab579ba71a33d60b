package templates

// Template describes one visual resume template offered by the builder.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AccentColor string `json:"accentColor"`
	Premium     bool   `json:"premium"`
}

// Catalog is the fixed set of templates. Image assets are hosted by the UI.
type Catalog struct {
	templates []Template
	byID      map[string]Template
}

// DefaultTemplateID is assigned when a resume is created without a template.
const DefaultTemplateID = "classic"

// NewCatalog constructs the built-in template catalog.
func NewCatalog() *Catalog {
	items := []Template{
		{ID: "classic", Name: "Classic", Description: "Traditional single-column layout", AccentColor: "#1f2937"},
		{ID: "modern", Name: "Modern", Description: "Two-column layout with a sidebar", AccentColor: "#2563eb"},
		{ID: "minimal", Name: "Minimal", Description: "Clean layout with generous whitespace", AccentColor: "#111111"},
		{ID: "creative", Name: "Creative", Description: "Bold headings and accent blocks", AccentColor: "#db2777"},
		{ID: "professional", Name: "Professional", Description: "Conservative layout for corporate roles", AccentColor: "#065f46"},
		{ID: "executive", Name: "Executive", Description: "Refined serif layout for senior roles", AccentColor: "#7c2d12", Premium: true},
	}
	byID := make(map[string]Template, len(items))
	for _, t := range items {
		byID[t.ID] = t
	}
	return &Catalog{templates: items, byID: byID}
}

// List returns all templates in display order.
func (c *Catalog) List() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Exists reports whether a template id is part of the catalog.
func (c *Catalog) Exists(id string) bool {
	_, ok := c.byID[id]
	return ok
}
