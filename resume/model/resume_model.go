package model

import "strings"

const (
	DefaultTemplate = "clean"
	DefaultColor    = "slate"
	DefaultFont     = "inter"
)

// Skill is a named skill with an optional proficiency level.
type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// ExperienceItem is one position in the experience section.
type ExperienceItem struct {
	Role    string   `json:"role"`
	Company string   `json:"company"`
	Period  string   `json:"period"`
	Bullets []string `json:"bullets"`
}

// EducationItem is one entry in the education section.
type EducationItem struct {
	Degree  string `json:"degree"`
	School  string `json:"school"`
	Period  string `json:"period"`
	Details string `json:"details"`
}

// ResumeData is the résumé record submitted with every export request.
// Every field is optional; sequences keep the order they were submitted in.
type ResumeData struct {
	Name         string           `json:"name"`
	Title        string           `json:"title"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	Location     string           `json:"location"`
	Photo        *string          `json:"photo,omitempty"`
	Summary      string           `json:"summary"`
	Experience   []ExperienceItem `json:"experience"`
	Education    []EducationItem  `json:"education"`
	Skills       []Skill          `json:"skills"`
	Achievements []string         `json:"achievements"`
}

// ExportPayload is the body of the export endpoints. Template, Color and Font
// are cosmetic hints only; they never change the rendered document.
type ExportPayload struct {
	Data     *ResumeData `json:"data" binding:"required"`
	Template string      `json:"template"`
	Color    string      `json:"color"`
	Font     string      `json:"font"`
}

// WithDefaults fills empty cosmetic hints and guarantees a non-nil Data.
func (p ExportPayload) WithDefaults() ExportPayload {
	if p.Data == nil {
		p.Data = &ResumeData{}
	}
	if strings.TrimSpace(p.Template) == "" {
		p.Template = DefaultTemplate
	}
	if strings.TrimSpace(p.Color) == "" {
		p.Color = DefaultColor
	}
	if strings.TrimSpace(p.Font) == "" {
		p.Font = DefaultFont
	}
	return p
}

// Resume returns the résumé carried by the payload, or an empty one.
func (p ExportPayload) Resume() ResumeData {
	if p.Data == nil {
		return ResumeData{}
	}
	return *p.Data
}

// SuggestPayload is the body of the suggestion endpoint.
type SuggestPayload struct {
	Context map[string]any `json:"context" binding:"required"`
	Type    string         `json:"type" binding:"required"`
}
