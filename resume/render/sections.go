package render

import (
	"strings"

	"resume-builder/resume/model"
)

// Section headings, in the order every renderer emits them. Linearize and
// RenderDOCX each walk a résumé independently; both follow this order and the
// joining helpers below.
const (
	HeadingSummary      = "Summary"
	HeadingExperience   = "Experience"
	HeadingEducation    = "Education"
	HeadingSkills       = "Skills"
	HeadingAchievements = "Achievements"

	fallbackName = "Your Name"
	bulletPrefix = "  • "
	subheaderSep = " | "
	entrySep     = " - "
	skillListSep = ", "
)

// SectionHeadings lists the known section headings in render order.
var SectionHeadings = []string{
	HeadingSummary,
	HeadingExperience,
	HeadingEducation,
	HeadingSkills,
	HeadingAchievements,
}

// IsSectionHeading reports whether line, ignoring surrounding whitespace, is a
// known section heading.
func IsSectionHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, h := range SectionHeadings {
		if trimmed == h {
			return true
		}
	}
	return false
}

func headerLine(r model.ResumeData) string {
	if strings.TrimSpace(r.Name) == "" {
		return fallbackName
	}
	return r.Name
}

func subheaderLine(r model.ResumeData) string {
	return joinNonEmpty(subheaderSep, r.Title, r.Email, r.Phone, r.Location)
}

func experienceLine(e model.ExperienceItem) string {
	return joinNonEmpty(entrySep, e.Role, e.Company, e.Period)
}

func educationLine(e model.EducationItem) string {
	return joinNonEmpty(entrySep, e.Degree, e.School, e.Period)
}

// skillsLine renders named skills as "name" or "name (level)". Skills without
// a name are dropped along with their level.
func skillsLine(skills []model.Skill) string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s.Name == "" {
			continue
		}
		if s.Level != "" {
			out = append(out, s.Name+" ("+s.Level+")")
			continue
		}
		out = append(out, s.Name)
	}
	return strings.Join(out, skillListSep)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
