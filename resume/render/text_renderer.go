package render

import (
	"strings"

	"resume-builder/resume/model"
)

// Linearize maps a résumé to its display lines in section order. The result
// never starts or ends with a blank line.
func Linearize(resume model.ResumeData) []string {
	text := strings.TrimSuffix(LinearizeText(resume), "\n")
	return strings.Split(text, "\n")
}

// LinearizeText returns the plain-text rendition of a résumé: the section
// lines joined by newlines, trimmed, with exactly one trailing newline.
func LinearizeText(resume model.ResumeData) string {
	parts := []string{headerLine(resume)}
	if sub := subheaderLine(resume); sub != "" {
		parts = append(parts, sub)
	}

	if resume.Summary != "" {
		parts = append(parts, "", HeadingSummary, resume.Summary)
	}

	if len(resume.Experience) > 0 {
		parts = append(parts, "", HeadingExperience)
		for _, e := range resume.Experience {
			parts = append(parts, experienceLine(e))
			for _, b := range nonBlank(e.Bullets) {
				parts = append(parts, bulletPrefix+b)
			}
		}
	}

	if len(resume.Education) > 0 {
		parts = append(parts, "", HeadingEducation)
		for _, ed := range resume.Education {
			parts = append(parts, educationLine(ed))
			if ed.Details != "" {
				parts = append(parts, bulletPrefix+ed.Details)
			}
		}
	}

	if len(resume.Skills) > 0 {
		if line := skillsLine(resume.Skills); line != "" {
			parts = append(parts, "", HeadingSkills, line)
		}
	}

	if len(resume.Achievements) > 0 {
		parts = append(parts, "", HeadingAchievements)
		for _, a := range nonBlank(resume.Achievements) {
			parts = append(parts, bulletPrefix+a)
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n")) + "\n"
}

// RenderText renders a résumé as UTF-8 plain text.
func RenderText(resume model.ResumeData) []byte {
	return []byte(LinearizeText(resume))
}
