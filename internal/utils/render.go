package utils

import (
	"strings"

	"resumatch/internal/models"
)

// RenderResumeText produces the full-text rendering of a structured resume.
// Pure function: only non-empty sections appear, in a fixed order.
func RenderResumeText(resume *models.Resume) string {
	sections := []struct {
		title string
		body  string
	}{
		{"Summary", resume.Summary},
		{"Skills", resume.Skills},
		{"Experience", resume.Experience},
		{"Education", resume.Education},
		{"Links", resume.Links},
	}

	var parts []string
	for _, section := range sections {
		body := strings.TrimSpace(section.body)
		if body == "" {
			continue
		}
		parts = append(parts, section.title+":\n"+body)
	}
	return strings.Join(parts, "\n\n")
}

// profileChecklist is the fixed set of fields counted toward profile
// completion.
func profileChecklist(resume *models.Resume) []string {
	return []string{
		resume.Skills,
		resume.Education,
		resume.Experience,
		resume.Links,
		resume.Summary,
		resume.FullText,
	}
}

// CompletionPercent is the share of checklist fields that are non-empty,
// as a whole percentage.
func CompletionPercent(resume *models.Resume) int {
	fields := profileChecklist(resume)
	filled := 0
	for _, field := range fields {
		if strings.TrimSpace(field) != "" {
			filled++
		}
	}
	return filled * 100 / len(fields)
}
