package utils

import (
	"testing"

	"resumatch/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderResumeText(t *testing.T) {
	tests := []struct {
		name     string
		resume   *models.Resume
		expected string
	}{
		{
			name:     "empty resume renders nothing",
			resume:   &models.Resume{},
			expected: "",
		},
		{
			name: "only filled sections appear",
			resume: &models.Resume{
				Skills:  "Go, SQL",
				Summary: "Backend engineer",
			},
			expected: "Summary:\nBackend engineer\n\nSkills:\nGo, SQL",
		},
		{
			name: "sections keep a fixed order regardless of input",
			resume: &models.Resume{
				Links:      "https://example.com/jane",
				Education:  "BSc",
				Experience: "4 years",
				Skills:     "Go",
				Summary:    "Engineer",
			},
			expected: "Summary:\nEngineer\n\nSkills:\nGo\n\nExperience:\n4 years\n\nEducation:\nBSc\n\nLinks:\nhttps://example.com/jane",
		},
		{
			name: "whitespace-only sections are skipped",
			resume: &models.Resume{
				Skills:  "   ",
				Summary: "Engineer",
			},
			expected: "Summary:\nEngineer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderResumeText(tt.resume))
		})
	}
}

func TestRenderResumeTextIsDeterministic(t *testing.T) {
	resume := &models.Resume{Skills: "Go", Summary: "Engineer"}
	first := RenderResumeText(resume)
	second := RenderResumeText(resume)
	assert.Equal(t, first, second)
}

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		name     string
		resume   *models.Resume
		expected int
	}{
		{
			name:     "empty resume",
			resume:   &models.Resume{},
			expected: 0,
		},
		{
			name: "half the checklist filled",
			resume: &models.Resume{
				Skills:    "Go",
				Education: "BSc",
				Summary:   "Engineer",
			},
			expected: 50,
		},
		{
			name: "uploaded resume counts through its full text",
			resume: &models.Resume{
				FullText: "extracted resume body",
				Source:   models.ResumeSourceUpload,
			},
			expected: 16,
		},
		{
			name: "everything filled",
			resume: &models.Resume{
				Skills:     "Go",
				Education:  "BSc",
				Experience: "4 years",
				Links:      "https://example.com",
				Summary:    "Engineer",
				FullText:   "rendered",
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompletionPercent(tt.resume))
		})
	}
}
