package service

import (
	"testing"

	"student-recommendation-platform/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	profile := &entity.StudentProfile{
		EducationLevel:    "Undergraduate",
		FieldOfStudy:      "Computer Science",
		PreviousMarks:     82.5,
		TechnicalSkills:   []string{"Programming", "Cloud Computing"},
		LearningInterests: []string{"Data Science"},
	}

	prompt := BuildPrompt(profile)

	assert.Contains(t, prompt, "Education Level: Undergraduate")
	assert.Contains(t, prompt, "Field of Study: Computer Science")
	assert.Contains(t, prompt, "Previous Marks: 82.5%")
	assert.Contains(t, prompt, "Technical Skills: Programming, Cloud Computing")
	assert.Contains(t, prompt, "Learning Interests: Data Science")
}

func TestBuildPromptEmptySets(t *testing.T) {
	profile := &entity.StudentProfile{
		EducationLevel: "High School",
		FieldOfStudy:   "Other",
	}

	prompt := BuildPrompt(profile)

	assert.Contains(t, prompt, "Technical Skills: \n")
	assert.Contains(t, prompt, "Learning Interests: \n")
}
