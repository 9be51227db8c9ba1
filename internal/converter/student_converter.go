package converter

import (
	"student-recommendation-platform/internal/delivery/dto"
	"student-recommendation-platform/internal/domain/entity"
)

// StudentRequestToEntity builds the profile document from a validated submission.
// Nil skill/interest slices are normalized to empty sets so the stored document
// always carries both arrays.
func StudentRequestToEntity(req *dto.StudentSubmitRequest) *entity.StudentProfile {
	skills := req.TechnicalSkills
	if skills == nil {
		skills = []string{}
	}
	interests := req.LearningInterests
	if interests == nil {
		interests = []string{}
	}

	return &entity.StudentProfile{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		RollNo:            req.RollNo,
		Age:               req.Age,
		Gender:            req.Gender,
		EducationLevel:    req.EducationLevel,
		FieldOfStudy:      req.FieldOfStudy,
		PreviousMarks:     req.PreviousMarks,
		TechnicalSkills:   skills,
		LearningInterests: interests,
	}
}

// StudentToResponse converts a profile entity to its response DTO.
func StudentToResponse(profile *entity.StudentProfile) *dto.StudentResponse {
	if profile == nil {
		return nil
	}

	return &dto.StudentResponse{
		Name:              profile.Name,
		Email:             profile.Email,
		Phone:             profile.Phone,
		RollNo:            profile.RollNo,
		Age:               profile.Age,
		Gender:            profile.Gender,
		EducationLevel:    profile.EducationLevel,
		FieldOfStudy:      profile.FieldOfStudy,
		PreviousMarks:     profile.PreviousMarks,
		TechnicalSkills:   profile.TechnicalSkills,
		LearningInterests: profile.LearningInterests,
	}
}

// CoursesToResponse converts course entities to response DTOs.
func CoursesToResponse(courses []entity.Course) []dto.CourseResponse {
	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, dto.CourseResponse{
			Platform:   course.Platform,
			Title:      course.Title,
			URL:        course.URL,
			Difficulty: course.Difficulty,
		})
	}
	return responses
}
