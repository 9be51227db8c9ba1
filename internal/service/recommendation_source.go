package service

import "student-recommendation-platform/internal/domain/entity"

// RecommendationSource lists course entries to show alongside an analysis.
// The static implementation below is a stub: it ignores the analysis text and
// always returns the same catalog. A real recommender can replace it here
// without touching the intake pipeline.
type RecommendationSource interface {
	Courses(analysis string) []entity.Course
}

type staticCourseSource struct{}

func NewStaticCourseSource() RecommendationSource {
	return &staticCourseSource{}
}

func (s *staticCourseSource) Courses(_ string) []entity.Course {
	return []entity.Course{
		{
			Platform:   "Coursera",
			Title:      "Machine Learning Specialization",
			URL:        "https://www.coursera.org/specializations/machine-learning",
			Difficulty: "Intermediate",
		},
		{
			Platform:   "Udemy",
			Title:      "Complete Python Bootcamp",
			URL:        "https://www.udemy.com/course/complete-python-bootcamp/",
			Difficulty: "Beginner",
		},
	}
}
