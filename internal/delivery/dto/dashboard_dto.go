package dto

// MarksDistribution summarizes previous_marks across all profiles.
type MarksDistribution struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// DashboardResponse is the full set of aggregates the dashboard renders.
// NoData is set, and every map is empty, when the collection holds no profiles.
type DashboardResponse struct {
	TotalStudents           int                `json:"total_students"`
	NoData                  bool               `json:"no_data"`
	EducationLevelCounts    map[string]int     `json:"education_level_counts"`
	FieldOfStudyCounts      map[string]int     `json:"field_of_study_counts"`
	MarksDistribution       *MarksDistribution `json:"marks_distribution,omitempty"`
	AverageMarksByEducation map[string]float64 `json:"average_marks_by_education"`
	TechnicalSkillCounts    map[string]int     `json:"technical_skill_counts"`
	LearningInterestCounts  map[string]int     `json:"learning_interest_counts"`
}
