package dto

// Request DTOs

// StudentSubmitRequest carries one intake-form submission. Name is the only hard
// requirement; the remaining rules mirror the constraints the form controls enforce.
type StudentSubmitRequest struct {
	Name              string   `json:"name" validate:"required"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	RollNo            string   `json:"roll_no"`
	Age               int      `json:"age" validate:"gte=16,lte=65"`
	Gender            string   `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	EducationLevel    string   `json:"education_level" validate:"required,oneof='High School' 'Undergraduate' 'Postgraduate' 'Professional Degree' 'Doctoral'"`
	FieldOfStudy      string   `json:"field_of_study" validate:"required,oneof='Computer Science' 'Engineering' 'Data Science' 'Business' 'Arts & Humanities' 'Social Sciences' 'Natural Sciences' 'Other'"`
	PreviousMarks     float64  `json:"previous_marks" validate:"gte=0,lte=100"`
	TechnicalSkills   []string `json:"technical_skills" validate:"omitempty,dive,oneof='Programming' 'Data Analysis' 'Machine Learning' 'Web Development' 'Cloud Computing' 'Cybersecurity' 'None'"`
	LearningInterests []string `json:"learning_interests" validate:"omitempty,dive,oneof='Software Development' 'Data Science' 'Artificial Intelligence' 'Cloud Technologies' 'Digital Marketing' 'Business Analytics' 'UX/UI Design' 'Cybersecurity'"`
}

// Response DTOs

type StudentResponse struct {
	Name              string   `json:"name"`
	Email             string   `json:"email,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	RollNo            string   `json:"roll_no,omitempty"`
	Age               int      `json:"age"`
	Gender            string   `json:"gender,omitempty"`
	EducationLevel    string   `json:"education_level"`
	FieldOfStudy      string   `json:"field_of_study"`
	PreviousMarks     float64  `json:"previous_marks"`
	TechnicalSkills   []string `json:"technical_skills"`
	LearningInterests []string `json:"learning_interests"`
}

type CourseResponse struct {
	Platform   string `json:"platform"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Difficulty string `json:"difficulty"`
}

// StudentSubmitResponse is the full intake result: the stored profile, whether the
// document was created or replaced, the advisor's raw analysis text, and the
// course list shown alongside it.
type StudentSubmitResponse struct {
	Student  StudentResponse  `json:"student"`
	Created  bool             `json:"created"`
	Analysis string           `json:"analysis"`
	Courses  []CourseResponse `json:"courses"`
}

type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
}

// CatalogResponse lists the fixed option sets the intake form renders.
type CatalogResponse struct {
	Genders           []string `json:"genders"`
	EducationLevels   []string `json:"education_levels"`
	FieldsOfStudy     []string `json:"fields_of_study"`
	TechnicalSkills   []string `json:"technical_skills"`
	LearningInterests []string `json:"learning_interests"`
}
