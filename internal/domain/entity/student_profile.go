package entity

// StudentProfile represents one student's submitted data, identified uniquely by name.
// The document store fully overwrites a profile on resubmission; there is no partial update.
type StudentProfile struct {
	Name              string   `bson:"name" json:"name"`
	Email             string   `bson:"email,omitempty" json:"email,omitempty"`
	Phone             string   `bson:"phone,omitempty" json:"phone,omitempty"`
	RollNo            string   `bson:"roll_no,omitempty" json:"roll_no,omitempty"`
	Age               int      `bson:"age" json:"age"`
	Gender            string   `bson:"gender,omitempty" json:"gender,omitempty"`
	EducationLevel    string   `bson:"education_level" json:"education_level"`
	FieldOfStudy      string   `bson:"field_of_study" json:"field_of_study"`
	PreviousMarks     float64  `bson:"previous_marks" json:"previous_marks"`
	TechnicalSkills   []string `bson:"technical_skills" json:"technical_skills"`
	LearningInterests []string `bson:"learning_interests" json:"learning_interests"`
}

// Gender constants. An empty string means the student did not answer.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// EducationLevels is the fixed set of accepted education levels.
var EducationLevels = []string{
	"High School",
	"Undergraduate",
	"Postgraduate",
	"Professional Degree",
	"Doctoral",
}

// FieldsOfStudy is the fixed set of accepted fields of study.
var FieldsOfStudy = []string{
	"Computer Science",
	"Engineering",
	"Data Science",
	"Business",
	"Arts & Humanities",
	"Social Sciences",
	"Natural Sciences",
	"Other",
}

// TechnicalSkillCatalog is the fixed catalog students pick technical skills from.
var TechnicalSkillCatalog = []string{
	"Programming",
	"Data Analysis",
	"Machine Learning",
	"Web Development",
	"Cloud Computing",
	"Cybersecurity",
	"None",
}

// LearningInterestCatalog is the fixed catalog students pick learning interests from.
var LearningInterestCatalog = []string{
	"Software Development",
	"Data Science",
	"Artificial Intelligence",
	"Cloud Technologies",
	"Digital Marketing",
	"Business Analytics",
	"UX/UI Design",
	"Cybersecurity",
}
