package usecase

import (
	"sort"

	"student-recommendation-platform/internal/delivery/dto"
	"student-recommendation-platform/internal/domain/entity"
)

// AggregateProfiles derives the dashboard view from the loaded profiles. It is a
// pure function: an empty input yields the explicit no-data state with empty maps
// and no distribution, never an error.
func AggregateProfiles(profiles []entity.StudentProfile) *dto.DashboardResponse {
	aggregates := &dto.DashboardResponse{
		TotalStudents:           len(profiles),
		NoData:                  len(profiles) == 0,
		EducationLevelCounts:    map[string]int{},
		FieldOfStudyCounts:      map[string]int{},
		AverageMarksByEducation: map[string]float64{},
		TechnicalSkillCounts:    map[string]int{},
		LearningInterestCounts:  map[string]int{},
	}

	if len(profiles) == 0 {
		return aggregates
	}

	marks := make([]float64, 0, len(profiles))
	marksSumByEducation := map[string]float64{}

	for i := range profiles {
		p := &profiles[i]

		aggregates.EducationLevelCounts[p.EducationLevel]++
		aggregates.FieldOfStudyCounts[p.FieldOfStudy]++

		marks = append(marks, p.PreviousMarks)
		marksSumByEducation[p.EducationLevel] += p.PreviousMarks

		for _, skill := range p.TechnicalSkills {
			aggregates.TechnicalSkillCounts[skill]++
		}
		for _, interest := range p.LearningInterests {
			aggregates.LearningInterestCounts[interest]++
		}
	}

	for level, sum := range marksSumByEducation {
		aggregates.AverageMarksByEducation[level] = sum / float64(aggregates.EducationLevelCounts[level])
	}

	aggregates.MarksDistribution = marksDistribution(marks)

	return aggregates
}

// marksDistribution computes min/quartiles/max over the marks using linear
// interpolation between closest ranks, matching the convention charting
// libraries use for boxplots.
func marksDistribution(marks []float64) *dto.MarksDistribution {
	sorted := make([]float64, len(marks))
	copy(sorted, marks)
	sort.Float64s(sorted)

	return &dto.MarksDistribution{
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

// quantile expects sorted non-empty input.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := q * float64(len(sorted)-1)
	lower := int(pos)
	frac := pos - float64(lower)

	if lower+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}
