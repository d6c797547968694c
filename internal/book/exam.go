package book

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// Exam is a scheduled examination sitting.
type Exam struct {
	Subject string `json:"subject" validate:"required,max=60"`
	Name    string `json:"name" validate:"required,max=60"`
	Date    string `json:"date" validate:"required,isodate"`
	Start   string `json:"start" validate:"required,clock"`
	End     string `json:"end" validate:"required,clock"`
	Details string `json:"details,omitempty" validate:"max=200"`
	Takers  int    `json:"takers" validate:"gte=0"`
}

func (e Exam) Key() string {
	return joinKey(Fold(e.Subject), Fold(e.Name), e.Date, e.Start, e.End)
}

func (Exam) Kind() Kind { return KindExam }

func (e Exam) String() string {
	s := fmt.Sprintf("%s %s on %s %s-%s; Takers: %d", e.Subject, e.Name, e.Date, e.Start, e.End, e.Takers)
	if e.Details != "" {
		s += "; Details: " + e.Details
	}
	return s
}

// Assessment is a graded piece of work; grades are keyed by person key.
type Assessment struct {
	Subject string             `json:"subject" validate:"required,max=60"`
	Name    string             `json:"name" validate:"required,max=60"`
	Grades  map[string]float64 `json:"grades,omitempty" validate:"dive,gte=0,lte=100"`
}

func (a Assessment) Key() string {
	return joinKey(Fold(a.Subject), Fold(a.Name))
}

func (Assessment) Kind() Kind { return KindAssessment }

// WithGrade returns a copy holding grade for the person key. The grade map
// is copied so earlier listings keep their values.
func (a Assessment) WithGrade(personKey string, grade float64) Assessment {
	grades := make(map[string]float64, len(a.Grades)+1)
	for k, v := range a.Grades {
		grades[k] = v
	}
	grades[personKey] = grade
	a.Grades = grades
	return a
}

// WithoutGrade returns a copy with the person's grade dropped.
func (a Assessment) WithoutGrade(personKey string) Assessment {
	if _, ok := a.Grades[personKey]; !ok {
		return a
	}
	grades := make(map[string]float64, len(a.Grades))
	for k, v := range a.Grades {
		if k != personKey {
			grades[k] = v
		}
	}
	a.Grades = grades
	return a
}

func (a Assessment) String() string {
	return fmt.Sprintf("%s %s; Graded: %d", a.Subject, a.Name, len(a.Grades))
}

// Statistic summarises the grades of one assessment.
type Statistic struct {
	Subject    string  `json:"subject" validate:"required"`
	Assessment string  `json:"assessment" validate:"required"`
	Count      int     `json:"count" validate:"gte=1"`
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	Max        float64 `json:"max"`
	Min        float64 `json:"min"`
	StdDev     float64 `json:"std_dev"`
}

func (s Statistic) Key() string {
	return joinKey(Fold(s.Subject), Fold(s.Assessment))
}

func (Statistic) Kind() Kind { return KindStatistic }

func (s Statistic) String() string {
	return fmt.Sprintf("%s %s; n=%d mean=%.2f median=%.2f max=%.2f min=%.2f sd=%.2f",
		s.Subject, s.Assessment, s.Count, s.Mean, s.Median, s.Max, s.Min, s.StdDev)
}

// Summarize computes the statistic for an assessment; ok is false when no
// grades are recorded.
func Summarize(a Assessment) (Statistic, bool) {
	if len(a.Grades) == 0 {
		return Statistic{}, false
	}
	values := make([]float64, 0, len(a.Grades))
	for _, g := range a.Grades {
		values = append(values, g)
	}
	sort.Float64s(values)

	var sum float64
	for _, v := range values {
		sum += v
	}
	n := float64(len(values))
	mean := sum / n

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}

	mid := len(values) / 2
	median := values[mid]
	if len(values)%2 == 0 {
		median = (values[mid-1] + values[mid]) / 2
	}

	return Statistic{
		Subject:    a.Subject,
		Assessment: a.Name,
		Count:      len(values),
		Mean:       mean,
		Median:     median,
		Max:        slices.Max(values),
		Min:        slices.Min(values),
		StdDev:     math.Sqrt(sq / n),
	}, true
}
