package command

import (
	"context"
	"fmt"
	"math"

	"github.com/odyssey-erp/registrar/internal/book"
	"github.com/odyssey-erp/registrar/internal/catalog"
	"github.com/odyssey-erp/registrar/internal/lastshown"
	"github.com/odyssey-erp/registrar/internal/shared"
)

// ListAssessments shows every assessment.
type ListAssessments struct{}

func (ListAssessments) Kind() catalog.Kind { return catalog.KindListAssessments }

func (ListAssessments) Execute(_ context.Context, env *Env) (Result, error) {
	return WithListing("Listed all assessments", book.KindAssessment, env.Books.Assessments.Records()), nil
}

// AddAssessment creates an ungraded assessment.
type AddAssessment struct {
	Assessment book.Assessment
}

func (AddAssessment) Kind() catalog.Kind { return catalog.KindAddAssessment }

func (c AddAssessment) Execute(_ context.Context, env *Env) (Result, error) {
	a := c.Assessment
	a.Grades = nil
	if err := book.Validate(a); err != nil {
		return Result{}, err
	}
	if err := env.Books.Assessments.Add(a); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf("New assessment added: %s", a)), nil
}

// DeleteAssessment removes an assessment and its statistic.
type DeleteAssessment struct {
	Index int
}

func (DeleteAssessment) Kind() catalog.Kind { return catalog.KindDeleteAssessment }

func (c DeleteAssessment) Execute(_ context.Context, env *Env) (Result, error) {
	a, err := lastshown.ResolveMutable(env.Shown, env.Books.Assessments, c.Index)
	if err != nil {
		return Result{}, err
	}
	removed := *a
	if err := env.Books.Assessments.Remove(removed.Key()); err != nil {
		return Result{}, err
	}
	if env.Books.Statistics.Contains(removed.Key()) {
		if err := env.Books.Statistics.Remove(removed.Key()); err != nil {
			return Result{}, err
		}
	}
	return NewResult(fmt.Sprintf("Deleted Assessment: %s", removed)), nil
}

// AddGrade records a person's grade. The person index resolves against the
// last person list and the assessment index against the last assessment list.
type AddGrade struct {
	PersonIndex     int
	AssessmentIndex int
	Grade           float64
}

func (AddGrade) Kind() catalog.Kind { return catalog.KindAddGrade }

func (c AddGrade) Execute(_ context.Context, env *Env) (Result, error) {
	if math.IsNaN(c.Grade) || math.IsInf(c.Grade, 0) || c.Grade < 0 || c.Grade > 100 {
		return Result{}, shared.Invalid("Grade must be between 0 and 100.")
	}
	person, err := lastshown.ResolveMutable(env.Shown, env.Books.Persons, c.PersonIndex)
	if err != nil {
		return Result{}, err
	}
	a, err := lastshown.ResolveMutable(env.Shown, env.Books.Assessments, c.AssessmentIndex)
	if err != nil {
		return Result{}, err
	}
	graded := a.WithGrade(person.Key(), c.Grade)
	if err := book.Validate(graded); err != nil {
		return Result{}, err
	}
	if err := env.Books.Assessments.Replace(a.Key(), graded); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf("Grade %.1f recorded for %s in %s %s", c.Grade, person.Name, graded.Subject, graded.Name)), nil
}

// ListStatistics shows every statistic.
type ListStatistics struct{}

func (ListStatistics) Kind() catalog.Kind { return catalog.KindListStatistics }

func (ListStatistics) Execute(_ context.Context, env *Env) (Result, error) {
	return WithListing("Listed all statistics", book.KindStatistic, env.Books.Statistics.Records()), nil
}

// AddStatistics computes or refreshes the statistic for an assessment.
type AddStatistics struct {
	AssessmentIndex int
}

func (AddStatistics) Kind() catalog.Kind { return catalog.KindAddStatistics }

func (c AddStatistics) Execute(_ context.Context, env *Env) (Result, error) {
	a, err := lastshown.ResolveMutable(env.Shown, env.Books.Assessments, c.AssessmentIndex)
	if err != nil {
		return Result{}, err
	}
	stat, ok := book.Summarize(*a)
	if !ok {
		return Result{}, shared.Invalid("The assessment has no grades yet.")
	}
	if env.Books.Statistics.Contains(stat.Key()) {
		err = env.Books.Statistics.Replace(stat.Key(), stat)
	} else {
		err = env.Books.Statistics.Add(stat)
	}
	if err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf("Statistics updated: %s", stat)), nil
}
