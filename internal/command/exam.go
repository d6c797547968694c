package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/odyssey-erp/registrar/internal/book"
	"github.com/odyssey-erp/registrar/internal/catalog"
	"github.com/odyssey-erp/registrar/internal/lastshown"
	"github.com/odyssey-erp/registrar/internal/shared"
)

// ListExams shows every exam.
type ListExams struct{}

func (ListExams) Kind() catalog.Kind { return catalog.KindListExams }

func (ListExams) Execute(_ context.Context, env *Env) (Result, error) {
	return WithListing("Listed all exams", book.KindExam, env.Books.Exams.Records()), nil
}

// AddExam schedules an exam.
type AddExam struct {
	Exam book.Exam
}

func (AddExam) Kind() catalog.Kind { return catalog.KindAddExam }

func (c AddExam) Execute(_ context.Context, env *Env) (Result, error) {
	exam := c.Exam
	exam.Takers = 0
	if err := book.Validate(exam); err != nil {
		return Result{}, err
	}
	start, _ := book.ParseClock(exam.Start)
	end, _ := book.ParseClock(exam.End)
	if !end.After(start) {
		return Result{}, shared.Invalid("Exam end time must be after its start time.")
	}
	if err := env.Books.Exams.Add(exam); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf("New exam added: %s", exam)), nil
}

// DeleteExam removes an exam and every registration for it.
type DeleteExam struct {
	Index int
}

func (DeleteExam) Kind() catalog.Kind { return catalog.KindDeleteExam }

func (c DeleteExam) Execute(_ context.Context, env *Env) (Result, error) {
	exam, err := lastshown.ResolveMutable(env.Shown, env.Books.Exams, c.Index)
	if err != nil {
		return Result{}, err
	}
	removed := *exam
	key := removed.Key()
	if err := env.Books.Exams.Remove(key); err != nil {
		return Result{}, err
	}
	for _, p := range env.Books.Persons.List() {
		if !p.RegisteredFor(key) {
			continue
		}
		p.Exams = slices.DeleteFunc(slices.Clone(p.Exams), func(k string) bool { return k == key })
		if err := env.Books.Persons.Replace(p.Key(), p); err != nil {
			return Result{}, err
		}
	}
	return NewResult(fmt.Sprintf("Deleted Exam: %s", removed)), nil
}

// RegisterExam enrols a person for an exam. The person index resolves
// against the last person list and the exam index against the last exam list.
type RegisterExam struct {
	PersonIndex int
	ExamIndex   int
}

func (RegisterExam) Kind() catalog.Kind { return catalog.KindRegisterExam }

func (c RegisterExam) Execute(_ context.Context, env *Env) (Result, error) {
	person, exam, err := resolvePersonExam(env, c.PersonIndex, c.ExamIndex)
	if err != nil {
		return Result{}, err
	}
	key := exam.Key()
	if person.RegisteredFor(key) {
		return Result{}, shared.Invalid(fmt.Sprintf("%s is already registered for this exam.", person.Name))
	}
	person.Exams = append(slices.Clone(person.Exams), key)
	exam.Takers++
	return NewResult(fmt.Sprintf("Registered %s for %s %s", person.Name, exam.Subject, exam.Name)), nil
}

// DeregisterExam withdraws a person from an exam.
type DeregisterExam struct {
	PersonIndex int
	ExamIndex   int
}

func (DeregisterExam) Kind() catalog.Kind { return catalog.KindDeregisterExam }

func (c DeregisterExam) Execute(_ context.Context, env *Env) (Result, error) {
	person, exam, err := resolvePersonExam(env, c.PersonIndex, c.ExamIndex)
	if err != nil {
		return Result{}, err
	}
	key := exam.Key()
	if !person.RegisteredFor(key) {
		return Result{}, shared.Invalid(fmt.Sprintf("%s is not registered for this exam.", person.Name))
	}
	person.Exams = slices.DeleteFunc(slices.Clone(person.Exams), func(k string) bool { return k == key })
	if exam.Takers > 0 {
		exam.Takers--
	}
	return NewResult(fmt.Sprintf("Deregistered %s from %s %s", person.Name, exam.Subject, exam.Name)), nil
}

func resolvePersonExam(env *Env, personIndex, examIndex int) (*book.Person, *book.Exam, error) {
	person, err := lastshown.ResolveMutable(env.Shown, env.Books.Persons, personIndex)
	if err != nil {
		return nil, nil, err
	}
	exam, err := lastshown.ResolveMutable(env.Shown, env.Books.Exams, examIndex)
	if err != nil {
		return nil, nil, err
	}
	return person, exam, nil
}
