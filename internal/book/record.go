package book

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Kind identifies one of the record families kept by the books.
type Kind int

const (
	KindUnknown Kind = iota
	KindPerson
	KindExam
	KindAssessment
	KindStatistic
	KindMenu
	KindOrder
	KindMember
	KindEmployee
)

var kindNames = map[Kind]string{
	KindPerson:     "person",
	KindExam:       "exam",
	KindAssessment: "assessment",
	KindStatistic:  "statistic",
	KindMenu:       "menu item",
	KindOrder:      "order",
	KindMember:     "member",
	KindEmployee:   "employee",
}

// Kinds returns every concrete kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindPerson, KindExam, KindAssessment, KindStatistic, KindMenu, KindOrder, KindMember, KindEmployee}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Record is implemented by every entity held in a Store.
type Record interface {
	Key() string
	Kind() Kind
}

var (
	// ErrDuplicate indicates a record with the same natural key already exists.
	ErrDuplicate = errors.New("book: duplicate record")
	// ErrNotFound indicates no record with the given key exists.
	ErrNotFound = errors.New("book: record not found")
	// ErrInvalid indicates a record failed field validation.
	ErrInvalid = errors.New("book: invalid record")
)

// NotFoundError carries the kind of the missing record.
type NotFoundError struct {
	Kind Kind
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("book: %s %q not found", e.Kind, e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// DuplicateError carries the kind of the colliding record.
type DuplicateError struct {
	Kind Kind
	Key  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("book: %s %q already exists", e.Kind, e.Key)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// Fold normalises a free-text name so keys compare case-insensitively.
// Casers are stateful, so one is built per call.
func Fold(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

func joinKey(parts ...string) string {
	return strings.Join(parts, "|")
}
