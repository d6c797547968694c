package book

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func alice() Person {
	return Person{Name: "Alice Tan", Phone: "91234567", Email: "alice@example.com", Address: "1 Main St"}
}

func bob() Person {
	return Person{Name: "Bob Lim", Phone: "98765432", Email: "bob@example.com", Address: "2 Side Rd"}
}

func TestStoreAddRejectsDuplicateKey(t *testing.T) {
	s := NewStore[Person](KindPerson)
	require.NoError(t, s.Add(alice()))

	dup := alice()
	dup.Name = "ALICE   tan"
	err := s.Add(dup)
	require.ErrorIs(t, err, ErrDuplicate)

	var derr *DuplicateError
	require.True(t, errors.As(err, &derr))
	require.Equal(t, KindPerson, derr.Kind)
	require.Equal(t, 1, s.Len())
}

func TestStoreFindReturnsLiveHandle(t *testing.T) {
	s := NewStore[Person](KindPerson)
	require.NoError(t, s.Add(alice()))

	snapshot := s.List()
	p, err := s.Find(alice().Key())
	require.NoError(t, err)
	p.Address = "9 New Ave"

	require.Equal(t, "9 New Ave", s.List()[0].Address)
	require.Equal(t, "1 Main St", snapshot[0].Address)
}

func TestStoreRemoveAndNotFound(t *testing.T) {
	s := NewStore[Person](KindPerson)
	require.NoError(t, s.Add(alice()))
	require.NoError(t, s.Add(bob()))

	require.NoError(t, s.Remove(alice().Key()))
	require.Equal(t, []Person{bob()}, s.List())

	err := s.Remove(alice().Key())
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Find(alice().Key())
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, KindPerson, nf.Kind)
}

func TestStoreReplaceKeepsPositionAndChecksCollisions(t *testing.T) {
	s := NewStore[Person](KindPerson)
	require.NoError(t, s.Add(alice()))
	require.NoError(t, s.Add(bob()))

	renamed := alice()
	renamed.Name = "Alicia Tan"
	require.NoError(t, s.Replace(alice().Key(), renamed))
	require.Equal(t, "Alicia Tan", s.List()[0].Name)

	clash := bob()
	err := s.Replace(renamed.Key(), clash)
	require.ErrorIs(t, err, ErrDuplicate)
	require.Equal(t, "Alicia Tan", s.List()[0].Name)
}

func TestStoreClearAndRecords(t *testing.T) {
	s := NewStore[Person](KindPerson)
	require.NoError(t, s.Add(alice()))

	records := s.Records()
	require.Len(t, records, 1)
	require.Equal(t, KindPerson, records[0].Kind())

	s.Clear()
	require.Zero(t, s.Len())
	require.Empty(t, s.List())
}

func TestBooksDetachPerson(t *testing.T) {
	b := NewBooks()
	exam := Exam{Subject: "Math", Name: "Midterm", Date: "2024-03-01", Start: "09:00", End: "11:00", Takers: 1}
	require.NoError(t, b.Exams.Add(exam))

	p := alice()
	p.Exams = []string{exam.Key()}
	require.NoError(t, b.Persons.Add(p))

	quiz := Assessment{Subject: "Math", Name: "Quiz 1"}.WithGrade(p.Key(), 80).WithGrade(bob().Key(), 70)
	require.NoError(t, b.Assessments.Add(quiz))

	b.DetachPerson(p)

	require.Equal(t, 0, b.Exams.List()[0].Takers)
	require.Equal(t, map[string]float64{bob().Key(): 70}, b.Assessments.List()[0].Grades)
}

func TestBooksFindAccount(t *testing.T) {
	b := NewBooks()
	p := alice()
	p.Account = &Account{Username: "alice", PasswordHash: "x", Role: "tutor"}
	require.NoError(t, b.Persons.Add(p))
	require.NoError(t, b.Persons.Add(bob()))

	got, err := b.FindAccount("ALICE")
	require.NoError(t, err)
	require.Equal(t, "Alice Tan", got.Name)

	_, err = b.FindAccount("bob")
	require.ErrorIs(t, err, ErrNotFound)
}
