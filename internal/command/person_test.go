package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/registrar/internal/book"
	"github.com/odyssey-erp/registrar/internal/privilege"
)

func TestFindMatchesWholeWords(t *testing.T) {
	env := newEnv(t)
	seedPersons(t, env, person("Alice Tan", "111"), person("Bob Lim", "222"), person("Alicia Ng", "333"))

	res := run(t, env, Find{Keywords: []string{"alice", "LIM"}})
	require.Equal(t, "2 persons listed!", res.Feedback)
	require.Equal(t, 2, env.Shown.Len(book.KindPerson))

	p, err := env.Shown.Resolve(book.KindPerson, 2)
	require.NoError(t, err)
	require.Equal(t, person("Bob Lim", "222").Key(), p.Key())
}

func TestAddStripsDerivedFields(t *testing.T) {
	env := newEnv(t)
	p := person("Alice", "111")
	p.Exams = []string{"bogus"}
	p.Account = &book.Account{Username: "sneaky", PasswordHash: "x", Role: "admin"}

	res := run(t, env, Add{Person: p})
	require.False(t, res.Failed(), res.Feedback)
	stored := env.Books.Persons.List()[0]
	require.Nil(t, stored.Account)
	require.Empty(t, stored.Exams)

	res = run(t, env, Add{Person: person("ALICE", "111")})
	require.True(t, res.Failed())
	require.Equal(t, "This person already exists.", res.Feedback)
}

func TestEditRekeysGrades(t *testing.T) {
	env := newEnv(t)
	seedPersons(t, env, person("Alice", "111"))
	oldKey := person("Alice", "111").Key()
	require.NoError(t, env.Books.Assessments.Add(book.Assessment{Subject: "Math", Name: "Quiz"}.WithGrade(oldKey, 90)))

	name := "Alicia"
	res := run(t, env, Edit{Index: 1, Changes: PersonChanges{Name: &name}})
	require.False(t, res.Failed(), res.Feedback)

	edited := env.Books.Persons.List()[0]
	require.Equal(t, "Alicia", edited.Name)
	require.Equal(t, map[string]float64{edited.Key(): 90}, env.Books.Assessments.List()[0].Grades)
}

func TestEditRequiresChanges(t *testing.T) {
	env := newEnv(t)
	seedPersons(t, env, person("Alice", "111"))
	res := run(t, env, Edit{Index: 1})
	require.True(t, res.Failed())
}

func TestDeleteByIndexAndStaleIndex(t *testing.T) {
	env := newEnv(t)
	seedPersons(t, env, person("A", "111"), person("B", "222"), person("C", "333"))

	res := run(t, env, Delete{Index: 2})
	require.False(t, res.Failed(), res.Feedback)
	require.Equal(t, 2, env.Books.Persons.Len())
	require.False(t, env.Books.Persons.Contains(person("B", "222").Key()))

	// The registry still shows B at index 2 until the next listing.
	res = run(t, env, Delete{Index: 2})
	require.True(t, res.Failed())
	require.Contains(t, res.Feedback, "could not be found")

	res = run(t, env, Delete{Index: 5})
	require.True(t, res.Failed())
	require.Equal(t, "The person index provided is invalid.", res.Feedback)
}

func TestDeleteRefusesLoggedInPerson(t *testing.T) {
	env := newEnv(t)
	alice := person("Alice", "111")
	seedPersons(t, env, alice)
	env.Session.Login(alice, privilege.LevelAdmin)

	res := run(t, env, Delete{Index: 1})
	require.True(t, res.Failed())
	require.Contains(t, res.Feedback, "logged in")
	require.Equal(t, 1, env.Books.Persons.Len())

	res = run(t, env, Clear{})
	require.True(t, res.Failed())
}

func TestClearDetachesEveryone(t *testing.T) {
	env := newEnv(t)
	exam := book.Exam{Subject: "Math", Name: "Final", Date: "2024-06-01", Start: "09:00", End: "11:00"}
	require.NoError(t, env.Books.Exams.Add(exam))
	alice := person("Alice", "111")
	alice.Exams = []string{exam.Key()}
	require.NoError(t, env.Books.Persons.Add(alice))
	live, err := env.Books.Exams.Find(exam.Key())
	require.NoError(t, err)
	live.Takers = 1

	res := run(t, env, Clear{})
	require.False(t, res.Failed())
	require.Zero(t, env.Books.Persons.Len())
	require.Zero(t, env.Books.Exams.List()[0].Takers)
}

func TestViewShowsDetails(t *testing.T) {
	env := newEnv(t)
	seedPersons(t, env, person("Alice", "111"))
	res := run(t, env, View{Index: 1})
	require.Contains(t, res.Output, "Name: Alice")
	require.Contains(t, res.Output, "Exams registered: 0")
}
