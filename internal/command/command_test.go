package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/odyssey-erp/registrar/internal/app"
	"github.com/odyssey-erp/registrar/internal/audit"
	"github.com/odyssey-erp/registrar/internal/auth"
	"github.com/odyssey-erp/registrar/internal/book"
	"github.com/odyssey-erp/registrar/internal/catalog"
	"github.com/odyssey-erp/registrar/internal/lastshown"
	"github.com/odyssey-erp/registrar/internal/privilege"
)

type stubHistory struct {
	entries []audit.Entry
}

func (s stubHistory) Timeline(filters audit.TimelineFilters) audit.Result {
	var rows []audit.Entry
	for _, e := range s.entries {
		if filters.Kind == "" || e.Kind == filters.Kind {
			rows = append(rows, e)
		}
	}
	return audit.Result{Rows: rows, Paging: audit.PagingInfo{Page: 1, PageSize: filters.PageSize}}
}

func newEnv(t *testing.T) *Env {
	t.Helper()
	return &Env{
		Books:       book.NewBooks(),
		Shown:       lastshown.New(),
		Session:     privilege.NewSession(false),
		Model:       privilege.DefaultModel(),
		Auth:        auth.NewService(bcrypt.MinCost),
		Preferences: &app.Preferences{},
		History:     stubHistory{},
		Now:         func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func person(name, phone string) book.Person {
	return book.Person{Name: name, Phone: phone, Email: "x" + phone + "@example.com", Address: "1 Main St"}
}

func seedPersons(t *testing.T, env *Env, people ...book.Person) {
	t.Helper()
	for _, p := range people {
		require.NoError(t, env.Books.Persons.Add(p))
	}
	run(t, env, List{})
}

func run(t *testing.T, env *Env, cmd Command) Result {
	t.Helper()
	res, err := Run(context.Background(), cmd, env)
	require.NoError(t, err)
	if l, ok := res.Listing(); ok {
		env.Shown.Replace(l.Kind, l.Records)
	}
	return res
}

func TestRegisteredCoversEveryKindOnce(t *testing.T) {
	seen := make(map[catalog.Kind]bool)
	for _, c := range Registered() {
		require.False(t, seen[c.Kind()], c.Kind().String())
		seen[c.Kind()] = true
		require.Equal(t, c.Kind(), Describe(c).Kind)
	}
	require.Len(t, seen, len(catalog.Kinds()))
}

func TestRunTranslatesUserErrors(t *testing.T) {
	env := newEnv(t)

	res := run(t, env, Delete{Index: 1})
	require.True(t, res.Failed())
	require.Equal(t, "The person index provided is invalid.", res.Feedback)

	res = run(t, env, Add{Person: book.Person{Name: "Al", Phone: "12", Email: "a@b.co", Address: "x"}})
	require.True(t, res.Failed())
	require.Equal(t, "Phone must be at least 3 characters.", res.Feedback)
}

type brokenCommand struct{}

func (brokenCommand) Kind() catalog.Kind { return catalog.KindList }

func (brokenCommand) Execute(context.Context, *Env) (Result, error) {
	return Result{}, errors.New("disk on fire")
}

func TestRunPropagatesUnexpectedErrors(t *testing.T) {
	_, err := Run(context.Background(), brokenCommand{}, newEnv(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk on fire")
}

func TestIncorrectAlwaysFails(t *testing.T) {
	res := run(t, newEnv(t), Incorrect{Message: "Unknown command", Usage: "help: shows help"})
	require.True(t, res.Failed())
	require.Equal(t, "Unknown command\nhelp: shows help", res.Feedback)
}

func TestDeniedNamesBothLevels(t *testing.T) {
	res := Denied(privilege.LevelAdmin, privilege.LevelBasic)
	require.True(t, res.Failed())
	require.Contains(t, res.Feedback, "Admin")
	require.Contains(t, res.Feedback, "Basic")
}

func TestHelpListsAllowedCommandsOnly(t *testing.T) {
	env := newEnv(t)
	res := run(t, env, Help{})
	require.Contains(t, res.Output, "list:")
	require.NotContains(t, res.Output, "delete INDEX")

	res = run(t, env, Help{Word: "delete"})
	require.Contains(t, res.Feedback, "delete INDEX")
	require.Contains(t, res.Feedback, "requires Admin")

	res = run(t, env, Help{Word: "frobnicate"})
	require.True(t, res.Failed())
}

func TestExitAndHistory(t *testing.T) {
	env := newEnv(t)
	require.True(t, run(t, env, Exit{}).Exit)

	require.Equal(t, "No history recorded.", run(t, env, History{}).Feedback)
	env.History = stubHistory{entries: []audit.Entry{
		{Input: "list", Kind: "list", Outcome: audit.OutcomeOK},
		{Input: "delete 2", Kind: "delete", Outcome: audit.OutcomeDenied},
	}}
	res := run(t, env, History{})
	require.Contains(t, res.Output, "1. [")
	require.Contains(t, res.Output, "list (ok)")
	require.Contains(t, res.Output, "delete 2 (denied)")

	res = run(t, env, History{Word: "delete"})
	require.Equal(t, "1 command shown:", res.Feedback)
	require.NotContains(t, res.Output, "list (ok)")

	require.True(t, run(t, env, History{Word: "frobnicate"}).Failed())
}

func TestListingReplacesOnlyItsKind(t *testing.T) {
	env := newEnv(t)
	seedPersons(t, env, person("Alice", "111"), person("Bob", "222"))
	require.NoError(t, env.Books.Exams.Add(book.Exam{Subject: "Math", Name: "Final", Date: "2024-06-01", Start: "09:00", End: "11:00"}))

	res := run(t, env, ListExams{})
	l, ok := res.Listing()
	require.True(t, ok)
	require.Equal(t, book.KindExam, l.Kind)
	require.Equal(t, 2, env.Shown.Len(book.KindPerson))
	require.Equal(t, 1, env.Shown.Len(book.KindExam))
}
