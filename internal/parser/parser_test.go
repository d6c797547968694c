package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/registrar/internal/book"
	"github.com/odyssey-erp/registrar/internal/catalog"
	"github.com/odyssey-erp/registrar/internal/command"
)

func TestEveryKindHasABuilder(t *testing.T) {
	for _, d := range catalog.All() {
		_, ok := builders[d.Kind]
		require.True(t, ok, d.Word)
	}
}

func TestParseIndexedCommands(t *testing.T) {
	require.Equal(t, command.Delete{Index: 2}, Parse("delete 2"))
	require.Equal(t, command.Delete{Index: 2}, Parse("  DELETE\t2  "))
	require.Equal(t, command.View{Index: 10}, Parse("view 010"))
	require.Equal(t, command.Delete{Index: 0}, Parse("delete 0"))
	require.Equal(t, command.Delete{Index: -3}, Parse("delete -3"))
	require.Equal(t, command.RegisterExam{PersonIndex: 1, ExamIndex: 3}, Parse("registerexam 1 3"))
	require.Equal(t, command.Redeem{Index: 2, Points: 50}, Parse("redeem 2 50"))
}

func TestParseFailuresBecomeIncorrect(t *testing.T) {
	for _, raw := range []string{"", "delete", "delete two", "delete 1 2", "registerexam 1", "frobnicate", "add n/Alice"} {
		cmd := Parse(raw)
		require.Equal(t, catalog.KindIncorrect, cmd.Kind(), raw)
	}

	inc, ok := Parse("delete x").(command.Incorrect)
	require.True(t, ok)
	require.Equal(t, `"x" is not a whole number.`, inc.Message)
	require.Equal(t, catalog.Describe(catalog.KindDelete).Usage, inc.Usage)

	inc, ok = Parse("frobnicate 1").(command.Incorrect)
	require.True(t, ok)
	require.Equal(t, "Unknown command", inc.Message)
}

func TestParseAdd(t *testing.T) {
	cmd := Parse("add n/Alice Tan p/91234567 e/alice@example.com a/1 Main St, #02-01 t/year1 t/cca")
	require.Equal(t, command.Add{Person: book.Person{
		Name:    "Alice Tan",
		Phone:   "91234567",
		Email:   "alice@example.com",
		Address: "1 Main St, #02-01",
		Tags:    []string{"year1", "cca"},
	}}, cmd)
}

func TestParseEdit(t *testing.T) {
	cmd, ok := Parse("edit 3 p/98765432 t/").(command.Edit)
	require.True(t, ok)
	require.Equal(t, 3, cmd.Index)
	require.Equal(t, "98765432", *cmd.Changes.Phone)
	require.Nil(t, cmd.Changes.Name)
	require.NotNil(t, cmd.Changes.Tags)
	require.Empty(t, *cmd.Changes.Tags)

	require.Equal(t, catalog.KindIncorrect, Parse("edit 3").Kind())
}

func TestParseAddExamPrefixesDoNotCollide(t *testing.T) {
	cmd := Parse("addexam s/Math en/Mid Term d/2024-03-01 st/09:00 et/11:00 dt/Bring calculator")
	require.Equal(t, command.AddExam{Exam: book.Exam{
		Subject: "Math",
		Name:    "Mid Term",
		Date:    "2024-03-01",
		Start:   "09:00",
		End:     "11:00",
		Details: "Bring calculator",
	}}, cmd)

	inc, ok := Parse("addexam s/Math en/Mid d/01-03-2024 st/09:00 et/11:00").(command.Incorrect)
	require.True(t, ok)
	require.Contains(t, inc.Message, "YYYY-MM-DD")
}

func TestParseGradeFeesAttendance(t *testing.T) {
	require.Equal(t, command.AddGrade{PersonIndex: 1, AssessmentIndex: 2, Grade: 87.5}, Parse("addgrade 1 2 g/87.5"))
	require.Equal(t, catalog.KindIncorrect, Parse("addgrade 1 2 g/high").Kind())
	for _, raw := range []string{"NaN", "nan", "Inf", "-Inf", "+Inf"} {
		inc, ok := Parse("addgrade 1 2 g/" + raw).(command.Incorrect)
		require.True(t, ok, raw)
		require.Equal(t, "Grade \""+raw+"\" is not a number.", inc.Message)
	}

	require.Equal(t, command.EditFees{Index: 1, AmountCents: 12050, Due: "2024-04-30"}, Parse("editfees 1 f/120.50 d/2024-04-30"))
	require.Equal(t, catalog.KindIncorrect, Parse("editfees 1 f/lots d/2024-04-30").Kind())

	require.Equal(t, command.Attendance{Index: 2, Date: "2024-02-01", Present: true}, Parse("attendance 2 d/2024-02-01"))
	require.Equal(t, command.Attendance{Index: 2, Date: "2024-02-01", Present: false}, Parse("attendance 2 d/2024-02-01 absent"))
	require.Equal(t, command.Attendance{Index: 2, Date: "2024-02-01", Present: false}, Parse("attendance 2 absent d/2024-02-01"))
	require.Equal(t, catalog.KindIncorrect, Parse("attendance 2 d/2024-02-01 late").Kind())
}

func TestParsePrivilegeCommands(t *testing.T) {
	require.Equal(t, command.Login{Username: "alice", Password: "pw"}, Parse("login alice pw"))
	require.Equal(t, command.SetPermAdmin{Enabled: true}, Parse("setpermadmin TRUE"))
	require.Equal(t, command.SetPermAdmin{Enabled: false}, Parse("setpermadmin false"))
	require.Equal(t, catalog.KindIncorrect, Parse("setpermadmin maybe").Kind())
	require.Equal(t, command.Raise{Password: "m"}, Parse("raise m"))
	require.Equal(t, command.Help{Word: "delete"}, Parse("help DELETE"))
	require.Equal(t, command.Logout{}, Parse("logout"))
	require.Equal(t, command.History{}, Parse("history"))
	require.Equal(t, command.History{Word: "delete", Page: 2}, Parse("history DELETE 2"))
	require.Equal(t, command.History{Page: 3}, Parse("history 3"))
	require.Equal(t, catalog.KindIncorrect, Parse("history 1 2").Kind())
}

func TestParseCanteenCommands(t *testing.T) {
	require.Equal(t, command.AddMenu{Item: book.MenuItem{Name: "Chicken Rice", PriceCents: 450, Tags: []string{"rice"}}},
		Parse("addmenu n/Chicken Rice p/4.50 t/rice"))
	require.Equal(t, command.AddOrder{Customer: "Bob", Phone: "98765432", Dishes: []string{"Chicken Rice", "Iced Tea"}},
		Parse("addorder n/Bob p/98765432 m/Chicken Rice m/Iced Tea"))
	require.Equal(t, command.AddEmployee{Employee: book.Employee{Name: "Dan", Phone: "444", Email: "d@example.com", Position: "Head Cook"}},
		Parse("addemployee n/Dan p/444 e/d@example.com pos/Head Cook"))
	require.Equal(t, command.AddAccount{Index: 1, Username: "alice", Password: "pw", Role: "tutor"},
		Parse("addaccount 1 u/alice pw/pw r/tutor"))
}

func TestTokenize(t *testing.T) {
	m := tokenize("7 extra n/Ann  Lee p/1 n/Second", prefixName, prefixPhone)
	require.Equal(t, "7 extra", m.preamble)
	name, ok := m.value(prefixName)
	require.True(t, ok)
	require.Equal(t, "Second", name)
	require.Equal(t, []string{"Ann Lee", "Second"}, m.all(prefixName))
	require.False(t, m.has(prefixEmail))
}
