// Package parser turns a line of user input into a command value.
package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cast"

	"github.com/odyssey-erp/registrar/internal/catalog"
	"github.com/odyssey-erp/registrar/internal/command"
)

// errFormat marks input that does not match a command's usage.
var errFormat = errors.New("invalid command format")

type builder func(args string) (command.Command, error)

var builders map[catalog.Kind]builder

func init() {
	builders = map[catalog.Kind]builder{
		catalog.KindHelp:              parseHelp,
		catalog.KindExit:              constant(command.Exit{}),
		catalog.KindHistory:           parseHistory,
		catalog.KindViewPrivilege:     constant(command.ViewPrivilege{}),
		catalog.KindLogin:             parseLogin,
		catalog.KindLogout:            constant(command.Logout{}),
		catalog.KindRaise:             parseRaise,
		catalog.KindSetPermAdmin:      parseSetPermAdmin,
		catalog.KindSetMasterPassword: parseSetMasterPassword,

		catalog.KindList:   constant(command.List{}),
		catalog.KindFind:   parseFind,
		catalog.KindView:   indexed(func(i int) command.Command { return command.View{Index: i} }),
		catalog.KindAdd:    parseAdd,
		catalog.KindEdit:   parseEdit,
		catalog.KindDelete: indexed(func(i int) command.Command { return command.Delete{Index: i} }),
		catalog.KindClear:  constant(command.Clear{}),

		catalog.KindListExams:      constant(command.ListExams{}),
		catalog.KindAddExam:        parseAddExam,
		catalog.KindDeleteExam:     indexed(func(i int) command.Command { return command.DeleteExam{Index: i} }),
		catalog.KindRegisterExam:   pair(func(p, e int) command.Command { return command.RegisterExam{PersonIndex: p, ExamIndex: e} }),
		catalog.KindDeregisterExam: pair(func(p, e int) command.Command { return command.DeregisterExam{PersonIndex: p, ExamIndex: e} }),

		catalog.KindListAssessments:  constant(command.ListAssessments{}),
		catalog.KindAddAssessment:    parseAddAssessment,
		catalog.KindDeleteAssessment: indexed(func(i int) command.Command { return command.DeleteAssessment{Index: i} }),
		catalog.KindAddGrade:         parseAddGrade,

		catalog.KindListStatistics: constant(command.ListStatistics{}),
		catalog.KindAddStatistics:  indexed(func(i int) command.Command { return command.AddStatistics{AssessmentIndex: i} }),

		catalog.KindListFees:   constant(command.ListFees{}),
		catalog.KindEditFees:   parseEditFees,
		catalog.KindPaidFees:   indexed(func(i int) command.Command { return command.PaidFees{Index: i} }),
		catalog.KindAttendance: parseAttendance,

		catalog.KindAddAccount:    parseAddAccount,
		catalog.KindDeleteAccount: indexed(func(i int) command.Command { return command.DeleteAccount{Index: i} }),

		catalog.KindListMenu:   constant(command.ListMenu{}),
		catalog.KindAddMenu:    parseAddMenu,
		catalog.KindDeleteMenu: indexed(func(i int) command.Command { return command.DeleteMenu{Index: i} }),

		catalog.KindListOrders:    constant(command.ListOrders{}),
		catalog.KindAddOrder:      parseAddOrder,
		catalog.KindCompleteOrder: indexed(func(i int) command.Command { return command.CompleteOrder{Index: i} }),
		catalog.KindDeleteOrder:   indexed(func(i int) command.Command { return command.DeleteOrder{Index: i} }),

		catalog.KindListMembers:  constant(command.ListMembers{}),
		catalog.KindAddMember:    parseAddMember,
		catalog.KindDeleteMember: indexed(func(i int) command.Command { return command.DeleteMember{Index: i} }),
		catalog.KindRedeem:       pair(func(i, pts int) command.Command { return command.Redeem{Index: i, Points: pts} }),

		catalog.KindListEmployees:  constant(command.ListEmployees{}),
		catalog.KindAddEmployee:    parseAddEmployee,
		catalog.KindDeleteEmployee: indexed(func(i int) command.Command { return command.DeleteEmployee{Index: i} }),
	}
}

// Parse never fails: input it cannot understand becomes command.Incorrect.
func Parse(raw string) command.Command {
	line := strings.TrimSpace(raw)
	if line == "" {
		return command.Incorrect{
			Message: "Invalid command format!",
			Usage:   catalog.Describe(catalog.KindHelp).Usage,
		}
	}
	word, args := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		word, args = line[:i], strings.TrimSpace(line[i:])
	}
	kind, ok := catalog.Lookup(word)
	if !ok {
		return command.Incorrect{Message: "Unknown command", Usage: "Type help to see the available commands."}
	}
	build, ok := builders[kind]
	if !ok {
		return command.Incorrect{Message: "Unknown command", Usage: "Type help to see the available commands."}
	}
	cmd, err := build(args)
	if err != nil {
		return command.Incorrect{Message: message(err), Usage: catalog.Describe(kind).Usage}
	}
	return cmd
}

func message(err error) string {
	var ferr *fieldError
	if errors.As(err, &ferr) {
		return ferr.msg
	}
	return "Invalid command format!"
}

// fieldError explains which argument was malformed.
type fieldError struct {
	msg string
}

func (e *fieldError) Error() string { return e.msg }

func (e *fieldError) Unwrap() error { return errFormat }

func invalidf(format string, args ...any) error {
	return &fieldError{msg: fmt.Sprintf(format, args...)}
}

func constant(cmd command.Command) builder {
	return func(string) (command.Command, error) { return cmd, nil }
}

func indexed(build func(int) command.Command) builder {
	return func(args string) (command.Command, error) {
		fields := strings.Fields(args)
		if len(fields) != 1 {
			return nil, errFormat
		}
		i, err := parseIndex(fields[0])
		if err != nil {
			return nil, err
		}
		return build(i), nil
	}
}

func pair(build func(int, int) command.Command) builder {
	return func(args string) (command.Command, error) {
		fields := strings.Fields(args)
		if len(fields) != 2 {
			return nil, errFormat
		}
		a, err := parseIndex(fields[0])
		if err != nil {
			return nil, err
		}
		b, err := parseIndex(fields[1])
		if err != nil {
			return nil, err
		}
		return build(a, b), nil
	}
}

// parseIndex reads a whole number. Leading zeros are dropped first because
// cast reads a leading zero as an octal prefix.
func parseIndex(raw string) (int, error) {
	trimmed := strings.TrimLeft(raw, "0")
	if trimmed == "" {
		trimmed = "0"
	}
	if strings.HasPrefix(trimmed, "-") {
		trimmed = "-" + strings.TrimLeft(trimmed[1:], "0")
	}
	for _, r := range trimmed {
		if r != '-' && !unicode.IsDigit(r) {
			return 0, invalidf("%q is not a whole number.", raw)
		}
	}
	n, err := cast.ToIntE(trimmed)
	if err != nil {
		return 0, invalidf("%q is not a whole number.", raw)
	}
	return n, nil
}
