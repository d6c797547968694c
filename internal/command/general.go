package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/odyssey-erp/registrar/internal/audit"
	"github.com/odyssey-erp/registrar/internal/catalog"
	"github.com/odyssey-erp/registrar/internal/shared"
)

// Incorrect stands in for input that could not be parsed. It is always
// admitted so the user sees why.
type Incorrect struct {
	Message string
	Usage   string
}

func (Incorrect) Kind() catalog.Kind { return catalog.KindIncorrect }

func (c Incorrect) Execute(context.Context, *Env) (Result, error) {
	msg := c.Message
	if msg == "" {
		msg = "Invalid command format!"
	}
	if c.Usage != "" {
		msg += "\n" + c.Usage
	}
	return Failure(msg), nil
}

// Help lists the commands the session may run, or one command's usage.
type Help struct {
	Word string
}

func (Help) Kind() catalog.Kind { return catalog.KindHelp }

func (c Help) Execute(_ context.Context, env *Env) (Result, error) {
	level := env.Session.Level()
	if c.Word != "" {
		kind, ok := catalog.Lookup(c.Word)
		if !ok {
			return Result{}, shared.Invalid(fmt.Sprintf("Unknown command %q.", c.Word))
		}
		d := catalog.Describe(kind)
		usage := d.Usage
		if !env.Model.IsAllowed(level, kind) {
			usage += fmt.Sprintf("\n(requires %s privilege)", env.Model.RequiredRoleFor(kind))
		}
		return NewResult(usage), nil
	}

	allowed := make(map[catalog.Kind]bool)
	for _, k := range env.Model.AllowList(level) {
		allowed[k] = true
	}
	var b strings.Builder
	current := catalog.Category(-1)
	for _, d := range catalog.All() {
		if !allowed[d.Kind] {
			continue
		}
		if d.Category != current {
			current = d.Category
			fmt.Fprintf(&b, "%s:\n", current)
		}
		fmt.Fprintf(&b, "  %s\n", strings.SplitN(d.Usage, "\n", 2)[0])
	}
	return NewResult(fmt.Sprintf("Commands available at %s privilege:", level)).
		WithOutput(strings.TrimRight(b.String(), "\n")), nil
}

// Exit asks the front end to leave.
type Exit struct{}

func (Exit) Kind() catalog.Kind { return catalog.KindExit }

func (Exit) Execute(context.Context, *Env) (Result, error) {
	res := NewResult("Exiting application as requested ...")
	res.Exit = true
	return res, nil
}

// History shows the most recent commands, newest first. Word narrows the
// list to one command; Page walks back through older entries.
type History struct {
	Word string
	Page int
}

const historyPageSize = 20

func (History) Kind() catalog.Kind { return catalog.KindHistory }

func (c History) Execute(_ context.Context, env *Env) (Result, error) {
	if env.History == nil {
		return NewResult("No history recorded."), nil
	}
	if c.Word != "" {
		if _, ok := catalog.Lookup(c.Word); !ok {
			return Result{}, shared.Invalid(fmt.Sprintf("Unknown command %q.", c.Word))
		}
	}
	page := c.Page
	if page <= 0 {
		page = 1
	}
	timeline := env.History.Timeline(audit.TimelineFilters{Kind: strings.ToLower(c.Word), Page: page, PageSize: historyPageSize})
	if len(timeline.Rows) == 0 {
		return NewResult("No history recorded."), nil
	}
	var b strings.Builder
	for i, e := range timeline.Rows {
		n := (page-1)*timeline.Paging.PageSize + i + 1
		fmt.Fprintf(&b, "%d. [%s] %s (%s)\n", n, e.At.Format("2006-01-02 15:04:05"), e.Input, e.Outcome)
	}
	if timeline.Paging.HasNext {
		fmt.Fprintf(&b, "More entries: history %s%d\n", historyWordPrefix(c.Word), timeline.Paging.NextPage)
	}
	noun := "commands"
	if len(timeline.Rows) == 1 {
		noun = "command"
	}
	return NewResult(fmt.Sprintf("%d %s shown:", len(timeline.Rows), noun)).
		WithOutput(strings.TrimRight(b.String(), "\n")), nil
}

func historyWordPrefix(word string) string {
	if word == "" {
		return ""
	}
	return word + " "
}
