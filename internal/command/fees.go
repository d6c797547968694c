package command

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/odyssey-erp/registrar/internal/book"
	"github.com/odyssey-erp/registrar/internal/catalog"
	"github.com/odyssey-erp/registrar/internal/lastshown"
	"github.com/odyssey-erp/registrar/internal/shared"
)

// ListFees shows persons with unpaid fees, earliest due date first. The
// listing replaces the person sequence, so later indices refer to it.
type ListFees struct{}

func (ListFees) Kind() catalog.Kind { return catalog.KindListFees }

func (ListFees) Execute(_ context.Context, env *Env) (Result, error) {
	owing := env.Books.Persons.Filter(book.Person.OwesFees)
	slices.SortStableFunc(owing, func(a, b book.Person) int { return strings.Compare(a.Fees.Due, b.Fees.Due) })
	return WithListing(fmt.Sprintf("%d persons with outstanding fees", len(owing)), book.KindPerson, book.AsRecords(owing)), nil
}

// EditFees sets the amount and due date owed by a person.
type EditFees struct {
	Index       int
	AmountCents int64
	Due         string
}

func (EditFees) Kind() catalog.Kind { return catalog.KindEditFees }

func (c EditFees) Execute(_ context.Context, env *Env) (Result, error) {
	fees := &book.Fees{AmountCents: c.AmountCents, Due: c.Due}
	if err := book.Validate(fees); err != nil {
		return Result{}, err
	}
	p, err := lastshown.ResolveMutable(env.Shown, env.Books.Persons, c.Index)
	if err != nil {
		return Result{}, err
	}
	p.Fees = fees
	return NewResult(fmt.Sprintf("Fees for %s set to %s due %s", p.Name, book.FormatMoney(fees.AmountCents), fees.Due)), nil
}

// PaidFees settles a person's fees.
type PaidFees struct {
	Index int
}

func (PaidFees) Kind() catalog.Kind { return catalog.KindPaidFees }

func (c PaidFees) Execute(_ context.Context, env *Env) (Result, error) {
	p, err := lastshown.ResolveMutable(env.Shown, env.Books.Persons, c.Index)
	if err != nil {
		return Result{}, err
	}
	if !p.OwesFees() {
		return Result{}, shared.Invalid(fmt.Sprintf("%s has no outstanding fees.", p.Name))
	}
	settled := *p.Fees
	settled.Paid = true
	p.Fees = &settled
	return NewResult(fmt.Sprintf("Fees of %s paid by %s", book.FormatMoney(settled.AmountCents), p.Name)), nil
}

// Attendance marks a person present or absent on a date.
type Attendance struct {
	Index   int
	Date    string
	Present bool
}

func (Attendance) Kind() catalog.Kind { return catalog.KindAttendance }

func (c Attendance) Execute(_ context.Context, env *Env) (Result, error) {
	if _, err := book.ParseDate(c.Date); err != nil {
		return Result{}, shared.Invalid("Date must be in YYYY-MM-DD form.")
	}
	p, err := lastshown.ResolveMutable(env.Shown, env.Books.Persons, c.Index)
	if err != nil {
		return Result{}, err
	}
	*p = p.WithAttendance(c.Date, c.Present)
	status := "present"
	if !c.Present {
		status = "absent"
	}
	return NewResult(fmt.Sprintf("Marked %s %s on %s", p.Name, status, c.Date)), nil
}
