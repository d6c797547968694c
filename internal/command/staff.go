package command

import (
	"context"
	"fmt"

	"github.com/odyssey-erp/registrar/internal/book"
	"github.com/odyssey-erp/registrar/internal/catalog"
	"github.com/odyssey-erp/registrar/internal/lastshown"
	"github.com/odyssey-erp/registrar/internal/shared"
)

// ListMembers shows every member.
type ListMembers struct{}

func (ListMembers) Kind() catalog.Kind { return catalog.KindListMembers }

func (ListMembers) Execute(_ context.Context, env *Env) (Result, error) {
	return WithListing("Listed all members", book.KindMember, env.Books.Members.Records()), nil
}

// AddMember enrols a loyalty member with no points.
type AddMember struct {
	Member book.Member
}

func (AddMember) Kind() catalog.Kind { return catalog.KindAddMember }

func (c AddMember) Execute(_ context.Context, env *Env) (Result, error) {
	m := c.Member
	m.Points = 0
	if err := book.Validate(m); err != nil {
		return Result{}, err
	}
	if err := env.Books.Members.Add(m); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf("New member added: %s", m)), nil
}

// DeleteMember removes a member.
type DeleteMember struct {
	Index int
}

func (DeleteMember) Kind() catalog.Kind { return catalog.KindDeleteMember }

func (c DeleteMember) Execute(_ context.Context, env *Env) (Result, error) {
	m, err := lastshown.ResolveMutable(env.Shown, env.Books.Members, c.Index)
	if err != nil {
		return Result{}, err
	}
	removed := *m
	if err := env.Books.Members.Remove(removed.Key()); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf("Deleted Member: %s", removed)), nil
}

// Redeem spends a member's loyalty points.
type Redeem struct {
	Index  int
	Points int
}

func (Redeem) Kind() catalog.Kind { return catalog.KindRedeem }

func (c Redeem) Execute(_ context.Context, env *Env) (Result, error) {
	if c.Points <= 0 {
		return Result{}, shared.Invalid("Points to redeem must be positive.")
	}
	m, err := lastshown.ResolveMutable(env.Shown, env.Books.Members, c.Index)
	if err != nil {
		return Result{}, err
	}
	if c.Points > m.Points {
		return Result{}, shared.Invalid(fmt.Sprintf("%s only has %d points.", m.Name, m.Points))
	}
	m.Points -= c.Points
	return NewResult(fmt.Sprintf("%s redeemed %d points; %d remaining", m.Name, c.Points, m.Points)), nil
}

// ListEmployees shows every employee.
type ListEmployees struct{}

func (ListEmployees) Kind() catalog.Kind { return catalog.KindListEmployees }

func (ListEmployees) Execute(_ context.Context, env *Env) (Result, error) {
	return WithListing("Listed all employees", book.KindEmployee, env.Books.Employees.Records()), nil
}

// AddEmployee adds a staff member.
type AddEmployee struct {
	Employee book.Employee
}

func (AddEmployee) Kind() catalog.Kind { return catalog.KindAddEmployee }

func (c AddEmployee) Execute(_ context.Context, env *Env) (Result, error) {
	if err := book.Validate(c.Employee); err != nil {
		return Result{}, err
	}
	if err := env.Books.Employees.Add(c.Employee); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf("New employee added: %s", c.Employee)), nil
}

// DeleteEmployee removes a staff member.
type DeleteEmployee struct {
	Index int
}

func (DeleteEmployee) Kind() catalog.Kind { return catalog.KindDeleteEmployee }

func (c DeleteEmployee) Execute(_ context.Context, env *Env) (Result, error) {
	e, err := lastshown.ResolveMutable(env.Shown, env.Books.Employees, c.Index)
	if err != nil {
		return Result{}, err
	}
	removed := *e
	if err := env.Books.Employees.Remove(removed.Key()); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf("Deleted Employee: %s", removed)), nil
}
