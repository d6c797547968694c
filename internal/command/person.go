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

// List shows every person.
type List struct{}

func (List) Kind() catalog.Kind { return catalog.KindList }

func (List) Execute(_ context.Context, env *Env) (Result, error) {
	return WithListing("Listed all persons", book.KindPerson, env.Books.Persons.Records()), nil
}

// Find shows persons whose name contains any keyword as a whole word.
type Find struct {
	Keywords []string
}

func (Find) Kind() catalog.Kind { return catalog.KindFind }

func (c Find) Execute(_ context.Context, env *Env) (Result, error) {
	if len(c.Keywords) == 0 {
		return Result{}, shared.Invalid("Provide at least one keyword.")
	}
	wanted := make([]string, 0, len(c.Keywords))
	for _, k := range c.Keywords {
		wanted = append(wanted, book.Fold(k))
	}
	matches := env.Books.Persons.Filter(func(p book.Person) bool {
		for _, word := range strings.Fields(book.Fold(p.Name)) {
			if slices.Contains(wanted, word) {
				return true
			}
		}
		return false
	})
	return WithListing(listed(len(matches), book.KindPerson), book.KindPerson, book.AsRecords(matches)), nil
}

// View shows the full profile of one person.
type View struct {
	Index int
}

func (View) Kind() catalog.Kind { return catalog.KindView }

func (c View) Execute(_ context.Context, env *Env) (Result, error) {
	p, err := lastshown.ResolveMutable(env.Shown, env.Books.Persons, c.Index)
	if err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf("Viewing %s", p.Name)).WithOutput(p.Details()), nil
}

// Add inserts a new person.
type Add struct {
	Person book.Person
}

func (Add) Kind() catalog.Kind { return catalog.KindAdd }

func (c Add) Execute(_ context.Context, env *Env) (Result, error) {
	p := c.Person
	p.Exams, p.Fees, p.Attendance, p.Account = nil, nil, nil, nil
	if err := book.Validate(p); err != nil {
		return Result{}, err
	}
	if err := env.Books.Persons.Add(p); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf("New person added: %s", p)), nil
}

// PersonChanges holds the fields an edit replaces; nil leaves a field as is.
type PersonChanges struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
	Tags    *[]string
}

// Empty reports whether no field is being changed.
func (c PersonChanges) Empty() bool {
	return c.Name == nil && c.Phone == nil && c.Email == nil && c.Address == nil && c.Tags == nil
}

func (c PersonChanges) apply(p book.Person) book.Person {
	if c.Name != nil {
		p.Name = *c.Name
	}
	if c.Phone != nil {
		p.Phone = *c.Phone
	}
	if c.Email != nil {
		p.Email = *c.Email
	}
	if c.Address != nil {
		p.Address = *c.Address
	}
	if c.Tags != nil {
		p.Tags = slices.Clone(*c.Tags)
	}
	return p
}

// Edit changes the identifying or contact fields of a person.
type Edit struct {
	Index   int
	Changes PersonChanges
}

func (Edit) Kind() catalog.Kind { return catalog.KindEdit }

func (c Edit) Execute(_ context.Context, env *Env) (Result, error) {
	if c.Changes.Empty() {
		return Result{}, shared.Invalid("At least one field to edit must be provided.")
	}
	current, err := lastshown.ResolveMutable(env.Shown, env.Books.Persons, c.Index)
	if err != nil {
		return Result{}, err
	}
	oldKey := current.Key()
	edited := c.Changes.apply(*current)
	if err := book.Validate(edited); err != nil {
		return Result{}, err
	}
	if err := env.Books.Persons.Replace(oldKey, edited); err != nil {
		return Result{}, err
	}
	env.Books.RekeyPerson(oldKey, edited)
	if env.Session.IsSelf(oldKey) {
		env.Session.Rebind(edited)
	}
	return NewResult(fmt.Sprintf("Edited Person: %s", edited)), nil
}

// Delete removes a person and their registrations and grades.
type Delete struct {
	Index int
}

func (Delete) Kind() catalog.Kind { return catalog.KindDelete }

func (c Delete) Execute(_ context.Context, env *Env) (Result, error) {
	target, err := lastshown.ResolveMutable(env.Shown, env.Books.Persons, c.Index)
	if err != nil {
		return Result{}, err
	}
	if env.Session.IsSelf(target.Key()) {
		return Result{}, shared.ErrSelfTargeting
	}
	removed := *target
	if err := env.Books.Persons.Remove(removed.Key()); err != nil {
		return Result{}, err
	}
	env.Books.DetachPerson(removed)
	return NewResult(fmt.Sprintf("Deleted Person: %s", removed)), nil
}

// Clear removes every person.
type Clear struct{}

func (Clear) Kind() catalog.Kind { return catalog.KindClear }

func (Clear) Execute(_ context.Context, env *Env) (Result, error) {
	if id, ok := env.Session.Identity(); ok && env.Books.Persons.Contains(id.Key()) {
		return Result{}, shared.ErrSelfTargeting
	}
	for _, p := range env.Books.Persons.List() {
		env.Books.DetachPerson(p)
	}
	env.Books.Persons.Clear()
	return NewResult("Address book has been cleared!"), nil
}
