package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/odyssey-erp/registrar/internal/book"
	"github.com/odyssey-erp/registrar/internal/catalog"
	"github.com/odyssey-erp/registrar/internal/lastshown"
	"github.com/odyssey-erp/registrar/internal/privilege"
	"github.com/odyssey-erp/registrar/internal/shared"
)

// AddAccount attaches or replaces a person's login.
type AddAccount struct {
	Index    int
	Username string
	Password string
	Role     string
}

func (AddAccount) Kind() catalog.Kind { return catalog.KindAddAccount }

func (c AddAccount) Execute(_ context.Context, env *Env) (Result, error) {
	level, err := privilege.ParseLevel(c.Role)
	if err != nil {
		return Result{}, err
	}
	p, err := lastshown.ResolveMutable(env.Shown, env.Books.Persons, c.Index)
	if err != nil {
		return Result{}, err
	}
	if env.Session.IsSelf(p.Key()) && p.Account != nil {
		// Demotion is measured against the stored role, not the session level.
		held, err := privilege.ParseLevel(p.Account.Role)
		if err != nil {
			return Result{}, err
		}
		if level < held {
			return Result{}, shared.ErrSelfTargeting
		}
	}
	holder, err := env.Books.FindAccount(c.Username)
	switch {
	case err == nil && holder.Key() != p.Key():
		return Result{}, shared.Invalid(fmt.Sprintf("Username %s is already taken.", c.Username))
	case err != nil && !errors.Is(err, book.ErrNotFound):
		return Result{}, err
	}
	hash, err := env.Auth.Hash(c.Password)
	if err != nil {
		return Result{}, err
	}
	account := &book.Account{Username: c.Username, PasswordHash: hash, Role: strings.ToLower(level.String())}
	if err := book.Validate(account); err != nil {
		return Result{}, err
	}
	p.Account = account
	return NewResult(fmt.Sprintf("Account %s created for %s with %s privilege", account.Username, p.Name, level)), nil
}

// DeleteAccount removes a person's login.
type DeleteAccount struct {
	Index int
}

func (DeleteAccount) Kind() catalog.Kind { return catalog.KindDeleteAccount }

func (c DeleteAccount) Execute(_ context.Context, env *Env) (Result, error) {
	p, err := lastshown.ResolveMutable(env.Shown, env.Books.Persons, c.Index)
	if err != nil {
		return Result{}, err
	}
	if env.Session.IsSelf(p.Key()) {
		return Result{}, shared.ErrSelfTargeting
	}
	if p.Account == nil {
		return Result{}, shared.Invalid(fmt.Sprintf("%s has no account.", p.Name))
	}
	username := p.Account.Username
	p.Account = nil
	return NewResult(fmt.Sprintf("Account %s deleted", username)), nil
}
