package command

import (
	"context"
	"fmt"

	"github.com/odyssey-erp/registrar/internal/catalog"
	"github.com/odyssey-erp/registrar/internal/privilege"
	"github.com/odyssey-erp/registrar/internal/shared"
)

// ViewPrivilege reports the session's level and identity.
type ViewPrivilege struct{}

func (ViewPrivilege) Kind() catalog.Kind { return catalog.KindViewPrivilege }

func (ViewPrivilege) Execute(_ context.Context, env *Env) (Result, error) {
	msg := fmt.Sprintf("Current privilege: %s", env.Session.Level())
	if id, ok := env.Session.Identity(); ok {
		msg += fmt.Sprintf(" (logged in as %s)", id.DisplayName())
	}
	if env.Session.PermanentAdmin() {
		msg += " [permanent admin]"
	}
	return NewResult(msg), nil
}

// Login binds the session to an account.
type Login struct {
	Username string
	Password string
}

func (Login) Kind() catalog.Kind { return catalog.KindLogin }

func (c Login) Execute(ctx context.Context, env *Env) (Result, error) {
	person, err := env.Auth.Authenticate(ctx, env.Books, c.Username, c.Password)
	if err != nil {
		return Result{}, err
	}
	level, err := privilege.ParseLevel(person.Account.Role)
	if err != nil {
		return Result{}, fmt.Errorf("account %s: %w", person.Account.Username, err)
	}
	env.Session.Login(*person, level)
	return NewResult(fmt.Sprintf("Logged in as %s with %s privilege.", person.Name, env.Session.Level())), nil
}

// Logout drops the identity and returns to the base level.
type Logout struct{}

func (Logout) Kind() catalog.Kind { return catalog.KindLogout }

func (Logout) Execute(_ context.Context, env *Env) (Result, error) {
	env.Session.ResetToBase()
	return NewResult(fmt.Sprintf("Logged out. Current privilege: %s.", env.Session.Level())), nil
}

// Raise elevates the session to Admin with the master password.
type Raise struct {
	Password string
}

func (Raise) Kind() catalog.Kind { return catalog.KindRaise }

func (c Raise) Execute(_ context.Context, env *Env) (Result, error) {
	if !env.Preferences.HasMasterPassword() {
		return Result{}, shared.Invalid("No master password has been set.")
	}
	if err := env.Auth.Verify(env.Preferences.MasterPasswordHash, c.Password); err != nil {
		return Result{}, err
	}
	env.Session.RaiseTo(privilege.LevelAdmin)
	return NewResult("Privilege raised to Admin."), nil
}

// SetPermAdmin toggles permanent elevation.
type SetPermAdmin struct {
	Enabled bool
}

func (SetPermAdmin) Kind() catalog.Kind { return catalog.KindSetPermAdmin }

func (c SetPermAdmin) Execute(_ context.Context, env *Env) (Result, error) {
	env.Preferences.PermanentAdmin = c.Enabled
	env.Session.SetPermanentAdmin(c.Enabled)
	if c.Enabled {
		return NewResult("Permanent admin enabled."), nil
	}
	return NewResult("Permanent admin disabled; it takes effect at the next logout."), nil
}

// SetMasterPassword replaces the master password.
type SetMasterPassword struct {
	Password string
}

func (SetMasterPassword) Kind() catalog.Kind { return catalog.KindSetMasterPassword }

func (c SetMasterPassword) Execute(_ context.Context, env *Env) (Result, error) {
	hash, err := env.Auth.Hash(c.Password)
	if err != nil {
		return Result{}, err
	}
	env.Preferences.MasterPasswordHash = hash
	return NewResult("Master password updated."), nil
}
