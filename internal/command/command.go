// Package command holds one type per command kind and the environment they
// run against.
package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/odyssey-erp/registrar/internal/app"
	"github.com/odyssey-erp/registrar/internal/audit"
	"github.com/odyssey-erp/registrar/internal/auth"
	"github.com/odyssey-erp/registrar/internal/book"
	"github.com/odyssey-erp/registrar/internal/catalog"
	"github.com/odyssey-erp/registrar/internal/lastshown"
	"github.com/odyssey-erp/registrar/internal/privilege"
	"github.com/odyssey-erp/registrar/internal/shared"
)

// Command is one parsed invocation. The zero value of each implementation
// is a valid registration form carrying no arguments.
type Command interface {
	Kind() catalog.Kind
	Execute(ctx context.Context, env *Env) (Result, error)
}

// Authenticator hashes and checks passwords.
type Authenticator interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
	Authenticate(ctx context.Context, dir auth.Directory, username, password string) (*book.Person, error)
}

// HistoryReader exposes the recent command trail.
type HistoryReader interface {
	Timeline(filters audit.TimelineFilters) audit.Result
}

// Env is everything a command may read or change.
type Env struct {
	Books       *book.Books
	Shown       *lastshown.Registry
	Session     *privilege.Session
	Model       *privilege.Model
	Auth        Authenticator
	Preferences *app.Preferences
	History     HistoryReader
	Now         func() time.Time
}

func (e *Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Describe returns the catalog descriptor of cmd.
func Describe(cmd Command) catalog.Descriptor {
	return catalog.Describe(cmd.Kind())
}

// Run executes cmd and turns recoverable errors into a failed Result.
// Anything it cannot classify is returned for the caller to treat as fatal.
func Run(ctx context.Context, cmd Command, env *Env) (Result, error) {
	res, err := cmd.Execute(ctx, env)
	if err == nil {
		return res, nil
	}
	if msg, ok := UserMessage(err); ok {
		return Failure(msg), nil
	}
	return Result{}, fmt.Errorf("command %s: %w", cmd.Kind(), err)
}

// UserMessage renders a recoverable error for the user. ok is false for
// errors that are not the user's to fix.
func UserMessage(err error) (string, bool) {
	var (
		uerr  *shared.UserError
		ierr  *lastshown.IndexError
		nferr *book.NotFoundError
		duerr *book.DuplicateError
		verr  *book.ValidationError
	)
	switch {
	case errors.As(err, &uerr):
		return uerr.Message, true
	case errors.As(err, &ierr):
		return fmt.Sprintf("The %s index provided is invalid.", ierr.Kind), true
	case errors.As(err, &nferr):
		return fmt.Sprintf("The %s could not be found; list it again to refresh the indices.", nferr.Kind), true
	case errors.As(err, &duerr):
		return fmt.Sprintf("This %s already exists.", duerr.Kind), true
	case errors.As(err, &verr):
		return sentence(verr.Message()), true
	case errors.Is(err, shared.ErrSelfTargeting):
		return "You cannot delete or demote the account you are logged in as.", true
	case errors.Is(err, shared.ErrInvalidCredentials):
		return "Invalid username or password.", true
	case errors.Is(err, privilege.ErrUnknownLevel):
		return "Role must be one of basic, tutor or admin.", true
	default:
		return "", false
	}
}

// Denied is the result for a command the session's level does not admit.
func Denied(required, current privilege.Level) Result {
	return Failure(fmt.Sprintf("Insufficient privilege: this command requires %s, current privilege is %s.", required, current))
}

func sentence(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToUpper(s[:1]) + s[1:]
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}

func listed(n int, kind book.Kind) string {
	noun := kind.String()
	if n != 1 {
		noun += "s"
	}
	return fmt.Sprintf("%d %s listed!", n, noun)
}
