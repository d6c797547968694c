// Package privilege implements the role hierarchy that decides which
// command kinds a session may run.
package privilege

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/odyssey-erp/registrar/internal/catalog"
)

// Level is a privilege rank. Higher levels admit every kind of lower ones.
type Level int

const (
	LevelNone Level = iota
	LevelBasic
	LevelTutor
	LevelAdmin
)

func (l Level) String() string {
	switch l {
	case LevelBasic:
		return "Basic"
	case LevelTutor:
		return "Tutor"
	case LevelAdmin:
		return "Admin"
	default:
		return "None"
	}
}

var (
	// ErrDuplicateKind indicates a role lists a kind it already inherits or repeats.
	ErrDuplicateKind = errors.New("privilege: duplicate command kind")
	// ErrUnknownLevel indicates an unrecognised role name.
	ErrUnknownLevel = errors.New("privilege: unknown level")
)

// ParseLevel maps a role name such as "tutor" to its level.
func ParseLevel(raw string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "basic":
		return LevelBasic, nil
	case "tutor":
		return LevelTutor, nil
	case "admin":
		return LevelAdmin, nil
	default:
		return LevelNone, fmt.Errorf("%w: %q", ErrUnknownLevel, raw)
	}
}

// Role holds its own kinds plus everything its parent admits. A role with
// allowAll admits every kind regardless of its list.
type Role struct {
	level    Level
	allowed  map[catalog.Kind]struct{}
	allowAll bool
}

// NewRole builds a role on top of parent (nil for the root role). A kind
// repeated in own, or already admitted by the parent, is rejected.
func NewRole(level Level, parent *Role, allowAll bool, own ...catalog.Kind) (*Role, error) {
	allowed := make(map[catalog.Kind]struct{}, len(own))
	if parent != nil {
		if parent.level >= level {
			return nil, fmt.Errorf("privilege: role %s cannot extend %s", level, parent.level)
		}
		for k := range parent.allowed {
			allowed[k] = struct{}{}
		}
	}
	for _, k := range own {
		if _, dup := allowed[k]; dup {
			return nil, fmt.Errorf("%w: %s in role %s", ErrDuplicateKind, k, level)
		}
		allowed[k] = struct{}{}
	}
	return &Role{
		level:    level,
		allowed:  allowed,
		allowAll: allowAll,
	}, nil
}

// MustRole is NewRole for static tables; a malformed table is a programming
// error and aborts the process.
func MustRole(level Level, parent *Role, allowAll bool, own ...catalog.Kind) *Role {
	r, err := NewRole(level, parent, allowAll, own...)
	if err != nil {
		panic(err)
	}
	return r
}

// Level reports the role's rank.
func (r *Role) Level() Level { return r.level }

// Allows reports whether the role admits kind.
func (r *Role) Allows(kind catalog.Kind) bool {
	if r.allowAll {
		return true
	}
	_, ok := r.allowed[kind]
	return ok
}

// lists reports whether kind is explicitly in the resolved allow list.
func (r *Role) lists(kind catalog.Kind) bool {
	_, ok := r.allowed[kind]
	return ok
}

// AllowList returns the resolved kinds in kind order. For an allowAll role
// it is the full user-invocable catalog.
func (r *Role) AllowList() []catalog.Kind {
	out := make([]catalog.Kind, 0, len(r.allowed))
	if r.allowAll {
		for _, d := range catalog.All() {
			out = append(out, d.Kind)
		}
	} else {
		for k := range r.allowed {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}
