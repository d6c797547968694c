// Package logic runs parsed commands: it authorizes them, executes them,
// records what they displayed and persists what they changed.
package logic

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/odyssey-erp/registrar/internal/audit"
	"github.com/odyssey-erp/registrar/internal/catalog"
	"github.com/odyssey-erp/registrar/internal/command"
	"github.com/odyssey-erp/registrar/internal/lastshown"
	"github.com/odyssey-erp/registrar/internal/observability"
	"github.com/odyssey-erp/registrar/internal/privilege"
)

// Saver persists one document.
type Saver interface {
	Save(ctx context.Context, target catalog.Target) error
}

// Parser turns raw input into a command.
type Parser func(raw string) command.Command

// Params wires a Logic.
type Params struct {
	Env     *command.Env
	Parse   Parser
	Saver   Saver
	Trail   *audit.Trail
	Metrics *observability.Metrics
	Logger  *slog.Logger
}

// Logic is the command executor. Commands run one at a time.
type Logic struct {
	mu      sync.Mutex
	env     *command.Env
	parse   Parser
	saver   Saver
	trail   *audit.Trail
	metrics *observability.Metrics
	logger  *slog.Logger
}

// New constructs a Logic.
func New(p Params) *Logic {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Logic{
		env:     p.Env,
		parse:   p.Parse,
		saver:   p.Saver,
		trail:   p.Trail,
		metrics: p.Metrics,
		logger:  logger,
	}
}

// Execute parses raw and runs it. A returned error is fatal: the in-memory
// state could not be persisted or a command failed unexpectedly.
func (l *Logic) Execute(ctx context.Context, raw string) (command.Result, error) {
	return l.Dispatch(ctx, raw, l.parse(raw))
}

// Dispatch runs an already parsed command; raw is kept for the audit trail.
func (l *Logic) Dispatch(ctx context.Context, raw string, cmd command.Command) (command.Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := time.Now()
	desc := command.Describe(cmd)
	level := l.env.Session.Level()

	if cmd.Kind() != catalog.KindIncorrect && !l.env.Model.IsAllowed(level, cmd.Kind()) {
		res := command.Denied(l.env.Model.RequiredRoleFor(cmd.Kind()), level)
		l.record(raw, desc, level, audit.OutcomeDenied, start)
		return res, nil
	}

	res, err := command.Run(ctx, cmd, l.env)
	if err != nil {
		l.logger.Error("command failed", slog.String("command", desc.Word), slog.Any("error", err))
		l.record(raw, desc, level, audit.OutcomeFailed, start)
		return command.Result{}, err
	}

	if listing, ok := res.Listing(); ok {
		l.env.Shown.Replace(listing.Kind, listing.Records)
	}

	outcome := audit.OutcomeOK
	if res.Failed() {
		outcome = audit.OutcomeFailed
	} else if err := l.persist(ctx, desc); err != nil {
		l.logger.Error("persist failed", slog.String("command", desc.Word), slog.Any("error", err))
		l.record(raw, desc, level, audit.OutcomeFailed, start)
		return res, err
	}
	l.record(raw, desc, level, outcome, start)
	return res, nil
}

func (l *Logic) persist(ctx context.Context, desc catalog.Descriptor) error {
	for _, target := range Targets(desc) {
		if l.saver == nil {
			return fmt.Errorf("logic: no saver for %s", target)
		}
		if err := l.saver.Save(ctx, target); err != nil {
			return fmt.Errorf("logic: save %s: %w", target, err)
		}
		l.metrics.ObserveSave(string(target))
		l.logger.Debug("saved", slog.String("target", string(target)), slog.String("command", desc.Word))
	}
	return nil
}

// Targets lists the documents a successful run of desc must save.
func Targets(desc catalog.Descriptor) []catalog.Target {
	primary, secondary := desc.Category.Targets()
	var out []catalog.Target
	seen := make(map[catalog.Target]bool)
	add := func(ts []catalog.Target) {
		for _, t := range ts {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	if desc.Mutating {
		add(primary)
	}
	if desc.SecondaryMutating {
		add(secondary)
	}
	return out
}

func (l *Logic) record(raw string, desc catalog.Descriptor, level privilege.Level, outcome audit.Outcome, start time.Time) {
	l.metrics.ObserveCommand(desc.Word, string(outcome), time.Since(start))
	if l.trail == nil {
		return
	}
	actor := level.String()
	if id, ok := l.env.Session.Identity(); ok {
		actor = id.DisplayName()
	}
	l.trail.Record(audit.Entry{Actor: actor, Input: raw, Kind: desc.Word, Outcome: outcome})
}

// Shown exposes the last-shown registry for rendering.
func (l *Logic) Shown() *lastshown.Registry {
	return l.env.Shown
}

// Session exposes the privilege session for prompts.
func (l *Logic) Session() *privilege.Session {
	return l.env.Session
}

// Prompt names the current privilege, and the logged in account when there is one.
func (l *Logic) Prompt() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	level := l.env.Session.Level().String()
	if id, ok := l.env.Session.Identity(); ok {
		return fmt.Sprintf("%s (%s)", id.DisplayName(), level)
	}
	return level
}
