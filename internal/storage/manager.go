package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/odyssey-erp/registrar/internal/app"
	"github.com/odyssey-erp/registrar/internal/book"
	"github.com/odyssey-erp/registrar/internal/catalog"
)

// Manager moves the record stores between memory and a Backend. Preferences
// are kept in their own YAML file next to the documents.
type Manager struct {
	backend   Backend
	prefsPath string
	logger    *slog.Logger

	books *book.Books
	prefs *app.Preferences
	docs  map[catalog.Target]binding
}

type binding struct {
	load func(ctx context.Context) error
	save func(ctx context.Context) error
}

// NewManager constructs a Manager. Load must run before Save.
func NewManager(backend Backend, prefsPath string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{backend: backend, prefsPath: prefsPath, logger: logger}
}

// Load reads every store and the preferences. Missing documents are created
// empty; a document that cannot be decoded fails the whole load.
func (m *Manager) Load(ctx context.Context) (*book.Books, *app.Preferences, error) {
	books := book.NewBooks()
	docs := m.bind(books)

	g, gctx := errgroup.WithContext(ctx)
	for _, target := range catalog.StoreTargets() {
		doc := docs[target]
		g.Go(func() error {
			return doc.load(gctx)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	prefs, err := app.LoadPreferences(m.prefsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("storage: %w", err)
	}

	m.books, m.prefs, m.docs = books, prefs, docs
	for _, kind := range book.Kinds() {
		m.logger.Debug("store loaded", slog.String("kind", kind.String()), slog.Int("records", books.Store(kind).Len()))
	}
	return books, prefs, nil
}

// Save writes the document named by target.
func (m *Manager) Save(ctx context.Context, target catalog.Target) error {
	if m.books == nil {
		return errors.New("storage: save before load")
	}
	if target == catalog.TargetPreferences {
		if err := app.SavePreferences(m.prefsPath, m.prefs); err != nil {
			return fmt.Errorf("storage: %w", err)
		}
		return nil
	}
	doc, ok := m.docs[target]
	if !ok {
		return fmt.Errorf("storage: unknown target %q", target)
	}
	return doc.save(ctx)
}

// Close releases the backend.
func (m *Manager) Close() error {
	return m.backend.Close()
}

func (m *Manager) bind(b *book.Books) map[catalog.Target]binding {
	return map[catalog.Target]binding{
		catalog.TargetPersons:     bindStore(m, catalog.TargetPersons, b.Persons),
		catalog.TargetExams:       bindStore(m, catalog.TargetExams, b.Exams),
		catalog.TargetAssessments: bindStore(m, catalog.TargetAssessments, b.Assessments),
		catalog.TargetStatistics:  bindStore(m, catalog.TargetStatistics, b.Statistics),
		catalog.TargetMenu:        bindStore(m, catalog.TargetMenu, b.Menu),
		catalog.TargetOrders:      bindStore(m, catalog.TargetOrders, b.Orders),
		catalog.TargetMembers:     bindStore(m, catalog.TargetMembers, b.Members),
		catalog.TargetEmployees:   bindStore(m, catalog.TargetEmployees, b.Employees),
	}
}

func bindStore[T book.Record](m *Manager, target catalog.Target, store *book.Store[T]) binding {
	save := func(ctx context.Context) error {
		raw, err := encodeStore(store)
		if err != nil {
			return err
		}
		if err := m.backend.Write(ctx, string(target), raw); err != nil {
			return fmt.Errorf("storage: write %s: %w", target, err)
		}
		return nil
	}
	load := func(ctx context.Context) error {
		raw, err := m.backend.Read(ctx, string(target))
		if errors.Is(err, ErrNotExist) {
			m.logger.Info("creating empty document", slog.String("target", string(target)))
			return save(ctx)
		}
		if err != nil {
			return fmt.Errorf("storage: read %s: %w", target, err)
		}
		return decodeStore(raw, store)
	}
	return binding{load: load, save: save}
}
