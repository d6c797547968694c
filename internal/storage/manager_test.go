package storage

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/registrar/internal/book"
	"github.com/odyssey-erp/registrar/internal/catalog"
)

type memoryBackend struct {
	mu       sync.Mutex
	docs     map[string][]byte
	writeErr error
	closed   bool
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{docs: make(map[string][]byte)}
}

func (m *memoryBackend) Read(_ context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.docs[name]
	if !ok {
		return nil, ErrNotExist
	}
	return raw, nil
}

func (m *memoryBackend) Write(_ context.Context, name string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.docs[name] = append([]byte(nil), payload...)
	return nil
}

func (m *memoryBackend) Close() error {
	m.closed = true
	return nil
}

func newManager(t *testing.T, backend Backend) *Manager {
	t.Helper()
	return NewManager(backend, filepath.Join(t.TempDir(), "preferences.yaml"), nil)
}

func TestLoadCreatesMissingDocuments(t *testing.T) {
	backend := newMemoryBackend()
	m := newManager(t, backend)

	books, prefs, err := m.Load(context.Background())
	require.NoError(t, err)
	require.Zero(t, books.Persons.Len())
	require.False(t, prefs.PermanentAdmin)
	for _, target := range catalog.StoreTargets() {
		require.JSONEq(t, `{"version":1,"records":[]}`, string(backend.docs[string(target)]), target)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	backend := newMemoryBackend()
	m := newManager(t, backend)
	books, prefs, err := m.Load(context.Background())
	require.NoError(t, err)

	alice := book.Person{
		Name: "Alice", Phone: "91234567", Email: "alice@example.com", Address: "1 Main St",
		Tags:    []string{"year1"},
		Fees:    &book.Fees{AmountCents: 12050, Due: "2024-04-30"},
		Account: &book.Account{Username: "alice", PasswordHash: "hash", Role: "tutor"},
	}
	require.NoError(t, books.Persons.Add(alice))
	exam := book.Exam{Subject: "Math", Name: "Mid", Date: "2024-03-01", Start: "09:00", End: "11:00", Takers: 1}
	require.NoError(t, books.Exams.Add(exam))
	assessment := book.Assessment{Subject: "Math", Name: "Quiz"}.WithGrade(alice.Key(), 88)
	require.NoError(t, books.Assessments.Add(assessment))
	item := book.MenuItem{Name: "Laksa", PriceCents: 550}
	require.NoError(t, books.Menu.Add(item))
	order, err := book.NewOrder("Bob", "98765432", []book.MenuItem{item}, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, books.Orders.Add(order))
	prefs.PermanentAdmin = true

	for _, target := range []catalog.Target{catalog.TargetPersons, catalog.TargetExams, catalog.TargetAssessments, catalog.TargetMenu, catalog.TargetOrders, catalog.TargetPreferences} {
		require.NoError(t, m.Save(context.Background(), target))
	}

	reloaded, reprefs, err := NewManager(backend, m.prefsPath, nil).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, books.Persons.List(), reloaded.Persons.List())
	require.Equal(t, books.Exams.List(), reloaded.Exams.List())
	require.Equal(t, books.Assessments.List(), reloaded.Assessments.List())
	require.Equal(t, books.Menu.List(), reloaded.Menu.List())
	require.Equal(t, order.ID, reloaded.Orders.List()[0].ID)
	require.True(t, order.PlacedAt.Equal(reloaded.Orders.List()[0].PlacedAt))
	require.True(t, reprefs.PermanentAdmin)
}

func TestLoadRejectsDuplicates(t *testing.T) {
	backend := newMemoryBackend()
	backend.docs["members"] = []byte(`{"version":1,"records":[
		{"name":"Carol","phone":"333","email":"c@example.com","points":0},
		{"name":"carol","phone":"333","email":"other@example.com","points":5}
	]}`)
	_, _, err := newManager(t, backend).Load(context.Background())
	require.ErrorIs(t, err, book.ErrDuplicate)
	require.Contains(t, err.Error(), "record 2")
}

func TestLoadRejectsInvalidRecords(t *testing.T) {
	backend := newMemoryBackend()
	backend.docs["employees"] = []byte(`{"version":1,"records":[{"name":"Dan","phone":"x","email":"d@example.com","position":"Cook"}]}`)
	_, _, err := newManager(t, backend).Load(context.Background())
	require.ErrorIs(t, err, book.ErrInvalid)
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	backend := newMemoryBackend()
	backend.docs["menu"] = []byte(`{"version":7,"records":[]}`)
	_, _, err := newManager(t, backend).Load(context.Background())
	require.ErrorContains(t, err, "version 7")
}

func TestSaveErrors(t *testing.T) {
	backend := newMemoryBackend()
	m := newManager(t, backend)
	require.Error(t, m.Save(context.Background(), catalog.TargetPersons))

	_, _, err := m.Load(context.Background())
	require.NoError(t, err)

	require.ErrorContains(t, m.Save(context.Background(), catalog.Target("bogus")), "unknown target")

	backend.writeErr = errors.New("disk full")
	err = m.Save(context.Background(), catalog.TargetPersons)
	require.ErrorContains(t, err, "write persons")

	require.NoError(t, m.Close())
	require.True(t, backend.closed)
}
