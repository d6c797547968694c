package bolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/registrar/internal/storage"
)

func TestReadWriteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "registrar.db")
	ctx := context.Background()

	b, err := Open(path, time.Second)
	require.NoError(t, err)
	_, err = b.Read(ctx, "exams")
	require.ErrorIs(t, err, storage.ErrNotExist)
	require.NoError(t, b.Write(ctx, "exams", []byte("payload")))
	require.NoError(t, b.Close())

	b, err = Open(path, time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	raw, err := b.Read(ctx, "exams")
	require.NoError(t, err)
	require.Equal(t, "payload", string(raw))
}

func TestOpenTimesOutWhileLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registrar.db")
	b, err := Open(path, time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	_, err = Open(path, 50*time.Millisecond)
	require.Error(t, err)
}
