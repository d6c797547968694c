package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/registrar/internal/storage"
)

func TestReadWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	b, err := Open(dir)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = b.Read(ctx, "persons")
	require.ErrorIs(t, err, storage.ErrNotExist)

	require.NoError(t, b.Write(ctx, "persons", []byte(`{"version":1}`)))
	require.NoError(t, b.Write(ctx, "persons", []byte(`{"version":1,"records":[]}`)))
	raw, err := b.Read(ctx, "persons")
	require.NoError(t, err)
	require.Equal(t, `{"version":1,"records":[]}`, string(raw))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "persons.json", entries[0].Name())
	require.NoError(t, b.Close())
}
