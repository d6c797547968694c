package redisstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/registrar/internal/platform/cache"
	"github.com/odyssey-erp/registrar/internal/storage"
)

func TestReadWrite(t *testing.T) {
	mr := miniredis.RunT(t)
	b := New(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "registrar:")
	t.Cleanup(func() { _ = b.Close() })
	ctx := context.Background()

	_, err := b.Read(ctx, "orders")
	require.ErrorIs(t, err, storage.ErrNotExist)

	require.NoError(t, b.Write(ctx, "orders", []byte(`{"version":1}`)))
	raw, err := b.Read(ctx, "orders")
	require.NoError(t, err)
	require.Equal(t, `{"version":1}`, string(raw))

	stored, err := mr.Get("registrar:orders")
	require.NoError(t, err)
	require.Equal(t, `{"version":1}`, stored)
	require.Zero(t, mr.TTL("registrar:orders"))
}

func TestReadReportsServerErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	b := New(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "")
	t.Cleanup(func() { _ = b.Close() })

	mr.SetError("LOADING")
	_, err := b.Read(context.Background(), "orders")
	require.Error(t, err)
	require.NotErrorIs(t, err, storage.ErrNotExist)
}

func TestCacheDial(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	client, err := cache.New(context.Background(), cache.Options{Addr: addr})
	require.NoError(t, err)
	require.NoError(t, client.Close())

	mr.Close()
	_, err = cache.New(context.Background(), cache.Options{Addr: addr})
	require.ErrorContains(t, err, "platform/cache: ping")
}
