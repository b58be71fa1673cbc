package lock_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quill/backend/internal/lock"
)

func TestLocalLocker(t *testing.T) {
	l := lock.NewLocalLocker()
	ctx := context.Background()

	release, err := l.Acquire(ctx, "fetch", time.Minute)
	require.NoError(t, err)

	_, err = l.Acquire(ctx, "fetch", time.Minute)
	require.ErrorIs(t, err, lock.ErrNotAcquired)

	other, err := l.Acquire(ctx, "generate", time.Minute)
	require.NoError(t, err)
	other()

	release()
	release()

	again, err := l.Acquire(ctx, "fetch", time.Minute)
	require.NoError(t, err)
	again()
}

type failingLocker struct{}

func (failingLocker) Acquire(context.Context, string, time.Duration) (func(), error) {
	return nil, errors.New("unavailable")
}

func TestChain_ReleasesOnFailure(t *testing.T) {
	local := lock.NewLocalLocker()
	chain := lock.Chain{local, failingLocker{}}

	_, err := chain.Acquire(context.Background(), "fetch", time.Minute)
	require.Error(t, err)

	release, err := local.Acquire(context.Background(), "fetch", time.Minute)
	require.NoError(t, err)
	release()
}

func TestRedisLocker(t *testing.T) {
	url := os.Getenv("QUILL_TEST_REDIS_URL")
	if url == "" {
		t.Skip("QUILL_TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	client, err := lock.NewRedisClient(ctx, url)
	require.NoError(t, err)
	defer client.Close()

	l := lock.NewRedisLocker(client)
	key := "test-" + time.Now().Format("150405.000000")

	release, err := l.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)
	_, err = l.Acquire(ctx, key, time.Minute)
	require.ErrorIs(t, err, lock.ErrNotAcquired)

	release()
	again, err := l.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)
	again()
}
