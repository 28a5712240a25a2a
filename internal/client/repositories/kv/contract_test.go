package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// testRepositoryContract exercises the behaviour every backend must share.
func testRepositoryContract(t *testing.T, r Repository) {
	t.Helper()
	ctx := context.Background()

	v, err := r.Get(ctx, "absent")
	require.NoError(t, err)
	require.Nil(t, v, "absent key must read as (nil, nil)")

	require.NoError(t, r.Set(ctx, "k", []byte(`{"a":1}`)))
	v, err = r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"a":1}`), v)

	require.NoError(t, r.Set(ctx, "k", []byte(`{"a":2}`)))
	v, err = r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"a":2}`), v, "Set must overwrite")

	require.NoError(t, r.Set(ctx, "other", []byte("x")))
	require.NoError(t, r.Delete(ctx, "k"))
	v, err = r.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Delete(ctx, "k"), "Delete must be idempotent")

	v, err = r.Get(ctx, "other")
	require.NoError(t, err)
	require.Equal(t, []byte("x"), v, "Delete must not touch other keys")
}
