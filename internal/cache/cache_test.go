package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore map[string][]byte

func (m memoryStore) Get(_ context.Context, key string) ([]byte, error) { return m[key], nil }

func (m memoryStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m[key] = value
	return nil
}

func (m memoryStore) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m, k)
	}
	return nil
}

func TestNilClientIsEmptyCache(t *testing.T) {
	var c *Client
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestJSONHelpers(t *testing.T) {
	type station struct {
		Name string `json:"name"`
	}
	ctx := context.Background()
	store := memoryStore{}

	SetJSON(ctx, store, "station:1", station{Name: "Львів"}, time.Minute)

	var got station
	require.True(t, GetJSON(ctx, store, "station:1", &got))
	assert.Equal(t, "Львів", got.Name)

	assert.False(t, GetJSON(ctx, store, "station:2", &got))

	store["bad"] = []byte("{")
	assert.False(t, GetJSON(ctx, store, "bad", &got))

	var nilStore Store
	assert.False(t, GetJSON(ctx, nilStore, "station:1", &got))
}
