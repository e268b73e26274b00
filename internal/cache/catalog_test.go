package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every handler calls the catalog unconditionally, so the no-redis path
// has to be safe end to end.
func TestCatalogWithoutRedis(t *testing.T) {
	ctx := context.Background()
	catalog := NewCatalog(nil)

	var out []string
	assert.False(t, catalog.Get(ctx, KeyServices, &out))

	catalog.Set(ctx, KeyServices, []string{"grooming"})
	catalog.Invalidate(ctx, KeyServices, KeyVeterinarians)

	assert.False(t, catalog.Get(ctx, KeyServices, &out))
	assert.Empty(t, out)
}

func TestNilCatalog(t *testing.T) {
	var catalog *Catalog

	var out []string
	assert.False(t, catalog.Get(context.Background(), KeyServices, &out))
	catalog.Set(context.Background(), KeyServices, out)
	catalog.Invalidate(context.Background(), KeyServices)
}
