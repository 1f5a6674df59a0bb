package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	catalogdomain "github.com/aarikaaura/storefront/internal/catalog/domain"
)

func product(id string, price float64) catalogdomain.Product {
	return catalogdomain.Product{ID: id, Name: "Product " + id, Price: price}
}

func TestAddIsDeduplicatedByProductID(t *testing.T) {
	repo := NewMemoryRepository()

	assert.True(t, repo.Add("session-1", product("1", 79.99)))
	assert.False(t, repo.Add("session-1", product("1", 79.99)))

	assert.Equal(t, 1, repo.Count("session-1"))
}

func TestContains(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Add("session-1", product("1", 79.99))

	assert.True(t, repo.Contains("session-1", "1"))
	assert.False(t, repo.Contains("session-1", "2"))
	assert.False(t, repo.Contains("session-2", "1"))
}

func TestRemove(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Add("session-1", product("1", 79.99))

	assert.True(t, repo.Remove("session-1", "1"))
	assert.False(t, repo.Remove("session-1", "1"))
	assert.Equal(t, 0, repo.Count("session-1"))
}

func TestTotalValueSumsPrices(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Add("session-1", product("1", 79.99))
	repo.Add("session-1", product("2", 99.99))
	// Duplicate must not inflate the total
	repo.Add("session-1", product("1", 79.99))

	assert.InDelta(t, 179.98, repo.TotalValue("session-1"), 0.0001)
}

func TestClear(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Add("session-1", product("1", 79.99))
	repo.Add("session-1", product("2", 99.99))

	repo.Clear("session-1")

	assert.Equal(t, 0, repo.Count("session-1"))
	assert.Equal(t, 0.0, repo.TotalValue("session-1"))
	assert.Empty(t, repo.List("session-1"))
}

func TestSessionsAreIsolated(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Add("session-a", product("1", 79.99))

	assert.Equal(t, 0, repo.Count("session-b"))
}
