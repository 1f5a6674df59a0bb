package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemMergesSameProductAndSize(t *testing.T) {
	cart := NewCart("session-1")

	require.NoError(t, cart.AddItem("1", "M", 79.99))
	require.NoError(t, cart.AddItem("1", "M", 79.99))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestAddItemDistinctSizesAreSeparateLines(t *testing.T) {
	cart := NewCart("session-1")

	require.NoError(t, cart.AddItem("1", "M", 79.99))
	require.NoError(t, cart.AddItem("1", "L", 79.99))

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.Equal(t, 1, cart.Lines[1].Quantity)
}

func TestAddItemRequiresProductID(t *testing.T) {
	cart := NewCart("session-1")

	err := cart.AddItem("", "M", 79.99)
	assert.ErrorIs(t, err, ErrInvalidProduct)
	assert.True(t, cart.IsEmpty())
}

func TestAddItemKeepsPriceFromFirstInsert(t *testing.T) {
	cart := NewCart("session-1")

	require.NoError(t, cart.AddItem("1", "M", 79.99))
	// Catalog price changes after the line exists
	require.NoError(t, cart.AddItem("1", "M", 89.99))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 79.99, cart.Lines[0].UnitPrice)
}

func TestSetQuantityRejectsBelowOne(t *testing.T) {
	cart := NewCart("session-1")
	require.NoError(t, cart.AddItem("1", "M", 79.99))

	err := cart.SetQuantity("1", "M", 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	err = cart.SetQuantity("1", "M", -3)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestSetQuantityMissingLine(t *testing.T) {
	cart := NewCart("session-1")

	err := cart.SetQuantity("nope", "M", 2)
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestRemoveItemAbsentIsNoOp(t *testing.T) {
	cart := NewCart("session-1")
	require.NoError(t, cart.AddItem("1", "M", 79.99))

	cart.RemoveItem("1", "L")
	cart.RemoveItem("2", "M")

	assert.Len(t, cart.Lines, 1)
}

func TestRemoveItemDeletesWholeLine(t *testing.T) {
	cart := NewCart("session-1")
	require.NoError(t, cart.AddItem("1", "M", 79.99))
	require.NoError(t, cart.SetQuantity("1", "M", 5))

	cart.RemoveItem("1", "M")

	assert.True(t, cart.IsEmpty())
}

func TestTotalsBelowFreeShippingThreshold(t *testing.T) {
	cart := NewCart("session-1")
	require.NoError(t, cart.AddItem("1", "M", 79.99))

	totals := cart.Totals(DefaultPricing())

	assert.InDelta(t, 79.99, totals.Subtotal, 0.0001)
	assert.InDelta(t, 10.3987, totals.Tax, 0.0001)
	assert.InDelta(t, 9.99, totals.ShippingFee, 0.0001)
	assert.InDelta(t, 100.3787, totals.Total, 0.0001)
}

func TestTotalsAboveFreeShippingThreshold(t *testing.T) {
	cart := NewCart("session-1")
	require.NoError(t, cart.AddItem("1", "M", 79.99))
	require.NoError(t, cart.AddItem("1", "M", 79.99))

	totals := cart.Totals(DefaultPricing())

	assert.InDelta(t, 159.98, totals.Subtotal, 0.0001)
	assert.Equal(t, 0.0, totals.ShippingFee)
	assert.InDelta(t, 159.98*1.13, totals.Total, 0.0001)
}

func TestTotalsEmptyCartHasNoShipping(t *testing.T) {
	cart := NewCart("session-1")

	totals := cart.Totals(DefaultPricing())

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Tax)
	assert.Equal(t, 0.0, totals.ShippingFee)
	assert.Equal(t, 0.0, totals.Total)
}

func TestClearEmptiesAllLines(t *testing.T) {
	cart := NewCart("session-1")
	require.NoError(t, cart.AddItem("1", "M", 79.99))
	require.NoError(t, cart.AddItem("2", "", 99.99))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0.0, cart.Totals(DefaultPricing()).Total)
}

func TestLineLookup(t *testing.T) {
	cart := NewCart("session-1")
	require.NoError(t, cart.AddItem("1", "M", 79.99))

	assert.NotNil(t, cart.Line("1", "M"))
	assert.Nil(t, cart.Line("1", "L"))
}
