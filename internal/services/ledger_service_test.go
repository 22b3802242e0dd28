package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"globehopper/pkg/utils"
)

func TestLedgerAddAndTotal(t *testing.T) {
	state, _ := newTestState(t)
	ledger := NewLedgerService(state)

	first, err := ledger.AddEntry(context.Background(), "Smørrebrød", 85, "Food")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := ledger.AddEntry(context.Background(), "Metro ticket", 24, "Transport")
	require.NoError(t, err)

	out := ledger.Ledger()
	require.Len(t, out.Entries, 2)
	assert.Equal(t, second.ID, out.Entries[0].ID, "newest entry first")
	assert.Equal(t, 109.0, out.Total)
	assert.Equal(t, "DKK", out.Currency)
}

func TestLedgerValidation(t *testing.T) {
	state, _ := newTestState(t)
	ledger := NewLedgerService(state)

	_, err := ledger.AddEntry(context.Background(), "  ", 10, "Food")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = ledger.AddEntry(context.Background(), "coffee", 0, "Food")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	entry, err := ledger.AddEntry(context.Background(), "souvenir", 50, "NotACategory")
	require.NoError(t, err)
	assert.Equal(t, "Misc", entry.Category, "unknown category falls back to Misc")
}

func TestLedgerRemove(t *testing.T) {
	state, _ := newTestState(t)
	ledger := NewLedgerService(state)

	entry, err := ledger.AddEntry(context.Background(), "museum", 120, "Activities")
	require.NoError(t, err)

	assert.ErrorIs(t, ledger.RemoveEntry(context.Background(), "missing-id"), utils.ErrNotFound)
	require.NoError(t, ledger.RemoveEntry(context.Background(), entry.ID))
	assert.Empty(t, ledger.Ledger().Entries)
}

func TestShoppingListLifecycle(t *testing.T) {
	state, _ := newTestState(t)
	ledger := NewLedgerService(state)

	item, err := ledger.AddShoppingItem(context.Background(), "Rain jacket")
	require.NoError(t, err)
	assert.False(t, item.Done)

	_, err = ledger.AddShoppingItem(context.Background(), "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	require.NoError(t, ledger.ToggleShoppingItem(context.Background(), item.ID))
	assert.True(t, ledger.ShoppingList()[0].Done)
	require.NoError(t, ledger.ToggleShoppingItem(context.Background(), item.ID))
	assert.False(t, ledger.ShoppingList()[0].Done)

	assert.ErrorIs(t, ledger.ToggleShoppingItem(context.Background(), "missing"), utils.ErrNotFound)

	require.NoError(t, ledger.RemoveShoppingItem(context.Background(), item.ID))
	assert.Empty(t, ledger.ShoppingList())
}
