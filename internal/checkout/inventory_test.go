package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserveAllSucceeds(t *testing.T) {
	ledger := NewInventoryLedger(map[string]int32{"a": 5, "b": 5})
	err := ledger.ReserveAll([]CheckoutLineItem{{ProductID: "a", Quantity: 2}, {ProductID: "b", Quantity: 3}})
	require.NoError(t, err)
	assert.Equal(t, int32(3), ledger.Stock("a"))
	assert.Equal(t, int32(2), ledger.Stock("b"))
}

func TestReserveAllRollsBackPartialOnFailure(t *testing.T) {
	ledger := NewInventoryLedger(map[string]int32{"a": 5, "b": 1})
	err := ledger.ReserveAll([]CheckoutLineItem{{ProductID: "a", Quantity: 2}, {ProductID: "b", Quantity: 5}})
	require.Error(t, err)
	assert.Equal(t, int32(5), ledger.Stock("a"))
	assert.Equal(t, int32(1), ledger.Stock("b"))
}

func TestReleaseAllAddsBack(t *testing.T) {
	ledger := NewInventoryLedger(map[string]int32{"a": 5})
	require.NoError(t, ledger.ReserveAll([]CheckoutLineItem{{ProductID: "a", Quantity: 3}}))
	ledger.ReleaseAll([]CheckoutLineItem{{ProductID: "a", Quantity: 3}})
	assert.Equal(t, int32(5), ledger.Stock("a"))
}

func TestUnknownProductDefaultsToUnlimitedStock(t *testing.T) {
	ledger := NewInventoryLedger(map[string]int32{"a": 5})
	assert.Equal(t, unlimitedStock, ledger.Stock("never-seeded"))

	err := ledger.ReserveAll([]CheckoutLineItem{{ProductID: "never-seeded", Quantity: 1000}})
	require.NoError(t, err)
	assert.Equal(t, unlimitedStock-1000, ledger.Stock("never-seeded"))
}
