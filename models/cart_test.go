package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddUpsertsByName(t *testing.T) {
	cart := Cart{}

	cart.Add("Rice", 2, 5000)
	cart.Add("Chips", 1, 3000)
	cart.Add("Rice", 3, 5000)

	require.Len(t, cart.Lines, 2, "re-adding an item must replace its line, not duplicate it")
	assert.Equal(t, OrderItem{Item: "Rice", Quantity: 3, Cost: 15000}, cart.Lines[0])
	assert.Equal(t, OrderItem{Item: "Chips", Quantity: 1, Cost: 3000}, cart.Lines[1])
}

func TestCartAddComputesLineCost(t *testing.T) {
	cart := Cart{}
	cart.Add("Pizza", 4, 25000)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 100000, cart.Lines[0].Cost)
}

func TestCartTotalIsSumOfLineCosts(t *testing.T) {
	cart := Cart{}
	assert.Equal(t, 0, cart.Total())

	cart.Add("Rice", 2, 5000)
	cart.Add("Chips", 3, 3000)
	assert.Equal(t, 19000, cart.Total())

	cart.Add("Rice", 1, 5000)
	assert.Equal(t, 14000, cart.Total())

	sum := 0
	for _, line := range cart.Lines {
		sum += line.Cost
	}
	assert.Equal(t, sum, cart.Total())
}

func TestCartClear(t *testing.T) {
	cart := Cart{}
	cart.Add("Rice", 2, 5000)
	require.False(t, cart.Empty())

	cart.Clear()
	assert.True(t, cart.Empty())
	assert.Equal(t, 0, cart.Total())
}
