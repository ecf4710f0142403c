package source

import (
	"context"
	"testing"

	"roster-sync/feature/roster/faction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider_KnownFactions(t *testing.T) {
	provider := NewStaticProvider()

	for _, key := range faction.All() {
		units, err := provider.Units(context.Background(), key)
		require.NoError(t, err)
		assert.NotEmpty(t, units, "faction %s", key)
		for _, unit := range units {
			assert.Equal(t, key, unit.FactionID)
			assert.NotEmpty(t, unit.ID)
			assert.GreaterOrEqual(t, unit.Points, 0)
			assert.GreaterOrEqual(t, unit.Characteristics.Availability, 0)
		}
	}
}

func TestStaticProvider_UnknownFactionIsEmptyNotError(t *testing.T) {
	provider := NewStaticProvider()

	units, err := provider.Units(context.Background(), "not-a-faction")
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestStaticProvider_ReturnsCopy(t *testing.T) {
	provider := NewStaticProvider()

	units, err := provider.Units(context.Background(), faction.Syenann)
	require.NoError(t, err)
	require.NotEmpty(t, units)

	units[0].Name = "mutated"

	fresh, err := provider.Units(context.Background(), faction.Syenann)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", fresh[0].Name)
}

func TestStaticProvider_UniqueIDsPerFaction(t *testing.T) {
	provider := NewStaticProvider()

	for _, key := range faction.All() {
		units, err := provider.Units(context.Background(), key)
		require.NoError(t, err)

		seen := make(map[string]struct{}, len(units))
		for _, unit := range units {
			_, dup := seen[unit.ID]
			assert.False(t, dup, "duplicate id %s in %s", unit.ID, key)
			seen[unit.ID] = struct{}{}
		}
	}
}
