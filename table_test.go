package allometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/allometry"
)

func TestDefaultRegistry_Loads(t *testing.T) {
	r, err := allometry.NewDefaultRegistry()
	require.NoError(t, err)
	assert.True(t, r.Frozen())
	assert.Len(t, r.Codes(), 28)

	sp, ok := r.Species("ACRU")
	require.True(t, ok)
	assert.Equal(t, "Acer rubrum", sp.Name)
	assert.Len(t, sp.Relationships(), 7)

	palm, ok := r.Species("PHCA")
	require.True(t, ok)
	assert.Len(t, palm.Relationships(), 4)
}

func TestDefaultRegistry_EveryRecordEvaluates(t *testing.T) {
	r, err := allometry.NewDefaultRegistry()
	require.NoError(t, err)
	for _, rec := range allometry.PacificNorthwest {
		y, err := r.Predict(rec.Species, rec.Independent, rec.Dependent, 10)
		require.NoError(t, err, "%s %s -> %s", rec.Species, rec.Independent, rec.Dependent)
		assert.False(t, math.IsNaN(y))
	}
}

func TestDefaultRegistry_LogLogRowsRoundTrip(t *testing.T) {
	r, err := allometry.NewDefaultRegistry()
	require.NoError(t, err)
	for _, rec := range allometry.PacificNorthwest {
		if rec.Form != "loglogw1" {
			continue
		}
		y, err := r.Predict(rec.Species, rec.Independent, rec.Dependent, 10)
		require.NoError(t, err)
		x, err := r.Invert(rec.Species, rec.Independent, rec.Dependent, y)
		require.NoError(t, err, "%s %s -> %s", rec.Species, rec.Independent, rec.Dependent)
		assert.InDelta(t, 10, x, 1e-6, "%s %s -> %s", rec.Species, rec.Independent, rec.Dependent)
	}
}

func TestDefaultRegistry_ReferenceValues(t *testing.T) {
	r, err := allometry.NewDefaultRegistry()
	require.NoError(t, err)

	age, err := r.Predict("ACRU", "dbh", "age", 20)
	require.NoError(t, err)
	assert.InDelta(t, 13.04201, age, 1e-9)

	dbh, err := r.Invert("ACRU", "age", "dbh", 13.16)
	require.NoError(t, err)
	assert.InDelta(t, 8.339, dbh, 1e-3)

	_, err = r.Predict("ACRU", "dbh", "nonexistent", 10)
	assert.ErrorIs(t, err, allometry.ErrLookup)
}

func TestDefaultRegistry_WashingtoniaHeight(t *testing.T) {
	r, err := allometry.NewDefaultRegistry()
	require.NoError(t, err)
	eq, err := r.Lookup("WARO", "dbh", "tree ht")
	require.NoError(t, err)
	assert.Equal(t, allometry.Cubic, eq.Form())
}
