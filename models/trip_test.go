package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripParamsApplyAndHas(t *testing.T) {
	var p TripParams

	require.NoError(t, p.Apply(FieldOrigin, "JFK"))
	require.NoError(t, p.Apply(FieldAdults, "2"))

	assert.True(t, p.Has(FieldOrigin))
	assert.True(t, p.Has(FieldAdults))
	assert.False(t, p.Has(FieldDestination))
	assert.Equal(t, 2, p.Adults)
}

func TestTripParamsApplyRejectsBadValues(t *testing.T) {
	var p TripParams

	assert.Error(t, p.Apply(FieldAdults, "zero"))
	assert.Error(t, p.Apply(FieldAdults, "0"))
	assert.Error(t, p.Apply(FieldOrigin, ""))
	assert.Error(t, p.Apply("shoeSize", "44"))
}

func TestTripDays(t *testing.T) {
	p := TripParams{DepartureDate: "2026-09-12", ReturnDate: "2026-09-15"}
	assert.Equal(t, 4, p.TripDays())

	sameDay := TripParams{DepartureDate: "2026-09-12", ReturnDate: "2026-09-12"}
	assert.Equal(t, 1, sameDay.TripDays())

	backwards := TripParams{DepartureDate: "2026-09-15", ReturnDate: "2026-09-12"}
	assert.Equal(t, 0, backwards.TripDays())

	missing := TripParams{DepartureDate: "2026-09-12"}
	assert.Equal(t, 0, missing.TripDays())
}

func TestSessionActiveTool(t *testing.T) {
	s := Session{Queue: []ToolID{ToolFlight, ToolHotel}}
	assert.Equal(t, ToolFlight, s.ActiveTool())

	s.Queue = nil
	assert.Equal(t, ToolID(""), s.ActiveTool())
}
