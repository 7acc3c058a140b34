package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlowers(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "drops empty tokens and trims", raw: "Rosa, Lírio , , Tulipa", want: []string{"Rosa", "Lírio", "Tulipa"}},
		{name: "empty input", raw: "", want: []string{}},
		{name: "whitespace only", raw: "   ", want: []string{}},
		{name: "only commas", raw: " , ,,", want: []string{}},
		{name: "single flower", raw: "Orquídea", want: []string{"Orquídea"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFlowers(tt.raw)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPotRecord_TrimsFields(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	pot, err := NewPotRecord("id-1", "  Vaso 1 ", "\tSala ", "Rosa", now)

	require.NoError(t, err)
	assert.Equal(t, "id-1", pot.ID)
	assert.Equal(t, "Vaso 1", pot.Name)
	assert.Equal(t, "Sala", pot.Location)
	assert.Equal(t, []string{"Rosa"}, pot.Flowers)
	assert.Equal(t, now, pot.CreatedAt)
}

func TestNewPotRecord_MissingFields(t *testing.T) {
	tests := []struct {
		name     string
		potName  string
		location string
		want     []string
	}{
		{name: "missing name", potName: "", location: "Sala", want: []string{"name"}},
		{name: "missing location", potName: "Vaso", location: "  ", want: []string{"location"}},
		{name: "missing both", potName: " ", location: "", want: []string{"name", "location"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPotRecord("id", tt.potName, tt.location, "Rosa", time.Now())

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingRequiredField))
			assert.True(t, IsValidationError(err))

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.want, ve.Fields)
			assert.Contains(t, err.Error(), "missing required field")
		})
	}
}

func TestPotRecord_CloneDoesNotShareFlowers(t *testing.T) {
	pot := PotRecord{ID: "a", Flowers: []string{"Rosa", "Tulipa"}}

	clone := pot.Clone()
	clone.Flowers[0] = "Cacto"

	assert.Equal(t, "Rosa", pot.Flowers[0])
	assert.Equal(t, "Rosa, Tulipa", pot.FlowerList())
}
