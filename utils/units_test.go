package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertWithinFamily(t *testing.T) {
	tests := []struct {
		qty      float64
		from, to string
		want     float64
	}{
		{1, "cup", "ml", 236.5882365},
		{1000, "ml", "l", 1},
		{3, "tsp", "tbsp", 1},
		{1, "kg", "g", 1000},
		{1, "lb", "oz", 16},
		{2, "piece", "piece", 2},
	}
	for _, tt := range tests {
		got, ok := Convert(tt.qty, tt.from, tt.to)
		assert.True(t, ok, "%s -> %s should convert", tt.from, tt.to)
		assert.InDelta(t, tt.want, got, 1e-6, "%g %s -> %s", tt.qty, tt.from, tt.to)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"cup", "ml"}, {"tsp", "tbsp"}, {"l", "fl-oz"},
		{"g", "oz"}, {"kg", "lb"}, {"mg", "g"},
	}
	for _, p := range pairs {
		x := 3.7
		there, ok := Convert(x, p[0], p[1])
		assert.True(t, ok)
		back, ok := Convert(there, p[1], p[0])
		assert.True(t, ok)
		assert.True(t, math.Abs(back-x) < 1e-9, "%s<->%s round trip drifted: %g", p[0], p[1], back)
	}
}

func TestConvertIncompatible(t *testing.T) {
	_, ok := Convert(1, "cup", "g")
	assert.False(t, ok, "volume to weight must not convert")

	_, ok = Convert(1, "piece", "clove")
	assert.False(t, ok, "count units convert only to themselves")

	_, ok = Convert(1, "cup", "handful")
	assert.False(t, ok, "unknown unit")
}

func TestConvertAliases(t *testing.T) {
	got, ok := Convert(2, "Cups", "milliliters")
	assert.True(t, ok)
	assert.InDelta(t, 473.176473, got, 1e-6)

	got, ok = Convert(1, "pounds", "g")
	assert.True(t, ok)
	assert.InDelta(t, 453.59237, got, 1e-6)

	got, ok = Convert(5, "pcs", "piece")
	assert.True(t, ok)
	assert.Equal(t, 5.0, got)
}

func TestFamilyOf(t *testing.T) {
	fam, ok := FamilyOf("tbsp")
	assert.True(t, ok)
	assert.Equal(t, FamilyVolume, fam)

	fam, ok = FamilyOf("ounces")
	assert.True(t, ok)
	assert.Equal(t, FamilyWeight, fam)

	_, ok = FamilyOf("pinch")
	assert.False(t, ok)
}
