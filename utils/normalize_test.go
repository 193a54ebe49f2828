package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIngredientName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tomatoes", "tomato"},
		{"tomato", "tomato"},
		{"  Olive   Oil ", "olive oil"},
		{"EGGS", "egg"},
		{"Berries", "berry"},
		{"peaches", "peach"},
		{"radishes", "radish"},
		{"swiss", "swiss"},     // trailing "ss" is not a plural
		{"molasses", "molass"}, // simple suffix rules only
		{"Flour", "flour"},
		{"GREEN    ONIONS", "green onion"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeIngredientName(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, in := range []string{"Tomatoes", "Berries", "olive oil", "Eggs"} {
		once := NormalizeIngredientName(in)
		assert.Equal(t, once, NormalizeIngredientName(once))
	}
}
