package utils

import "strings"

// NormalizeIngredientName canonicalizes an ingredient display name so that
// "Tomatoes", " tomato " and "TOMATO" all produce the same lookup key.
// Lowercases, trims, collapses internal whitespace and strips simple
// plural suffixes. Pure and deterministic.
func NormalizeIngredientName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Join(strings.Fields(s), " ")

	switch {
	case len(s) > 4 && strings.HasSuffix(s, "ies"):
		// berries -> berry
		s = s[:len(s)-3] + "y"
	case len(s) > 4 && strings.HasSuffix(s, "oes"):
		// tomatoes -> tomato
		s = s[:len(s)-2]
	case len(s) > 4 && (strings.HasSuffix(s, "ches") || strings.HasSuffix(s, "shes") ||
		strings.HasSuffix(s, "sses") || strings.HasSuffix(s, "xes") || strings.HasSuffix(s, "zes")):
		// peaches -> peach, radishes -> radish
		s = s[:len(s)-2]
	case len(s) > 3 && strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss"):
		// eggs -> egg; leaves "swiss" etc. alone
		s = s[:len(s)-1]
	}
	return s
}
