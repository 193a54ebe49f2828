package utils

import "strings"

type UnitFamily string

const (
	FamilyVolume UnitFamily = "volume"
	FamilyWeight UnitFamily = "weight"
	FamilyCount  UnitFamily = "count"
)

type unitDef struct {
	family UnitFamily
	toBase float64 // ml for volume, g for weight, 1 for count
}

var unitTable = map[string]unitDef{
	// volume (base = ml)
	"ml":    {family: FamilyVolume, toBase: 1},
	"l":     {family: FamilyVolume, toBase: 1000},
	"tsp":   {family: FamilyVolume, toBase: 4.92892159375},
	"tbsp":  {family: FamilyVolume, toBase: 14.78676478125},
	"cup":   {family: FamilyVolume, toBase: 236.5882365},
	"fl-oz": {family: FamilyVolume, toBase: 29.5735295625},

	// weight (base = g)
	"mg": {family: FamilyWeight, toBase: 0.001},
	"g":  {family: FamilyWeight, toBase: 1},
	"kg": {family: FamilyWeight, toBase: 1000},
	"oz": {family: FamilyWeight, toBase: 28.349523125},
	"lb": {family: FamilyWeight, toBase: 453.59237},

	// count units convert only to themselves
	"piece": {family: FamilyCount, toBase: 1},
	"clove": {family: FamilyCount, toBase: 1},
	"slice": {family: FamilyCount, toBase: 1},
	"can":   {family: FamilyCount, toBase: 1},
	"bunch": {family: FamilyCount, toBase: 1},
}

var unitAliases = map[string]string{
	"milliliter":  "ml",
	"milliliters": "ml",
	"liter":       "l",
	"liters":      "l",
	"teaspoon":    "tsp",
	"teaspoons":   "tsp",
	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"cups":        "cup",
	"floz":        "fl-oz",
	"fl oz":       "fl-oz",
	"gram":        "g",
	"grams":       "g",
	"kilogram":    "kg",
	"kilograms":   "kg",
	"ounce":       "oz",
	"ounces":      "oz",
	"pound":       "lb",
	"pounds":      "lb",
	"lbs":         "lb",
	"pc":          "piece",
	"pcs":         "piece",
	"pieces":      "piece",
	"cloves":      "clove",
	"slices":      "slice",
	"cans":        "can",
	"bunches":     "bunch",
}

// ResolveUnit maps free-form unit spellings onto the canonical table key.
func ResolveUnit(unit string) (string, bool) {
	u := strings.ToLower(strings.TrimSpace(unit))
	if alias, ok := unitAliases[u]; ok {
		u = alias
	}
	_, ok := unitTable[u]
	return u, ok
}

func KnownUnit(unit string) bool {
	_, ok := ResolveUnit(unit)
	return ok
}

func FamilyOf(unit string) (UnitFamily, bool) {
	u, ok := ResolveUnit(unit)
	if !ok {
		return "", false
	}
	return unitTable[u].family, true
}

// Convert converts a quantity between two units of the same measurement
// family. The second return value is false when either unit is unknown,
// the families differ, or a count unit is paired with a different count
// unit; callers treat that as a soft failure, never an error.
func Convert(qty float64, fromUnit, toUnit string) (float64, bool) {
	from, ok := ResolveUnit(fromUnit)
	if !ok {
		return 0, false
	}
	to, ok := ResolveUnit(toUnit)
	if !ok {
		return 0, false
	}
	fd, td := unitTable[from], unitTable[to]
	if fd.family != td.family {
		return 0, false
	}
	if fd.family == FamilyCount {
		if from != to {
			return 0, false
		}
		return qty, true
	}
	return qty * fd.toBase / td.toBase, true
}
