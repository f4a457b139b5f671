// Package nutrition computes the daily nutrition estimate shown by every
// surface of the app: calories, macronutrients and water derived from body
// weight and an activity multiplier, plus the quick tips for that activity.
package nutrition

import (
	"math"
	"strconv"
)

// Formula coefficients. 22 kcal/kg approximates average basal expenditure.
const (
	kcalPerKG      = 22.0
	proteinGPerKG  = 1.6
	fatGPerKG      = 0.8
	kcalPerProtein = 4.0
	kcalPerCarb    = 4.0
	kcalPerFat     = 9.0
	waterMLPerKG   = 30.0

	// extraWaterML is added once activity reaches highActivityThreshold.
	extraWaterML          = 500.0
	highActivityThreshold = 1.6
)

// ActivityLevel is one option of the activity selector.
type ActivityLevel struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// ActivityLevels lists the selector options in display order. This is the
// single source of truth for valid activity multipliers.
var ActivityLevels = []ActivityLevel{
	{Value: 1.1, Label: "🛏️ Encamado / sin actividad"},
	{Value: 1.25, Label: "🪑 Muy poca"},
	{Value: 1.4, Label: "🚶 Ligera"},
	{Value: 1.6, Label: "🏃 Activa"},
	{Value: 1.8, Label: "🔥 Muy intensa"},
}

// Input defaults for a fresh form.
const (
	DefaultWeightKG = 70.0
	DefaultActivity = 1.1
)

// MaxWeightKG is the largest weight any input accepts. Larger values are
// treated as malformed.
const MaxWeightKG = 1000.0

// maxDisplayed caps rounded values so the int conversion never overflows.
const maxDisplayed = math.MaxInt32

// IsActivityLevel reports whether v is one of the selector values.
func IsActivityLevel(v float64) bool {
	for _, l := range ActivityLevels {
		if l.Value == v {
			return true
		}
	}
	return false
}

// Estimate is the unrounded derivation for one (weight, activity) pair.
type Estimate struct {
	WeightKG float64
	Activity float64
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
	WaterML  float64
	Tips     []string
}

// Compute derives the daily estimate. Carbs take whatever calories protein and
// fat leave over, floored at zero.
func Compute(weightKG, activity float64) Estimate {
	calories := weightKG * kcalPerKG * activity
	protein := weightKG * proteinGPerKG
	fat := weightKG * fatGPerKG

	used := protein*kcalPerProtein + fat*kcalPerFat
	carbs := math.Max(calories-used, 0) / kcalPerCarb

	water := weightKG * waterMLPerKG
	if activity >= highActivityThreshold {
		water += extraWaterML
	}

	return Estimate{
		WeightKG: weightKG,
		Activity: activity,
		Calories: calories,
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
		WaterML:  water,
		Tips:     QuickTips(activity),
	}
}

// Summary is the estimate as displayed: whole calories and grams, water in
// liters to one decimal.
type Summary struct {
	WeightKG float64  `json:"weight"`
	Activity float64  `json:"activity"`
	Calories int      `json:"calories"`
	ProteinG int      `json:"protein_g"`
	CarbsG   int      `json:"carbs_g"`
	FatG     int      `json:"fat_g"`
	WaterML  int      `json:"water_ml"`
	WaterL   float64  `json:"water_l"`
	Tips     []string `json:"tips"`
}

// Summary rounds the estimate for display. math.Round rounds half away from
// zero, so 185.5 g of carbs shows as 186.
func (e Estimate) Summary() Summary {
	tips := e.Tips
	if tips == nil {
		tips = []string{}
	}
	return Summary{
		WeightKG: e.WeightKG,
		Activity: e.Activity,
		Calories: roundInt(e.Calories),
		ProteinG: roundInt(e.ProteinG),
		CarbsG:   roundInt(e.CarbsG),
		FatG:     roundInt(e.FatG),
		WaterML:  roundInt(e.WaterML),
		WaterL:   float64(roundInt(e.WaterML/100)) / 10,
		Tips:     tips,
	}
}

// roundInt rounds half away from zero, saturating at 0 and maxDisplayed so
// out-of-range floats never wrap.
func roundInt(v float64) int {
	r := math.Round(v)
	switch {
	case r >= maxDisplayed:
		return maxDisplayed
	case r > 0:
		return int(r)
	default:
		return 0
	}
}

// WaterLiters formats water the way the form shows it, e.g. "2.1".
func (s Summary) WaterLiters() string {
	return strconv.FormatFloat(s.WaterL, 'f', 1, 64)
}

// ResultLines returns the result rows in display order.
func (s Summary) ResultLines() []string {
	return []string{
		"🔥 Calorías: " + strconv.Itoa(s.Calories) + " kcal",
		"🥩 Proteína: " + strconv.Itoa(s.ProteinG) + " g",
		"🍚 Carbohidratos: " + strconv.Itoa(s.CarbsG) + " g",
		"🥑 Grasas: " + strconv.Itoa(s.FatG) + " g",
		"💧 Agua: " + s.WaterLiters() + " L",
	}
}
