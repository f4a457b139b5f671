package nutrition

import (
	"math"
	"testing"
)

/* ─── Reference values ───────────────────────────────────────────────── */

// TestCompute_DefaultInputs checks the defaults (70 kg, 1.1) against values
// worked by hand: calories 70*22*1.1=1694, protein 112, fat 56,
// carbs (1694-448-504)/4=185.5, water 2100 ml.
func TestCompute_DefaultInputs(t *testing.T) {
	e := Compute(70, 1.1)

	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"calories", e.Calories, 1694},
		{"protein", e.ProteinG, 112},
		{"fat", e.FatG, 56},
		{"carbs", e.CarbsG, 185.5},
		{"water", e.WaterML, 2100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if math.Abs(tc.got-tc.want) > 1e-9 {
				t.Errorf("%s = %f, want %f", tc.name, tc.got, tc.want)
			}
		})
	}
}

// TestSummary_DefaultInputs verifies display rounding: 185.5 g of carbs
// rounds up to 186 and water shows as 2.1 L.
func TestSummary_DefaultInputs(t *testing.T) {
	s := Compute(70, 1.1).Summary()

	if s.Calories != 1694 {
		t.Errorf("calories = %d, want 1694", s.Calories)
	}
	if s.ProteinG != 112 {
		t.Errorf("protein = %d, want 112", s.ProteinG)
	}
	if s.FatG != 56 {
		t.Errorf("fat = %d, want 56", s.FatG)
	}
	if s.CarbsG != 186 {
		t.Errorf("carbs = %d, want 186", s.CarbsG)
	}
	if s.WaterML != 2100 {
		t.Errorf("water_ml = %d, want 2100", s.WaterML)
	}
	if got := s.WaterLiters(); got != "2.1" {
		t.Errorf("water liters = %q, want %q", got, "2.1")
	}
}

func TestSummary_ResultLines(t *testing.T) {
	lines := Compute(70, 1.1).Summary().ResultLines()
	want := []string{
		"🔥 Calorías: 1694 kcal",
		"🥩 Proteína: 112 g",
		"🍚 Carbohidratos: 186 g",
		"🥑 Grasas: 56 g",
		"💧 Agua: 2.1 L",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

/* ─── Invariants ─────────────────────────────────────────────────────── */

// TestCompute_CarbsNeverNegative sweeps weights across every activity level.
func TestCompute_CarbsNeverNegative(t *testing.T) {
	for _, level := range ActivityLevels {
		for w := 0.0; w <= 300; w += 2.5 {
			if e := Compute(w, level.Value); e.CarbsG < 0 {
				t.Errorf("Compute(%v, %v).CarbsG = %f, want >= 0", w, level.Value, e.CarbsG)
			}
		}
	}
}

// TestSummary_HugeWeightNeverNegative checks the rounded values stay in range
// when the derived floats are far beyond what an int holds.
func TestSummary_HugeWeightNeverNegative(t *testing.T) {
	for _, level := range ActivityLevels {
		s := Compute(1e20, level.Value).Summary()
		for name, v := range map[string]int{
			"calories": s.Calories,
			"protein":  s.ProteinG,
			"carbs":    s.CarbsG,
			"fat":      s.FatG,
			"water":    s.WaterML,
		} {
			if v < 0 {
				t.Errorf("activity %v: %s = %d, want >= 0", level.Value, name, v)
			}
			if v != maxDisplayed {
				t.Errorf("activity %v: %s = %d, want capped at %d", level.Value, name, v, maxDisplayed)
			}
		}
		if s.WaterL < 0 {
			t.Errorf("activity %v: water_l = %v, want >= 0", level.Value, s.WaterL)
		}
	}
}

// TestSummary_MaxWeight verifies the largest accepted weight still rounds
// exactly: 1000 * 22 * 1.8 = 39600 kcal.
func TestSummary_MaxWeight(t *testing.T) {
	s := Compute(MaxWeightKG, 1.8).Summary()
	if s.Calories != 39600 {
		t.Errorf("calories = %d, want 39600", s.Calories)
	}
	if s.WaterML != 30500 {
		t.Errorf("water_ml = %d, want 30500", s.WaterML)
	}
}

// TestCompute_CarbsClampedWhenCaloriesUsedUp uses a multiplier well below the
// catalog so protein and fat (13.6 kcal/kg) exceed the 11 kcal/kg available.
func TestCompute_CarbsClampedWhenCaloriesUsedUp(t *testing.T) {
	e := Compute(80, 0.5)
	if e.CarbsG != 0 {
		t.Errorf("CarbsG = %f, want 0 when protein+fat exceed calories", e.CarbsG)
	}
}

func TestCompute_ZeroWeight(t *testing.T) {
	e := Compute(0, 1.8)
	if e.Calories != 0 || e.ProteinG != 0 || e.FatG != 0 || e.CarbsG != 0 {
		t.Errorf("expected zero macros at 0 kg, got %+v", e)
	}
	// The high-activity water bonus does not depend on weight.
	if e.WaterML != 500 {
		t.Errorf("WaterML = %f, want 500", e.WaterML)
	}
}

// TestCompute_MonotonicInWeight verifies calories, protein, fat and water
// strictly increase with weight for every fixed activity level.
func TestCompute_MonotonicInWeight(t *testing.T) {
	for _, level := range ActivityLevels {
		prev := Compute(0, level.Value)
		for w := 1.0; w <= 200; w++ {
			cur := Compute(w, level.Value)
			if cur.Calories <= prev.Calories {
				t.Errorf("activity %v: calories not increasing at %v kg", level.Value, w)
			}
			if cur.ProteinG <= prev.ProteinG {
				t.Errorf("activity %v: protein not increasing at %v kg", level.Value, w)
			}
			if cur.FatG <= prev.FatG {
				t.Errorf("activity %v: fat not increasing at %v kg", level.Value, w)
			}
			if cur.WaterML <= prev.WaterML {
				t.Errorf("activity %v: water not increasing at %v kg", level.Value, w)
			}
			prev = cur
		}
	}
}

// TestCompute_WaterBonusAtHighActivity verifies water jumps by exactly 500 ml
// between the 1.4 and 1.6 levels and stays flat elsewhere.
func TestCompute_WaterBonusAtHighActivity(t *testing.T) {
	for _, w := range []float64{0, 55, 70, 120.5} {
		light := Compute(w, 1.4).WaterML
		active := Compute(w, 1.6).WaterML
		if diff := active - light; diff != 500 {
			t.Errorf("weight %v: water jump = %f, want 500", w, diff)
		}
		if Compute(w, 1.1).WaterML != Compute(w, 1.4).WaterML {
			t.Errorf("weight %v: water changed below 1.6", w)
		}
		if Compute(w, 1.6).WaterML != Compute(w, 1.8).WaterML {
			t.Errorf("weight %v: water changed above 1.6", w)
		}
	}
}

func TestCompute_IncludesTips(t *testing.T) {
	e := Compute(70, 1.8)
	want := QuickTips(1.8)
	if len(e.Tips) != len(want) {
		t.Fatalf("got %d tips, want %d", len(e.Tips), len(want))
	}
	for i := range want {
		if e.Tips[i] != want[i] {
			t.Errorf("tip %d = %q, want %q", i, e.Tips[i], want[i])
		}
	}
}

/* ─── Activity catalog ───────────────────────────────────────────────── */

func TestIsActivityLevel(t *testing.T) {
	cases := []struct {
		v    float64
		want bool
	}{
		{1.1, true},
		{1.25, true},
		{1.4, true},
		{1.6, true},
		{1.8, true},
		{1.2, false},
		{0, false},
		{2, false},
	}
	for _, tc := range cases {
		if got := IsActivityLevel(tc.v); got != tc.want {
			t.Errorf("IsActivityLevel(%v) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestActivityLevels_Order(t *testing.T) {
	want := []float64{1.1, 1.25, 1.4, 1.6, 1.8}
	if len(ActivityLevels) != len(want) {
		t.Fatalf("got %d levels, want %d", len(ActivityLevels), len(want))
	}
	for i, v := range want {
		if ActivityLevels[i].Value != v {
			t.Errorf("level %d = %v, want %v", i, ActivityLevels[i].Value, v)
		}
		if ActivityLevels[i].Label == "" {
			t.Errorf("level %d has empty label", i)
		}
	}
}
