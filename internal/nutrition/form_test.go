package nutrition

import "testing"

func TestNewForm_Defaults(t *testing.T) {
	f := NewForm()
	if f.WeightKG() != 70 {
		t.Errorf("weight = %v, want 70", f.WeightKG())
	}
	if f.Activity() != 1.1 {
		t.Errorf("activity = %v, want 1.1", f.Activity())
	}
}

func TestForm_SetWeightText(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		applied bool
		want    float64
	}{
		{"integer", "82", true, 82},
		{"decimal", "64.5", true, 64.5},
		{"surrounding spaces", "  90 ", true, 90},
		{"negative clamps to zero", "-5", true, 0},
		{"zero", "0", true, 0},
		{"empty", "", false, 70},
		{"letters", "abc", false, 70},
		{"trailing garbage", "70kg", false, 70},
		{"comma decimal", "70,5", false, 70},
		{"nan", "NaN", false, 70},
		{"infinity", "Inf", false, 70},
		{"overflow", "1e400", false, 70},
		{"at maximum", "1000", true, 1000},
		{"above maximum", "1000.5", false, 70},
		{"huge", "1e20", false, 70},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewForm()
			if got := f.SetWeightText(tc.text); got != tc.applied {
				t.Errorf("SetWeightText(%q) = %v, want %v", tc.text, got, tc.applied)
			}
			if f.WeightKG() != tc.want {
				t.Errorf("weight after %q = %v, want %v", tc.text, f.WeightKG(), tc.want)
			}
		})
	}
}

// TestForm_InvalidWeightKeepsLastValid checks that a bad edit after a good one
// leaves the good value in place.
func TestForm_InvalidWeightKeepsLastValid(t *testing.T) {
	f := NewForm()
	f.SetWeightText("88.5")
	f.SetWeightText("8x")
	f.SetWeightText("")
	if f.WeightKG() != 88.5 {
		t.Errorf("weight = %v, want 88.5", f.WeightKG())
	}
}

func TestForm_SetActivityText(t *testing.T) {
	cases := []struct {
		text    string
		applied bool
		want    float64
	}{
		{"1.25", true, 1.25},
		{"1.4", true, 1.4},
		{"1.60", true, 1.6},
		{"1.8", true, 1.8},
		{"1.3", false, 1.1},
		{"-1", false, 1.1},
		{"high", false, 1.1},
		{"", false, 1.1},
	}
	for _, tc := range cases {
		f := NewForm()
		if got := f.SetActivityText(tc.text); got != tc.applied {
			t.Errorf("SetActivityText(%q) = %v, want %v", tc.text, got, tc.applied)
		}
		if f.Activity() != tc.want {
			t.Errorf("activity after %q = %v, want %v", tc.text, f.Activity(), tc.want)
		}
	}
}

// TestForm_EstimateTracksInputs verifies the estimate is recomputed from the
// current inputs on every call.
func TestForm_EstimateTracksInputs(t *testing.T) {
	f := NewForm()
	before := f.Estimate().Summary()
	if before.Calories != 1694 {
		t.Fatalf("default calories = %d, want 1694", before.Calories)
	}

	f.SetWeightText("80")
	f.SetActivityText("1.6")
	after := f.Estimate().Summary()
	// 80 * 22 * 1.6 = 2816
	if after.Calories != 2816 {
		t.Errorf("calories = %d, want 2816", after.Calories)
	}
	// 80 * 30 + 500 = 2900
	if after.WaterML != 2900 {
		t.Errorf("water = %d, want 2900", after.WaterML)
	}
}
