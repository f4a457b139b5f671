package nutrition

import (
	"math"
	"strconv"
	"strings"
)

// Form holds the two user inputs. The zero value is not ready for use; call
// NewForm to get the defaults.
type Form struct {
	weightKG float64
	activity float64
}

// NewForm returns a form with the default weight and activity.
func NewForm() *Form {
	return &Form{weightKG: DefaultWeightKG, activity: DefaultActivity}
}

func (f *Form) WeightKG() float64 { return f.weightKG }
func (f *Form) Activity() float64 { return f.activity }

// SetWeightText applies text typed into the weight field. Text that isn't a
// finite number, or is above MaxWeightKG, is dropped and the previous weight
// stays. Negative weights are stored as 0. Reports whether the stored weight
// was updated.
func (f *Form) SetWeightText(text string) bool {
	v, ok := parseNumber(text)
	if !ok || v > MaxWeightKG {
		return false
	}
	f.weightKG = math.Max(v, 0)
	return true
}

// SetActivityText applies a selector value. Anything that isn't one of the
// ActivityLevels values is dropped.
func (f *Form) SetActivityText(text string) bool {
	v, ok := parseNumber(text)
	if !ok || !IsActivityLevel(v) {
		return false
	}
	f.activity = v
	return true
}

// Estimate derives the current estimate. It is recomputed on every call.
func (f *Form) Estimate() Estimate {
	return Compute(f.weightKG, f.activity)
}

func parseNumber(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
