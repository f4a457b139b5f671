package nutrition

// Quick tips, in the order they can appear.
const (
	TipMealTiming     = "🍽️ Mantén horarios de comida regulares."
	TipSpreadProtein  = "🥩 Reparte la proteína a lo largo del día."
	TipCarbsNearWork  = "🍚 Incluye carbohidratos cerca de tu actividad."
	TipMoreFluids     = "💧 Aumenta líquidos si sudas o te ejercitas."
	TipHealthyFats    = "🥑 Prioriza grasas saludables como aceite de oliva."
	TipLimitFriedFood = "🚫 Limita frituras y grasas saturadas."
)

const (
	lowActivityMax   = 1.25
	trainingMin      = 1.4
	heavySweatingMin = highActivityThreshold
)

// QuickTips selects the tips for an activity multiplier. The thresholds are
// checked independently, so a level can collect tips from several of them.
func QuickTips(activity float64) []string {
	tips := make([]string, 0, 5)

	if activity <= lowActivityMax {
		tips = append(tips, TipMealTiming, TipSpreadProtein)
	}
	if activity >= trainingMin {
		tips = append(tips, TipCarbsNearWork)
	}
	if activity >= heavySweatingMin {
		tips = append(tips, TipMoreFluids)
	}

	return append(tips, TipHealthyFats, TipLimitFriedFood)
}
