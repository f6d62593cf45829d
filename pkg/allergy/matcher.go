package allergy

import (
	"mealmate/domain"
)

// MatchAllergens returns the subset of the user's declared allergens that a
// recipe may trigger, judged from the recipe's sparse dietary flags.
//
// The flags are a weak proxy signal: only an explicit false (confirmed not
// gluten-free / not dairy-free) triggers a warning. A true or absent flag
// never triggers, so an unknown recipe reads as "no warning" — a known
// conservative-wrong-direction default in the provider data, kept as-is.
// Wheat piggybacks on the gluten-free flag as a heuristic, not a certified
// mapping. Egg, Peanut, Tree Nut, Soy, Shellfish and Fish have no signal in
// the flag set and never trigger.
func MatchAllergens(flags domain.DietaryFlags, declared []string) []string {
	warnings := make([]string, 0)
	seen := make(map[string]bool)

	for _, name := range declared {
		if seen[name] {
			continue
		}
		seen[name] = true

		switch name {
		case domain.AllergenGluten, domain.AllergenWheat:
			if flags.GlutenFree != nil && !*flags.GlutenFree {
				warnings = append(warnings, name)
			}
		case domain.AllergenDairy:
			if flags.DairyFree != nil && !*flags.DairyFree {
				warnings = append(warnings, name)
			}
		}
	}

	return warnings
}
