package allergy

import (
	"mealmate/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool {
	return &v
}

func TestMatchAllergensGlutenTriggersOnExplicitFalse(t *testing.T) {
	flags := domain.DietaryFlags{GlutenFree: boolPtr(false)}

	warnings := MatchAllergens(flags, []string{domain.AllergenGluten, domain.AllergenPeanut})

	assert.Equal(t, []string{domain.AllergenGluten}, warnings)
}

func TestMatchAllergensExplicitTrueNeverTriggers(t *testing.T) {
	flags := domain.DietaryFlags{GlutenFree: boolPtr(true)}

	warnings := MatchAllergens(flags, []string{domain.AllergenGluten})

	assert.Empty(t, warnings)
}

func TestMatchAllergensAbsentFlagNeverTriggers(t *testing.T) {
	warnings := MatchAllergens(domain.DietaryFlags{}, []string{domain.AllergenDairy})

	assert.Empty(t, warnings)
}

func TestMatchAllergensDairyTriggersOnDairyFreeFalse(t *testing.T) {
	flags := domain.DietaryFlags{DairyFree: boolPtr(false)}

	warnings := MatchAllergens(flags, []string{domain.AllergenDairy, domain.AllergenFish})

	assert.Equal(t, []string{domain.AllergenDairy}, warnings)
}

func TestMatchAllergensWheatFollowsGlutenFlag(t *testing.T) {
	flags := domain.DietaryFlags{GlutenFree: boolPtr(false)}

	warnings := MatchAllergens(flags, []string{domain.AllergenWheat})

	assert.Equal(t, []string{domain.AllergenWheat}, warnings)
}

func TestMatchAllergensNoSignalAllergensNeverTrigger(t *testing.T) {
	flags := domain.DietaryFlags{
		GlutenFree: boolPtr(false),
		DairyFree:  boolPtr(false),
	}
	declared := []string{
		domain.AllergenEgg,
		domain.AllergenPeanut,
		domain.AllergenTreeNut,
		domain.AllergenSoy,
		domain.AllergenShellfish,
		domain.AllergenFish,
	}

	warnings := MatchAllergens(flags, declared)

	assert.Empty(t, warnings)
}

func TestMatchAllergensDeduplicatesDeclared(t *testing.T) {
	flags := domain.DietaryFlags{GlutenFree: boolPtr(false)}

	warnings := MatchAllergens(flags, []string{domain.AllergenGluten, domain.AllergenGluten})

	assert.Equal(t, []string{domain.AllergenGluten}, warnings)
}

func TestMatchAllergensEmptyDeclaredList(t *testing.T) {
	flags := domain.DietaryFlags{GlutenFree: boolPtr(false)}

	warnings := MatchAllergens(flags, nil)

	assert.Empty(t, warnings)
}
