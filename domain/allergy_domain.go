package domain

import (
	"errors"
)

var (
	MessageSuccessGetAllergies    = "success get allergies"
	MessageSuccessUpdateAllergies = "allergies updated successfully"

	MessageFailedGetAllergies    = "failed to get allergies"
	MessageFailedUpdateAllergies = "failed to update allergies"

	ErrUnknownAllergen = errors.New("unknown allergen name")
)

// The fixed allergen vocabulary users can declare.
const (
	AllergenDairy     = "Dairy"
	AllergenEgg       = "Egg"
	AllergenGluten    = "Gluten"
	AllergenPeanut    = "Peanut"
	AllergenTreeNut   = "Tree Nut"
	AllergenSoy       = "Soy"
	AllergenShellfish = "Shellfish"
	AllergenFish      = "Fish"
	AllergenWheat     = "Wheat"
)

var AllAllergens = []string{
	AllergenDairy,
	AllergenEgg,
	AllergenGluten,
	AllergenPeanut,
	AllergenTreeNut,
	AllergenSoy,
	AllergenShellfish,
	AllergenFish,
	AllergenWheat,
}

type (
	UpdateAllergiesRequest struct {
		Allergies []string `json:"allergies" validate:"dive,oneof=Dairy Egg Gluten Peanut 'Tree Nut' Soy Shellfish Fish Wheat"`
	}

	AllergiesResponse struct {
		Allergies []string `json:"allergies"`
	}
)
