package domain

import (
	"errors"
)

var (
	MessageSuccessSearchRecipes   = "success search recipes"
	MessageSuccessGetRandom       = "success get random recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"

	MessageFailedSearchRecipes   = "failed to search recipes"
	MessageFailedGetRandom       = "failed to get random recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"

	ErrRecipeNotFound       = errors.New("recipe not found")
	ErrRecipeProviderFailed = errors.New("recipe provider request failed")
)

type (
	// RecipeSummary is the shape the content provider returns from search and
	// browse listings; identifiers are assigned by the provider.
	RecipeSummary struct {
		ID             int    `json:"id"`
		Title          string `json:"title"`
		ImageURL       string `json:"image,omitempty"`
		ReadyInMinutes int    `json:"readyInMinutes,omitempty"`
		Servings       int    `json:"servings,omitempty"`
	}

	// IngredientLineItem carries the provider's best-effort structured fields
	// next to the raw text. Amount is nil for unspecified or "to taste"
	// quantities.
	IngredientLineItem struct {
		ID           int      `json:"id,omitempty"`
		Name         string   `json:"name"`
		NameClean    string   `json:"nameClean,omitempty"`
		Original     string   `json:"original,omitempty"`
		OriginalName string   `json:"originalName,omitempty"`
		Amount       *float64 `json:"amount,omitempty"`
		Unit         string   `json:"unit,omitempty"`
	}

	InstructionStep struct {
		Number int    `json:"number"`
		Step   string `json:"step"`
	}

	InstructionGroup struct {
		Name  string            `json:"name,omitempty"`
		Steps []InstructionStep `json:"steps"`
	}

	// DietaryFlags are the provider's sparse per-recipe booleans. A nil
	// pointer means the flag was absent from the payload; the source data
	// does not distinguish absent from unknown.
	DietaryFlags struct {
		Vegetarian *bool `json:"vegetarian,omitempty"`
		Vegan      *bool `json:"vegan,omitempty"`
		GlutenFree *bool `json:"glutenFree,omitempty"`
		DairyFree  *bool `json:"dairyFree,omitempty"`
	}

	RecipeDetail struct {
		ID                   int                  `json:"id"`
		Title                string               `json:"title"`
		ImageURL             string               `json:"image,omitempty"`
		ReadyInMinutes       int                  `json:"readyInMinutes,omitempty"`
		Servings             int                  `json:"servings,omitempty"`
		Summary              string               `json:"summary,omitempty"`
		ExtendedIngredients  []IngredientLineItem `json:"extendedIngredients,omitempty"`
		AnalyzedInstructions []InstructionGroup   `json:"analyzedInstructions,omitempty"`
		DietaryFlags
	}

	RecipeSearchParams struct {
		Query        string
		Cuisine      string
		Diet         string
		MealType     string
		MaxReadyTime int
		Offset       int
		Number       int
	}

	RecipeSearchPage struct {
		Results      []RecipeSummary `json:"results"`
		Offset       int             `json:"offset"`
		Number       int             `json:"number"`
		TotalResults int             `json:"totalResults"`
	}

	DecoratedRecipeSummary struct {
		RecipeSummary
		IsSaved bool `json:"is_saved"`
	}

	SearchRecipesResponse struct {
		Recipes      []DecoratedRecipeSummary `json:"recipes"`
		Offset       int                      `json:"offset"`
		Number       int                      `json:"number"`
		TotalResults int                      `json:"total_results"`
	}

	// RecipeDetailResponse decorates the provider detail with the caller's
	// saved status and allergen warnings, recomputed on every request.
	RecipeDetailResponse struct {
		RecipeDetail
		IsSaved          bool     `json:"is_saved"`
		AllergenWarnings []string `json:"allergen_warnings"`
	}
)
