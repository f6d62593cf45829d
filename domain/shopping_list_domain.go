package domain

import (
	"errors"
	"strconv"
	"strings"
)

var (
	MessageSuccessGenerateList = "shopping list generated successfully"
	MessageSuccessEmailList    = "shopping list sent successfully"

	MessageFailedGenerateList = "failed to generate shopping list"
	MessageFailedEmailList    = "failed to send shopping list"

	ErrNoSavedRecipesSelected = errors.New("none of the selected recipes are saved")
)

type (
	// RecipeSource records where a shopping-list bucket's contribution came
	// from, kept for provenance display.
	RecipeSource struct {
		RecipeTitle    string `json:"recipe_title"`
		IngredientText string `json:"ingredient_text"`
	}

	// ShoppingListItem is one aggregation bucket. Key is unique within a
	// generated list; two ingredients land in the same bucket iff their
	// lowercased canonical name and lowercased unit both match.
	ShoppingListItem struct {
		Key                    string         `json:"key"`
		DisplayName            string         `json:"display_name"`
		Unit                   string         `json:"unit,omitempty"`
		TotalAmount            float64        `json:"total_amount"`
		HasIndeterminateAmount bool           `json:"has_indeterminate_amount"`
		Sources                []RecipeSource `json:"sources"`
	}

	GenerateShoppingListRequest struct {
		RecipeIDs []int `json:"recipe_ids" validate:"required,min=1,dive,min=1"`
	}

	GenerateShoppingListResponse struct {
		Items          []ShoppingListItem `json:"items"`
		TotalItems     int                `json:"total_items"`
		SkippedRecipes []string           `json:"skipped_recipes,omitempty"`
	}

	EmailShoppingListRequest struct {
		Email     string `json:"email" validate:"required,email"`
		RecipeIDs []int  `json:"recipe_ids" validate:"required,min=1,dive,min=1"`
	}
)

// AmountLabel renders the bucket's quantity for display. A bucket whose
// contributions all lacked a numeric amount reads "As needed / To taste";
// a mixed bucket appends "(+ some)" to the summed amount.
func (i ShoppingListItem) AmountLabel() string {
	if i.TotalAmount == 0 && i.HasIndeterminateAmount {
		return "As needed / To taste"
	}
	label := strconv.FormatFloat(i.TotalAmount, 'f', -1, 64)
	if i.Unit != "" {
		label += " " + i.Unit
	}
	if i.HasIndeterminateAmount {
		label += " (+ some)"
	}
	return strings.TrimSpace(label)
}
