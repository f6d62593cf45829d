package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSaveRecipe    = "recipe saved successfully"
	MessageRecipeAlreadySaved   = "recipe already saved"
	MessageSuccessUnsaveRecipe  = "recipe removed from saved recipes"
	MessageSuccessGetSaved      = "success get saved recipes"
	MessageSuccessGetSavedState = "success get saved status"

	MessageFailedSaveRecipe   = "failed to save recipe"
	MessageFailedUnsaveRecipe = "failed to remove saved recipe"
	MessageFailedGetSaved     = "failed to get saved recipes"

	ErrSavedRecipeNotFound = errors.New("saved recipe not found")
)

// SaveOutcome is a tagged result so callers can branch on the duplicate-save
// case without string-matching error messages.
type SaveOutcome string

const (
	SaveOutcomeSaved        SaveOutcome = "saved"
	SaveOutcomeAlreadySaved SaveOutcome = "already_saved"
)

type (
	SaveRecipeRequest struct {
		RecipeID int `json:"recipe_id" validate:"required,min=1"`
	}

	SavedRecipeResponse struct {
		RecipeID       int       `json:"recipe_id"`
		Title          string    `json:"title"`
		ImageURL       string    `json:"image_url,omitempty"`
		MirrorImageURL string    `json:"mirror_image_url,omitempty"`
		SavedAt        time.Time `json:"saved_at"`
	}

	SavedRecipeListResponse struct {
		Recipes []SavedRecipeResponse `json:"recipes"`
		Total   int64                 `json:"total"`
	}
)
