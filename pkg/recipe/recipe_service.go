package recipe

import (
	"context"
	"mealmate/domain"
	"mealmate/internal/platform/spoonacular"
	"mealmate/pkg/allergy"
	"mealmate/pkg/savedrecipe"
)

type (
	RecipeService interface {
		SearchRecipes(ctx context.Context, params domain.RecipeSearchParams, userID string) (domain.SearchRecipesResponse, error)
		GetRandomRecipes(ctx context.Context, number int, userID string) ([]domain.DecoratedRecipeSummary, error)
		GetRecipeDetail(ctx context.Context, recipeID int, userID string) (domain.RecipeDetailResponse, error)
	}

	recipeService struct {
		provider              spoonacular.Client
		savedRecipeRepository savedrecipe.SavedRecipeRepository
		allergyRepository     allergy.AllergyRepository
	}
)

func NewRecipeService(
	provider spoonacular.Client,
	savedRecipeRepository savedrecipe.SavedRecipeRepository,
	allergyRepository allergy.AllergyRepository,
) RecipeService {
	return &recipeService{
		provider:              provider,
		savedRecipeRepository: savedRecipeRepository,
		allergyRepository:     allergyRepository,
	}
}

func (s *recipeService) SearchRecipes(ctx context.Context, params domain.RecipeSearchParams, userID string) (domain.SearchRecipesResponse, error) {
	page, err := s.provider.SearchRecipes(ctx, params)
	if err != nil {
		return domain.SearchRecipesResponse{}, err
	}

	return domain.SearchRecipesResponse{
		Recipes:      s.decorateSummaries(ctx, page.Results, userID),
		Offset:       page.Offset,
		Number:       page.Number,
		TotalResults: page.TotalResults,
	}, nil
}

func (s *recipeService) GetRandomRecipes(ctx context.Context, number int, userID string) ([]domain.DecoratedRecipeSummary, error) {
	recipes, err := s.provider.GetRandomRecipes(ctx, number)
	if err != nil {
		return nil, err
	}
	return s.decorateSummaries(ctx, recipes, userID), nil
}

// GetRecipeDetail fetches the recipe from the provider and decorates it with
// the caller's saved status and allergen warnings. Warnings are recomputed
// here on every request from the current allergy list; nothing is cached.
func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID int, userID string) (domain.RecipeDetailResponse, error) {
	detail, err := s.provider.GetRecipeDetail(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	isSaved, err := s.savedRecipeRepository.IsRecipeSaved(ctx, userID, recipeID)
	if err != nil {
		isSaved = false
	}

	warnings := make([]string, 0)
	allergies, err := s.allergyRepository.GetAllergies(ctx, userID)
	if err == nil {
		declared := make([]string, 0, len(allergies))
		for _, a := range allergies {
			declared = append(declared, a.AllergenName)
		}
		warnings = allergy.MatchAllergens(detail.DietaryFlags, declared)
	}

	return domain.RecipeDetailResponse{
		RecipeDetail:     *detail,
		IsSaved:          isSaved,
		AllergenWarnings: warnings,
	}, nil
}

func (s *recipeService) decorateSummaries(ctx context.Context, summaries []domain.RecipeSummary, userID string) []domain.DecoratedRecipeSummary {
	decorated := make([]domain.DecoratedRecipeSummary, 0, len(summaries))
	for _, summary := range summaries {
		isSaved, err := s.savedRecipeRepository.IsRecipeSaved(ctx, userID, summary.ID)
		if err != nil {
			isSaved = false
		}
		decorated = append(decorated, domain.DecoratedRecipeSummary{
			RecipeSummary: summary,
			IsSaved:       isSaved,
		})
	}
	return decorated
}
