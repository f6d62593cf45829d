package savedrecipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mealmate/domain"
	"mealmate/entities"
	"mealmate/internal/platform/spoonacular"
	"mealmate/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SavedRecipeService interface {
		SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.SaveOutcome, error)
		UnsaveRecipe(ctx context.Context, recipeID int, userID string) error
		GetSavedRecipes(ctx context.Context, page, limit int, userID string) (domain.SavedRecipeListResponse, error)
		IsRecipeSaved(ctx context.Context, recipeID int, userID string) (bool, error)
	}

	savedRecipeService struct {
		savedRecipeRepository SavedRecipeRepository
		provider              spoonacular.Client
		s3                    storage.AwsS3
	}
)

func NewSavedRecipeService(savedRecipeRepository SavedRecipeRepository, provider spoonacular.Client, s3 storage.AwsS3) SavedRecipeService {
	return &savedRecipeService{
		savedRecipeRepository: savedRecipeRepository,
		provider:              provider,
		s3:                    s3,
	}
}

// SaveRecipe stores the full recipe detail as a snapshot. Saving a recipe
// twice is a benign idempotent outcome, reported as AlreadySaved so callers
// can branch without string-matching error messages.
func (s *savedRecipeService) SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.SaveOutcome, error) {
	alreadySaved, err := s.savedRecipeRepository.IsRecipeSaved(ctx, userID, req.RecipeID)
	if err != nil {
		return "", err
	}
	if alreadySaved {
		return domain.SaveOutcomeAlreadySaved, nil
	}

	detail, err := s.provider.GetRecipeDetail(ctx, req.RecipeID)
	if err != nil {
		return "", err
	}

	snapshot, err := json.Marshal(detail)
	if err != nil {
		return "", err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return "", domain.ErrParseUUID
	}

	saved := &entities.SavedRecipe{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: detail.ID,
		Title:    detail.Title,
		ImageURL: detail.ImageURL,
		Snapshot: string(snapshot),
	}

	// Mirror the provider image so the saved recipe survives image churn on
	// the provider side. Failure is non-fatal.
	if detail.ImageURL != "" {
		key := fmt.Sprintf("saved-recipes/%s/%d.jpg", userID, detail.ID)
		mirrorURL, err := s.s3.MirrorFromURL(ctx, detail.ImageURL, key)
		if err != nil {
			log.Printf("mirroring image for recipe %d failed: %v", detail.ID, err)
		} else {
			saved.MirrorImageURL = mirrorURL
		}
	}

	if err := s.savedRecipeRepository.CreateSavedRecipe(ctx, saved); err != nil {
		// A concurrent save can still hit the unique index; treat it the
		// same as the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.SaveOutcomeAlreadySaved, nil
		}
		return "", err
	}

	return domain.SaveOutcomeSaved, nil
}

func (s *savedRecipeService) UnsaveRecipe(ctx context.Context, recipeID int, userID string) error {
	if err := s.savedRecipeRepository.DeleteSavedRecipe(ctx, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSavedRecipeNotFound
		}
		return err
	}
	return nil
}

func (s *savedRecipeService) GetSavedRecipes(ctx context.Context, page, limit int, userID string) (domain.SavedRecipeListResponse, error) {
	saved, count, err := s.savedRecipeRepository.GetSavedRecipes(ctx, userID, page, limit)
	if err != nil {
		return domain.SavedRecipeListResponse{}, err
	}

	recipes := make([]domain.SavedRecipeResponse, 0, len(saved))
	for _, sr := range saved {
		recipes = append(recipes, domain.SavedRecipeResponse{
			RecipeID:       sr.RecipeID,
			Title:          sr.Title,
			ImageURL:       sr.ImageURL,
			MirrorImageURL: sr.MirrorImageURL,
			SavedAt:        sr.CreatedAt,
		})
	}

	return domain.SavedRecipeListResponse{
		Recipes: recipes,
		Total:   count,
	}, nil
}

func (s *savedRecipeService) IsRecipeSaved(ctx context.Context, recipeID int, userID string) (bool, error) {
	return s.savedRecipeRepository.IsRecipeSaved(ctx, userID, recipeID)
}
