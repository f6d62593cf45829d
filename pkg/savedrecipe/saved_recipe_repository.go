package savedrecipe

import (
	"context"
	"errors"
	"mealmate/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SavedRecipeRepository interface {
		CreateSavedRecipe(ctx context.Context, saved *entities.SavedRecipe) error
		GetSavedRecipe(ctx context.Context, userID string, recipeID int) (*entities.SavedRecipe, error)
		GetSavedRecipes(ctx context.Context, userID string, page, limit int) ([]*entities.SavedRecipe, int64, error)
		GetSavedRecipesByIDs(ctx context.Context, userID string, recipeIDs []int) ([]*entities.SavedRecipe, error)
		DeleteSavedRecipe(ctx context.Context, userID string, recipeID int) error
		IsRecipeSaved(ctx context.Context, userID string, recipeID int) (bool, error)
	}

	savedRecipeRepository struct {
		db *gorm.DB
	}
)

func NewSavedRecipeRepository(db *gorm.DB) SavedRecipeRepository {
	return &savedRecipeRepository{db: db}
}

func (r *savedRecipeRepository) CreateSavedRecipe(ctx context.Context, saved *entities.SavedRecipe) error {
	return r.db.WithContext(ctx).Create(saved).Error
}

func (r *savedRecipeRepository) GetSavedRecipe(ctx context.Context, userID string, recipeID int) (*entities.SavedRecipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	var saved entities.SavedRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userUUID, recipeID).
		First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *savedRecipeRepository) GetSavedRecipes(ctx context.Context, userID string, page, limit int) ([]*entities.SavedRecipe, int64, error) {
	var saved []*entities.SavedRecipe
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.SavedRecipe{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&saved).Error; err != nil {
		return nil, 0, err
	}

	return saved, count, nil
}

func (r *savedRecipeRepository) GetSavedRecipesByIDs(ctx context.Context, userID string, recipeIDs []int) ([]*entities.SavedRecipe, error) {
	var saved []*entities.SavedRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *savedRecipeRepository) DeleteSavedRecipe(ctx context.Context, userID string, recipeID int) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.SavedRecipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *savedRecipeRepository) IsRecipeSaved(ctx context.Context, userID string, recipeID int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.SavedRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return count > 0, nil
}
