package savedrecipe

import (
	"context"
	"encoding/json"
	"errors"
	"mealmate/domain"
	"mealmate/entities"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type mockSavedRecipeRepository struct {
	saved   map[int]*entities.SavedRecipe
	created *entities.SavedRecipe
}

func newMockRepo() *mockSavedRecipeRepository {
	return &mockSavedRecipeRepository{saved: make(map[int]*entities.SavedRecipe)}
}

func (m *mockSavedRecipeRepository) CreateSavedRecipe(ctx context.Context, saved *entities.SavedRecipe) error {
	m.created = saved
	m.saved[saved.RecipeID] = saved
	return nil
}

func (m *mockSavedRecipeRepository) GetSavedRecipe(ctx context.Context, userID string, recipeID int) (*entities.SavedRecipe, error) {
	return m.saved[recipeID], nil
}

func (m *mockSavedRecipeRepository) GetSavedRecipes(ctx context.Context, userID string, page, limit int) ([]*entities.SavedRecipe, int64, error) {
	var out []*entities.SavedRecipe
	for _, sr := range m.saved {
		out = append(out, sr)
	}
	return out, int64(len(out)), nil
}

func (m *mockSavedRecipeRepository) GetSavedRecipesByIDs(ctx context.Context, userID string, recipeIDs []int) ([]*entities.SavedRecipe, error) {
	return nil, nil
}

func (m *mockSavedRecipeRepository) DeleteSavedRecipe(ctx context.Context, userID string, recipeID int) error {
	return nil
}

func (m *mockSavedRecipeRepository) IsRecipeSaved(ctx context.Context, userID string, recipeID int) (bool, error) {
	_, ok := m.saved[recipeID]
	return ok, nil
}

type mockProviderClient struct {
	detail *domain.RecipeDetail
	err    error
}

func (m *mockProviderClient) SearchRecipes(ctx context.Context, params domain.RecipeSearchParams) (domain.RecipeSearchPage, error) {
	return domain.RecipeSearchPage{}, nil
}

func (m *mockProviderClient) GetRecipeDetail(ctx context.Context, id int) (*domain.RecipeDetail, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.detail, nil
}

func (m *mockProviderClient) GetRandomRecipes(ctx context.Context, number int) ([]domain.RecipeSummary, error) {
	return nil, nil
}

type mockS3 struct {
	mirrored string
	err      error
}

func (m *mockS3) MirrorFromURL(ctx context.Context, sourceURL, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.mirrored = sourceURL
	return "https://bucket.s3.us-east-1.amazonaws.com/" + key, nil
}

func TestSaveRecipeStoresSnapshot(t *testing.T) {
	userID := uuid.New().String()
	repo := newMockRepo()
	provider := &mockProviderClient{
		detail: &domain.RecipeDetail{
			ID:       42,
			Title:    "Pancakes",
			ImageURL: "https://img.example.com/42.jpg",
			ExtendedIngredients: []domain.IngredientLineItem{
				{Name: "flour", Unit: "cups"},
			},
		},
	}
	s3 := &mockS3{}
	service := NewSavedRecipeService(repo, provider, s3)

	outcome, err := service.SaveRecipe(context.Background(), domain.SaveRecipeRequest{RecipeID: 42}, userID)

	assert.NoError(t, err)
	assert.Equal(t, domain.SaveOutcomeSaved, outcome)
	assert.NotNil(t, repo.created)
	assert.Equal(t, "Pancakes", repo.created.Title)
	assert.Equal(t, "https://img.example.com/42.jpg", s3.mirrored)
	assert.NotEmpty(t, repo.created.MirrorImageURL)

	var snapshot domain.RecipeDetail
	assert.NoError(t, json.Unmarshal([]byte(repo.created.Snapshot), &snapshot))
	assert.Len(t, snapshot.ExtendedIngredients, 1)
}

func TestSaveRecipeTwiceIsAlreadySaved(t *testing.T) {
	userID := uuid.New().String()
	repo := newMockRepo()
	provider := &mockProviderClient{detail: &domain.RecipeDetail{ID: 42, Title: "Pancakes"}}
	service := NewSavedRecipeService(repo, provider, &mockS3{})

	first, err := service.SaveRecipe(context.Background(), domain.SaveRecipeRequest{RecipeID: 42}, userID)
	assert.NoError(t, err)
	assert.Equal(t, domain.SaveOutcomeSaved, first)

	second, err := service.SaveRecipe(context.Background(), domain.SaveRecipeRequest{RecipeID: 42}, userID)
	assert.NoError(t, err)
	assert.Equal(t, domain.SaveOutcomeAlreadySaved, second)
}

func TestSaveRecipeMirrorFailureIsNonFatal(t *testing.T) {
	userID := uuid.New().String()
	repo := newMockRepo()
	provider := &mockProviderClient{
		detail: &domain.RecipeDetail{ID: 42, Title: "Pancakes", ImageURL: "https://img.example.com/42.jpg"},
	}
	service := NewSavedRecipeService(repo, provider, &mockS3{err: errors.New("bucket unreachable")})

	outcome, err := service.SaveRecipe(context.Background(), domain.SaveRecipeRequest{RecipeID: 42}, userID)

	assert.NoError(t, err)
	assert.Equal(t, domain.SaveOutcomeSaved, outcome)
	assert.Empty(t, repo.created.MirrorImageURL)
}

func TestSaveRecipeProviderFailure(t *testing.T) {
	userID := uuid.New().String()
	service := NewSavedRecipeService(newMockRepo(), &mockProviderClient{err: domain.ErrRecipeProviderFailed}, &mockS3{})

	_, err := service.SaveRecipe(context.Background(), domain.SaveRecipeRequest{RecipeID: 42}, userID)

	assert.ErrorIs(t, err, domain.ErrRecipeProviderFailed)
}
