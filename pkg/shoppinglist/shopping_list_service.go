package shoppinglist

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"mealmate/domain"
	"mealmate/internal/platform/spoonacular"
	"mealmate/internal/utils/mailing"
	"mealmate/pkg/savedrecipe"
	"strings"
	"sync"
)

type (
	ShoppingListService interface {
		Generate(ctx context.Context, req domain.GenerateShoppingListRequest, userID string) (domain.GenerateShoppingListResponse, error)
		EmailShoppingList(ctx context.Context, req domain.EmailShoppingListRequest, userID string) error
	}

	shoppingListService struct {
		savedRecipeRepository savedrecipe.SavedRecipeRepository
		provider              spoonacular.Client
	}
)

func NewShoppingListService(savedRecipeRepository savedrecipe.SavedRecipeRepository, provider spoonacular.Client) ShoppingListService {
	return &shoppingListService{
		savedRecipeRepository: savedRecipeRepository,
		provider:              provider,
	}
}

// Generate builds a fresh shopping list from the user's saved snapshots for
// the selected recipe ids. The list is never persisted; every call
// recomputes from the current selection. Snapshots saved without ingredient
// data get one detail fetch each, issued concurrently; a failed fetch
// degrades that recipe to "contributes nothing" and reports its title in
// SkippedRecipes instead of failing the generation.
func (s *shoppingListService) Generate(ctx context.Context, req domain.GenerateShoppingListRequest, userID string) (domain.GenerateShoppingListResponse, error) {
	saved, err := s.savedRecipeRepository.GetSavedRecipesByIDs(ctx, userID, req.RecipeIDs)
	if err != nil {
		return domain.GenerateShoppingListResponse{}, err
	}
	if len(saved) == 0 {
		return domain.GenerateShoppingListResponse{}, domain.ErrNoSavedRecipesSelected
	}

	details := make([]domain.RecipeDetail, 0, len(saved))
	for _, sr := range saved {
		var detail domain.RecipeDetail
		if err := json.Unmarshal([]byte(sr.Snapshot), &detail); err != nil {
			// A corrupt snapshot still identifies the recipe well enough to
			// refetch it below.
			detail = domain.RecipeDetail{ID: sr.RecipeID, Title: sr.Title}
		}
		details = append(details, detail)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		skipped []string
	)
	for i := range details {
		if len(details[i].ExtendedIngredients) > 0 {
			continue
		}

		wg.Add(1)
		go func(d *domain.RecipeDetail) {
			defer wg.Done()
			full, err := s.provider.GetRecipeDetail(ctx, d.ID)
			if err != nil {
				mu.Lock()
				skipped = append(skipped, d.Title)
				mu.Unlock()
				return
			}
			mu.Lock()
			d.ExtendedIngredients = full.ExtendedIngredients
			mu.Unlock()
		}(&details[i])
	}
	wg.Wait()

	contributing := make([]domain.RecipeDetail, 0, len(details))
	for _, d := range details {
		if len(d.ExtendedIngredients) == 0 {
			continue
		}
		contributing = append(contributing, d)
	}

	items := Aggregate(contributing)
	return domain.GenerateShoppingListResponse{
		Items:          items,
		TotalItems:     len(items),
		SkippedRecipes: skipped,
	}, nil
}

func (s *shoppingListService) EmailShoppingList(ctx context.Context, req domain.EmailShoppingListRequest, userID string) error {
	list, err := s.Generate(ctx, domain.GenerateShoppingListRequest{RecipeIDs: req.RecipeIDs}, userID)
	if err != nil {
		return err
	}

	return mailing.SendMail(req.Email, "Your MealMate shopping list", renderShoppingListHTML(list))
}

func renderShoppingListHTML(list domain.GenerateShoppingListResponse) string {
	var b strings.Builder
	b.WriteString("<h2>Shopping List</h2><ul>")
	for _, item := range list.Items {
		// Display names and titles come from the provider, escape them.
		b.WriteString(fmt.Sprintf("<li><strong>%s</strong>: %s</li>",
			html.EscapeString(item.DisplayName), html.EscapeString(item.AmountLabel())))
	}
	b.WriteString("</ul>")

	if len(list.SkippedRecipes) > 0 {
		b.WriteString("<p>Could not load ingredients for: ")
		b.WriteString(html.EscapeString(strings.Join(list.SkippedRecipes, ", ")))
		b.WriteString("</p>")
	}
	return b.String()
}
