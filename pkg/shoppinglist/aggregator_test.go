package shoppinglist

import (
	"mealmate/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func amount(v float64) *float64 {
	return &v
}

func TestAggregateMergesSameNameAndUnit(t *testing.T) {
	recipes := []domain.RecipeDetail{
		{
			Title: "A",
			ExtendedIngredients: []domain.IngredientLineItem{
				{Name: "flour", Unit: "cup", Amount: amount(1), Original: "1 cup flour"},
			},
		},
		{
			Title: "B",
			ExtendedIngredients: []domain.IngredientLineItem{
				{Name: "Flour", Unit: "Cup", Amount: amount(2), Original: "2 cups Flour"},
			},
		},
	}

	items := Aggregate(recipes)

	assert.Len(t, items, 1)
	assert.Equal(t, "Flour", items[0].DisplayName)
	assert.Equal(t, 3.0, items[0].TotalAmount)
	assert.False(t, items[0].HasIndeterminateAmount)
	assert.Equal(t, []domain.RecipeSource{
		{RecipeTitle: "A", IngredientText: "1 cup flour"},
		{RecipeTitle: "B", IngredientText: "2 cups Flour"},
	}, items[0].Sources)
}

func TestAggregateKeepsDifferentUnitsSeparate(t *testing.T) {
	recipes := []domain.RecipeDetail{
		{
			Title: "Bread",
			ExtendedIngredients: []domain.IngredientLineItem{
				{Name: "flour", Unit: "cups", Amount: amount(2)},
				{Name: "flour", Unit: "grams", Amount: amount(500)},
			},
		},
	}

	items := Aggregate(recipes)

	assert.Len(t, items, 2)
	assert.NotEqual(t, items[0].Key, items[1].Key)
}

func TestAggregateIndeterminateOnly(t *testing.T) {
	recipes := []domain.RecipeDetail{
		{
			Title: "Soup",
			ExtendedIngredients: []domain.IngredientLineItem{
				{Name: "salt", Unit: "", Amount: nil},
			},
		},
	}

	items := Aggregate(recipes)

	assert.Len(t, items, 1)
	assert.Equal(t, 0.0, items[0].TotalAmount)
	assert.True(t, items[0].HasIndeterminateAmount)
	assert.Equal(t, "As needed / To taste", items[0].AmountLabel())
}

func TestAggregateMixedAmounts(t *testing.T) {
	recipes := []domain.RecipeDetail{
		{
			Title: "A",
			ExtendedIngredients: []domain.IngredientLineItem{
				{Name: "olive oil", Unit: "tbsp", Amount: amount(2)},
			},
		},
		{
			Title: "B",
			ExtendedIngredients: []domain.IngredientLineItem{
				{Name: "olive oil", Unit: "tbsp", Amount: nil},
			},
		},
	}

	items := Aggregate(recipes)

	assert.Len(t, items, 1)
	assert.Equal(t, 2.0, items[0].TotalAmount)
	assert.True(t, items[0].HasIndeterminateAmount)
	assert.Equal(t, "2 tbsp (+ some)", items[0].AmountLabel())
}

func TestAggregateSortedByDisplayNameCaseInsensitive(t *testing.T) {
	recipes := []domain.RecipeDetail{
		{
			Title: "Mixed",
			ExtendedIngredients: []domain.IngredientLineItem{
				{Name: "zucchini", Unit: "", Amount: amount(1)},
				{Name: "Apple", Unit: "", Amount: amount(2)},
				{Name: "mango", Unit: "", Amount: amount(3)},
			},
		},
	}

	items := Aggregate(recipes)

	assert.Len(t, items, 3)
	for i := 1; i < len(items); i++ {
		prev := strings.ToLower(items[i-1].DisplayName)
		curr := strings.ToLower(items[i].DisplayName)
		assert.LessOrEqual(t, prev, curr)
	}
}

func TestAggregateUniqueKeys(t *testing.T) {
	recipes := []domain.RecipeDetail{
		{
			Title: "A",
			ExtendedIngredients: []domain.IngredientLineItem{
				{Name: "flour", Unit: "cup", Amount: amount(1)},
				{Name: "flour", Unit: "cup", Amount: amount(1)},
				{Name: "sugar", Unit: "cup", Amount: amount(1)},
				{Name: "sugar", Unit: "", Amount: nil},
			},
		},
	}

	items := Aggregate(recipes)

	keys := make(map[string]bool)
	for _, item := range items {
		assert.False(t, keys[item.Key], "duplicate key %s", item.Key)
		keys[item.Key] = true
	}
	assert.Len(t, items, 3)
}

func TestAggregateNameFallbacks(t *testing.T) {
	recipes := []domain.RecipeDetail{
		{
			Title: "Fallbacks",
			ExtendedIngredients: []domain.IngredientLineItem{
				{NameClean: "basil", Name: "fresh basil", OriginalName: "fresh basil leaves", Amount: amount(1), Unit: "bunch"},
				{Original: "a pinch of something", Amount: nil},
				{Amount: nil},
			},
		},
	}

	items := Aggregate(recipes)

	assert.Len(t, items, 3)

	byKey := make(map[string]domain.ShoppingListItem)
	for _, item := range items {
		byKey[item.Key] = item
	}

	// nameClean wins for the key, originalName for display.
	assert.Contains(t, byKey, "basil_bunch")
	assert.Equal(t, "Fresh Basil Leaves", byKey["basil_bunch"].DisplayName)

	// With only the raw text available, it becomes both key and source.
	assert.Contains(t, byKey, "a pinch of something_")

	// Nothing at all falls back to the placeholders.
	assert.Contains(t, byKey, "unknown_ingredient_")
	assert.Equal(t, "Unknown Ingredient", byKey["unknown_ingredient_"].DisplayName)
}

func TestAggregateEmptyRecipesContributeNothing(t *testing.T) {
	recipes := []domain.RecipeDetail{
		{Title: "No data"},
		{
			Title: "Has data",
			ExtendedIngredients: []domain.IngredientLineItem{
				{Name: "rice", Unit: "cup", Amount: amount(1)},
			},
		},
	}

	items := Aggregate(recipes)

	assert.Len(t, items, 1)
	assert.Equal(t, "Rice", items[0].DisplayName)
}

func TestAggregateIdempotent(t *testing.T) {
	recipes := []domain.RecipeDetail{
		{
			Title: "A",
			ExtendedIngredients: []domain.IngredientLineItem{
				{Name: "flour", Unit: "cup", Amount: amount(1)},
				{Name: "salt", Unit: "", Amount: nil},
				{Name: "Flour", Unit: "cup", Amount: amount(2)},
			},
		},
	}

	first := Aggregate(recipes)
	second := Aggregate(recipes)

	assert.Equal(t, first, second)
}

func TestAggregateDeterministicWhenDisplayNamesTie(t *testing.T) {
	recipes := []domain.RecipeDetail{
		{
			Title: "Bakery",
			ExtendedIngredients: []domain.IngredientLineItem{
				{Name: "flour", Unit: "cups", Amount: amount(2)},
				{Name: "flour", Unit: "grams", Amount: amount(500)},
				{Name: "flour", Unit: "tbsp", Amount: amount(3)},
				{Name: "flour", Unit: "oz", Amount: amount(8)},
				{Name: "flour", Unit: "kg", Amount: amount(1)},
			},
		},
	}

	first := Aggregate(recipes)
	assert.Len(t, first, 5)

	for run := 0; run < 200; run++ {
		assert.Equal(t, first, Aggregate(recipes), "run %d differs", run)
	}

	// Tied display names come out ordered by key, so by unit.
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].Key, first[i].Key)
	}
}

func TestCapitalizeWordsMultiByteRune(t *testing.T) {
	assert.Equal(t, "Échalote Grise", capitalizeWords("échalote GRISE"))
}

func TestAmountLabelUnitlessAmount(t *testing.T) {
	item := domain.ShoppingListItem{TotalAmount: 3, Unit: ""}
	assert.Equal(t, "3", item.AmountLabel())
}
