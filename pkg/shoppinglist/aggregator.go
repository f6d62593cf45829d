package shoppinglist

import (
	"mealmate/domain"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Aggregate folds the ingredient line-items of the given recipes into one
// deduplicated shopping list. Two line-items land in the same bucket iff
// their lowercased canonical name and lowercased unit both match, so the
// same ingredient measured in different units stays separate. Line-items
// without a numeric amount never contribute to the sum but mark the bucket
// indeterminate. Recipes with no ingredients contribute nothing.
//
// Pure function of its input; the result is sorted ascending by display
// name, case-insensitive, with ties ordered by bucket key.
func Aggregate(recipes []domain.RecipeDetail) []domain.ShoppingListItem {
	buckets := make(map[string]*domain.ShoppingListItem)

	for _, rec := range recipes {
		for _, ing := range rec.ExtendedIngredients {
			canonical := strings.ToLower(firstNonEmpty(ing.NameClean, ing.Name, ing.Original, "unknown_ingredient"))
			key := canonical + "_" + strings.ToLower(ing.Unit)
			sourceText := firstNonEmpty(ing.Original, ing.Name, "N/A")

			if item, ok := buckets[key]; ok {
				if ing.Amount != nil {
					item.TotalAmount += *ing.Amount
				} else {
					item.HasIndeterminateAmount = true
				}
				item.Sources = append(item.Sources, domain.RecipeSource{
					RecipeTitle:    rec.Title,
					IngredientText: sourceText,
				})
				continue
			}

			total := 0.0
			if ing.Amount != nil {
				total = *ing.Amount
			}
			buckets[key] = &domain.ShoppingListItem{
				Key:                    key,
				DisplayName:            capitalizeWords(firstNonEmpty(ing.OriginalName, ing.Name, ing.NameClean, "Unknown Ingredient")),
				Unit:                   ing.Unit,
				TotalAmount:            total,
				HasIndeterminateAmount: ing.Amount == nil,
				Sources: []domain.RecipeSource{{
					RecipeTitle:    rec.Title,
					IngredientText: sourceText,
				}},
			}
		}
	}

	items := make([]domain.ShoppingListItem, 0, len(buckets))
	for _, item := range buckets {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		ni, nj := strings.ToLower(items[i].DisplayName), strings.ToLower(items[j].DisplayName)
		if ni != nj {
			return ni < nj
		}
		// Same display name happens when one ingredient appears in several
		// units; the key carries the unit, so it breaks the tie.
		return items[i].Key < items[j].Key
	})
	return items
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
	}
	return strings.Join(words, " ")
}
