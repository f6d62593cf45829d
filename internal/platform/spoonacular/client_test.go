package spoonacular

import (
	"context"
	"mealmate/domain"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchRecipesBuildsQueryAndDecodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/complexSearch", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "test-key", query.Get("apiKey"))
		assert.Equal(t, "pasta", query.Get("query"))
		assert.Equal(t, "italian", query.Get("cuisine"))
		assert.Equal(t, "30", query.Get("maxReadyTime"))
		assert.Equal(t, "20", query.Get("offset"))
		assert.Equal(t, "10", query.Get("number"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"id":1,"title":"Spaghetti","readyInMinutes":25,"servings":4}],"offset":20,"number":10,"totalResults":87}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	page, err := client.SearchRecipes(context.Background(), domain.RecipeSearchParams{
		Query:        "pasta",
		Cuisine:      "italian",
		MaxReadyTime: 30,
		Offset:       20,
		Number:       10,
	})

	assert.NoError(t, err)
	assert.Equal(t, 87, page.TotalResults)
	assert.Len(t, page.Results, 1)
	assert.Equal(t, "Spaghetti", page.Results[0].Title)
}

func TestGetRecipeDetailDecodesSparseFlags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/42/information", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 42,
			"title": "Pancakes",
			"glutenFree": false,
			"extendedIngredients": [
				{"id": 1, "name": "flour", "nameClean": "wheat flour", "original": "2 cups flour", "amount": 2, "unit": "cups"},
				{"id": 2, "name": "salt", "original": "salt to taste", "unit": ""}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	detail, err := client.GetRecipeDetail(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, "Pancakes", detail.Title)

	// Explicit false survives decoding; absent flags stay nil.
	assert.NotNil(t, detail.GlutenFree)
	assert.False(t, *detail.GlutenFree)
	assert.Nil(t, detail.DairyFree)

	assert.Len(t, detail.ExtendedIngredients, 2)
	assert.NotNil(t, detail.ExtendedIngredients[0].Amount)
	assert.Equal(t, 2.0, *detail.ExtendedIngredients[0].Amount)
	assert.Nil(t, detail.ExtendedIngredients[1].Amount)
}

func TestGetRecipeDetailNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.GetRecipeDetail(context.Background(), 9999)

	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestProviderErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"message":"quota exhausted"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.SearchRecipes(context.Background(), domain.RecipeSearchParams{Query: "pasta"})

	assert.ErrorIs(t, err, domain.ErrRecipeProviderFailed)
}

func TestGetRandomRecipes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/random", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("number"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"recipes":[{"id":3,"title":"Tacos"},{"id":4,"title":"Ramen"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	recipes, err := client.GetRandomRecipes(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, recipes, 2)
	assert.Equal(t, "Tacos", recipes[0].Title)
}
