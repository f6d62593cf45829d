package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mealmate/domain"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.spoonacular.com"

type (
	// Client is the recipe content provider. Recipe data is read-only from
	// this system's perspective; every identifier is assigned by the
	// provider. One attempt per call, no automatic retry.
	Client interface {
		SearchRecipes(ctx context.Context, params domain.RecipeSearchParams) (domain.RecipeSearchPage, error)
		GetRecipeDetail(ctx context.Context, id int) (*domain.RecipeDetail, error)
		GetRandomRecipes(ctx context.Context, number int) ([]domain.RecipeSummary, error)
	}

	client struct {
		baseURL    string
		apiKey     string
		httpClient *http.Client
	}
)

func NewClient(baseURL, apiKey string) Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *client) SearchRecipes(ctx context.Context, params domain.RecipeSearchParams) (domain.RecipeSearchPage, error) {
	query := url.Values{}
	query.Set("apiKey", c.apiKey)
	if params.Query != "" {
		query.Set("query", params.Query)
	}
	if params.Cuisine != "" {
		query.Set("cuisine", params.Cuisine)
	}
	if params.Diet != "" {
		query.Set("diet", params.Diet)
	}
	if params.MealType != "" {
		query.Set("type", params.MealType)
	}
	if params.MaxReadyTime > 0 {
		query.Set("maxReadyTime", strconv.Itoa(params.MaxReadyTime))
	}
	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}
	number := params.Number
	if number <= 0 {
		number = 10
	}
	query.Set("number", strconv.Itoa(number))

	var page domain.RecipeSearchPage
	if err := c.get(ctx, "/recipes/complexSearch", query, &page); err != nil {
		return domain.RecipeSearchPage{}, err
	}
	return page, nil
}

func (c *client) GetRecipeDetail(ctx context.Context, id int) (*domain.RecipeDetail, error) {
	query := url.Values{}
	query.Set("apiKey", c.apiKey)
	query.Set("includeNutrition", "false")

	var detail domain.RecipeDetail
	if err := c.get(ctx, fmt.Sprintf("/recipes/%d/information", id), query, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *client) GetRandomRecipes(ctx context.Context, number int) ([]domain.RecipeSummary, error) {
	if number <= 0 {
		number = 10
	}
	query := url.Values{}
	query.Set("apiKey", c.apiKey)
	query.Set("number", strconv.Itoa(number))

	var payload struct {
		Recipes []domain.RecipeSummary `json:"recipes"`
	}
	if err := c.get(ctx, "/recipes/random", query, &payload); err != nil {
		return nil, err
	}
	return payload.Recipes, nil
}

func (c *client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRecipeProviderFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrRecipeNotFound
	}
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s - %s", domain.ErrRecipeProviderFailed, resp.Status, string(bodyBytes))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
