package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/mealplanner/internal/server/models"
)

// HTTPClient talks JSON to the meal-planner server. The bearer token is
// attached to every request once set. When the server answers 401 the
// OnUnauthorized callback fires, so the CLI can drop its saved session and
// send the user back to the login prompt.
type HTTPClient struct {
	baseURL        string
	httpClient     *http.Client
	token          string
	OnUnauthorized func()
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

type apiError struct {
	Error string `json:"error"`
}

// do sends one JSON request and decodes the response into out (skipped when
// out is nil). Non-2xx statuses become errors: 401 maps to ErrUnauthorized
// and triggers the callback, everything else carries the server's message.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server error (%d)", resp.StatusCode)
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	var res AuthResult
	err := c.do(ctx, http.MethodPost, "/auth/register", map[string]string{
		"email": email, "password": password, "name": name,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var res AuthResult
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email": email, "password": password,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.PublicUser, error) {
	var res struct {
		User *models.PublicUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &res); err != nil {
		return nil, err
	}
	return res.User, nil
}

func (c *HTTPClient) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// Response wrappers mirroring the server's payload shapes.
type recipesPayload struct {
	Recipes []*models.Recipe `json:"recipes"`
}

type recipePayload struct {
	Recipe *models.Recipe `json:"recipe"`
}

type itemsPayload struct {
	Items []*models.PantryItem `json:"items"`
}

type itemPayload struct {
	Item *models.PantryItem `json:"item"`
}

func (c *HTTPClient) ListRecipes(ctx context.Context) ([]*models.Recipe, error) {
	var res recipesPayload
	if err := c.do(ctx, http.MethodGet, "/recipes", nil, &res); err != nil {
		return nil, err
	}
	return res.Recipes, nil
}

func (c *HTTPClient) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	var res recipePayload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/recipes/%d", id), nil, &res); err != nil {
		return nil, err
	}
	return res.Recipe, nil
}

func (c *HTTPClient) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	var res recipePayload
	if err := c.do(ctx, http.MethodPost, "/recipes", recipe, &res); err != nil {
		return nil, err
	}
	return res.Recipe, nil
}

func (c *HTTPClient) UpdateRecipe(ctx context.Context, id int64, recipe *models.Recipe) (*models.Recipe, error) {
	var res recipePayload
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/recipes/%d", id), recipe, &res); err != nil {
		return nil, err
	}
	return res.Recipe, nil
}

func (c *HTTPClient) DeleteRecipe(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/recipes/%d", id), nil, nil)
}

func (c *HTTPClient) IssueImageUploadURL(ctx context.Context, recipeID int64) (string, error) {
	var res struct {
		UploadURL string `json:"upload_url"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/recipes/%d/image", recipeID), nil, &res); err != nil {
		return "", err
	}
	return res.UploadURL, nil
}

func (c *HTTPClient) ResolveImageURL(ctx context.Context, recipeID int64) (string, error) {
	var res struct {
		ImageURL string `json:"image_url"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/recipes/%d/image", recipeID), nil, &res); err != nil {
		return "", err
	}
	return res.ImageURL, nil
}

func (c *HTTPClient) ListPantry(ctx context.Context) ([]*models.PantryItem, error) {
	var res itemsPayload
	if err := c.do(ctx, http.MethodGet, "/pantry", nil, &res); err != nil {
		return nil, err
	}
	return res.Items, nil
}

func (c *HTTPClient) GetPantryItem(ctx context.Context, id int64) (*models.PantryItem, error) {
	var res itemPayload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pantry/%d", id), nil, &res); err != nil {
		return nil, err
	}
	return res.Item, nil
}

func (c *HTTPClient) CreatePantryItem(ctx context.Context, item *models.PantryItem) (*models.PantryItem, error) {
	var res itemPayload
	if err := c.do(ctx, http.MethodPost, "/pantry", item, &res); err != nil {
		return nil, err
	}
	return res.Item, nil
}

func (c *HTTPClient) UpdatePantryItem(ctx context.Context, id int64, item *models.PantryItem) (*models.PantryItem, error) {
	var res itemPayload
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/pantry/%d", id), item, &res); err != nil {
		return nil, err
	}
	return res.Item, nil
}

func (c *HTTPClient) DeletePantryItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/pantry/%d", id), nil, nil)
}
