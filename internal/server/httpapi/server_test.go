package httpapi

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/mealplanner/internal/logging"
	"github.com/dmitrijs2005/mealplanner/internal/server/config"
	"github.com/dmitrijs2005/mealplanner/internal/server/models"
	"github.com/dmitrijs2005/mealplanner/internal/server/repositories/inmemory"
	"github.com/dmitrijs2005/mealplanner/internal/server/services"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// newTestServer wires real services over the in-memory repositories and
// mounts the full handler chain on an httptest server.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{
		SecretKey:             "test-secret",
		TokenValidityDuration: time.Hour,
		BcryptCost:            bcrypt.MinCost,
	}
	rm := inmemory.NewManager(db)
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	srv := NewServer(":0", log,
		services.NewUserService(rm, cfg),
		services.NewRecipeService(rm),
		services.NewPantryService(rm),
		services.NewImageService(rm, cfg),
	)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, ts *httptest.Server, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func registerUser(t *testing.T, ts *httptest.Server, email string) string {
	t.Helper()

	resp, data := doJSON(t, ts, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    email,
		"password": "hunter22",
		"name":     "Tester",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(data, &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, data := doJSON(t, ts, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"status":"ok"}`, string(data))
}

func TestAuthFlow(t *testing.T) {
	ts := newTestServer(t)

	token := registerUser(t, ts, "alice@example.com")

	resp, data := doJSON(t, ts, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me struct {
		User models.PublicUser `json:"user"`
	}
	require.NoError(t, json.Unmarshal(data, &me))
	require.Equal(t, "alice@example.com", me.User.Email)
	require.Equal(t, "Tester", me.User.Name)

	// second registration with the same email is rejected
	resp, _ = doJSON(t, ts, http.MethodPost, "/auth/register", "", map[string]string{
		"email": "alice@example.com", "password": "another6", "name": "Clone",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// login with the registered credentials
	resp, _ = doJSON(t, ts, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// wrong password and unknown email both come back as 400
	resp, _ = doJSON(t, ts, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = doJSON(t, ts, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "nobody@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/auth/me", "/recipes", "/pantry"} {
		resp, _ := doJSON(t, ts, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}

	resp, _ := doJSON(t, ts, http.MethodGet, "/recipes", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRecipeCRUD(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice@example.com")

	// create
	resp, data := doJSON(t, ts, http.MethodPost, "/recipes", token, map[string]any{
		"title":       "Tomato Soup",
		"ingredients": "tomatoes, salt",
		"description": "quick weeknight soup",
		"servings":    4,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))

	var createdRes struct {
		Recipe models.Recipe `json:"recipe"`
	}
	require.NoError(t, json.Unmarshal(data, &createdRes))
	created := createdRes.Recipe
	require.NotZero(t, created.ID)
	require.Equal(t, "Tomato Soup", created.Title)
	require.NotNil(t, created.Servings)

	// get
	resp, data = doJSON(t, ts, http.MethodGet, fmt.Sprintf("/recipes/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// update without description: the full-replace contract clears it
	resp, data = doJSON(t, ts, http.MethodPut, fmt.Sprintf("/recipes/%d", created.ID), token, map[string]any{
		"title":       "Tomato Soup v2",
		"ingredients": "tomatoes, salt, basil",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var updatedRes struct {
		Recipe models.Recipe `json:"recipe"`
	}
	require.NoError(t, json.Unmarshal(data, &updatedRes))
	require.Equal(t, "Tomato Soup v2", updatedRes.Recipe.Title)
	require.Nil(t, updatedRes.Recipe.Description)
	require.Nil(t, updatedRes.Recipe.Servings)

	// list
	resp, data = doJSON(t, ts, http.MethodGet, "/recipes", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listRes struct {
		Recipes []models.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(data, &listRes))
	require.Len(t, listRes.Recipes, 1)

	// delete, then the row is gone
	resp, _ = doJSON(t, ts, http.MethodDelete, fmt.Sprintf("/recipes/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, ts, http.MethodGet, fmt.Sprintf("/recipes/%d", created.ID), token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecipeValidation(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice@example.com")

	resp, _ := doJSON(t, ts, http.MethodPost, "/recipes", token, map[string]any{"title": "  "})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodGet, "/recipes/abc", token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPantryCRUD(t *testing.T) {
	ts := newTestServer(t)
	token := registerUser(t, ts, "alice@example.com")

	resp, data := doJSON(t, ts, http.MethodPost, "/pantry", token, map[string]any{
		"name":        "Milk",
		"quantity":    1.5,
		"unit":        "l",
		"expiry_date": "2026-09-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))

	var createdRes struct {
		Item models.PantryItem `json:"item"`
	}
	require.NoError(t, json.Unmarshal(data, &createdRes))
	created := createdRes.Item
	require.NotZero(t, created.ID)
	require.NotNil(t, created.Quantity)
	require.Equal(t, 1.5, *created.Quantity)
	require.NotNil(t, created.ExpiryDate)
	require.Equal(t, "2026-09-01", created.ExpiryDate.String())

	_, data = doJSON(t, ts, http.MethodPost, "/pantry", token, map[string]any{
		"name": "Flour",
	})
	var undatedRes struct {
		Item models.PantryItem `json:"item"`
	}
	require.NoError(t, json.Unmarshal(data, &undatedRes))

	// dated items come before undated ones
	resp, data = doJSON(t, ts, http.MethodGet, "/pantry", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listRes struct {
		Items []models.PantryItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(data, &listRes))
	require.Len(t, listRes.Items, 2)
	require.Equal(t, "Milk", listRes.Items[0].Name)
	require.Equal(t, "Flour", listRes.Items[1].Name)

	resp, _ = doJSON(t, ts, http.MethodDelete, fmt.Sprintf("/pantry/%d", undatedRes.Item.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRowsAreIsolatedPerUser(t *testing.T) {
	ts := newTestServer(t)
	alice := registerUser(t, ts, "alice@example.com")
	bob := registerUser(t, ts, "bob@example.com")

	_, data := doJSON(t, ts, http.MethodPost, "/recipes", alice, map[string]any{"title": "Soup"})
	var recipeRes struct {
		Recipe models.Recipe `json:"recipe"`
	}
	require.NoError(t, json.Unmarshal(data, &recipeRes))

	_, data = doJSON(t, ts, http.MethodPost, "/pantry", alice, map[string]any{"name": "Milk"})
	var itemRes struct {
		Item models.PantryItem `json:"item"`
	}
	require.NoError(t, json.Unmarshal(data, &itemRes))

	// bob's lists stay empty
	resp, data := doJSON(t, ts, http.MethodGet, "/recipes", bob, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"recipes":[]}`, string(data))

	resp, data = doJSON(t, ts, http.MethodGet, "/pantry", bob, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"items":[]}`, string(data))

	// bob cannot read, rewrite or delete alice's rows
	resp, _ = doJSON(t, ts, http.MethodGet, fmt.Sprintf("/recipes/%d", recipeRes.Recipe.ID), bob, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = doJSON(t, ts, http.MethodPut, fmt.Sprintf("/recipes/%d", recipeRes.Recipe.ID), bob, map[string]any{"title": "Mine now"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = doJSON(t, ts, http.MethodDelete, fmt.Sprintf("/pantry/%d", itemRes.Item.ID), bob, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// alice's rows are intact
	resp, _ = doJSON(t, ts, http.MethodGet, fmt.Sprintf("/recipes/%d", recipeRes.Recipe.ID), alice, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/recipes", nil)
	require.NoError(t, err)
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
