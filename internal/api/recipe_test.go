package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pantrycook/pantrycook/backend/config"
	"github.com/pantrycook/pantrycook/backend/internal/model"
	"github.com/pantrycook/pantrycook/backend/internal/server"
	"github.com/pantrycook/pantrycook/backend/internal/testhelpers"
)

const testPassword = "test-password"

func setupTestRouter(t *testing.T, recipes []model.Recipe) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Env:               "test",
		ServerHost:        "127.0.0.1",
		ServerPort:        "0",
		JWTSecret:         "test-secret",
		AdminPasswordHash: string(hash),
		MatchPoolSize:     1000,
		SearchRateLimit:   1000,
		SearchRateWindow:  time.Minute,
	}

	db := testhelpers.NewTestDB(t)
	testhelpers.SeedRecipes(t, db, recipes)

	srv := server.NewServer(cfg, db, nil, nil, zap.NewNop())
	return srv.Router()
}

func issueToken(t *testing.T, router *gin.Engine) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"password": testPassword})
	req := httptest.NewRequest("POST", "/api/v1/auth/token", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["token"]
}

func matchFixtures() []model.Recipe {
	return []model.Recipe{
		{ID: 1, Title: "Chicken Rice Bowl", Ingredients: "chicken, rice, onion, garlic, salt"},
		{ID: 2, Title: "Garlic Chicken", Ingredients: "chicken, garlic"},
	}
}

func TestMatchByIngredients(t *testing.T) {
	router := setupTestRouter(t, matchFixtures())

	body, _ := json.Marshal(map[string]interface{}{
		"ingredients": []string{"chicken", "garlic", "salt"},
	})
	req := httptest.NewRequest("POST", "/api/v1/recipes/match", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Matches []struct {
			Recipe          map[string]interface{} `json:"recipe"`
			MatchPercentage float64                `json:"match_percentage"`
			Missing         int                    `json:"missing_ingredients"`
		} `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Matches, 2)
	assert.Equal(t, 100.0, resp.Matches[0].MatchPercentage)
	assert.Equal(t, 0, resp.Matches[0].Missing)
	// Wide ids cross the wire as strings.
	assert.Equal(t, "2", resp.Matches[0].Recipe["id"])
	assert.Equal(t, 60.0, resp.Matches[1].MatchPercentage)
}

func TestMatchByIngredientsEmptyPantry(t *testing.T) {
	router := setupTestRouter(t, matchFixtures())

	body, _ := json.Marshal(map[string]interface{}{"ingredients": []string{}})
	req := httptest.NewRequest("POST", "/api/v1/recipes/match", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"matches": []}`, w.Body.String())
}

func TestMatchByIngredientsExplicitZeroLimit(t *testing.T) {
	router := setupTestRouter(t, matchFixtures())

	body, _ := json.Marshal(map[string]interface{}{
		"ingredients": []string{"chicken", "garlic"},
		"limit":       0,
	})
	req := httptest.NewRequest("POST", "/api/v1/recipes/match", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"matches": []}`, w.Body.String())
}

func similarFixtures() []model.Recipe {
	return []model.Recipe{
		{ID: 5, Title: "Garlic Chicken", Category: "Italian",
			Ingredients: "chicken breast, garlic, olive oil"},
		{ID: 6, Title: "Garlic Chicken Skewers", Category: "Italian",
			Ingredients: "chicken breast, garlic, olive oil, paprika"},
		{ID: 7, Title: "Beef Stew", Category: "French",
			Ingredients: "beef, carrot, red wine"},
	}
}

func TestSimilarRecipes(t *testing.T) {
	router := setupTestRouter(t, similarFixtures())

	req := httptest.NewRequest("GET", "/api/v1/recipes/5/similar?limit=3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []map[string]interface{} `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, "6", resp.Recipes[0]["id"])
}

func TestSimilarRecipesNotFound(t *testing.T) {
	router := setupTestRouter(t, similarFixtures())

	req := httptest.NewRequest("GET", "/api/v1/recipes/404/similar", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSimilarRecipesInvalidID(t *testing.T) {
	router := setupTestRouter(t, similarFixtures())

	req := httptest.NewRequest("GET", "/api/v1/recipes/abc/similar", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRecipesPagination(t *testing.T) {
	router := setupTestRouter(t, matchFixtures())

	req := httptest.NewRequest("GET", "/api/v1/recipes?page=1&page_size=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes  []map[string]interface{} `json:"recipes"`
		Total    int                      `json:"total"`
		Page     int                      `json:"page"`
		PageSize int                      `json:"page_size"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Recipes, 1)
	assert.Equal(t, "2", resp.Recipes[0]["id"])
}

func TestListRecipesFilterValidation(t *testing.T) {
	router := setupTestRouter(t, matchFixtures())

	req := httptest.NewRequest("GET", "/api/v1/recipes?min_rating=high", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecipe(t *testing.T) {
	router := setupTestRouter(t, matchFixtures())

	req := httptest.NewRequest("GET", "/api/v1/recipes/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"1"`)
}

func TestGetRecipeNotFound(t *testing.T) {
	router := setupTestRouter(t, matchFixtures())

	req := httptest.NewRequest("GET", "/api/v1/recipes/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecipeRequiresAuth(t *testing.T) {
	router := setupTestRouter(t, nil)

	body, _ := json.Marshal(map[string]string{"title": "X", "ingredients": "y"})
	req := httptest.NewRequest("POST", "/api/v1/recipes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateRecipe(t *testing.T) {
	router := setupTestRouter(t, nil)
	token := issueToken(t, router)

	body, _ := json.Marshal(map[string]interface{}{
		"title":       "Pancakes",
		"ingredients": "flour, eggs, milk",
		"category":    "Breakfast",
	})
	req := httptest.NewRequest("POST", "/api/v1/recipes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Pancakes", created["title"])
	assert.NotEmpty(t, created["id"])
}

func TestCreateRecipeRejectsMissingFields(t *testing.T) {
	router := setupTestRouter(t, nil)
	token := issueToken(t, router)

	body, _ := json.Marshal(map[string]string{"title": "No Ingredients"})
	req := httptest.NewRequest("POST", "/api/v1/recipes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRecipe(t *testing.T) {
	router := setupTestRouter(t, matchFixtures())
	token := issueToken(t, router)

	body, _ := json.Marshal(map[string]string{"title": "Renamed"})
	req := httptest.NewRequest("PUT", "/api/v1/recipes/1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("GET", "/api/v1/recipes/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), "Renamed")
}

func TestDeleteRecipe(t *testing.T) {
	router := setupTestRouter(t, matchFixtures())
	token := issueToken(t, router)

	req := httptest.NewRequest("DELETE", "/api/v1/recipes/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("GET", "/api/v1/recipes/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIssueTokenWrongPassword(t *testing.T) {
	router := setupTestRouter(t, nil)

	body, _ := json.Marshal(map[string]string{"password": "wrong"})
	req := httptest.NewRequest("POST", "/api/v1/auth/token", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
