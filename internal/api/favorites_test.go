package api_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFavoriteScenario(t *testing.T) {
	a := setupTestAPI(t)
	asha := a.register("Asha", "asha@example.com", "pw12345")
	id := a.createRecipe(asha.Token, nil)["id"].(string)

	w := a.do(http.MethodPost, "/api/recipes/"+id+"/favorite", asha.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Favorite toggled","isFavorite":true}`, w.Body.String())

	w = a.do(http.MethodGet, "/api/favorites", asha.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Dal Tadka"}, titlesOf(decodeList(t, w)))

	w = a.do(http.MethodPost, "/api/recipes/"+id+"/favorite", asha.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Favorite toggled","isFavorite":false}`, w.Body.String())

	w = a.do(http.MethodGet, "/api/favorites", asha.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDeletedFavoriteScenario(t *testing.T) {
	a := setupTestAPI(t)
	asha := a.register("Asha", "asha@example.com", "pw12345")
	ravi := a.register("Ravi", "ravi@example.com", "pw12345")

	gone := a.createRecipe(asha.Token, map[string]any{"title": "Kheer", "category": "Dessert"})["id"].(string)
	kept := a.createRecipe(asha.Token, map[string]any{"title": "Jalebi", "category": "Dessert"})["id"].(string)

	for _, id := range []string{gone, kept} {
		w := a.do(http.MethodPost, "/api/recipes/"+id+"/favorite", ravi.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := a.do(http.MethodDelete, "/api/recipes/"+gone, asha.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, path := range []string{"/api/favorites", "/api/recipes/favorites"} {
		w = a.do(http.MethodGet, path, ravi.Token, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, []string{"Jalebi"}, titlesOf(decodeList(t, w)), path)
	}
}

func TestStrictFavoriteRoutes(t *testing.T) {
	a := setupTestAPI(t)
	asha := a.register("Asha", "asha@example.com", "pw12345")
	id := a.createRecipe(asha.Token, nil)["id"].(string)

	w := a.do(http.MethodPost, "/api/favorites/"+id, asha.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Added to favorites"}`, w.Body.String())

	w = a.do(http.MethodPost, "/api/favorites/"+id, asha.Token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"recipe already in favorites"}`, w.Body.String())

	w = a.do(http.MethodPost, "/api/favorites/"+uuid.NewString(), asha.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	for i := 0; i < 2; i++ {
		w = a.do(http.MethodDelete, "/api/favorites/"+id, asha.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Removed from favorites"}`, w.Body.String())
	}

	w = a.do(http.MethodDelete, "/api/favorites/not-an-id", asha.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestToggleFavorite_UnknownRecipe(t *testing.T) {
	a := setupTestAPI(t)
	asha := a.register("Asha", "asha@example.com", "pw12345")

	w := a.do(http.MethodPost, "/api/recipes/"+uuid.NewString()+"/favorite", asha.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Favorite toggled","isFavorite":true}`, w.Body.String())

	w = a.do(http.MethodGet, "/api/favorites", asha.Token, nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}
