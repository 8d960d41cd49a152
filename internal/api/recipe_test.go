package api_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecipe(t *testing.T) {
	a := setupTestAPI(t)
	asha := a.register("Asha", "asha@example.com", "pw12345")

	recipe := a.createRecipe(asha.Token, nil)

	assert.NotEmpty(t, recipe["id"])
	assert.Equal(t, asha.ID, recipe["userId"])
	assert.Equal(t, "Dinner", recipe["category"])
	assert.EqualValues(t, 10, recipe["prepTime"])
	assert.EqualValues(t, 20, recipe["cookTime"])
	assert.EqualValues(t, 4, recipe["servings"])
	assert.Equal(t, map[string]any{"id": asha.ID, "name": "Asha"}, recipe["owner"])
}

func TestCreateRecipe_Invalid(t *testing.T) {
	a := setupTestAPI(t)
	asha := a.register("Asha", "asha@example.com", "pw12345")

	base := func() map[string]any {
		return map[string]any{
			"title": "Soup", "description": "Warm", "ingredients": []string{"water"},
			"instructions": []string{"boil"}, "category": "Lunch", "prepTime": 0, "cookTime": 5, "servings": 1,
		}
	}
	tests := []struct {
		name   string
		mutate func(map[string]any)
		want   string
	}{
		{"missing title", func(m map[string]any) { delete(m, "title") }, "title is required"},
		{"missing servings", func(m map[string]any) { delete(m, "servings") }, "servings is required"},
		{"empty ingredients", func(m map[string]any) { m["ingredients"] = []string{} }, "ingredients must have at least 1 entries"},
		{"bad category", func(m map[string]any) { m["category"] = "Brunch" }, "category must be one of Breakfast, Lunch, Dinner, Dessert, Snacks, Drinks"},
		{"negative cook time", func(m map[string]any) { m["cookTime"] = -1 }, "cookTime must not be negative"},
		{"zero servings", func(m map[string]any) { m["servings"] = 0 }, "servings must be positive"},
		{"wrong type", func(m map[string]any) { m["servings"] = "four" }, "servings has the wrong type"},
		{"owner in body", func(m map[string]any) { m["userId"] = uuid.NewString() }, `unknown field "userId"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := base()
			tt.mutate(body)
			w := a.do(http.MethodPost, "/api/recipes", asha.Token, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.want, decodeObject(t, w)["error"])
		})
	}
}

func TestGetRecipe(t *testing.T) {
	a := setupTestAPI(t)
	asha := a.register("Asha", "asha@example.com", "pw12345")
	ravi := a.register("Ravi", "ravi@example.com", "pw12345")
	recipe := a.createRecipe(asha.Token, nil)

	w := a.do(http.MethodGet, "/api/recipes/"+recipe["id"].(string), ravi.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Asha", decodeObject(t, w)["owner"].(map[string]any)["name"])

	w = a.do(http.MethodGet, "/api/recipes/"+uuid.NewString(), ravi.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, "/api/recipes/not-an-id", ravi.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"recipe not found"}`, w.Body.String())
}

func TestOwnershipScenario(t *testing.T) {
	a := setupTestAPI(t)
	asha := a.register("Asha", "asha@example.com", "pw12345")
	recipe := a.createRecipe(asha.Token, nil)
	id := recipe["id"].(string)
	require.Equal(t, asha.ID, recipe["userId"])

	ravi := a.register("Ravi", "ravi@example.com", "pw12345")

	w := a.do(http.MethodPut, "/api/recipes/"+id, ravi.Token, map[string]any{"title": "Stolen"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodDelete, "/api/recipes/"+id, ravi.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodPut, "/api/recipes/"+id, asha.Token, map[string]any{"userId": ravi.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPut, "/api/recipes/"+id, asha.Token, map[string]any{"title": "Dal Fry", "servings": 6})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeObject(t, w)
	assert.Equal(t, "Dal Fry", updated["title"])
	assert.EqualValues(t, 6, updated["servings"])
	assert.Equal(t, "Yellow lentils tempered with cumin", updated["description"])
	assert.Equal(t, asha.ID, updated["userId"])

	w = a.do(http.MethodPut, "/api/recipes/"+uuid.NewString(), asha.Token, map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodDelete, "/api/recipes/"+id, asha.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Recipe deleted successfully"}`, w.Body.String())

	w = a.do(http.MethodGet, "/api/recipes/"+id, asha.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchScenario(t *testing.T) {
	a := setupTestAPI(t)
	asha := a.register("Asha", "asha@example.com", "pw12345")

	a.createRecipe(asha.Token, map[string]any{"title": "Chicken Curry", "description": "Rich gravy", "category": "Dinner"})
	a.createRecipe(asha.Token, map[string]any{"title": "Butter Paneer", "description": "Paneer, not chicken", "category": "Dinner"})
	a.createRecipe(asha.Token, map[string]any{"title": "Chicken Wrap", "description": "Quick lunch", "category": "Lunch"})
	a.createRecipe(asha.Token, map[string]any{"title": "Aloo Gobi", "description": "Potato and cauliflower", "category": "Dinner"})

	w := a.do(http.MethodGet, "/api/recipes?search=chicken&category=Dinner", asha.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.ElementsMatch(t, []string{"Chicken Curry", "Butter Paneer"}, titlesOf(decodeList(t, w)))

	w = a.do(http.MethodGet, "/api/recipes", asha.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 4)

	w = a.do(http.MethodGet, "/api/recipes?search=sushi", asha.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = a.do(http.MethodGet, "/api/recipes?category=Brunch", asha.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecipesRequireToken(t *testing.T) {
	a := setupTestAPI(t)

	w := a.do(http.MethodGet, "/api/recipes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodPost, "/api/recipes", "not-a-token", map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
