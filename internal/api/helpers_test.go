package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/heritage-recipes/backend/internal/api"
	"github.com/pageza/heritage-recipes/backend/internal/auth"
	"github.com/pageza/heritage-recipes/backend/internal/logger"
	"github.com/pageza/heritage-recipes/backend/internal/middleware"
	"github.com/pageza/heritage-recipes/backend/internal/mocks"
	"github.com/pageza/heritage-recipes/backend/internal/repository"
	"github.com/pageza/heritage-recipes/backend/internal/service"
	"github.com/pageza/heritage-recipes/backend/internal/testhelpers"
)

type testDB struct{ db *gorm.DB }

func (t testDB) HealthCheck(ctx context.Context) error {
	sqlDB, err := t.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type testAPI struct {
	t      *testing.T
	router *gin.Engine
	db     *gorm.DB
	images *mocks.MockImageStore
}

func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	users := repository.NewUserRepository(db)
	recipes := repository.NewRecipeRepository(db)
	images := &mocks.MockImageStore{}

	authService := service.NewAuthService(users, auth.NewBcryptHasher(bcrypt.MinCost), auth.NewJWTManager("test-secret", time.Hour))
	recipeService := service.NewRecipeService(recipes, users, images)

	log := logger.Discard()
	router := gin.New()
	router.Use(middleware.RequestID(log), middleware.Recovery(log), middleware.ErrorHandler(log))
	api.RegisterRoutes(router, api.Dependencies{
		AuthService:   authService,
		RecipeService: recipeService,
		DB:            testDB{db: db},
		ImageUploads:  true,
	})

	return &testAPI{t: t, router: router, db: db, images: images}
}

// do sends body (marshalled unless it is already a string) and returns the recorder.
func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

type registered struct {
	ID    string
	Token string
}

func (a *testAPI) register(name, email, password string) registered {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return registered{ID: resp.User.ID, Token: resp.Token}
}

func (a *testAPI) createRecipe(token string, fields map[string]any) map[string]any {
	a.t.Helper()
	body := map[string]any{
		"title":        "Dal Tadka",
		"description":  "Yellow lentils tempered with cumin",
		"ingredients":  []string{"toor dal", "ghee", "cumin"},
		"instructions": []string{"Cook dal", "Temper spices", "Combine"},
		"category":     "Dinner",
		"prepTime":     10,
		"cookTime":     20,
		"servings":     4,
	}
	for k, v := range fields {
		body[k] = v
	}
	w := a.do(http.MethodPost, "/api/recipes", token, body)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decodeObject(a.t, w)
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func titlesOf(recipes []map[string]any) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r["title"].(string))
	}
	return out
}
