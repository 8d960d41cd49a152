package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Valid(t *testing.T) {
	tests := []struct {
		category Category
		want     bool
	}{
		{CategoryBreakfast, true},
		{CategoryDrinks, true},
		{"dinner", false},
		{"Brunch", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.Valid())
		})
	}
}

func TestStringList_Value(t *testing.T) {
	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringList{"1 cup dal", "salt"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["1 cup dal","salt"]`, v)
}

func TestStringList_Scan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringList{"a", "b"}, l)

	require.NoError(t, l.Scan(`["c"]`))
	assert.Equal(t, StringList{"c"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Empty(t, l)

	assert.Error(t, l.Scan(42))
	assert.Error(t, l.Scan("not json"))
}

func TestRecipe_MarshalJSONOwner(t *testing.T) {
	owner := &User{ID: uuid.New(), Name: "Asha", Email: "asha@example.com", PasswordHash: "hash"}
	r := Recipe{ID: uuid.New(), Title: "Dal Tadka", UserID: owner.ID, User: owner, Category: CategoryDinner}

	raw, err := json.Marshal(r)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Dal Tadka", out["title"])
	assert.Equal(t, owner.ID.String(), out["userId"])
	assert.Equal(t, map[string]any{"id": owner.ID.String(), "name": "Asha"}, out["owner"])
	assert.NotContains(t, string(raw), "asha@example.com")
	assert.NotContains(t, string(raw), "hash")

	r.User = nil
	raw, err = json.Marshal(r)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"owner"`)
}

func TestUser_PasswordHashNotSerialized(t *testing.T) {
	raw, err := json.Marshal(User{ID: uuid.New(), Name: "Ravi", Email: "ravi@example.com", PasswordHash: "secret-hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-hash")
}
