package repositories

import (
	"testing"

	"foodgram/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestNewRecipeFilter(t *testing.T) {
	tests := []struct {
		name      string
		params    models.RecipeListParams
		requester uint
		want      RecipeFilter
	}{
		{
			name: "no params",
			want: RecipeFilter{},
		},
		{
			name:      "favorite flag set",
			params:    models.RecipeListParams{IsInFavorite: intPtr(1)},
			requester: 7,
			want:      RecipeFilter{FavoritedBy: 7},
		},
		{
			name:      "favorite flag zero is a no-op",
			params:    models.RecipeListParams{IsInFavorite: intPtr(0), IsInShoppingCart: intPtr(1)},
			requester: 7,
			want:      RecipeFilter{InCartOf: 7},
		},
		{
			name:      "other values are a no-op",
			params:    models.RecipeListParams{IsInFavorite: intPtr(2), IsInShoppingCart: intPtr(-1)},
			requester: 7,
			want:      RecipeFilter{},
		},
		{
			name:   "anonymous requester ignores flags but keeps other filters",
			params: models.RecipeListParams{Author: 3, Tags: []string{"lunch"}, IsInFavorite: intPtr(1)},
			want:   RecipeFilter{AuthorID: 3, TagSlugs: []string{"lunch"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewRecipeFilter(tt.params, tt.requester))
		})
	}
}

func TestSplitSlugs(t *testing.T) {
	assert.Nil(t, SplitSlugs(nil))
	assert.Equal(t, []string{"a", "b", "c"}, SplitSlugs([]string{"a,b", "c", " b ", ""}))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
}
