package repositories

import (
	"strings"

	"foodgram/models"

	"gorm.io/gorm"
)

// RecipeFilter is a conjunction of optional predicates over recipes. Zero
// fields apply no restriction.
type RecipeFilter struct {
	AuthorID uint
	// TagSlugs matches recipes carrying any of the slugs.
	TagSlugs    []string
	FavoritedBy uint
	InCartOf    uint
}

// NewRecipeFilter reads list parameters for the given requester (0 when
// anonymous). The favorite and cart flags restrict only when they equal 1 and
// the requester is known; any other value leaves that field unfiltered.
func NewRecipeFilter(params models.RecipeListParams, requesterID uint) RecipeFilter {
	f := RecipeFilter{
		AuthorID: params.Author,
		TagSlugs: SplitSlugs(params.Tags),
	}
	if requesterID != 0 && params.IsInFavorite != nil && *params.IsInFavorite == 1 {
		f.FavoritedBy = requesterID
	}
	if requesterID != 0 && params.IsInShoppingCart != nil && *params.IsInShoppingCart == 1 {
		f.InCartOf = requesterID
	}
	return f
}

// SplitSlugs accepts both repeated and comma separated values.
func SplitSlugs(values []string) []string {
	var slugs []string
	seen := make(map[string]bool)
	for _, v := range values {
		for _, s := range strings.Split(v, ",") {
			s = strings.TrimSpace(s)
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			slugs = append(slugs, s)
		}
	}
	return slugs
}

// Apply adds the filter to a query rooted at the recipes table.
func (f RecipeFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.AuthorID != 0 {
		db = db.Where("recipes.author_id = ?", f.AuthorID)
	}
	if len(f.TagSlugs) > 0 {
		db = db.Where(`recipes.id IN (SELECT recipe_tags.recipe_id FROM recipe_tags
			JOIN tags ON tags.id = recipe_tags.tag_id WHERE tags.slug IN ?)`, f.TagSlugs)
	}
	if f.FavoritedBy != 0 {
		db = db.Where("recipes.id IN (SELECT recipe_id FROM favorites WHERE user_id = ?)", f.FavoritedBy)
	}
	if f.InCartOf != 0 {
		db = db.Where("recipes.id IN (SELECT recipe_id FROM shopping_carts WHERE user_id = ?)", f.InCartOf)
	}
	return db
}
