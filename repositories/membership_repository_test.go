package repositories_test

import (
	"testing"

	"foodgram/models"
	"foodgram/repositories"
	"foodgram/testhelper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipRepository(t *testing.T) {
	db := testhelper.NewDB(t)
	user := testhelper.CreateUser(t, db, "user", models.RoleUser)
	recipe := testhelper.CreateRecipe(t, db, user, "Cake", nil)
	other := testhelper.CreateRecipe(t, db, user, "Pie", nil)

	for _, repo := range []repositories.MembershipRepository{
		repositories.NewFavoriteRepository(db),
		repositories.NewShoppingCartRepository(db),
	} {
		t.Run(string(repo.Kind()), func(t *testing.T) {
			exists, err := repo.Exists(user.ID, recipe.ID)
			require.NoError(t, err)
			assert.False(t, exists)

			require.NoError(t, repo.Add(user.ID, recipe.ID))
			err = repo.Add(user.ID, recipe.ID)
			assert.IsType(t, models.ErrorConflict{}, err)

			exists, err = repo.Exists(user.ID, recipe.ID)
			require.NoError(t, err)
			assert.True(t, exists)

			held, err := repo.RecipeIDs(user.ID, []uint{recipe.ID, other.ID})
			require.NoError(t, err)
			assert.Equal(t, map[uint]bool{recipe.ID: true}, held)

			held, err = repo.RecipeIDs(0, []uint{recipe.ID})
			require.NoError(t, err)
			assert.Empty(t, held)

			require.NoError(t, repo.Remove(user.ID, recipe.ID))
			assert.IsType(t, models.ErrorNotFound{}, repo.Remove(user.ID, recipe.ID))
		})
	}
}

func TestSubscriptionRepository(t *testing.T) {
	db := testhelper.NewDB(t)
	repo := repositories.NewSubscriptionRepository(db)
	reader := testhelper.CreateUser(t, db, "reader", models.RoleUser)
	chef := testhelper.CreateUser(t, db, "chef", models.RoleUser)
	baker := testhelper.CreateUser(t, db, "baker", models.RoleUser)

	require.NoError(t, repo.Add(reader.ID, chef.ID))
	require.NoError(t, repo.Add(reader.ID, baker.ID))
	assert.IsType(t, models.ErrorConflict{}, repo.Add(reader.ID, chef.ID))

	// Storage rejects self subscription even without the service check.
	assert.Error(t, repo.Add(reader.ID, reader.ID))

	followed, err := repo.AuthorIDs(reader.ID, []uint{chef.ID, baker.ID, reader.ID})
	require.NoError(t, err)
	assert.Equal(t, map[uint]bool{chef.ID: true, baker.ID: true}, followed)

	authors, total, err := repo.GetAuthors(reader.ID, models.PageParams{Page: 1, Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, authors, 1)
	assert.Equal(t, chef.ID, authors[0].ID)

	require.NoError(t, repo.Remove(reader.ID, chef.ID))
	assert.IsType(t, models.ErrorNotFound{}, repo.Remove(reader.ID, chef.ID))

	exists, err := repo.Exists(reader.ID, chef.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
