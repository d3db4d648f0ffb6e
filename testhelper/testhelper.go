// Package testhelper builds isolated databases and fixtures for tests.
package testhelper

import (
	"encoding/base64"
	"testing"
	"time"

	"foodgram/config"
	"foodgram/logging"
	"foodgram/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PNGBase64 is a 1x1 transparent PNG.
const PNGBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

const Password = "password123"

func init() {
	logging.Init(logging.Config{Level: "disabled"})
	config.SetJWT(config.JWTConfig{Secret: "test-secret-at-least-16", Expiration: time.Hour})
}

// PNG returns the decoded test image.
func PNG() []byte {
	data, _ := base64.StdEncoding.DecodeString(PNGBase64)
	return data
}

// PNGDataURI returns the test image as a data URI.
func PNGDataURI() string {
	return "data:image/png;base64," + PNGBase64
}

// NewDB opens a private in-memory SQLite database with the full schema.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := config.InitDB(config.DatabaseConfig{
		Driver: "sqlite",
		Path:   "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the in-memory database alive and serializes writes.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func CreateUser(t testing.TB, db *gorm.DB, username string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username:  username,
		Email:     username + "@example.com",
		FirstName: username,
		LastName:  "Tester",
		Password:  string(hash),
		Role:      role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateTag(t testing.TB, db *gorm.DB, name, slug string) *models.Tag {
	t.Helper()

	tag := &models.Tag{Name: name, Slug: slug}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func CreateIngredient(t testing.TB, db *gorm.DB, name, unit string) *models.Ingredient {
	t.Helper()

	ingredient := &models.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}

// Line is one ingredient amount of a seeded recipe.
type Line struct {
	Ingredient *models.Ingredient
	Amount     int
}

// CreateRecipe stores a recipe directly, bypassing the services.
func CreateRecipe(t testing.TB, db *gorm.DB, author *models.User, name string, tags []*models.Tag, lines ...Line) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		AuthorID:    author.ID,
		Name:        name,
		Text:        name + " text",
		CookingTime: 10,
		Image:       "recipes/" + uuid.NewString() + ".png",
	}
	require.NoError(t, db.Omit("Tags", "Ingredients", "Author").Create(recipe).Error)

	if len(tags) > 0 {
		linked := make([]models.Tag, len(tags))
		for i, tag := range tags {
			linked[i] = *tag
		}
		require.NoError(t, db.Model(recipe).Association("Tags").Append(linked))
	}
	for _, line := range lines {
		require.NoError(t, db.Omit("Ingredient").Create(&models.IngredientRecipe{
			RecipeID:     recipe.ID,
			IngredientID: line.Ingredient.ID,
			Amount:       line.Amount,
		}).Error)
	}
	return recipe
}

// Token signs a bearer token for user with the configured secret.
func Token(t testing.TB, user *models.User) string {
	t.Helper()

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      now.Add(time.Hour).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	})
	signed, err := token.SignedString(config.JWTSecret)
	require.NoError(t, err)
	return signed
}
