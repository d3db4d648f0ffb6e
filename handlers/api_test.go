package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodgram/authz"
	"foodgram/models"
	"foodgram/routes"
	"foodgram/storage"
	"foodgram/testhelper"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type envelope struct {
	Code        int             `json:"code"`
	CodeType    string          `json:"code_type"`
	CodeMessage json.RawMessage `json:"code_message"`
	Data        json.RawMessage `json:"data"`
}

type page[T any] struct {
	Count   int64 `json:"count"`
	Results []T   `json:"results"`
}

type APITestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine

	author      *models.User
	authorToken string
	reader      *models.User
	readerToken string
	admin       *models.User
	adminToken  string

	salt    *models.Ingredient
	sugar   *models.Ingredient
	tagA    *models.Tag
	tagB    *models.Tag
	tagC    *models.Tag
	mediaDir string
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.db = testhelper.NewDB(s.T())

	s.mediaDir = s.T().TempDir()
	store, err := storage.NewLocalStore(s.mediaDir, "/media")
	s.Require().NoError(err)
	enforcer, err := authz.NewEnforcer()
	s.Require().NoError(err)

	s.router = routes.SetupRouter(routes.Dependencies{
		DB:         s.db,
		Store:      store,
		Authorizer: enforcer,
		MediaDir:   s.mediaDir,
	})

	s.author = testhelper.CreateUser(s.T(), s.db, "author", models.RoleUser)
	s.authorToken = testhelper.Token(s.T(), s.author)
	s.reader = testhelper.CreateUser(s.T(), s.db, "reader", models.RoleUser)
	s.readerToken = testhelper.Token(s.T(), s.reader)
	s.admin = testhelper.CreateUser(s.T(), s.db, "boss", models.RoleAdmin)
	s.adminToken = testhelper.Token(s.T(), s.admin)

	s.salt = testhelper.CreateIngredient(s.T(), s.db, "Salt", "g")
	s.sugar = testhelper.CreateIngredient(s.T(), s.db, "Sugar", "g")
	s.tagA = testhelper.CreateTag(s.T(), s.db, "Breakfast", "breakfast")
	s.tagB = testhelper.CreateTag(s.T(), s.db, "Lunch", "lunch")
	s.tagC = testhelper.CreateTag(s.T(), s.db, "Dinner", "dinner")
}

func (s *APITestSuite) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APITestSuite) decode(w *httptest.ResponseRecorder, data interface{}) envelope {
	var env envelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil {
		s.Require().NoError(json.Unmarshal(env.Data, data))
	}
	return env
}

func (s *APITestSuite) recipePayload() map[string]interface{} {
	return map[string]interface{}{
		"ingredients":  []map[string]interface{}{{"id": s.salt.ID, "amount": 5}},
		"tags":         []uint{s.tagA.ID, s.tagB.ID},
		"image":        testhelper.PNGDataURI(),
		"name":         "Porridge",
		"text":         "Cook the oats",
		"cooking_time": 15,
	}
}

func (s *APITestSuite) createRecipe(token string, payload map[string]interface{}) models.RecipeResponse {
	w := s.request(http.MethodPost, "/api/v1/recipes", token, payload)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var recipe models.RecipeResponse
	s.decode(w, &recipe)
	return recipe
}

func (s *APITestSuite) listRecipes(query, token string) page[models.RecipeResponse] {
	w := s.request(http.MethodGet, "/api/v1/recipes"+query, token, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var p page[models.RecipeResponse]
	s.decode(w, &p)
	return p
}

func ids(recipes []models.RecipeResponse) []uint {
	out := make([]uint, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}

func (s *APITestSuite) TestAuthFlow() {
	register := map[string]string{
		"username":   "newcook",
		"email":      "newcook@example.com",
		"first_name": "New",
		"last_name":  "Cook",
		"password":   "password123",
	}
	w := s.request(http.MethodPost, "/api/v1/auth/register", "", register)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var auth models.AuthResponse
	s.decode(w, &auth)
	s.NotEmpty(auth.Token)
	s.Equal("newcook", auth.User.Username)

	w = s.request(http.MethodPost, "/api/v1/auth/register", "", register)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "newcook@example.com", "password": "wrong"})
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.request(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "newcook@example.com", "password": "password123"})
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &auth)

	w = s.request(http.MethodGet, "/api/v1/profile", auth.Token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var me models.UserResponse
	s.decode(w, &me)
	s.Equal("newcook@example.com", me.Email)

	w = s.request(http.MethodPost, "/api/v1/users/set_password", auth.Token,
		map[string]string{"current_password": "password123", "new_password": "changed456"})
	s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

	w = s.request(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "newcook@example.com", "password": "changed456"})
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestRegisterValidation() {
	w := s.request(http.MethodPost, "/api/v1/auth/register", "", map[string]string{"username": "x", "email": "not-an-email"})
	s.Require().Equal(http.StatusBadRequest, w.Code)

	var fields map[string][]string
	env := s.decode(w, nil)
	s.Require().NoError(json.Unmarshal(env.CodeMessage, &fields))
	s.Contains(fields, "email")
	s.Contains(fields, "password")
}

func (s *APITestSuite) TestCreateRecipeEndToEnd() {
	recipe := s.createRecipe(s.authorToken, s.recipePayload())

	s.Equal("Porridge", recipe.Name)
	s.Equal(15, recipe.CookingTime)
	s.False(recipe.IsInFavorite)
	s.False(recipe.IsInShoppingCart)
	s.Equal(s.author.ID, recipe.Author.ID)
	s.False(recipe.Author.IsSubscribed)
	s.Equal([]models.IngredientAmountResponse{{ID: s.salt.ID, Name: "Salt", MeasurementUnit: "g", Amount: 5}}, recipe.Ingredients)
	s.Equal([]models.Tag{*s.tagA, *s.tagB}, recipe.Tags)
	s.True(strings.HasPrefix(recipe.Image, "/media/recipes/"))

	// The stored image is served back.
	req := httptest.NewRequest(http.MethodGet, recipe.Image, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(testhelper.PNG(), w.Body.Bytes())

	w = s.request(http.MethodGet, fmt.Sprintf("/api/v1/recipes/%d", recipe.ID), "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var fetched models.RecipeResponse
	s.decode(w, &fetched)
	s.Equal(recipe, fetched)
}

func (s *APITestSuite) TestCreateRecipeMultipart() {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	payload := s.recipePayload()
	delete(payload, "image")
	data, err := json.Marshal(payload)
	s.Require().NoError(err)
	s.Require().NoError(mw.WriteField("data", string(data)))
	part, err := mw.CreateFormFile("image", "porridge.png")
	s.Require().NoError(err)
	_, err = part.Write(testhelper.PNG())
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.authorToken)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var recipe models.RecipeResponse
	s.decode(w, &recipe)
	s.True(strings.HasSuffix(recipe.Image, ".png"))
}

func (s *APITestSuite) TestCreateRecipeRejections() {
	tests := []struct {
		name   string
		mutate func(p map[string]interface{})
		token  string
		status int
	}{
		{"zero cooking time", func(p map[string]interface{}) { p["cooking_time"] = 0 }, s.authorToken, http.StatusBadRequest},
		{"negative cooking time", func(p map[string]interface{}) { p["cooking_time"] = -5 }, s.authorToken, http.StatusBadRequest},
		{"zero amount", func(p map[string]interface{}) {
			p["ingredients"] = []map[string]interface{}{{"id": s.salt.ID, "amount": 0}}
		}, s.authorToken, http.StatusBadRequest},
		{"no ingredients", func(p map[string]interface{}) { p["ingredients"] = []interface{}{} }, s.authorToken, http.StatusBadRequest},
		{"no tags", func(p map[string]interface{}) { delete(p, "tags") }, s.authorToken, http.StatusBadRequest},
		{"unknown tag", func(p map[string]interface{}) { p["tags"] = []uint{999} }, s.authorToken, http.StatusBadRequest},
		{"missing image", func(p map[string]interface{}) { delete(p, "image") }, s.authorToken, http.StatusBadRequest},
		{"not an image", func(p map[string]interface{}) { p["image"] = "data:image/png;base64,aGVsbG8=" }, s.authorToken, http.StatusBadRequest},
		{"unknown ingredient", func(p map[string]interface{}) {
			p["ingredients"] = []map[string]interface{}{{"id": 999, "amount": 1}}
		}, s.authorToken, http.StatusNotFound},
		{"oversized body", func(p map[string]interface{}) {
			p["image"] = "data:image/png;base64," + strings.Repeat("A", 9<<20)
		}, s.authorToken, http.StatusBadRequest},
		{"anonymous", func(p map[string]interface{}) {}, "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			payload := s.recipePayload()
			tt.mutate(payload)
			w := s.request(http.MethodPost, "/api/v1/recipes", tt.token, payload)
			s.Equal(tt.status, w.Code, w.Body.String())
		})
	}

	var count int64
	s.db.Model(&models.Recipe{}).Count(&count)
	s.Zero(count)
}

func (s *APITestSuite) TestUpdateRecipeReplacesTags() {
	recipe := s.createRecipe(s.authorToken, s.recipePayload())
	path := fmt.Sprintf("/api/v1/recipes/%d", recipe.ID)

	update := map[string]interface{}{
		"ingredients": []map[string]interface{}{{"id": s.sugar.ID, "amount": 2}},
		"tags":        []uint{s.tagC.ID},
		"name":        "Sweet porridge",
	}

	w := s.request(http.MethodPatch, path, s.readerToken, update)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.request(http.MethodPatch, path, "", update)
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.request(http.MethodPatch, path, s.authorToken, update)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var updated models.RecipeResponse
	s.decode(w, &updated)
	s.Equal("Sweet porridge", updated.Name)
	s.Equal("Cook the oats", updated.Text)
	s.Equal([]models.Tag{*s.tagC}, updated.Tags)
	s.Equal([]models.IngredientAmountResponse{{ID: s.sugar.ID, Name: "Sugar", MeasurementUnit: "g", Amount: 2}}, updated.Ingredients)
	s.Equal(recipe.Image, updated.Image)

	update["ingredients"] = []map[string]interface{}{{"id": 999, "amount": 2}}
	update["tags"] = []uint{s.tagA.ID}
	w = s.request(http.MethodPut, path, s.authorToken, update)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.request(http.MethodGet, path, "", nil)
	s.decode(w, &updated)
	s.Equal([]models.Tag{*s.tagC}, updated.Tags)
}

func (s *APITestSuite) TestDeleteRecipe() {
	recipe := s.createRecipe(s.authorToken, s.recipePayload())
	path := fmt.Sprintf("/api/v1/recipes/%d", recipe.ID)

	s.Equal(http.StatusForbidden, s.request(http.MethodDelete, path, s.readerToken, nil).Code)
	s.Equal(http.StatusNoContent, s.request(http.MethodDelete, path, s.adminToken, nil).Code)
	s.Equal(http.StatusNotFound, s.request(http.MethodDelete, path, s.authorToken, nil).Code)
	s.Equal(http.StatusNotFound, s.request(http.MethodGet, path, "", nil).Code)
	s.Equal(http.StatusBadRequest, s.request(http.MethodGet, "/api/v1/recipes/abc", "", nil).Code)
}

func (s *APITestSuite) TestFavoriteAndCartToggles() {
	recipe := s.createRecipe(s.authorToken, s.recipePayload())

	for _, action := range []string{"favorite", "shopping_cart"} {
		s.Run(action, func() {
			path := fmt.Sprintf("/api/v1/recipes/%d/%s", recipe.ID, action)

			s.Equal(http.StatusBadRequest, s.request(http.MethodDelete, path, s.readerToken, nil).Code)

			w := s.request(http.MethodPost, path, s.readerToken, nil)
			s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
			var mini models.RecipeMiniResponse
			s.decode(w, &mini)
			s.Equal(models.RecipeMiniResponse{ID: recipe.ID, Name: "Porridge", Image: recipe.Image, CookingTime: 15}, mini)

			s.Equal(http.StatusBadRequest, s.request(http.MethodPost, path, s.readerToken, nil).Code)
			s.Equal(http.StatusNoContent, s.request(http.MethodDelete, path, s.readerToken, nil).Code)
			s.Equal(http.StatusBadRequest, s.request(http.MethodDelete, path, s.readerToken, nil).Code)

			s.Equal(http.StatusUnauthorized, s.request(http.MethodPost, path, "", nil).Code)
			s.Equal(http.StatusNotFound, s.request(http.MethodPost, fmt.Sprintf("/api/v1/recipes/999/%s", action), s.readerToken, nil).Code)
		})
	}
}

func (s *APITestSuite) TestListFilters() {
	breakfast := testhelper.CreateRecipe(s.T(), s.db, s.author, "Eggs", []*models.Tag{s.tagA})
	lunch := testhelper.CreateRecipe(s.T(), s.db, s.author, "Salad", []*models.Tag{s.tagB})
	both := testhelper.CreateRecipe(s.T(), s.db, s.reader, "Brunch", []*models.Tag{s.tagA, s.tagB})
	dinner := testhelper.CreateRecipe(s.T(), s.db, s.reader, "Steak", []*models.Tag{s.tagC})

	s.Equal(http.StatusCreated, s.request(http.MethodPost, fmt.Sprintf("/api/v1/recipes/%d/favorite", lunch.ID), s.readerToken, nil).Code)
	s.Equal(http.StatusCreated, s.request(http.MethodPost, fmt.Sprintf("/api/v1/recipes/%d/shopping_cart", dinner.ID), s.readerToken, nil).Code)

	all := []uint{dinner.ID, both.ID, lunch.ID, breakfast.ID}

	p := s.listRecipes("", "")
	s.EqualValues(4, p.Count)
	s.Equal(all, ids(p.Results))

	p = s.listRecipes("?tags=breakfast,lunch", "")
	s.Equal([]uint{both.ID, lunch.ID, breakfast.ID}, ids(p.Results))
	p = s.listRecipes("?tags=breakfast&tags=lunch", "")
	s.Equal([]uint{both.ID, lunch.ID, breakfast.ID}, ids(p.Results))

	p = s.listRecipes("?is_in_favorite=1", s.readerToken)
	s.Equal([]uint{lunch.ID}, ids(p.Results))
	s.True(p.Results[0].IsInFavorite)

	p = s.listRecipes("?is_in_favorite=0", s.readerToken)
	s.Equal(all, ids(p.Results))

	p = s.listRecipes("?is_in_favorite=1", "")
	s.Equal(all, ids(p.Results))

	p = s.listRecipes("?tags=lunch&is_in_favorite=0", s.readerToken)
	s.Equal([]uint{both.ID, lunch.ID}, ids(p.Results))

	w := s.request(http.MethodGet, "/api/v1/recipes?tags=lunch,supper", "", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	p = s.listRecipes("?is_in_shopping_cart=1&is_in_favorite=0", s.readerToken)
	s.Equal([]uint{dinner.ID}, ids(p.Results))
	s.True(p.Results[0].IsInShoppingCart)

	p = s.listRecipes(fmt.Sprintf("?author=%d&tags=lunch", s.reader.ID), "")
	s.Equal([]uint{both.ID}, ids(p.Results))

	p = s.listRecipes("?limit=3&page=2", "")
	s.EqualValues(4, p.Count)
	s.Equal([]uint{breakfast.ID}, ids(p.Results))

	w = s.request(http.MethodGet, "/api/v1/recipes?limit=1000", "", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *APITestSuite) TestDownloadShoppingCart() {
	r1 := testhelper.CreateRecipe(s.T(), s.db, s.author, "One", nil,
		testhelper.Line{Ingredient: s.salt, Amount: 5}, testhelper.Line{Ingredient: s.sugar, Amount: 3})
	r2 := testhelper.CreateRecipe(s.T(), s.db, s.author, "Two", nil,
		testhelper.Line{Ingredient: s.salt, Amount: 10})

	for _, r := range []*models.Recipe{r1, r2} {
		w := s.request(http.MethodPost, fmt.Sprintf("/api/v1/recipes/%d/shopping_cart", r.ID), s.readerToken, nil)
		s.Require().Equal(http.StatusCreated, w.Code)
	}

	w := s.request(http.MethodGet, "/api/v1/recipes/download_shopping_cart", s.readerToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("attachment; filename=shopping_list.txt", w.Header().Get("Content-Disposition"))
	s.True(strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	s.Contains(lines, "Salt (g): 15")
	s.Contains(lines, "Sugar (g): 3")
	s.Equal(1, strings.Count(w.Body.String(), "Salt"))

	alias := s.request(http.MethodGet, "/api/v1/recipes/shopping_cart/download", s.readerToken, nil)
	s.Equal(http.StatusOK, alias.Code)
	s.Equal(w.Body.String(), alias.Body.String())

	s.Equal(http.StatusUnauthorized, s.request(http.MethodGet, "/api/v1/recipes/download_shopping_cart", "", nil).Code)
}

func (s *APITestSuite) TestSubscriptions() {
	testhelper.CreateRecipe(s.T(), s.db, s.author, "Pie", nil)
	subscribe := fmt.Sprintf("/api/v1/users/%d/subscribe", s.author.ID)

	w := s.request(http.MethodPost, fmt.Sprintf("/api/v1/users/%d/subscribe", s.reader.ID), s.readerToken, nil)
	s.Equal(http.StatusBadRequest, w.Code)

	s.Equal(http.StatusBadRequest, s.request(http.MethodDelete, subscribe, s.readerToken, nil).Code)

	w = s.request(http.MethodPost, subscribe, s.readerToken, nil)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var sub models.SubscriptionResponse
	s.decode(w, &sub)
	s.Equal(s.author.ID, sub.ID)
	s.True(sub.IsSubscribed)
	s.EqualValues(1, sub.RecipesCount)

	s.Equal(http.StatusBadRequest, s.request(http.MethodPost, subscribe, s.readerToken, nil).Code)
	s.Equal(http.StatusNotFound, s.request(http.MethodPost, "/api/v1/users/999/subscribe", s.readerToken, nil).Code)

	w = s.request(http.MethodGet, "/api/v1/users/subscriptions", s.readerToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var subs page[models.SubscriptionResponse]
	s.decode(w, &subs)
	s.EqualValues(1, subs.Count)
	s.Equal("author", subs.Results[0].Username)

	w = s.request(http.MethodGet, fmt.Sprintf("/api/v1/users/%d", s.author.ID), s.readerToken, nil)
	var user models.UserResponse
	s.decode(w, &user)
	s.True(user.IsSubscribed)

	w = s.request(http.MethodGet, fmt.Sprintf("/api/v1/users/%d", s.author.ID), "", nil)
	s.decode(w, &user)
	s.False(user.IsSubscribed)

	s.Equal(http.StatusNoContent, s.request(http.MethodDelete, subscribe, s.readerToken, nil).Code)
	s.Equal(http.StatusBadRequest, s.request(http.MethodDelete, subscribe, s.readerToken, nil).Code)
}

func (s *APITestSuite) TestUsers() {
	w := s.request(http.MethodGet, "/api/v1/users?limit=2", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var users page[models.UserResponse]
	s.decode(w, &users)
	s.EqualValues(3, users.Count)
	s.Len(users.Results, 2)

	w = s.request(http.MethodGet, "/api/v1/users/me", s.readerToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var me models.UserResponse
	s.decode(w, &me)
	s.Equal("reader", me.Username)

	s.Equal(http.StatusUnauthorized, s.request(http.MethodGet, "/api/v1/users/me", "", nil).Code)
	s.Equal(http.StatusNotFound, s.request(http.MethodGet, "/api/v1/users/999", "", nil).Code)
}

func (s *APITestSuite) TestTagsAndIngredients() {
	w := s.request(http.MethodGet, "/api/v1/tags", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var tags []models.Tag
	s.decode(w, &tags)
	s.Len(tags, 3)

	newTag := map[string]string{"name": "Snack", "slug": "snack"}
	s.Equal(http.StatusUnauthorized, s.request(http.MethodPost, "/api/v1/tags", "", newTag).Code)
	s.Equal(http.StatusForbidden, s.request(http.MethodPost, "/api/v1/tags", s.readerToken, newTag).Code)
	s.Equal(http.StatusCreated, s.request(http.MethodPost, "/api/v1/tags", s.adminToken, newTag).Code)
	s.Equal(http.StatusBadRequest, s.request(http.MethodPost, "/api/v1/tags", s.adminToken, newTag).Code)
	s.Equal(http.StatusBadRequest, s.request(http.MethodPost, "/api/v1/tags", s.adminToken,
		map[string]string{"name": "Bad", "slug": "bad slug"}).Code)

	w = s.request(http.MethodGet, fmt.Sprintf("/api/v1/tags/%d", s.tagB.ID), "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var tag models.Tag
	s.decode(w, &tag)
	s.Equal("lunch", tag.Slug)
	s.Equal(http.StatusNotFound, s.request(http.MethodGet, "/api/v1/tags/999", "", nil).Code)

	s.Equal(http.StatusCreated, s.request(http.MethodPost, "/api/v1/ingredients", s.adminToken,
		map[string]string{"name": "Salmon", "measurement_unit": "g"}).Code)

	w = s.request(http.MethodGet, "/api/v1/ingredients?search=SA", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var ingredients []models.Ingredient
	s.decode(w, &ingredients)
	s.Require().Len(ingredients, 2)
	s.Equal("Salmon", ingredients[0].Name)
	s.Equal("Salt", ingredients[1].Name)

	w = s.request(http.MethodGet, "/api/v1/ingredients?search=zzz", "", nil)
	s.decode(w, &ingredients)
	s.Empty(ingredients)

	w = s.request(http.MethodGet, fmt.Sprintf("/api/v1/ingredients/%d", s.sugar.ID), "", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestAdminRecipeStats() {
	recipe := s.createRecipe(s.authorToken, s.recipePayload())
	s.Equal(http.StatusCreated, s.request(http.MethodPost, fmt.Sprintf("/api/v1/recipes/%d/favorite", recipe.ID), s.readerToken, nil).Code)

	s.Equal(http.StatusForbidden, s.request(http.MethodGet, "/api/v1/admin/recipes", s.readerToken, nil).Code)

	w := s.request(http.MethodGet, "/api/v1/admin/recipes?search=porr&tags=lunch", s.adminToken, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var stats page[models.RecipeStat]
	s.decode(w, &stats)
	s.Require().Len(stats.Results, 1)
	s.Equal(models.RecipeStat{ID: recipe.ID, Name: "Porridge", AuthorEmail: "author@example.com", FavoritesCount: 1}, stats.Results[0])
}

func (s *APITestSuite) TestHealthAndMetrics() {
	s.Equal(http.StatusOK, s.request(http.MethodGet, "/health", "", nil).Code)
	s.request(http.MethodGet, "/api/v1/tags", "", nil)

	w := s.request(http.MethodGet, "/metrics", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "foodgram_http_requests_total")
}
