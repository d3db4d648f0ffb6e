// Package routes assembles the Gin engine and the HTTP middleware stack.
package routes

import (
	"net/http"
	"time"

	"foodgram/authz"
	"foodgram/config"
	"foodgram/handlers"
	"foodgram/helper"
	"foodgram/middleware"
	"foodgram/repositories"
	"foodgram/services"
	"foodgram/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Authorizer is satisfied by *authz.Enforcer.
type Authorizer interface {
	Allowed(role, obj, act string) bool
}

type Dependencies struct {
	DB         *gorm.DB
	Store      storage.ImageStore
	Authorizer Authorizer
	// MediaDir is served at /media when images are kept on local disk.
	MediaDir string
}

// SetupRouter wires repositories, services and handlers onto a Gin engine.
func SetupRouter(deps Dependencies) *gin.Engine {
	h := helper.NewHTTPHelper()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(deps.DB)
	tagRepo := repositories.NewTagRepository(deps.DB)
	ingredientRepo := repositories.NewIngredientRepository(deps.DB)
	recipeRepo := repositories.NewRecipeRepository(deps.DB)
	favoriteRepo := repositories.NewFavoriteRepository(deps.DB)
	cartRepo := repositories.NewShoppingCartRepository(deps.DB)
	subscriptionRepo := repositories.NewSubscriptionRepository(deps.DB)

	// Initialize services
	projector := services.NewProjector(favoriteRepo, cartRepo, subscriptionRepo, deps.Store)
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, projector)
	tagService := services.NewTagService(tagRepo)
	ingredientService := services.NewIngredientService(ingredientRepo)
	recipeService := services.NewRecipeService(recipeRepo, tagService, deps.Store, projector, deps.Authorizer)
	favoriteService := services.NewFavoriteService(favoriteRepo, recipeRepo, projector)
	cartService := services.NewShoppingCartService(cartRepo, recipeRepo, projector)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, userRepo, recipeRepo, projector)
	shoppingListService := services.NewShoppingListService(recipeRepo)
	adminService := services.NewAdminService(recipeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userService, h)
	userHandler := handlers.NewUserHandler(userService, subscriptionService, h)
	tagHandler := handlers.NewTagHandler(tagService, h)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, h)
	recipeHandler := handlers.NewRecipeHandler(recipeService, shoppingListService, h)
	favoriteHandler := handlers.NewMembershipHandler(favoriteService, h)
	cartHandler := handlers.NewMembershipHandler(cartService, h)
	adminHandler := handlers.NewAdminHandler(adminService, h)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.AccessLog(),
		middleware.Metrics(),
		gin.Recovery(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if deps.MediaDir != "" {
		router.Static("/media", deps.MediaDir)
	}

	auth := middleware.AuthMiddleware()
	optional := middleware.OptionalAuth()
	can := func(obj, act string) gin.HandlerFunc {
		return middleware.RequirePermission(deps.Authorizer, obj, act)
	}

	v1 := router.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
		v1.GET("/profile", auth, authHandler.GetProfile)

		users := v1.Group("/users")
		{
			users.GET("", optional, userHandler.GetUsers)
			users.GET("/me", auth, userHandler.GetMe)
			users.POST("/set_password", auth, authHandler.SetPassword)
			users.GET("/subscriptions", auth, userHandler.GetSubscriptions)
			users.GET("/:id", optional, userHandler.GetUser)
			users.POST("/:id/subscribe", auth, can(authz.ObjSubscriptions, authz.ActWrite), userHandler.Subscribe)
			users.DELETE("/:id/subscribe", auth, can(authz.ObjSubscriptions, authz.ActWrite), userHandler.Unsubscribe)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", tagHandler.GetTags)
			tags.GET("/:id", tagHandler.GetTag)
			tags.POST("", auth, can(authz.ObjTags, authz.ActWrite), tagHandler.CreateTag)
		}

		ingredients := v1.Group("/ingredients")
		{
			ingredients.GET("", ingredientHandler.GetIngredients)
			ingredients.GET("/:id", ingredientHandler.GetIngredient)
			ingredients.POST("", auth, can(authz.ObjIngredients, authz.ActWrite), ingredientHandler.CreateIngredient)
		}

		recipes := v1.Group("/recipes")
		{
			recipes.GET("", optional, recipeHandler.GetRecipes)
			recipes.POST("", auth, can(authz.ObjRecipes, authz.ActCreate), recipeHandler.CreateRecipe)
			recipes.GET("/download_shopping_cart", auth, recipeHandler.DownloadShoppingCart)
			recipes.GET("/shopping_cart/download", auth, recipeHandler.DownloadShoppingCart)
			recipes.GET("/:id", optional, recipeHandler.GetRecipe)
			recipes.PUT("/:id", auth, recipeHandler.UpdateRecipe)
			recipes.PATCH("/:id", auth, recipeHandler.UpdateRecipe)
			recipes.DELETE("/:id", auth, recipeHandler.DeleteRecipe)

			memberships := can(authz.ObjMemberships, authz.ActWrite)
			recipes.POST("/:id/favorite", auth, memberships, favoriteHandler.Add)
			recipes.DELETE("/:id/favorite", auth, memberships, favoriteHandler.Remove)
			recipes.POST("/:id/shopping_cart", auth, memberships, cartHandler.Add)
			recipes.DELETE("/:id/shopping_cart", auth, memberships, cartHandler.Remove)
		}

		admin := v1.Group("/admin")
		admin.Use(auth, can(authz.ObjAdmin, authz.ActRead))
		{
			admin.GET("/recipes", adminHandler.GetRecipeStats)
		}
	}

	return router
}

// NewHandler wraps the engine with CORS and per-IP rate limiting.
func NewHandler(engine http.Handler, cfg config.ServerConfig) http.Handler {
	handler := engine
	if cfg.RateLimit > 0 {
		handler = httprate.Limit(
			cfg.RateLimit,
			time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(rateLimited),
		)(handler)
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders:   []string{"Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})(handler)
}

func rateLimited(w http.ResponseWriter, _ *http.Request) {
	body, _ := json.Marshal(map[string]interface{}{
		"code":         http.StatusTooManyRequests,
		"code_type":    "tooManyRequests",
		"code_message": "too many requests",
		"data":         map[string]interface{}{},
	})
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusTooManyRequests)
	w.Write(body)
}
