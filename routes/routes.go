package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	if origin := config.FrontendOrigin(); origin != "" {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = []string{origin}
		cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
		r.Use(cors.New(cfg))
	}

	r.GET("/health", controllers.Health)
	r.GET("/recipe-proxy", controllers.RecipeProxy)

	api := r.Group("/api")

	rps, burst := config.RateLimit()
	auth := api.Group("/auth")
	auth.Use(middlewares.RateLimit(rps, burst))
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		users := protected.Group("/users")
		{
			users.GET("/me", controllers.GetProfile)
			users.PUT("/me", controllers.UpdateProfile)
			users.PUT("/me/password", controllers.ChangePassword)
		}

		stores := protected.Group("/stores")
		{
			stores.GET("", controllers.ListStores)
			stores.POST("", controllers.CreateStore)
			stores.PUT("/:id", controllers.UpdateStore)
			stores.DELETE("/:id", controllers.DeleteStore)
		}

		recipes := protected.Group("/recipes")
		{
			recipes.GET("", controllers.ListRecipes)
			recipes.POST("", controllers.CreateRecipe)
			recipes.GET("/:id", controllers.GetRecipe)
			recipes.PUT("/:id", controllers.UpdateRecipe)
			recipes.DELETE("/:id", controllers.DeleteRecipe)
			recipes.GET("/:id/scale", controllers.ScaleRecipe)
			recipes.POST("/:id/validate", controllers.ValidateRecipe)
			recipes.POST("/:id/prepare", controllers.PrepareRecipe)
			recipes.GET("/:id/reviews", controllers.ListReviews)
			recipes.POST("/:id/reviews", controllers.AddReview)
			recipes.DELETE("/:id/reviews/:reviewId", controllers.DeleteReview)
		}

		inventory := protected.Group("/inventory")
		{
			inventory.GET("", controllers.ListInventory)
			inventory.POST("", controllers.CreateInventoryItem)
			inventory.GET("/low-stock", controllers.ListLowStock)
			inventory.GET("/expiring", controllers.ListExpiring)
			inventory.POST("/batch-delete", controllers.BatchDeleteInventory)
			inventory.POST("/empty", controllers.EmptyInventory)
			inventory.GET("/:id", controllers.GetInventoryItem)
			inventory.PUT("/:id", controllers.UpdateInventoryItem)
			inventory.DELETE("/:id", controllers.DeleteInventoryItem)
		}

		shopping := protected.Group("/shopping")
		{
			shopping.GET("/lists", controllers.ListShoppingLists)
			shopping.POST("/lists", controllers.CreateShoppingList)
			shopping.POST("/lists/generate", controllers.GenerateShoppingList)
			shopping.GET("/lists/:id", controllers.GetShoppingList)
			shopping.PUT("/lists/:id", controllers.RenameShoppingList)
			shopping.DELETE("/lists/:id", controllers.DeleteShoppingList)
			shopping.POST("/lists/:id/items", controllers.AddShoppingItem)
			shopping.PUT("/lists/:id/items", controllers.BulkUpdateShoppingItems)
			shopping.PUT("/lists/:id/items/:itemId", controllers.UpdateShoppingItem)
			shopping.DELETE("/lists/:id/items/:itemId", controllers.DeleteShoppingItem)
			shopping.POST("/lists/:id/archive", controllers.ArchiveShoppingList)
			shopping.POST("/lists/:id/unarchive", controllers.UnarchiveShoppingList)
		}

		meals := protected.Group("/meals")
		{
			meals.GET("", controllers.ListMealPlans)
			meals.POST("", controllers.CreateMealPlan)
			meals.GET("/:id", controllers.GetMealPlan)
			meals.PUT("/:id", controllers.UpdateMealPlan)
			meals.DELETE("/:id", controllers.DeleteMealPlan)
		}

		protected.POST("/feedback", controllers.SubmitFeedback)

		admin := protected.Group("/admin")
		admin.Use(middlewares.AdminOnly())
		{
			admin.GET("/summary", controllers.AdminSummary)
			admin.GET("/feedback", controllers.AdminListFeedback)
			admin.GET("/users", controllers.AdminListUsers)
		}
	}

	return r
}
