package routes

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yatra-labs/yatra-server/internal/container"
	"github.com/yatra-labs/yatra-server/internal/handlers"
	"github.com/yatra-labs/yatra-server/internal/helpers"
	"github.com/yatra-labs/yatra-server/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{
				"status":  "OK",
				"service": "yatra-api",
			})
		})

		// auth
		v1.POST("/signup", handlers.CreateUser(c.UserService))
		v1.POST("/login", handlers.AuthenticateUser(c.UserService))
		v1.POST("/refresh", handlers.RefreshSession(c.UserService))
		v1.GET("/auth/google", handlers.GoogleAuth(c.UserService))
		v1.GET("/auth/google/callback", handlers.GoogleAuthCallback())
		v1.POST("/logout", handlers.Logout())

		// destination catalog, readable without an account
		v1.GET("/places", handlers.ListPlaces(c.PlaceService))
		v1.GET("/places/featured", handlers.ListFeaturedPlaces(c.PlaceService))
		v1.GET("/places/search", handlers.SearchPlaces(c.PlaceService))
		v1.GET("/places/query", handlers.QueryPlaces(c.PlaceService))
		v1.GET("/places/:id", handlers.GetPlaceByID(c.PlaceService))
		v1.GET("/places/:id/reviews", handlers.GetReviewsByPlace(c.ReviewService))

		// city pages
		v1.GET("/cities", handlers.ListCities(c.CityService))
		v1.GET("/cities/:name", handlers.GetCityPage(c.CityService))

		// travel assistant
		v1.POST("/chatbot", handlers.ChatbotReply(c.ChatbotService))

		// external data
		v1.GET("/weather/:city", handlers.GetWeather(c.WeatherService))
		v1.GET("/images", handlers.SearchImages(c.ImageService))
		v1.GET("/currencies", handlers.ListCurrencies(c.CurrencyService))
		v1.GET("/currencies/convert", handlers.ConvertCurrency(c.CurrencyService))

		// anyone can verify an issued digital ID
		v1.GET("/digital-id/verify/:displayId", handlers.VerifyDigitalID(c.DigitalIDService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(c.SupabaseClient, c.UserService, c.Logger))

	protected.GET("/profile", func(ctx *gin.Context) {
		user, exist := ctx.Get("user")
		if !exist {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		enhancedClaims, ok := user.(*helpers.EnhancedClaims)
		if !ok {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user claims format"})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"user_id":  enhancedClaims.UserID,
			"email":    enhancedClaims.Email,
			"role":     enhancedClaims.Role,
			"username": enhancedClaims.Username,
			"is_admin": enhancedClaims.IsAdmin(),
		})
	})

	userRoutes := protected.Group("/users")
	{
		userRoutes.GET("/:id", handlers.GetUser(c.UserService))
		userRoutes.PATCH("/:id", handlers.UpdateUser(c.UserService))
		userRoutes.DELETE("/:id", handlers.DeleteUser(c.UserService))
		userRoutes.POST("/avatar", handlers.UploadAvatar(c.UserService))
	}

	// catalog writes are admin-gated inside the handlers
	placeRoutes := protected.Group("/places")
	{
		placeRoutes.POST("/", handlers.CreatePlace(c.PlaceService))
		placeRoutes.PATCH("/:id", handlers.UpdatePlace(c.PlaceService))
		placeRoutes.DELETE("/:id", handlers.DeletePlace(c.PlaceService))
	}

	favouriteRoutes := protected.Group("/favourites")
	{
		favouriteRoutes.GET("/", handlers.GetUserFavourites(c.FavouritesService))
		favouriteRoutes.POST("/:id", handlers.AddToFavourites(c.FavouritesService))
		favouriteRoutes.DELETE("/:id", handlers.RemoveFromFavourites(c.FavouritesService))
	}

	reviewRoutes := protected.Group("/reviews")
	{
		reviewRoutes.POST("/place/:placeId", handlers.CreateReview(c.ReviewService))
		reviewRoutes.GET("/mine", handlers.GetMyReviews(c.ReviewService))
		reviewRoutes.PATCH("/:id", handlers.UpdateReview(c.ReviewService))
		reviewRoutes.DELETE("/:id", handlers.DeleteReview(c.ReviewService))
		reviewRoutes.POST("/:id/vote", handlers.VoteReview(c.ReviewService))
		reviewRoutes.POST("/:id/response", handlers.RespondToReview(c.ReviewService))
		reviewRoutes.PATCH("/:id/status", handlers.SetReviewStatus(c.ReviewService))
	}

	digitalIDRoutes := protected.Group("/digital-id")
	{
		digitalIDRoutes.POST("/", handlers.IssueDigitalID(c.DigitalIDService))
		digitalIDRoutes.GET("/", handlers.GetMyDigitalID(c.DigitalIDService))
		digitalIDRoutes.DELETE("/", handlers.DeleteMyDigitalID(c.DigitalIDService))
	}

	notificationRoutes := protected.Group("/notifications")
	{
		notificationRoutes.GET("/", handlers.ListNotifications(c.NotificationService))
		notificationRoutes.POST("/", handlers.CreateNotification(c.NotificationService))
		notificationRoutes.PATCH("/:id/read", handlers.MarkNotificationRead(c.NotificationService))
		notificationRoutes.DELETE("/", handlers.ClearNotifications(c.NotificationService))
	}

	return r
}
