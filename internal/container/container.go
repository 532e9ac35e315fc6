package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/redis/go-redis/v9"
	"github.com/supabase-community/supabase-go"
	"github.com/yatra-labs/yatra-server/internal/cache"
	"github.com/yatra-labs/yatra-server/internal/config"
	"github.com/yatra-labs/yatra-server/internal/models"
	"github.com/yatra-labs/yatra-server/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary

	// Database clients
	SupabaseClient *supabase.Client
	MongoDBClient  *mongo.Client
	RedisClient    *redis.Client

	NotificationStore *models.NotificationStore

	UserService         *services.UserService
	PlaceService        *services.PlaceService
	CityService         *services.CityService
	FavouritesService   *services.FavouriteService
	ReviewService       *services.ReviewService
	DigitalIDService    *services.DigitalIDService
	NotificationService *services.NotificationService
	ChatbotService      *services.ChatbotService
	WeatherService      *services.WeatherService
	ImageService        *services.ImageService
	CurrencyService     *services.CurrencyService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	cfg *config.Config,
	logger *slog.Logger,
	cloudinary *cloudinary.Cloudinary,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	redisClient *redis.Client,
) *Container {
	supa := models.SupabaseNewRepo(supabaseClient, cfg.SupabaseURL, cfg.SupabaseAnonKey)
	mongoRepo := models.MongodbNewRepo(mongoDBClient)
	redisCache := cache.NewRedisCache(redisClient)
	notificationStore := models.NewNotificationStore()

	return &Container{
		Logger:            logger,
		Cloudinary:        cloudinary,
		SupabaseClient:    supabaseClient,
		MongoDBClient:     mongoDBClient,
		RedisClient:       redisClient,
		NotificationStore: notificationStore,

		UserService:         services.NewUserService(supa),
		PlaceService:        services.NewPlaceService(supa),
		CityService:         services.NewCityService(supa, redisCache, logger),
		FavouritesService:   services.NewFavouriteService(mongoRepo),
		ReviewService:       services.NewReviewService(mongoRepo),
		DigitalIDService:    services.NewDigitalIDService(supa, cfg.CredentialKey),
		NotificationService: services.NewNotificationService(notificationStore),
		ChatbotService:      services.NewChatbotService(),
		WeatherService:      services.NewWeatherService(cfg.WeatherAPIKey, redisCache, logger),
		ImageService:        services.NewImageService(cfg.ImageSearchKey),
		CurrencyService:     services.NewCurrencyService(),
	}
}
