package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"github.com/urbangrow/urbangrow/internal/api/handler"
	customMiddleware "github.com/urbangrow/urbangrow/internal/api/middleware"
	"github.com/urbangrow/urbangrow/internal/config"
	"github.com/urbangrow/urbangrow/internal/geocode"
	"github.com/urbangrow/urbangrow/internal/mapview"
	mongorepo "github.com/urbangrow/urbangrow/internal/repository/mongo"
	redisrepo "github.com/urbangrow/urbangrow/internal/repository/redis"
	"github.com/urbangrow/urbangrow/internal/security"
	"github.com/urbangrow/urbangrow/internal/service"
	"github.com/urbangrow/urbangrow/internal/weather"
)

// NewRouter creates and configures the HTTP router. redisClient may be nil,
// in which case the auth endpoints run without rate limiting.
func NewRouter(cfg *config.Config, store *mongorepo.Client, redisClient *redisrepo.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS: the page is served from anywhere, as the original allowed
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	tokenManager := security.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)

	userRepo := mongorepo.NewUserRepository(store)

	mapView := mapview.New()
	geocoder := geocode.NewClient(cfg.Geocoder)
	weatherClient := weather.NewClient(cfg.Weather)

	authService := service.NewAuthService(userRepo, tokenManager)
	locationService := service.NewLocationService(geocoder, weatherClient, mapView, log.Logger)

	authHandler := handler.NewAuthHandler(authService)
	locationHandler := handler.NewLocationHandler(locationService)
	weatherHandler := handler.NewWeatherHandler(weatherClient)
	recommendationHandler := handler.NewRecommendationHandler()

	authMiddleware := customMiddleware.NewAuthMiddleware(tokenManager)

	// Auth endpoints keep their original paths and body shapes
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if redisClient != nil {
				rateLimiter := redisrepo.NewRateLimiter(
					redisClient,
					cfg.Auth.RateLimit.RequestsPerMinute,
					cfg.Auth.RateLimit.Burst,
				)
				r.Use(customMiddleware.NewRateLimitMiddleware(rateLimiter).Limit)
			}
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", handler.HealthCheck)
			r.Get("/ready", handler.ReadyCheck(store))

			r.Route("/location", func(r chi.Router) {
				r.Post("/resolve", locationHandler.Resolve)
				r.Post("/search", locationHandler.Search)
			})
			r.Get("/map", locationHandler.Map)
			r.Get("/weather/current", weatherHandler.Current)
			r.Post("/recommendations", recommendationHandler.Recommend)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Get("/me", authHandler.Me)
			})
		})
	})

	return r
}
