package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/daypanel/daypanel-backend/internal/config"
	"github.com/daypanel/daypanel-backend/internal/handler"
	"github.com/daypanel/daypanel-backend/internal/middleware"
	"github.com/daypanel/daypanel-backend/internal/notifier"
	"github.com/daypanel/daypanel-backend/internal/repository"
	"github.com/daypanel/daypanel-backend/internal/service"
	"github.com/daypanel/daypanel-backend/pkg/ai"
	"github.com/daypanel/daypanel-backend/pkg/database"
	"github.com/daypanel/daypanel-backend/pkg/email"
	"github.com/daypanel/daypanel-backend/pkg/geoip"
	"github.com/daypanel/daypanel-backend/pkg/nager"
	"github.com/daypanel/daypanel-backend/pkg/nasa"
	"github.com/daypanel/daypanel-backend/pkg/openmeteo"
	"github.com/daypanel/daypanel-backend/pkg/quotes"
	"github.com/daypanel/daypanel-backend/pkg/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()
	sugar := zapLogger.Sugar()

	// Database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		sugar.Fatalw("database connection failed", "error", err)
	}
	if err := database.RunMigrations(db); err != nil {
		sugar.Fatalw("database migration failed", "error", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// Upstream clients. Optional integrations stay nil when their key
	// is absent and only the dependent feature is disabled.
	geoClient := geoip.NewClient()
	forecastClient := openmeteo.NewClient()
	registryClient := nager.NewClient()
	quoteClient := quotes.NewClient()

	var apodClient handler.APODClient
	if cfg.NasaAPIKey != "" {
		apodClient = nasa.NewClient(cfg.NasaAPIKey)
	} else {
		sugar.Warn("NASA_API_KEY not set, APOD feed disabled")
	}

	var extractor service.EventExtractor
	if cfg.GeminiAPIKey != "" {
		geminiExtractor, err := ai.NewExtractor(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			sugar.Fatalw("gemini client failed", "error", err)
		}
		defer geminiExtractor.Close()
		extractor = geminiExtractor
	} else {
		sugar.Warn("GEMINI_API_KEY not set, image parsing disabled")
	}

	var archiver service.UploadArchiver
	if cfg.ArchiveEnabled() {
		r2, err := storage.NewR2Storage(cfg)
		if err != nil {
			sugar.Fatalw("R2 storage failed", "error", err)
		}
		archiver = r2
	}

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo, sugar)
	locationService := service.NewLocationService(geoClient)
	holidayService := service.NewHolidayService(registryClient, sugar)
	weatherService := service.NewWeatherService(forecastClient, sugar)
	uploadService := service.NewUploadService(extractor, archiver, eventService, sugar)

	validator := handler.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService, validator)
	eventHandler := handler.NewEventHandler(eventService, validator)
	holidayHandler := handler.NewHolidayHandler(holidayService, locationService)
	weatherHandler := handler.NewWeatherHandler(weatherService, locationService)
	citiesHandler := handler.NewCitiesHandler()
	uploadHandler := handler.NewUploadHandler(uploadService)
	exploreHandler := handler.NewExploreHandler(apodClient, quoteClient)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Lookup routes degrade tier by tier without a session
	api.Get("/holidays", middleware.OptionalAuth(cfg.JWTSecret), holidayHandler.GetHolidays)
	api.Get("/weather", middleware.OptionalAuth(cfg.JWTSecret), weatherHandler.GetWeather)
	api.Get("/cities", citiesHandler.GetCities)
	api.Get("/apod", exploreHandler.GetAPOD)
	api.Get("/quotes", exploreHandler.GetQuote)
	api.Post("/upload", middleware.OptionalAuth(cfg.JWTSecret), uploadHandler.Upload)

	// Protected routes
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		auth.Get("/user", userHandler.GetProfile)
		auth.Put("/user", userHandler.UpdateProfile)

		events := api.Group("/events")
		events.Get("/", eventHandler.GetEvents)
		events.Post("/", eventHandler.CreateEvent)
		events.Delete("/:id", eventHandler.DeleteEvent)
	}

	// Daily digest
	if cfg.MailEnabled() {
		mailer := email.NewEmailService(cfg, sugar)
		digest := notifier.NewDailyDigest(eventRepo, userRepo, mailer, sugar)
		if err := digest.Start(); err != nil {
			sugar.Fatalw("digest scheduler failed", "error", err)
		}
		defer digest.Stop()
	} else {
		sugar.Warn("mail configuration missing, daily digest disabled")
	}

	sugar.Infow("server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		sugar.Fatalw("server exited", "error", err)
	}
}
