package main

import (
	"net/http"
	"os"

	"newsroom/database"
	"newsroom/internal/cache"
	"newsroom/internal/config"
	"newsroom/internal/controllers"
	"newsroom/internal/logger"
	"newsroom/internal/middleware"
	"newsroom/internal/publishing"
	"newsroom/internal/repository"
	"newsroom/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Optional in production; env vars win over the file either way.
	_ = godotenv.Load()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	// The cache is an accelerator, not a dependency: a dead redis means
	// every page renders from the database.
	var redisClient *redis.Client
	if redisClient, err = cache.Connect(cfg.Redis.URL); err != nil {
		log.Warn().Err(err).Str("url", cfg.Redis.URL).Msg("redis unavailable, serving uncached")
		redisClient = nil
	}
	pageCache := cache.NewPageCache(redisClient, cfg.Cache.TTL, log)

	articleRepo := repository.NewArticleRepository(db)
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	resetRepo := repository.NewResetPasswordRepository(db)

	service := publishing.NewService(articleRepo, userRepo, log)

	listingController := controllers.NewListingController(service, categoryRepo, tagRepo, pageCache, cfg.PageTimeout, log)
	articleController := controllers.NewArticleController(service, articleRepo, categoryRepo, tagRepo, commentRepo, cfg.PageTimeout, log)
	commentController := controllers.NewCommentController(commentRepo, service, log)
	writerController := controllers.NewWriterController(service, articleRepo, log)
	editorController := controllers.NewEditorController(service, articleRepo, categoryRepo, tagRepo, cfg.PageTimeout, log)
	adminController := controllers.NewAdminController(service, userRepo, categoryRepo, tagRepo, log)
	userController := controllers.NewUserController(userRepo, resetRepo, cfg.Auth.JWTSecret, log)

	if os.Getenv("ENV") != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())

	auth := middleware.Authenticate(userRepo, cfg.Auth.JWTSecret)
	maybeAuth := middleware.MaybeAuthenticate(userRepo, cfg.Auth.JWTSecret)

	routes.RegisterSystemRoutes(router)
	routes.RegisterListingRoutes(router, listingController)
	routes.RegisterArticleRoutes(router, articleController, commentController, auth, maybeAuth)
	routes.RegisterUserRoutes(router, userController, auth)
	routes.RegisterWriterRoutes(router, writerController, auth)
	routes.RegisterEditorRoutes(router, editorController, auth)
	routes.RegisterAdminRoutes(router, adminController, auth)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	log.Info().Str("port", cfg.Server.Port).Msg("newsroom listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
