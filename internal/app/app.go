package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	catalogHTTP "moodwave/internal/controller/http"
	"moodwave/internal/entity"
	"moodwave/internal/repo/graph"
	"moodwave/internal/repo/persistent"
	"moodwave/internal/usecase"
	"moodwave/pkg/cache"
	"moodwave/pkg/config"
	"moodwave/pkg/database"
	"moodwave/pkg/jwt"
	"moodwave/pkg/logger"
	"moodwave/pkg/middleware"
	"moodwave/pkg/queue"
	"moodwave/pkg/s3"

	_ "moodwave/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		return nil, err
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	jwtService := jwt.NewServiceWithExpiry(cfg.JWTSecret, cfg.JWTExpiresIn)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
		queueClient: queueClient,
	}, nil
}

func (a *App) Run() error {
	// Repositories
	userRepo := persistent.NewUserRepository(a.db)
	artistRepo := persistent.NewArtistRepository(a.db)
	albumRepo := persistent.NewAlbumRepository(a.db)
	trackRepo := persistent.NewTrackRepository(a.db)
	moodRepo := persistent.NewMoodRepository(a.db)
	playlistRepo := persistent.NewPlaylistRepository(a.db)
	graphAdapter := graph.NewRedisGraph(a.redisClient)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, moodRepo, graphAdapter, a.jwtService, a.s3Client, a.log)
	userUseCase := usecase.NewUserUseCase(userRepo, graphAdapter, a.queueClient, a.log)
	artistUseCase := usecase.NewArtistUseCase(artistRepo, graphAdapter, a.log)
	albumUseCase := usecase.NewAlbumUseCase(albumRepo, artistRepo, graphAdapter, a.log)
	trackUseCase := usecase.NewTrackUseCase(trackRepo, artistRepo, albumRepo, moodRepo, graphAdapter, a.queueClient, a.log)
	moodUseCase := usecase.NewMoodUseCase(moodRepo, trackRepo, graphAdapter, a.log)
	playlistUseCase := usecase.NewPlaylistUseCase(playlistRepo, userRepo, trackRepo, graphAdapter, a.log)
	graphUseCase := usecase.NewGraphUseCase(graphAdapter, moodRepo, trackRepo, a.log)
	recommendUseCase := usecase.NewRecommendUseCase(graphAdapter, trackRepo, moodRepo, userRepo, a.log)

	if err := a.ensureAdmin(userRepo, graphAdapter); err != nil {
		a.log.Error("Failed to ensure admin account: %v", err)
		return err
	}

	// HTTP handlers
	authHandler := catalogHTTP.NewAuthHandler(authUseCase)
	userHandler := catalogHTTP.NewUserHandler(userUseCase)
	artistHandler := catalogHTTP.NewArtistHandler(artistUseCase)
	albumHandler := catalogHTTP.NewAlbumHandler(albumUseCase)
	trackHandler := catalogHTTP.NewTrackHandler(trackUseCase)
	moodHandler := catalogHTTP.NewMoodHandler(moodUseCase)
	playlistHandler := catalogHTTP.NewPlaylistHandler(playlistUseCase)
	graphHandler := catalogHTTP.NewGraphHandler(graphUseCase)
	recommendHandler := catalogHTTP.NewRecommendHandler(recommendUseCase)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRequired := middleware.AuthMiddleware(a.jwtService)
	adminOnly := middleware.RequireRole(string(entity.RoleAdmin))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimitMiddleware(a.redisClient, 30, time.Minute))
		{
			// Register stays public but picks up credentials when present,
			// so admins can create elevated accounts.
			auth.POST("/register", middleware.OptionalAuthMiddleware(a.jwtService), authHandler.Register)
			auth.POST("/login", authHandler.Login)

			authProtected := auth.Group("")
			authProtected.Use(authRequired)
			{
				authProtected.GET("/me", authHandler.Me)
				authProtected.PUT("/change-password", authHandler.ChangePassword)
				authProtected.POST("/avatar", authHandler.UploadAvatar)
				authProtected.GET("/users", adminOnly, authHandler.ListUsers)
				authProtected.PUT("/users/:userId/role", adminOnly, authHandler.UpdateUserRole)
				authProtected.DELETE("/users/:userId", adminOnly, authHandler.DeleteUser)
			}
		}

		users := api.Group("/users", authRequired)
		{
			users.GET("", userHandler.List)
			users.GET("/:userId", userHandler.Get)
			users.PUT("/:userId", userHandler.Update)
			users.DELETE("/:userId", userHandler.Delete)
			users.POST("/:userId/follow", userHandler.Follow)
			users.DELETE("/:userId/follow", userHandler.Unfollow)
		}

		artists := api.Group("/artists", authRequired)
		{
			artists.GET("", artistHandler.List)
			artists.POST("", artistHandler.Create)
			artists.GET("/:artistId", artistHandler.Get)
			artists.PUT("/:artistId", artistHandler.Update)
			artists.DELETE("/:artistId", artistHandler.Delete)
		}

		albums := api.Group("/albums", authRequired)
		{
			albums.GET("", albumHandler.List)
			albums.POST("", albumHandler.Create)
			albums.GET("/:albumId", albumHandler.Get)
			albums.PUT("/:albumId", albumHandler.Update)
			albums.DELETE("/:albumId", albumHandler.Delete)
		}

		tracks := api.Group("/tracks", authRequired)
		{
			tracks.GET("", trackHandler.List)
			tracks.POST("", trackHandler.Create)
			tracks.GET("/byIds/:ids", trackHandler.GetByIDs)
			tracks.GET("/meta/moods", trackHandler.MoodNames)
			tracks.GET("/:trackId", trackHandler.Get)
			tracks.PUT("/:trackId", trackHandler.Update)
			tracks.DELETE("/:trackId", trackHandler.Delete)
		}

		moods := api.Group("/moods", authRequired)
		{
			moods.GET("", moodHandler.List)
			moods.GET("/:moodId", moodHandler.Get)
			moods.POST("", adminOnly, moodHandler.Create)
			moods.PUT("/:moodId", adminOnly, moodHandler.Update)
			moods.DELETE("/:moodId", adminOnly, moodHandler.Delete)
		}

		playlists := api.Group("/playlists", authRequired)
		{
			playlists.GET("", playlistHandler.List)
			playlists.POST("", playlistHandler.Create)
			playlists.GET("/following/all", playlistHandler.Following)
			playlists.GET("/discover/all", playlistHandler.Discover)
			playlists.GET("/aggregated/:playlistId", playlistHandler.Aggregated)
			playlists.GET("/stats/genres", playlistHandler.GenreStats)
			playlists.GET("/:playlistId", playlistHandler.Get)
			playlists.PUT("/:playlistId", playlistHandler.Update)
			playlists.DELETE("/:playlistId", playlistHandler.Delete)
		}

		graphGroup := api.Group("/graph", authRequired)
		graphHandler.RegisterRoutes(graphGroup)

		integration := api.Group("/integration", authRequired)
		{
			integration.GET("/recommendations/:userId", recommendHandler.Recommendations)
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("MoodWave API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

// ensureAdmin creates the configured admin account on first boot.
func (a *App) ensureAdmin(userRepo persistent.UserRepository, graphAdapter graph.Adapter) error {
	if _, err := userRepo.GetByEmail(a.cfg.AdminEmail); err == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(a.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &entity.User{
		Name:           a.cfg.AdminName,
		Email:          a.cfg.AdminEmail,
		Password:       string(hashed),
		Role:           entity.RoleAdmin,
		IsActive:       true,
		FavoriteGenres: []string{},
		PreferredMoods: []string{},
		Following:      []string{},
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}

	if err := graphAdapter.MergeNode(context.Background(), graph.LabelUser, admin.UserID); err != nil {
		a.log.Warn("Graph mirror failed for admin user: %v", err)
	}

	a.log.Info("Admin account created: %s", a.cfg.AdminEmail)
	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down MoodWave API...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	return a.httpServer.Shutdown(ctx)
}
