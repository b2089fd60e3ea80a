package main

import (
	"os"
	"time"

	dbadapter "devconnect/internal/adapters/database"
	"devconnect/internal/adapters/httpapi"
	redisadapter "devconnect/internal/adapters/redis"
	"devconnect/internal/config"
	"devconnect/internal/core/post"
	postapp "devconnect/internal/core/post/service"
	"devconnect/internal/core/user"
	userapp "devconnect/internal/core/user/service"
	"devconnect/internal/identity"
	ratelimitPort "devconnect/internal/ports/ratelimit"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	defer config.Logger.Sync()

	config.Init()
	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&post.Post{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("database migrations completed")

	defer closeResources(config.Logger)

	userRepo := dbadapter.NewUserRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryDatabase()
	userSvc := userapp.NewUserService(userRepo)
	postSvc := postapp.NewPostService(postRepo)

	var verifier identity.Verifier
	if secret := os.Getenv("IDENTITY_JWT_SECRET"); secret != "" {
		issuer := os.Getenv("IDENTITY_ISSUER")
		if issuer == "" {
			issuer = "devconnect"
		}
		verifier = identity.NewJWTVerifier([]byte(secret), issuer)
	}

	var limiter ratelimitPort.Limiter
	if os.Getenv("REDIS_ADDR") != "" {
		config.InitRedis()
		limiter = redisadapter.NewRateLimiterRedis(
			config.RedisClient,
			config.EnvInt("RATE_LIMIT_PER_MINUTE", 120),
			time.Minute,
		)
	}

	r := httpapi.SetupRoutes(verifier, userSvc, postSvc, limiter)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	config.Logger.Info("App is running...", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources closes the shared database and Redis connections.
func closeResources(logger *zap.Logger) {
	if config.RedisClient != nil {
		if err := config.RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection:", zap.Error(err))
		}
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
