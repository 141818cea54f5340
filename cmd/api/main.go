package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contentadmin/internal/config"
	"contentadmin/internal/database"
	"contentadmin/internal/logger"
	"contentadmin/internal/modules/auth"
	"contentadmin/internal/modules/banner"
	"contentadmin/internal/modules/board"
	"contentadmin/internal/modules/upload"
	jwtsvc "contentadmin/internal/pkg/jwt"
	"contentadmin/internal/repository"
	"contentadmin/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	if err := repository.AutoMigrate(db); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}

	store, err := storage.NewS3Gateway(cfg.S3, zlog)
	if err != nil {
		zlog.Fatal("storage gateway init failed", zap.Error(err))
	}

	adminRepo := repository.NewAdminRepository(db)
	uploadRepo := repository.NewUploadRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	bannerRepo := repository.NewBannerRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(adminRepo, j))
	uploadHandler := upload.NewHandler(upload.NewService(uploadRepo, store, zlog))
	boardHandler := board.NewHandler(board.NewService(boardRepo, uploadRepo, store, zlog))
	bannerHandler := banner.NewHandler(banner.NewService(bannerRepo, uploadRepo, store, zlog))

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.Default()

	api := r.Group("/")
	{
		authHandler.RegisterRoutes(api)
		boardHandler.RegisterPublicRoutes(api)
		bannerHandler.RegisterPublicRoutes(api)

		protected := api.Group("/")
		protected.Use(authMiddleware(j))
		{
			uploadHandler.RegisterRoutes(protected)
			boardHandler.RegisterAdminRoutes(protected)
			bannerHandler.RegisterAdminRoutes(protected)
		}
	}

	zlog.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func authMiddleware(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing or invalid Authorization header",
				},
			})
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid token",
				},
			})
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("username", claims.Username)

		c.Next()
	}
}
