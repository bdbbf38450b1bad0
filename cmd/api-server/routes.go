package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"locallibrary/internal/config"
	"locallibrary/internal/http-api/handler"
	"locallibrary/internal/http-api/middleware"
	"locallibrary/internal/http-api/repository"
	"locallibrary/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// newRouter wires repositories, services and handlers into one engine.
func newRouter(cfg *config.Config, db *gorm.DB, cache *repository.SummaryCache, logger *slog.Logger, stop <-chan struct{}) *gin.Engine {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	authorRepo := repository.NewAuthorRepository(db)
	bookRepo := repository.NewBookRepository(db)
	instanceRepo := repository.NewBookInstanceRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	languageRepo := repository.NewLanguageRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg, logger)
	loanService := service.NewLoanService(instanceRepo)
	renewalService := service.NewRenewalService(instanceRepo, logger)
	catalogService := service.NewCatalogService(bookRepo, instanceRepo, authorRepo, genreRepo, cache, logger)
	authorService := service.NewAuthorService(authorRepo, bookRepo, cache, logger)
	bookService := service.NewBookService(bookRepo, instanceRepo, authorRepo, genreRepo, languageRepo, cache, logger)
	copyService := service.NewCopyService(instanceRepo, bookRepo, cache, logger)
	genreService := service.NewGenreService(genreRepo, languageRepo, cache, logger)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Run(stop)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(limiter.Middleware())
	r.Use(requestTimeout(cfg.RequestTimeout))

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	handler.NewAuthHandler(authService, cfg.AccessTokenTTL, logger).RegisterRoutes(api)

	public := api.Group("", middleware.OptionalAuth(authService, time.Now))
	handler.NewCatalogHandler(catalogService, bookService, authorService, logger).RegisterRoutes(public)
	handler.NewLoanHandler(loanService, renewalService, logger).RegisterRoutes(public)

	v1 := api.Group("/v1", middleware.AuthMiddleware(authService, time.Now))
	handler.NewCRUDHandler(authorService, bookService, copyService, genreService, logger).RegisterRoutes(v1)

	return r
}

// requestTimeout bounds the context every handler passes to storage.
func requestTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
