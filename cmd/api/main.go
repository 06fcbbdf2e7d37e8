package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"blog-nest/cmd/api/auth"
	"blog-nest/cmd/api/router"
	"blog-nest/cmd/api/services"
	"blog-nest/internal/logger"
	"blog-nest/config"
	"blog-nest/db"
	_ "blog-nest/docs"
	"blog-nest/repositories"
)

// @title           Blog Nest API
// @version         1.0
// @description     Blogs, comments and per-user wishlists behind a cookie session
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level, cfg.Name)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens, err := auth.NewSessionManager(cfg.TokenSecret, cfg.Session.Issuer, time.Duration(cfg.Session.TTLHours)*time.Hour)
	if err != nil {
		logger.ErrorWithFields("session manager init failed", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.Init(ctx, cfg.Mongo); err != nil {
		logger.ErrorWithFields("mongodb init failed", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Disconnect(shutdownCtx); err != nil {
			logger.WarnWithFields("mongodb disconnect failed", logger.Fields{"error": err.Error()})
		}
	}()

	database := db.Database()
	blogRepo := repositories.NewBlogRepository(database)
	wishlistRepo := repositories.NewWishlistRepository(database)
	commentRepo := repositories.NewCommentRepository(database)

	r := router.New(router.Deps{
		Config:    cfg,
		Sessions:  services.NewSessionService(tokens),
		Blogs:     services.NewBlogService(blogRepo),
		Comments:  services.NewCommentService(commentRepo),
		Wishlists: services.NewWishlistService(blogRepo, wishlistRepo),
		Health:    db.Ping,
	})

	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
	}).Handler(r)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoWithFields("http server listening", logger.Fields{
			"addr":        srv.Addr,
			"environment": cfg.Server.Environment,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorWithFields("http server failed", logger.Fields{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithFields("http server shutdown failed", logger.Fields{"error": err.Error()})
	}
}
