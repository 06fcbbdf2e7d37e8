package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
	"github.com/penglongli/gin-metrics/ginmetrics"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blog-nest/cmd/api/auth"
	"blog-nest/cmd/api/handlers"
	"blog-nest/cmd/api/middleware"
	"blog-nest/cmd/api/services"
	"blog-nest/cmd/api/trace"
	"blog-nest/internal/logger"
	"blog-nest/config"
	_ "blog-nest/docs"
)

// Deps is everything the routes need. Health is optional.
type Deps struct {
	Config    config.AppConfig
	Sessions  *services.SessionService
	Blogs     *services.BlogService
	Comments  *services.CommentService
	Wishlists *services.WishlistService
	Health    func(ctx context.Context) error
}

func New(deps Deps) *gin.Engine {
	cfg := deps.Config

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	if cfg.Server.RequestTimeoutSeconds > 0 {
		r.Use(timeoutMiddleware(time.Duration(cfg.Server.RequestTimeoutSeconds) * time.Second))
	}
	if cfg.Metrics.Enabled {
		monitor(cfg.Metrics.Path).Use(r)
	}

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "blog nest server is running")
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if deps.Health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
			defer cancel()
			if err := deps.Health(ctx); err != nil {
				logger.WarnWithFields("health check failed", logger.Fields{
					"error":      err.Error(),
					"request_id": trace.RequestIDFromContext(c.Request.Context()),
				})
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cookie := auth.NewCookieConfig(cfg.Session.CookieName, cfg.IsProduction(), deps.Sessions.TTL())
	requireSession := middleware.RequireSession(auth.NewGate(cfg.Session.CookieName, deps.Sessions))

	// session
	r.POST("/jwt", handlers.IssueSessionHandler(deps.Sessions, cookie))
	r.GET("/logout", handlers.LogoutHandler(cookie))

	// blogs
	r.GET("/blogs", handlers.ListBlogsHandler(deps.Blogs))
	r.GET("/all-blogs", handlers.SearchBlogsHandler(deps.Blogs))
	r.GET("/blog/:id", handlers.GetBlogHandler(deps.Blogs))
	r.POST("/blog", requireSession, handlers.CreateBlogHandler(deps.Blogs))
	r.PUT("/blog/:id", requireSession, handlers.UpdateBlogHandler(deps.Blogs))
	r.DELETE("/blog/:id", requireSession, handlers.DeleteBlogHandler(deps.Blogs))

	// comments
	r.GET("/comments", handlers.ListCommentsHandler(deps.Comments))
	r.POST("/comment", handlers.CreateCommentHandler(deps.Comments))

	// wishlist
	wishlist := r.Group("/wishlist", requireSession)
	{
		wishlist.GET("", handlers.ListWishlistHandler(deps.Wishlists))
		wishlist.POST("", handlers.AddWishlistHandler(deps.Wishlists))
		wishlist.DELETE("/:id", handlers.RemoveWishlistHandler(deps.Wishlists))
	}

	return r
}

func timeoutMiddleware(to time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(to),
		timeout.WithResponse(func(c *gin.Context) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request timeout"})
		}),
	)
}

func monitor(path string) *ginmetrics.Monitor {
	m := ginmetrics.GetMonitor()
	m.SetMetricPath(path)
	m.SetSlowTime(1)
	m.SetDuration([]float64{0.05, 0.1, 0.2, 0.3, 0.5, 1, 2, 5})
	return m
}
