package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/user/podreview/internal/handler"
	"github.com/user/podreview/internal/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ==================== 认证 ====================
	auth := r.Group("/auth")
	{
		auth.POST("/local", h.Login)
	}

	// ==================== 用户 ====================
	user := r.Group("/user")
	{
		user.POST("/", h.Signup)
		user.GET("/me", middleware.RequireAuth(h.Config.AppSecret), h.Me)
		user.PUT("/", middleware.RequireAuth(h.Config.AppSecret), h.UpdateMe)
	}

	// ==================== 播客 ====================
	podcast := r.Group("/podcast")
	{
		podcast.GET("/", h.ListPodcasts)
		podcast.GET("/:id", h.GetPodcast)

		// 写操作需要登录，但播客没有所有者限制
		podcast.POST("/", middleware.RequireAuth(h.Config.AppSecret), h.CreatePodcast)
		podcast.POST("/import", middleware.RequireAuth(h.Config.AppSecret), h.ImportPodcast)
		podcast.PUT("/:id", middleware.RequireAuth(h.Config.AppSecret), h.UpdatePodcast)
		podcast.DELETE("/:id", middleware.RequireAuth(h.Config.AppSecret), h.DeletePodcast)
	}

	// ==================== 评论 ====================
	review := r.Group("/review")
	{
		review.GET("/mine", middleware.RequireAuth(h.Config.AppSecret), h.MyReviews)
		review.GET("/:podcastId", h.PodcastReviews)

		review.POST("/", middleware.RequireAuth(h.Config.AppSecret), h.CreateReview)
		review.PUT("/:id", middleware.RequireAuth(h.Config.AppSecret), h.UpdateReview)
		review.DELETE("/:id", middleware.RequireAuth(h.Config.AppSecret), h.DeleteReview)
	}
}
