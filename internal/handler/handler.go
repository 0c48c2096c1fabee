package handler

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/user/podreview/internal/config"
	"github.com/user/podreview/internal/model"
	"github.com/user/podreview/internal/repository"
	"github.com/user/podreview/internal/service"
	"github.com/user/podreview/internal/utils"
)

// Handler HTTP 处理器
type Handler struct {
	Repos    *repository.Repositories
	Config   *config.Config
	Podcasts *service.PodcastService
	Reviews  *service.ReviewService
	Importer *service.Importer

	// 按播客缓存评论列表
	reviewCache *utils.ListCache[[]*model.Review]
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	podcastSvc := service.NewPodcastService(repos.Podcast)

	return &Handler{
		Repos:       repos,
		Config:      cfg,
		Podcasts:    podcastSvc,
		Reviews:     service.NewReviewService(repos.Review),
		Importer:    service.NewImporter(podcastSvc),
		reviewCache: utils.NewListCache[[]*model.Review](1000, 5*time.Minute),
	}
}

func init() {
	// 注册密码强度校验规则，沿用站点一贯的口令要求：
	// 至少 8 位，含大小写字母和特殊字符
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
			return ValidPassword(fl.Field().String())
		})
	}
}

// ValidPassword 校验密码强度
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		}
	}
	return hasLower && hasUpper && strings.ContainsAny(password, "@#$%^&+=")
}

// renderError 把服务层错误映射为状态码
func (h *Handler) renderError(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.BadRequest(c, ve.Error())
	case errors.Is(err, service.ErrNotFound):
		utils.NotFound(c, "")
	case errors.Is(err, service.ErrNotOwner):
		utils.Forbidden(c, "这不是你的记录，不能修改或删除")
	case errors.Is(err, service.ErrDuplicate):
		utils.Conflict(c, "")
	default:
		log.Printf("[API] 请求处理失败: %v", err)
		utils.InternalServerError(c, "")
	}
}
