package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/user/podreview/internal/middleware"
	"github.com/user/podreview/internal/model"
	"github.com/user/podreview/internal/service"
	"github.com/user/podreview/internal/utils"
)

// MyReviews 获取我写的全部评论，没写过返回空数组
func (h *Handler) MyReviews(c *gin.Context) {
	reviews, err := h.Repos.Review.ListByReviewer(middleware.GetUserID(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	if reviews == nil {
		reviews = []*model.Review{}
	}

	c.JSON(200, reviews)
}

// PodcastReviews 获取某个播客下的全部评论
func (h *Handler) PodcastReviews(c *gin.Context) {
	podcastID, err := strconv.Atoi(c.Param("podcastId"))
	if err != nil {
		utils.NotFound(c, "播客不存在")
		return
	}

	key := strconv.Itoa(podcastID)
	if cached, ok := h.reviewCache.Get(key); ok {
		c.JSON(200, cached)
		return
	}

	reviews, err := h.Repos.Review.ListByPodcast(podcastID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if reviews == nil {
		reviews = []*model.Review{}
	}

	h.reviewCache.Set(key, reviews)
	c.JSON(200, reviews)
}

// CreateReview 创建评论，评论者信息取自登录态
func (h *Handler) CreateReview(c *gin.Context) {
	var input service.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "评论数据格式不正确")
		return
	}

	review, err := h.Reviews.Create(&input, middleware.GetUserID(c), middleware.GetUserName(c))
	if err != nil {
		if errors.Is(err, service.ErrDuplicate) {
			utils.Conflict(c, "你已经评论过这个播客/这一集了")
			return
		}
		h.renderError(c, err)
		return
	}

	h.reviewCache.Delete(strconv.Itoa(review.PodcastID))
	c.JSON(200, review)
}

// UpdateReview 更新评论，仅限评论作者
func (h *Handler) UpdateReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "评论不存在")
		return
	}

	var patch service.ReviewPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "评论数据格式不正确")
		return
	}

	review, err := h.Reviews.Update(id, middleware.GetUserID(c), &patch)
	if err != nil {
		if errors.Is(err, service.ErrDuplicate) {
			utils.Conflict(c, "你已经评论过这个播客/这一集了")
			return
		}
		h.renderError(c, err)
		return
	}

	h.reviewCache.Delete(strconv.Itoa(review.PodcastID))
	c.JSON(200, review)
}

// DeleteReview 删除评论，仅限评论作者
func (h *Handler) DeleteReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "评论不存在")
		return
	}

	if err := h.Reviews.Delete(id, middleware.GetUserID(c)); err != nil {
		h.renderError(c, err)
		return
	}

	// 删除后不知道原播客，整体失效
	h.reviewCache.Clear()
	c.Status(204)
}
