package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/user/podreview/internal/model"
	"github.com/user/podreview/internal/service"
	"github.com/user/podreview/internal/utils"
)

const podcastListCacheKey = "podcast:list"

// ListPodcasts 获取全部播客
func (h *Handler) ListPodcasts(c *gin.Context) {
	if cached, ok := utils.CacheGet(podcastListCacheKey); ok {
		c.JSON(200, cached.([]*model.Podcast))
		return
	}

	podcasts, err := h.Repos.Podcast.ListAll()
	if err != nil {
		h.renderError(c, err)
		return
	}
	if podcasts == nil {
		podcasts = []*model.Podcast{}
	}

	utils.CacheSet(podcastListCacheKey, podcasts, 0)
	c.JSON(200, podcasts)
}

// GetPodcast 获取单个播客
func (h *Handler) GetPodcast(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "播客不存在")
		return
	}

	podcast, err := h.Repos.Podcast.FindByID(id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if podcast == nil {
		utils.NotFound(c, "播客不存在")
		return
	}

	c.JSON(200, podcast)
}

// CreatePodcast 创建播客
func (h *Handler) CreatePodcast(c *gin.Context) {
	var input service.PodcastInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "播客数据格式不正确")
		return
	}

	podcast, err := h.Podcasts.Create(&input)
	if err != nil {
		if errors.Is(err, service.ErrDuplicate) {
			utils.Conflict(c, "同名播客已存在")
			return
		}
		h.renderError(c, err)
		return
	}

	utils.CacheDelete(podcastListCacheKey)
	c.JSON(200, podcast)
}

// ImportPodcast 从页面 URL 导入播客
func (h *Handler) ImportPodcast(c *gin.Context) {
	var input struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "需要提供播客页面 URL")
		return
	}

	podcast, err := h.Importer.Import(input.URL)
	if err != nil {
		if errors.Is(err, service.ErrDuplicate) {
			utils.Conflict(c, "同名播客已存在")
			return
		}
		h.renderError(c, err)
		return
	}

	utils.CacheDelete(podcastListCacheKey)
	c.JSON(200, podcast)
}

// UpdatePodcast 更新播客（播客没有所有者，登录即可改）
func (h *Handler) UpdatePodcast(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "播客不存在")
		return
	}

	var patch service.PodcastPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "播客数据格式不正确")
		return
	}

	podcast, err := h.Podcasts.Update(id, &patch)
	if err != nil {
		if errors.Is(err, service.ErrDuplicate) {
			utils.Conflict(c, "同名播客已存在")
			return
		}
		h.renderError(c, err)
		return
	}

	utils.CacheDelete(podcastListCacheKey)
	c.JSON(200, podcast)
}

// DeletePodcast 删除播客
func (h *Handler) DeletePodcast(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "播客不存在")
		return
	}

	if err := h.Podcasts.Delete(id); err != nil {
		h.renderError(c, err)
		return
	}

	utils.CacheDelete(podcastListCacheKey)
	c.Status(204)
}
