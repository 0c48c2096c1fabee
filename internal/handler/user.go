package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/user/podreview/internal/middleware"
	"github.com/user/podreview/internal/model"
	"github.com/user/podreview/internal/utils"
)

// SignupInput 注册入参
type SignupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,strongpassword"`
}

// LoginInput 登录入参
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserInput 更新个人资料入参，nil 字段保持原值
type UpdateUserInput struct {
	Name      *string           `json:"name"`
	Interests *model.StringList `json:"interests"`
	Bookmarks *model.IDList     `json:"bookmarks"`
	Password  *string           `json:"password" binding:"omitempty,strongpassword"`
}

// Signup 注册，成功直接返回可用的 Token
func (h *Handler) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "注册需要姓名、邮箱和符合强度要求的密码")
		return
	}

	// 先查重给出友好提示，邮箱唯一索引兜底
	existing, err := h.Repos.User.FindByEmail(input.Email)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if existing != nil {
		utils.Conflict(c, "该邮箱已被注册")
		return
	}

	user, err := h.Repos.User.Create(input.Name, input.Email, input.Password, "local")
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Conflict(c, "该邮箱已被注册")
			return
		}
		h.renderError(c, err)
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(200, gin.H{"token": token})
}

// Login 登录
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "登录需要邮箱和密码")
		return
	}

	user, err := h.Repos.User.FindByEmail(input.Email)
	if err != nil {
		h.renderError(c, err)
		return
	}
	// 第三方来源的账号没有本地密码，不走这条登录路径
	if user == nil || model.IsOAuthProvider(user.Provider) || !h.Repos.User.CheckPassword(user, input.Password) {
		utils.Unauthorized(c, "邮箱或密码错误")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(200, gin.H{"token": token})
}

// Me 获取当前登录用户
func (h *Handler) Me(c *gin.Context) {
	user, err := h.Repos.User.FindByID(middleware.GetUserID(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	if user == nil {
		utils.Unauthorized(c, "")
		return
	}

	c.JSON(200, user)
}

// UpdateMe 更新个人资料
// 只接受白名单字段：姓名、兴趣、收藏、密码，其余一律忽略
func (h *Handler) UpdateMe(c *gin.Context) {
	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "资料格式不正确，新密码需满足强度要求")
		return
	}

	user, err := h.Repos.User.FindByID(middleware.GetUserID(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	if user == nil {
		utils.Unauthorized(c, "")
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Interests != nil {
		user.Interests = *input.Interests
	}
	if input.Bookmarks != nil {
		user.Bookmarks = *input.Bookmarks
	}
	if err := h.Repos.User.Save(user); err != nil {
		h.renderError(c, err)
		return
	}

	if input.Password != nil {
		if err := h.Repos.User.UpdatePassword(user.ID, *input.Password); err != nil {
			h.renderError(c, err)
			return
		}
	}

	c.JSON(200, user)
}

// generateToken 生成 JWT
func (h *Handler) generateToken(user *model.User) (string, error) {
	return middleware.GenerateToken(user.ID, user.Name, user.Email, user.Role, h.Config.AppSecret, h.Config.JWTExpiry)
}
