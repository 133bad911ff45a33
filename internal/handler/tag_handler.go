package handler

import (
	apperrors "github.com/fastnote/fastnote/internal/errors"
	"github.com/fastnote/fastnote/internal/middleware"
	"github.com/fastnote/fastnote/internal/response"
	tagservice "github.com/fastnote/fastnote/internal/service/tag"
	"github.com/gin-gonic/gin"
)

// TagHandler 标签处理器
// 标签的创建与回收完全由笔记更新驱动，对外只暴露查询接口
type TagHandler struct {
	tagService tagservice.TagService
}

// NewTagHandler 创建标签处理器实例
// 参数:
//   tagService - 标签服务接口
// 返回:
//   *TagHandler - 标签处理器实例
func NewTagHandler(tagService tagservice.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// tagItem 标签列表项
type tagItem struct {
	TagID string `json:"tag_id"` // 标签业务ID
	Name  string `json:"name"`   // 标签名称
}

// ListTags 获取标签列表
// @Summary 获取当前用户的标签列表
// @Description 返回用户的全部标签，按名称升序
// @Tags 标签管理
// @Produce json
// @Success 200 {object} response.Response "获取成功"
// @Failure 401 {object} response.Response "未认证"
// @Failure 500 {object} response.Response "服务器内部错误"
// @Router /api/v1/tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, apperrors.GetErrorMessage(apperrors.ErrUnauthorized))
		return
	}

	tags, err := h.tagService.ListTags(userID)
	if err != nil {
		response.InternalServerError(c, apperrors.GetErrorMessage(apperrors.ErrTagListFailed))
		return
	}

	items := make([]tagItem, 0, len(tags))
	for _, tag := range tags {
		items = append(items, tagItem{
			TagID: tag.TagID,
			Name:  tag.Name,
		})
	}

	response.Success(c, items)
}
