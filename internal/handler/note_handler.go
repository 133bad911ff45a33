// Package handler 提供HTTP处理器
// 实现笔记、标签和健康检查的RESTful API接口
package handler

import (
	apperrors "github.com/fastnote/fastnote/internal/errors"
	"github.com/fastnote/fastnote/internal/middleware"
	"github.com/fastnote/fastnote/internal/response"
	noteservice "github.com/fastnote/fastnote/internal/service/note"
	"github.com/gin-gonic/gin"
)

// NoteHandler 笔记处理器
// 提供笔记管理的HTTP接口，包括列表、详情、创建、更新和删除
type NoteHandler struct {
	noteService noteservice.NoteService
}

// NewNoteHandler 创建笔记处理器实例
// 参数:
//   noteService - 笔记服务接口
// 返回:
//   *NoteHandler - 笔记处理器实例
func NewNoteHandler(noteService noteservice.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// ListNotes 获取笔记列表
// @Summary 获取当前用户的笔记列表
// @Description 返回笔记摘要（不含内容），按创建时间倒序
// @Tags 笔记管理
// @Produce json
// @Success 200 {object} response.Response{data=[]note.NoteSummary} "获取成功"
// @Failure 401 {object} response.Response "未认证"
// @Failure 500 {object} response.Response "服务器内部错误"
// @Router /api/v1/notes [get]
func (h *NoteHandler) ListNotes(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, apperrors.GetErrorMessage(apperrors.ErrUnauthorized))
		return
	}

	summaries, err := h.noteService.ListNotes(userID)
	if err != nil {
		response.InternalServerError(c, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery))
		return
	}

	response.Success(c, summaries)
}

// GetNote 获取笔记详情
// @Summary 获取笔记详情
// @Description 根据笔记ID获取完整笔记（含标签）；笔记不存在或属于他人时统一返回404
// @Tags 笔记管理
// @Produce json
// @Param id path string true "笔记ID"
// @Success 200 {object} response.Response{data=database.Note} "获取成功"
// @Failure 404 {object} response.Response "笔记不存在"
// @Failure 500 {object} response.Response "服务器内部错误"
// @Router /api/v1/notes/{id} [get]
func (h *NoteHandler) GetNote(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, apperrors.GetErrorMessage(apperrors.ErrUnauthorized))
		return
	}

	noteID := c.Param("id")
	if noteID == "" {
		response.BadRequest(c, apperrors.GetErrorMessage(apperrors.ErrInvalidParams))
		return
	}

	note, err := h.noteService.GetNoteByID(userID, noteID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNoteNotFound) {
			response.NotFound(c, apperrors.GetErrorMessage(apperrors.ErrNoteNotFound))
		} else {
			response.InternalServerError(c, apperrors.GetErrorMessage(apperrors.ErrDatabaseQuery))
		}
		return
	}

	response.Success(c, note)
}

// CreateNote 创建笔记
// @Summary 创建空白笔记
// @Description 为当前用户创建一条空白笔记并立即返回其ID
// @Tags 笔记管理
// @Produce json
// @Success 200 {object} response.Response{data=database.Note} "创建成功"
// @Failure 401 {object} response.Response "未认证"
// @Failure 500 {object} response.Response "服务器内部错误"
// @Router /api/v1/notes [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, apperrors.GetErrorMessage(apperrors.ErrUnauthorized))
		return
	}

	note, err := h.noteService.CreateNote(userID)
	if err != nil {
		response.InternalServerError(c, apperrors.GetErrorMessage(apperrors.ErrNoteCreateFailed))
		return
	}

	response.Success(c, gin.H{"note_id": note.NoteID})
}

// UpdateNote 更新笔记
// @Summary 更新笔记的标题、内容和标签
// @Description 标题、内容、标签在同一事务内整体更新；存储层失败以success=false返回，
// @Description 编辑器可保留本地未保存状态并提示用户重试
// @Tags 笔记管理
// @Accept json
// @Produce json
// @Param id path string true "笔记ID"
// @Param note body note.UpdateNoteRequest true "更新笔记请求"
// @Success 200 {object} response.Response{data=database.Note} "更新结果"
// @Failure 400 {object} response.Response "请求参数错误"
// @Failure 404 {object} response.Response "笔记不存在"
// @Router /api/v1/notes/{id} [put]
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, apperrors.GetErrorMessage(apperrors.ErrUnauthorized))
		return
	}

	noteID := c.Param("id")
	if noteID == "" {
		response.BadRequest(c, apperrors.GetErrorMessage(apperrors.ErrInvalidParams))
		return
	}

	var req noteservice.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, apperrors.GetErrorMessage(apperrors.ErrInvalidParams))
		return
	}

	note, err := h.noteService.UpdateNote(userID, noteID, &req)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNoteNotFound) {
			response.NotFound(c, apperrors.GetErrorMessage(apperrors.ErrNoteNotFound))
			return
		}
		// 存储层失败不抛硬错误，前端保留编辑中的内容等待重试
		if appErr, ok := apperrors.GetAppError(err); ok {
			response.Failure(c, int(appErr.Code), appErr.Message)
		} else {
			response.Failure(c, int(apperrors.ErrNoteUpdateFailed), apperrors.GetErrorMessage(apperrors.ErrNoteUpdateFailed))
		}
		return
	}

	response.Success(c, note)
}

// DeleteNote 删除笔记
// @Summary 删除笔记
// @Description 删除笔记并级联移除标签关联，不再被引用的标签一并回收
// @Tags 笔记管理
// @Produce json
// @Param id path string true "笔记ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 404 {object} response.Response "笔记不存在"
// @Failure 500 {object} response.Response "服务器内部错误"
// @Router /api/v1/notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, apperrors.GetErrorMessage(apperrors.ErrUnauthorized))
		return
	}

	noteID := c.Param("id")
	if noteID == "" {
		response.BadRequest(c, apperrors.GetErrorMessage(apperrors.ErrInvalidParams))
		return
	}

	if err := h.noteService.DeleteNote(userID, noteID); err != nil {
		if apperrors.Is(err, apperrors.ErrNoteNotFound) {
			response.NotFound(c, apperrors.GetErrorMessage(apperrors.ErrNoteNotFound))
		} else {
			response.InternalServerError(c, apperrors.GetErrorMessage(apperrors.ErrNoteDeleteFailed))
		}
		return
	}

	response.SuccessWithMessage(c, "deleted", nil)
}
