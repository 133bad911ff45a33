// Package errors 提供应用程序统一的错误码和错误类型
// 错误消息通过i18n包按语言解析
package errors

import (
	"fmt"

	"github.com/fastnote/fastnote/internal/i18n"
)

// ErrorCode 错误码类型
type ErrorCode int

// 定义错误码常量
const (
	// 通用错误码 (1000-1999)
	ErrSuccess            ErrorCode = 0    // 成功
	ErrInternalServer     ErrorCode = 1000 // 服务器内部错误
	ErrInvalidParams      ErrorCode = 1001 // 参数错误
	ErrUnauthorized       ErrorCode = 1002 // 未授权
	ErrForbidden          ErrorCode = 1003 // 禁止访问
	ErrNotFound           ErrorCode = 1004 // 资源未找到
	ErrServiceUnavailable ErrorCode = 1005 // 服务不可用

	// 用户与会话相关错误码 (2000-2999)
	ErrUserNotFound     ErrorCode = 2000 // 用户未找到
	ErrUserCreateFailed ErrorCode = 2001 // 用户创建失败
	ErrSessionInvalid   ErrorCode = 2002 // 会话无效

	// 笔记相关错误码 (3000-3999)
	// 笔记不存在与笔记属于他人对调用方不可区分，统一映射为未找到
	ErrNoteNotFound     ErrorCode = 3000 // 笔记未找到
	ErrNoteCreateFailed ErrorCode = 3001 // 笔记创建失败
	ErrNoteUpdateFailed ErrorCode = 3002 // 笔记更新失败
	ErrNoteDeleteFailed ErrorCode = 3003 // 笔记删除失败

	// 标签相关错误码 (4000-4999)
	ErrTagSyncFailed  ErrorCode = 4000 // 标签同步失败
	ErrTagPruneFailed ErrorCode = 4001 // 孤儿标签清理失败
	ErrTagListFailed  ErrorCode = 4002 // 标签列表获取失败

	// 数据库相关错误码 (5000-5999)
	ErrDatabaseConnection  ErrorCode = 5000 // 数据库连接错误
	ErrDatabaseQuery       ErrorCode = 5001 // 数据库查询错误
	ErrDatabaseTransaction ErrorCode = 5002 // 数据库事务错误
)

// AppError 应用错误结构体
// @Description 应用程序统一错误格式
type AppError struct {
	// 错误码
	Code ErrorCode `json:"code"`
	// 错误消息
	Message string `json:"message"`
	// 详细错误信息
	Details string `json:"details,omitempty"`
	// 原始错误
	OriginalError error `json:"-"`
}

// Error 实现error接口
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%d] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// WithDetails 添加详细错误信息
func (e *AppError) WithDetails(details string) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithOriginalError 添加原始错误
func (e *AppError) WithOriginalError(err error) *AppError {
	clone := *e
	clone.OriginalError = err
	if clone.Details == "" && err != nil {
		clone.Details = err.Error()
	}
	return &clone
}

// New 创建新的应用错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装原始错误
func Wrap(code ErrorCode, message string, err error) *AppError {
	appErr := &AppError{
		Code:          code,
		Message:       message,
		OriginalError: err,
	}
	if err != nil {
		appErr.Details = err.Error()
	}
	return appErr
}

// GetAppError 从错误中提取应用错误
func GetAppError(err error) (*AppError, bool) {
	appErr, ok := err.(*AppError)
	return appErr, ok
}

// Is 判断错误是否携带指定错误码
func Is(err error, code ErrorCode) bool {
	if appErr, ok := GetAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// 预定义的常用错误
var (
	// 通用错误
	ErrInternalServerError = New(ErrInternalServer, GetErrorMessage(ErrInternalServer))
	ErrInvalidParameters   = New(ErrInvalidParams, GetErrorMessage(ErrInvalidParams))
	ErrUnauthorizedAccess  = New(ErrUnauthorized, GetErrorMessage(ErrUnauthorized))
	ErrResourceNotFound    = New(ErrNotFound, GetErrorMessage(ErrNotFound))

	// 用户与会话相关错误
	ErrUserNotFoundError     = New(ErrUserNotFound, GetErrorMessage(ErrUserNotFound))
	ErrUserCreateFailedError = New(ErrUserCreateFailed, GetErrorMessage(ErrUserCreateFailed))
	ErrSessionInvalidError   = New(ErrSessionInvalid, GetErrorMessage(ErrSessionInvalid))

	// 笔记相关错误
	ErrNoteNotFoundError     = New(ErrNoteNotFound, GetErrorMessage(ErrNoteNotFound))
	ErrNoteCreateFailedError = New(ErrNoteCreateFailed, GetErrorMessage(ErrNoteCreateFailed))
	ErrNoteUpdateFailedError = New(ErrNoteUpdateFailed, GetErrorMessage(ErrNoteUpdateFailed))
	ErrNoteDeleteFailedError = New(ErrNoteDeleteFailed, GetErrorMessage(ErrNoteDeleteFailed))

	// 标签相关错误
	ErrTagSyncFailedError  = New(ErrTagSyncFailed, GetErrorMessage(ErrTagSyncFailed))
	ErrTagPruneFailedError = New(ErrTagPruneFailed, GetErrorMessage(ErrTagPruneFailed))
	ErrTagListFailedError  = New(ErrTagListFailed, GetErrorMessage(ErrTagListFailed))

	// 数据库相关错误
	ErrDatabaseConnectionError  = New(ErrDatabaseConnection, GetErrorMessage(ErrDatabaseConnection))
	ErrDatabaseQueryError       = New(ErrDatabaseQuery, GetErrorMessage(ErrDatabaseQuery))
	ErrDatabaseTransactionError = New(ErrDatabaseTransaction, GetErrorMessage(ErrDatabaseTransaction))
)

// 错误码到i18n键的映射
var errorCodeToKeyMap = map[ErrorCode]string{
	ErrSuccess:            "success",
	ErrInternalServer:     "internal_server_error",
	ErrInvalidParams:      "invalid_params",
	ErrUnauthorized:       "unauthorized",
	ErrForbidden:          "forbidden",
	ErrNotFound:           "not_found",
	ErrServiceUnavailable: "service_unavailable",

	ErrUserNotFound:     "user_not_found",
	ErrUserCreateFailed: "user_create_failed",
	ErrSessionInvalid:   "session_invalid",

	ErrNoteNotFound:     "note_not_found",
	ErrNoteCreateFailed: "note_create_failed",
	ErrNoteUpdateFailed: "note_update_failed",
	ErrNoteDeleteFailed: "note_delete_failed",

	ErrTagSyncFailed:  "tag_sync_failed",
	ErrTagPruneFailed: "tag_prune_failed",
	ErrTagListFailed:  "tag_list_failed",

	ErrDatabaseConnection:  "database_connection",
	ErrDatabaseQuery:       "database_query",
	ErrDatabaseTransaction: "database_transaction",
}

// GetErrorMessage 根据错误码获取错误消息（使用默认语言）
func GetErrorMessage(code ErrorCode) string {
	return GetErrorMessageWithLang(code, i18n.GetInstance().GetDefaultLanguage())
}

// GetErrorMessageWithLang 根据错误码和语言获取错误消息
func GetErrorMessageWithLang(code ErrorCode, lang string) string {
	key, exists := errorCodeToKeyMap[code]
	if !exists {
		key = "unknown_error"
	}
	return i18n.GetInstance().Translate(key, lang)
}
