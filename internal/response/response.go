// Package response 提供统一的API响应格式
// 所有HTTP处理器通过本包构造响应，保证返回结构一致
package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Response 统一返回值结构体
// @Description API统一响应格式
type Response struct {
	// 是否成功
	Success bool `json:"success" example:"true"`
	// 状态码，0表示成功，非0表示失败
	Code int `json:"code" example:"0"`
	// 响应消息
	Message string `json:"message" example:"success"`
	// 错误描述，仅失败时返回
	Error string `json:"error,omitempty"`
	// 响应数据
	Data interface{} `json:"data,omitempty"`
	// 请求ID，用于链路追踪
	RequestID string `json:"request_id,omitempty" example:"req_123456789"`
	// 时间戳
	Timestamp int64 `json:"timestamp" example:"1640995200"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success:   true,
		Code:      0,
		Message:   "success",
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: time.Now().Unix(),
	})
}

// SuccessWithMessage 带消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success:   true,
		Code:      0,
		Message:   message,
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: time.Now().Unix(),
	})
}

// Failure 业务失败响应
// HTTP状态保持200，调用方通过success/error字段感知失败
// 用于编辑器等需要保留本地未保存状态的场景
func Failure(c *gin.Context, code int, errMsg string) {
	c.JSON(http.StatusOK, Response{
		Success:   false,
		Code:      code,
		Message:   "failure",
		Error:     errMsg,
		RequestID: getRequestID(c),
		Timestamp: time.Now().Unix(),
	})
}

// BadRequest 400错误响应
func BadRequest(c *gin.Context, message string) {
	abortWithStatus(c, http.StatusBadRequest, 400, message)
}

// Unauthorized 401错误响应
func Unauthorized(c *gin.Context, message string) {
	abortWithStatus(c, http.StatusUnauthorized, 401, message)
}

// NotFound 404错误响应
func NotFound(c *gin.Context, message string) {
	abortWithStatus(c, http.StatusNotFound, 404, message)
}

// InternalServerError 500错误响应
func InternalServerError(c *gin.Context, message string) {
	abortWithStatus(c, http.StatusInternalServerError, 500, message)
}

// ServiceUnavailable 503错误响应
func ServiceUnavailable(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusServiceUnavailable, Response{
		Success:   false,
		Code:      503,
		Message:   "failure",
		Error:     message,
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: time.Now().Unix(),
	})
}

// abortWithStatus 以指定HTTP状态返回错误并中断后续处理
func abortWithStatus(c *gin.Context, status, code int, message string) {
	c.AbortWithStatusJSON(status, Response{
		Success:   false,
		Code:      code,
		Message:   "failure",
		Error:     message,
		RequestID: getRequestID(c),
		Timestamp: time.Now().Unix(),
	})
}

// getRequestID 获取请求ID
// 从gin上下文中获取请求ID，用于链路追踪
func getRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}
