package handler

import (
	"net/http"
	"time"

	"github.com/fastnote/fastnote/internal/database"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler 健康检查处理器
// 供外部编排系统的liveness/readiness探针使用
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler 创建健康检查处理器实例
// 参数:
//   db - 数据库连接
// 返回:
//   *HealthHandler - 健康检查处理器实例
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// Check 健康检查
// @Summary 健康检查
// @Description 对数据库发起一次最小连接探测并返回服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{} "服务正常"
// @Failure 503 {object} map[string]interface{} "数据库不可达"
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	timestamp := time.Now().Format(time.RFC3339)

	if err := database.Ping(h.db); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "error",
			"timestamp": timestamp,
			"database":  "disconnected",
			"error":     err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": timestamp,
		"database":  "connected",
	})
}
