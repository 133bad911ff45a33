// Package tag 提供标签管理相关的业务逻辑服务
// 包含标签的查询以及原始标签输入的解析规则
package tag

import (
	"strings"

	"github.com/fastnote/fastnote/internal/database"
	apperrors "github.com/fastnote/fastnote/internal/errors"
	"gorm.io/gorm"
)

// TagService 标签服务接口
// 定义了标签查询的业务操作方法
type TagService interface {
	// ListTags 获取用户的全部标签
	// 参数:
	//   userID - 用户ID
	// 返回:
	//   []database.Tag - 标签列表，按名称升序
	//   error - 错误信息
	ListTags(userID uint) ([]database.Tag, error)
}

// ParseTagNames 解析原始标签输入
// 规则: 按逗号切分，去除首尾空白，丢弃空白项
// 大小写和重复项原样保留，重复的去重发生在关联写入阶段，
// 由(user_id, name)唯一约束天然兜底
// 参数:
//   raw - 原始逗号分隔的标签字符串
// 返回:
//   []string - 目标标签名称列表
func ParseTagNames(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// tagService 标签服务实现
type tagService struct {
	db *gorm.DB
}

// NewTagService 创建标签服务实例
// 参数:
//   db - 数据库连接
// 返回:
//   TagService - 标签服务接口实例
func NewTagService(db *gorm.DB) TagService {
	return &tagService{
		db: db,
	}
}

// ListTags 获取用户的全部标签
func (s *tagService) ListTags(userID uint) ([]database.Tag, error) {
	var tags []database.Tag
	if err := s.db.Where("user_id = ?", userID).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, apperrors.ErrTagListFailedError.WithOriginalError(err)
	}
	return tags, nil
}
