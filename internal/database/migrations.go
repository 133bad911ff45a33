// Package database 提供数据库迁移和初始化功能
// 包含用户、笔记、标签相关表的创建和索引优化
package database

import (
	"github.com/fastnote/fastnote/internal/logger"
	"gorm.io/gorm"
)

// Migrate 执行数据库表结构迁移
// 参数: db *gorm.DB - GORM数据库连接实例
// 返回值: error - 迁移失败时返回错误信息
// 用途: 创建用户、笔记、标签和关联表，并建立必要的索引
func Migrate(db *gorm.DB) error {
	logger.Info("开始执行数据库迁移...")

	// 注册自定义关联模型，many2many连接表使用NoteTag的表结构
	if err := db.SetupJoinTable(&Note{}, "Tags", &NoteTag{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&Tag{}, "Notes", &NoteTag{}); err != nil {
		return err
	}

	// 自动迁移所有表结构
	err := db.AutoMigrate(
		&User{},    // 用户表
		&Note{},    // 笔记主表
		&Tag{},     // 标签表
		&NoteTag{}, // 笔记标签关联表
	)
	if err != nil {
		return err
	}

	// 创建复合索引以优化查询性能
	if err := createIndexes(db); err != nil {
		return err
	}

	logger.Info("数据库迁移完成")
	return nil
}

// createIndexes 创建复合索引
// 参数: db *gorm.DB - GORM数据库连接实例
// 返回值: error - 创建索引失败时返回错误信息
// 用途: 优化按用户查询笔记列表和孤儿标签判定的性能
func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// 笔记列表查询优化：按用户查询并按创建时间倒序
		"CREATE INDEX IF NOT EXISTS idx_notes_user_created ON notes(user_id, created_at DESC) WHERE deleted_at IS NULL",
		// 标签列表查询优化：按用户查询并按名称排序
		"CREATE INDEX IF NOT EXISTS idx_tags_user_created ON tags(user_id, created_at DESC)",
	}

	// 执行所有索引创建语句
	for _, indexSQL := range indexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			logger.Errorf("创建索引失败: %s, 错误: %v", indexSQL, err)
			return err
		}
	}

	logger.Info("索引创建完成")
	return nil
}
