package database

import (
	"github.com/fastnote/fastnote/internal/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedData 初始化示例数据
// 参数: db *gorm.DB - GORM数据库连接实例
// 返回值: error - 初始化失败时返回错误信息
// 用途: 为开发和测试环境提供示例用户、标签、笔记及其关联
func SeedData(db *gorm.DB) error {
	logger.Info("开始初始化示例数据...")

	// 创建示例用户
	users := []User{
		{
			UserID: "keita.midorikawa",
			Email:  "keita.midorikawa@example.com",
			Name:   "Keita Midorikawa",
		},
		{
			UserID: "taro.yamada",
			Email:  "taro.yamada@example.com",
			Name:   "Taro Yamada",
		},
	}

	for i := range users {
		if err := db.Where(User{UserID: users[i].UserID}).FirstOrCreate(&users[i]).Error; err != nil {
			return err
		}
	}

	keita := users[0]

	// 创建示例标签
	tagNames := []string{"作業記録", "バグ修正", "機能開発", "会議メモ"}
	tags := make([]Tag, 0, len(tagNames))
	for _, name := range tagNames {
		tag := Tag{
			TagID:  uuid.New().String(),
			UserID: keita.ID,
			Name:   name,
		}
		if err := db.Where(Tag{UserID: keita.ID, Name: name}).FirstOrCreate(&tag).Error; err != nil {
			return err
		}
		tags = append(tags, tag)
	}

	// 创建示例笔记
	noteSeeds := []Note{
		{Title: "fast-noteプロジェクト立ち上げ", Content: "# プロジェクト立ち上げ"},
		{Title: "データベーススキーマ設計", Content: "# データベーススキーマ設計"},
		{Title: "認証実装方針", Content: "# 認証実装方針"},
		{Title: "UI/UXデザイン方針", Content: "# UI/UXデザイン方針"},
		{Title: "バグ: PostgreSQL接続エラー", Content: "# バグ: PostgreSQL接続エラー"},
	}

	notes := make([]Note, 0, len(noteSeeds))
	for _, seed := range noteSeeds {
		note := Note{
			NoteID:  uuid.New().String(),
			UserID:  keita.ID,
			Title:   seed.Title,
			Content: seed.Content,
		}
		if err := db.Where(Note{UserID: keita.ID, Title: seed.Title}).FirstOrCreate(&note).Error; err != nil {
			return err
		}
		notes = append(notes, note)
	}

	// 建立笔记与标签的关联
	associations := []NoteTag{
		{NoteID: notes[0].ID, TagID: tags[0].ID}, // 立ち上げ -> 作業記録
		{NoteID: notes[1].ID, TagID: tags[0].ID}, // スキーマ設計 -> 作業記録
		{NoteID: notes[1].ID, TagID: tags[2].ID}, // スキーマ設計 -> 機能開発
		{NoteID: notes[2].ID, TagID: tags[2].ID}, // 認証 -> 機能開発
		{NoteID: notes[3].ID, TagID: tags[0].ID}, // UI/UX -> 作業記録
		{NoteID: notes[4].ID, TagID: tags[1].ID}, // バグ -> バグ修正
	}

	for _, assoc := range associations {
		if err := db.Where(NoteTag{NoteID: assoc.NoteID, TagID: assoc.TagID}).FirstOrCreate(&assoc).Error; err != nil {
			return err
		}
	}

	logger.Infof("示例数据初始化完成: %d 个标签, %d 条笔记", len(tags), len(notes))
	return nil
}
