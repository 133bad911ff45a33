// Package note 提供笔记管理相关的业务逻辑服务
// 包含笔记的创建、修改、删除、查询，以及笔记与标签的同步协议：
// 按目标名称列表整体替换笔记的标签关联，并在每次可能减少标签引用的
// 变更之后清理不再被任何笔记引用的孤儿标签
package note

import (
	"errors"
	"time"

	"github.com/fastnote/fastnote/internal/database"
	apperrors "github.com/fastnote/fastnote/internal/errors"
	"github.com/fastnote/fastnote/internal/logger"
	tagservice "github.com/fastnote/fastnote/internal/service/tag"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteService 笔记服务接口
// 所有方法都显式接收用户ID，笔记的存在性和归属在查询中一并校验：
// 访问他人的笔记与访问不存在的笔记对调用方不可区分
type NoteService interface {
	// ListNotes 获取用户的笔记列表
	// 出于传输效率，列表不包含笔记内容，按创建时间倒序排列
	// 参数:
	//   userID - 用户ID
	// 返回:
	//   []NoteSummary - 笔记摘要列表
	//   error - 错误信息
	ListNotes(userID uint) ([]NoteSummary, error)

	// GetNoteByID 获取笔记详情（含标签）
	// 参数:
	//   userID - 用户ID
	//   noteID - 笔记业务ID
	// 返回:
	//   *database.Note - 笔记信息
	//   error - 错误信息
	GetNoteByID(userID uint, noteID string) (*database.Note, error)

	// CreateNote 创建空白笔记
	// 立即返回新笔记的业务ID，供前端开始编辑
	// 参数:
	//   userID - 用户ID
	// 返回:
	//   *database.Note - 创建的笔记信息
	//   error - 错误信息
	CreateNote(userID uint) (*database.Note, error)

	// UpdateNote 更新笔记的标题、内容和标签
	// 标题、内容和标签关联在同一事务内更新，要么全部生效要么全部回滚
	// 参数:
	//   userID - 用户ID
	//   noteID - 笔记业务ID
	//   req - 更新请求
	// 返回:
	//   *database.Note - 更新后的笔记信息
	//   error - 错误信息
	UpdateNote(userID uint, noteID string, req *UpdateNoteRequest) (*database.Note, error)

	// DeleteNote 删除笔记
	// 级联移除标签关联，随后清理因此失去全部引用的标签
	// 参数:
	//   userID - 用户ID
	//   noteID - 笔记业务ID
	// 返回:
	//   error - 错误信息
	DeleteNote(userID uint, noteID string) error
}

// UpdateNoteRequest 更新笔记请求
type UpdateNoteRequest struct {
	Title   string `json:"title" binding:"max=200"` // 笔记标题，允许为空
	Content string `json:"content"`                 // 笔记内容，允许为空
	Tags    string `json:"tags"`                    // 逗号分隔的原始标签输入
}

// NoteSummary 笔记摘要
// 列表展示用，不携带笔记内容
type NoteSummary struct {
	NoteID    string    `json:"note_id"`    // 笔记业务ID
	Title     string    `json:"title"`      // 笔记标题
	Tags      []string  `json:"tags"`       // 标签名称列表
	CreatedAt time.Time `json:"created_at"` // 创建时间
}

// noteService 笔记服务实现
type noteService struct {
	db *gorm.DB
}

// NewNoteService 创建笔记服务实例
// 参数:
//   db - 数据库连接
// 返回:
//   NoteService - 笔记服务接口实例
func NewNoteService(db *gorm.DB) NoteService {
	return &noteService{
		db: db,
	}
}

// ListNotes 获取用户的笔记列表
func (s *noteService) ListNotes(userID uint) ([]NoteSummary, error) {
	var notes []database.Note
	err := s.db.
		Select("id", "note_id", "user_id", "title", "created_at").
		Where("user_id = ?", userID).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name ASC")
		}).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, apperrors.ErrDatabaseQueryError.WithOriginalError(err)
	}

	summaries := make([]NoteSummary, 0, len(notes))
	for _, note := range notes {
		names := make([]string, 0, len(note.Tags))
		for _, tag := range note.Tags {
			names = append(names, tag.Name)
		}
		summaries = append(summaries, NoteSummary{
			NoteID:    note.NoteID,
			Title:     note.Title,
			Tags:      names,
			CreatedAt: note.CreatedAt,
		})
	}
	return summaries, nil
}

// GetNoteByID 获取笔记详情（含标签）
func (s *noteService) GetNoteByID(userID uint, noteID string) (*database.Note, error) {
	var note database.Note
	err := s.db.
		Where("note_id = ? AND user_id = ?", noteID, userID).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name ASC")
		}).
		First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoteNotFoundError
		}
		return nil, apperrors.ErrDatabaseQueryError.WithOriginalError(err)
	}
	return &note, nil
}

// CreateNote 创建空白笔记
func (s *noteService) CreateNote(userID uint) (*database.Note, error) {
	note := &database.Note{
		NoteID: uuid.New().String(),
		UserID: userID,
	}
	if err := s.db.Create(note).Error; err != nil {
		logger.Errorf("创建笔记失败: %v", err)
		return nil, apperrors.ErrNoteCreateFailedError.WithOriginalError(err)
	}

	logger.Infof("已创建空白笔记: %s", note.NoteID)
	return note, nil
}

// UpdateNote 更新笔记的标题、内容和标签
func (s *noteService) UpdateNote(userID uint, noteID string, req *UpdateNoteRequest) (*database.Note, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, apperrors.ErrDatabaseTransactionError.WithOriginalError(tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// 归属校验与存在性校验合并在同一条查询里
	var note database.Note
	if err := tx.Where("note_id = ? AND user_id = ?", noteID, userID).First(&note).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoteNotFoundError
		}
		return nil, apperrors.ErrDatabaseQueryError.WithOriginalError(err)
	}

	// 标题和内容整体覆盖，空字符串同样是合法值
	updates := map[string]interface{}{
		"title":   req.Title,
		"content": req.Content,
	}
	if err := tx.Model(&note).Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, apperrors.ErrNoteUpdateFailedError.WithOriginalError(err)
	}

	// 同步标签关联，随后在同一事务内清理孤儿标签
	names := tagservice.ParseTagNames(req.Tags)
	if err := s.syncNoteTags(tx, &note, names); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := s.pruneOrphanTags(tx, userID); err != nil {
		tx.Rollback()
		return nil, err
	}

	// 返回值在事务内读出，提交后的并发删除不会把成功的更新变成未找到
	var updated database.Note
	err := tx.
		Where("note_id = ? AND user_id = ?", noteID, userID).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name ASC")
		}).
		First(&updated).Error
	if err != nil {
		tx.Rollback()
		return nil, apperrors.ErrDatabaseQueryError.WithOriginalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.ErrDatabaseTransactionError.WithOriginalError(err)
	}

	return &updated, nil
}

// DeleteNote 删除笔记
func (s *noteService) DeleteNote(userID uint, noteID string) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return apperrors.ErrDatabaseTransactionError.WithOriginalError(tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var note database.Note
	if err := tx.Where("note_id = ? AND user_id = ?", noteID, userID).First(&note).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoteNotFoundError
		}
		return apperrors.ErrDatabaseQueryError.WithOriginalError(err)
	}

	// 先移除标签关联，再删除笔记本身
	if err := tx.Where("note_id = ?", note.ID).Delete(&database.NoteTag{}).Error; err != nil {
		tx.Rollback()
		return apperrors.ErrNoteDeleteFailedError.WithOriginalError(err)
	}
	if err := tx.Delete(&note).Error; err != nil {
		tx.Rollback()
		return apperrors.ErrNoteDeleteFailedError.WithOriginalError(err)
	}

	// 失去最后一条引用的标签在此处被回收
	if err := s.pruneOrphanTags(tx, userID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.ErrDatabaseTransactionError.WithOriginalError(err)
	}

	logger.Infof("已删除笔记: %s", noteID)
	return nil
}

// syncNoteTags 将笔记的标签关联整体替换为目标名称列表
// 对每个目标名称执行connect-or-create：存在即复用，缺失则创建；
// 并发创建同名标签时依赖(user_id, name)唯一索引兜底，冲突后重查复用。
// 替换是全量的：先清空既有关联，再逐一写入解析后的目标集合，
// 输入中的重复名称在写入阶段按标签ID去重
func (s *noteService) syncNoteTags(tx *gorm.DB, note *database.Note, names []string) error {
	seen := make(map[uint]bool, len(names))
	resolved := make([]database.Tag, 0, len(names))
	for _, name := range names {
		tag, err := s.connectOrCreateTag(tx, note.UserID, name)
		if err != nil {
			return err
		}
		if seen[tag.ID] {
			continue
		}
		seen[tag.ID] = true
		resolved = append(resolved, *tag)
	}

	// 全量替换既有关联
	if err := tx.Where("note_id = ?", note.ID).Delete(&database.NoteTag{}).Error; err != nil {
		return apperrors.ErrTagSyncFailedError.WithOriginalError(err)
	}
	for _, tag := range resolved {
		assoc := database.NoteTag{
			NoteID: note.ID,
			TagID:  tag.ID,
		}
		if err := tx.Create(&assoc).Error; err != nil {
			return apperrors.ErrTagSyncFailedError.WithOriginalError(err)
		}
	}
	return nil
}

// connectOrCreateTag 按(用户, 名称)复用或创建标签
func (s *noteService) connectOrCreateTag(tx *gorm.DB, userID uint, name string) (*database.Tag, error) {
	var tag database.Tag
	err := tx.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTagSyncFailedError.WithOriginalError(err)
	}

	tag = database.Tag{
		TagID:  uuid.New().String(),
		UserID: userID,
		Name:   name,
	}
	if err := tx.Create(&tag).Error; err != nil {
		// 唯一索引冲突说明并发操作已创建同名标签，重查复用
		var existing database.Tag
		if qErr := tx.Where("user_id = ? AND name = ?", userID, name).First(&existing).Error; qErr == nil {
			return &existing, nil
		}
		return nil, apperrors.ErrTagSyncFailedError.WithOriginalError(err)
	}
	return &tag, nil
}

// pruneOrphanTags 删除用户名下不再被任何笔记引用的标签
// 无条件回收，删除零行也是合法结果，可安全重复执行
func (s *noteService) pruneOrphanTags(tx *gorm.DB, userID uint) error {
	err := tx.
		Where("user_id = ? AND NOT EXISTS (SELECT 1 FROM note_tags WHERE note_tags.tag_id = tags.id)", userID).
		Delete(&database.Tag{}).Error
	if err != nil {
		return apperrors.ErrTagPruneFailedError.WithOriginalError(err)
	}
	return nil
}
