package database

import (
	"time"

	"gorm.io/gorm"
)

// Note 笔记模型
// 笔记归属于唯一用户，标题和内容均允许为空（新建笔记即为空白笔记）
// 删除笔记时级联移除其标签关联，但不直接删除标签本身
type Note struct {
	ID        uint           `gorm:"primarykey" json:"id"`                        // 主键ID，自增
	NoteID    string         `gorm:"not null;uniqueIndex;size:36" json:"note_id"` // 业务ID，UUID格式
	UserID    uint           `gorm:"not null;index" json:"user_id"`               // 所属用户ID，外键
	Title     string         `gorm:"size:200" json:"title"`                       // 笔记标题，允许为空
	Content   string         `gorm:"type:text" json:"content"`                    // 笔记内容，允许为空
	CreatedAt time.Time      `json:"created_at"`                                  // 创建时间，创建后不可变
	UpdatedAt time.Time      `json:"updated_at"`                                  // 最后修改时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                              // 软删除时间戳，支持逻辑删除

	// 关联关系
	Tags []Tag `gorm:"many2many:note_tags;" json:"tags,omitempty"` // 多对多关联标签
}

// TableName 指定Note模型对应的数据库表名
// 返回值: "notes" - 数据库中的表名
// 用途: GORM框架通过此方法确定模型对应的数据库表
func (Note) TableName() string {
	return "notes"
}

// Tag 标签模型
// 标签归属于唯一用户，(user_id, name) 组合在数据库层面强制唯一
// 同一用户的多条笔记引用同名标签时共享同一条标签记录
// 不使用软删除：孤儿清理是物理删除，软删除行会持续占用唯一索引，
// 导致同名标签无法重建
type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                        // 主键ID，自增
	TagID     string    `gorm:"not null;uniqueIndex;size:36" json:"tag_id"`                  // 业务ID，UUID格式
	UserID    uint      `gorm:"not null;uniqueIndex:idx_tags_user_name" json:"user_id"`      // 所属用户ID
	Name      string    `gorm:"not null;uniqueIndex:idx_tags_user_name;size:50" json:"name"` // 标签名称，同一用户内唯一
	CreatedAt time.Time `json:"created_at"`                                                  // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                                  // 最后修改时间

	// 关联关系
	Notes []Note `gorm:"many2many:note_tags;" json:"notes,omitempty"` // 多对多关联笔记
}

// TableName 指定Tag模型对应的数据库表名
// 返回值: "tags" - 数据库中的表名
// 用途: GORM框架通过此方法确定模型对应的数据库表
func (Tag) TableName() string {
	return "tags"
}

// NoteTag 笔记标签关联模型
// 管理笔记与标签之间的多对多关系，两端必然属于同一用户
// 关联行为物理删除，保证孤儿标签判定读到真实的引用计数
type NoteTag struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                             // 主键ID，自增
	NoteID    uint      `gorm:"not null;uniqueIndex:idx_note_tags_note_tag" json:"note_id"`       // 笔记ID，外键
	TagID     uint      `gorm:"not null;uniqueIndex:idx_note_tags_note_tag;index" json:"tag_id"`  // 标签ID，外键
	CreatedAt time.Time `json:"created_at"`                                                       // 关联创建时间
}

// TableName 指定NoteTag模型对应的数据库表名
// 返回值: "note_tags" - 数据库中的表名
// 用途: GORM框架通过此方法确定模型对应的数据库表
func (NoteTag) TableName() string {
	return "note_tags"
}
