package database

import (
	"time"
)

// User 用户模型
// 用户在首次通过认证访问时由系统惰性创建
// 外部身份标识（UserID）一经创建不可变更，仅显示名称允许更新
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`                         // 主键ID，自增
	UserID    string    `gorm:"not null;uniqueIndex;size:100" json:"user_id"` // 外部身份标识，稳定且唯一
	Email     string    `gorm:"not null;uniqueIndex;size:200" json:"email"`   // 用户邮箱，唯一
	Name      string    `gorm:"size:100" json:"name"`                         // 显示名称，可更新
	CreatedAt time.Time `json:"created_at"`                                   // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                   // 最后修改时间

	// 关联关系
	Notes []Note `gorm:"foreignKey:UserID" json:"notes,omitempty"` // 用户拥有的笔记列表
	Tags  []Tag  `gorm:"foreignKey:UserID" json:"tags,omitempty"`  // 用户拥有的标签列表
}

// TableName 指定User模型对应的数据库表名
// 返回值: "users" - 数据库中的表名
// 用途: GORM框架通过此方法确定模型对应的数据库表
func (User) TableName() string {
	return "users"
}
