// Package tag_test 提供标签服务的单元测试
// 覆盖原始标签输入的解析规则和标签列表查询
package tag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastnote/fastnote/internal/database"
	tagservice "github.com/fastnote/fastnote/internal/service/tag"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB 设置测试数据库
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// TestParseTagNames 测试原始标签输入的解析规则
func TestParseTagNames(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "常规逗号分隔",
			raw:  "work, ideas, journal",
			want: []string{"work", "ideas", "journal"},
		},
		{
			name: "空白项被丢弃但重复项保留",
			raw:  "work, , ideas,work",
			want: []string{"work", "ideas", "work"},
		},
		{
			name: "首尾空白被去除",
			raw:  "  作業記録 ,バグ修正  ",
			want: []string{"作業記録", "バグ修正"},
		},
		{
			name: "大小写原样保留",
			raw:  "Work, work",
			want: []string{"Work", "work"},
		},
		{
			name: "空字符串",
			raw:  "",
			want: []string{},
		},
		{
			name: "仅逗号和空白",
			raw:  " , ,, ",
			want: []string{},
		},
		{
			name: "名称内部空白保留",
			raw:  "project alpha, 会議メモ",
			want: []string{"project alpha", "会議メモ"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tagservice.ParseTagNames(tt.raw))
		})
	}
}

// TestListTags 测试标签列表查询
func TestListTags(t *testing.T) {
	db := setupTestDB(t)
	tagService := tagservice.NewTagService(db)

	userA := &database.User{UserID: "user-a", Email: "a@example.com", Name: "A"}
	userB := &database.User{UserID: "user-b", Email: "b@example.com", Name: "B"}
	require.NoError(t, db.Create(userA).Error)
	require.NoError(t, db.Create(userB).Error)

	seed := []database.Tag{
		{TagID: "tag-1", UserID: userA.ID, Name: "journal"},
		{TagID: "tag-2", UserID: userA.ID, Name: "ideas"},
		{TagID: "tag-3", UserID: userA.ID, Name: "work"},
		{TagID: "tag-4", UserID: userB.ID, Name: "work"},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	t.Run("按名称升序返回当前用户的标签", func(t *testing.T) {
		tags, err := tagService.ListTags(userA.ID)
		require.NoError(t, err)
		require.Len(t, tags, 3)
		assert.Equal(t, "ideas", tags[0].Name)
		assert.Equal(t, "journal", tags[1].Name)
		assert.Equal(t, "work", tags[2].Name)
	})

	t.Run("不同用户的标签互相隔离", func(t *testing.T) {
		tags, err := tagService.ListTags(userB.ID)
		require.NoError(t, err)
		require.Len(t, tags, 1)
		assert.Equal(t, "work", tags[0].Name)
	})

	t.Run("无标签用户返回空列表", func(t *testing.T) {
		userC := &database.User{UserID: "user-c", Email: "c@example.com", Name: "C"}
		require.NoError(t, db.Create(userC).Error)

		tags, err := tagService.ListTags(userC.ID)
		require.NoError(t, err)
		assert.Empty(t, tags)
	})
}
