// Package user_test 提供用户服务的单元测试
// 覆盖外部身份到用户记录的惰性创建和解析
package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastnote/fastnote/internal/database"
	apperrors "github.com/fastnote/fastnote/internal/errors"
	userservice "github.com/fastnote/fastnote/internal/service/user"
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

// TestGetOrCreateUser 测试用户的惰性创建
func TestGetOrCreateUser(t *testing.T) {
	db := setupTestDB(t)
	userService := userservice.NewUserService(db)

	t.Run("首次访问创建用户", func(t *testing.T) {
		user, err := userService.GetOrCreateUser("identity-1", "midorikawa@example.com", "緑川けいた")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "identity-1", user.UserID)
		assert.Equal(t, "midorikawa@example.com", user.Email)
		assert.Equal(t, "緑川けいた", user.Name)
	})

	t.Run("再次访问复用既有记录", func(t *testing.T) {
		first, err := userService.GetOrCreateUser("identity-2", "yamada@example.com", "山田太郎")
		require.NoError(t, err)

		second, err := userService.GetOrCreateUser("identity-2", "yamada@example.com", "山田太郎")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		// 数据库中只有一条记录
		var count int64
		require.NoError(t, db.Model(&database.User{}).Where("user_id = ?", "identity-2").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("显示名称变化时刷新", func(t *testing.T) {
		first, err := userService.GetOrCreateUser("identity-3", "rename@example.com", "旧名称")
		require.NoError(t, err)

		second, err := userService.GetOrCreateUser("identity-3", "rename@example.com", "新名称")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "新名称", second.Name)

		var stored database.User
		require.NoError(t, db.Where("user_id = ?", "identity-3").First(&stored).Error)
		assert.Equal(t, "新名称", stored.Name)
	})

	t.Run("空名称不覆盖既有名称", func(t *testing.T) {
		_, err := userService.GetOrCreateUser("identity-4", "keep@example.com", "保留名称")
		require.NoError(t, err)

		user, err := userService.GetOrCreateUser("identity-4", "keep@example.com", "")
		require.NoError(t, err)
		assert.Equal(t, "保留名称", user.Name)
	})
}

// TestGetUserByIdentity 测试按外部身份查询用户
func TestGetUserByIdentity(t *testing.T) {
	db := setupTestDB(t)
	userService := userservice.NewUserService(db)

	created, err := userService.GetOrCreateUser("identity-1", "midorikawa@example.com", "緑川けいた")
	require.NoError(t, err)

	t.Run("查询存在的用户", func(t *testing.T) {
		user, err := userService.GetUserByIdentity("identity-1")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("查询不存在的用户", func(t *testing.T) {
		user, err := userService.GetUserByIdentity("unknown")
		assert.Nil(t, user)
		assert.True(t, apperrors.Is(err, apperrors.ErrUserNotFound))
	})
}
