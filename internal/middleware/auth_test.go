// Package middleware_test 提供会话认证中间件的单元测试
// 覆盖令牌校验、身份解析和用户惰性创建
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastnote/fastnote/internal/database"
	"github.com/fastnote/fastnote/internal/middleware"
	userservice "github.com/fastnote/fastnote/internal/service/user"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// setupTestRouter 构建带认证中间件的测试路由
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userService := userservice.NewUserService(db)
	authMiddleware := middleware.NewAuthMiddleware(testSecret, userService)

	engine := gin.New()
	engine.GET("/protected", authMiddleware.RequireAuth(), func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	return engine, db
}

// signTestToken 使用指定密钥签发测试令牌
func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// TestRequireAuth 测试会话认证
func TestRequireAuth(t *testing.T) {
	t.Run("有效令牌通过并惰性创建用户", func(t *testing.T) {
		engine, db := setupTestRouter(t)

		token := signTestToken(t, testSecret, jwt.MapClaims{
			"sub":   "identity-1",
			"email": "midorikawa@example.com",
			"name":  "緑川けいた",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		// 首次请求应当创建了用户记录
		var user database.User
		require.NoError(t, db.Where("user_id = ?", "identity-1").First(&user).Error)
		assert.Equal(t, "midorikawa@example.com", user.Email)
	})

	t.Run("缺少Authorization头", func(t *testing.T) {
		engine, _ := setupTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("非Bearer格式", func(t *testing.T) {
		engine, _ := setupTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("无法解析的令牌", func(t *testing.T) {
		engine, _ := setupTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("密钥不匹配的令牌", func(t *testing.T) {
		engine, _ := setupTestRouter(t)

		token := signTestToken(t, "wrong-secret", jwt.MapClaims{
			"sub": "identity-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("过期令牌", func(t *testing.T) {
		engine, _ := setupTestRouter(t)

		token := signTestToken(t, testSecret, jwt.MapClaims{
			"sub": "identity-1",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("缺少身份声明的令牌", func(t *testing.T) {
		engine, _ := setupTestRouter(t)

		token := signTestToken(t, testSecret, jwt.MapClaims{
			"email": "anonymous@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
