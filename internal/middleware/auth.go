package middleware

import (
	"strings"

	"github.com/fastnote/fastnote/internal/errors"
	"github.com/fastnote/fastnote/internal/response"
	userservice "github.com/fastnote/fastnote/internal/service/user"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// 上下文键常量
const (
	// ContextUserID 当前用户的数据库主键
	ContextUserID = "user_id"
	// ContextUserIdentity 当前用户的外部身份标识
	ContextUserIdentity = "user_identity"
)

// AuthMiddleware 会话认证中间件
// 解析请求携带的会话令牌并将其映射为持久化用户
// 令牌签发由外部认证系统负责，这里只做校验和身份解析
type AuthMiddleware struct {
	secret      []byte
	userService userservice.UserService
}

// NewAuthMiddleware 创建会话认证中间件实例
// 参数:
//   secret - 会话令牌的签名密钥
//   userService - 用户服务接口
// 返回:
//   *AuthMiddleware - 中间件实例
func NewAuthMiddleware(secret string, userService userservice.UserService) *AuthMiddleware {
	return &AuthMiddleware{
		secret:      []byte(secret),
		userService: userService,
	}
}

// RequireAuth 要求请求携带有效会话
// 校验Bearer令牌，解析出外部身份后惰性创建用户记录，
// 并将用户ID写入gin上下文供后续处理器使用
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, errors.GetErrorMessage(errors.ErrUnauthorized))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			response.Unauthorized(c, errors.GetErrorMessage(errors.ErrSessionInvalid))
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			response.Unauthorized(c, errors.GetErrorMessage(errors.ErrSessionInvalid))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Unauthorized(c, errors.GetErrorMessage(errors.ErrSessionInvalid))
			return
		}

		identity, _ := claims["sub"].(string)
		if identity == "" {
			response.Unauthorized(c, errors.GetErrorMessage(errors.ErrSessionInvalid))
			return
		}
		email, _ := claims["email"].(string)
		name, _ := claims["name"].(string)

		// 首次出现的身份在此处惰性创建用户记录
		user, err := m.userService.GetOrCreateUser(identity, email, name)
		if err != nil {
			response.InternalServerError(c, errors.GetErrorMessage(errors.ErrInternalServer))
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserIdentity, user.UserID)
		c.Next()
	}
}

// CurrentUserID 从gin上下文读取当前用户ID
// 参数:
//   c - gin上下文
// 返回:
//   uint - 用户数据库主键
//   bool - 是否存在有效的当前用户
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
