// Package user 提供用户身份解析相关的业务逻辑服务
// 将认证会话中的外部身份映射为持久化的用户记录
package user

import (
	"errors"

	apperrors "github.com/fastnote/fastnote/internal/errors"
	"github.com/fastnote/fastnote/internal/database"
	"github.com/fastnote/fastnote/internal/logger"
	"gorm.io/gorm"
)

// UserService 用户服务接口
// 定义了用户身份解析的业务操作方法
type UserService interface {
	// GetOrCreateUser 根据外部身份标识解析用户，首次出现时惰性创建
	// 参数:
	//   identityKey - 外部身份标识（稳定且唯一）
	//   email - 用户邮箱
	//   name - 显示名称
	// 返回:
	//   *database.User - 用户对象
	//   error - 错误信息
	GetOrCreateUser(identityKey, email, name string) (*database.User, error)

	// GetUserByIdentity 根据外部身份标识查询用户
	// 参数:
	//   identityKey - 外部身份标识
	// 返回:
	//   *database.User - 用户对象
	//   error - 错误信息
	GetUserByIdentity(identityKey string) (*database.User, error)
}

// userService 用户服务实现
type userService struct {
	db *gorm.DB
}

// NewUserService 创建用户服务实例
// 参数:
//   db - 数据库连接
// 返回:
//   UserService - 用户服务接口实例
func NewUserService(db *gorm.DB) UserService {
	return &userService{
		db: db,
	}
}

// GetOrCreateUser 根据外部身份标识解析用户，首次出现时惰性创建
// 并发的首次访问可能同时尝试创建同一用户，依赖user_id唯一索引兜底，
// 创建冲突时回退为查询复用既有记录
func (s *userService) GetOrCreateUser(identityKey, email, name string) (*database.User, error) {
	var user database.User
	err := s.db.Where("user_id = ?", identityKey).First(&user).Error
	if err == nil {
		// 身份标识不可变，仅刷新显示名称
		if name != "" && name != user.Name {
			if err := s.db.Model(&user).Update("name", name).Error; err != nil {
				return nil, apperrors.ErrDatabaseQueryError.WithOriginalError(err)
			}
			user.Name = name
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrDatabaseQueryError.WithOriginalError(err)
	}

	user = database.User{
		UserID: identityKey,
		Email:  email,
		Name:   name,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// 唯一索引冲突说明并发请求已经创建，重新查询复用
		var existing database.User
		if qErr := s.db.Where("user_id = ?", identityKey).First(&existing).Error; qErr == nil {
			return &existing, nil
		}
		logger.Errorf("创建用户失败: %s, 错误: %v", identityKey, err)
		return nil, apperrors.ErrUserCreateFailedError.WithOriginalError(err)
	}

	logger.Infof("首次访问，已创建用户: %s", identityKey)
	return &user, nil
}

// GetUserByIdentity 根据外部身份标识查询用户
func (s *userService) GetUserByIdentity(identityKey string) (*database.User, error) {
	var user database.User
	if err := s.db.Where("user_id = ?", identityKey).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFoundError
		}
		return nil, apperrors.ErrDatabaseQueryError.WithOriginalError(err)
	}
	return &user, nil
}
