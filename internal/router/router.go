// Package router 负责HTTP路由装配
// 初始化服务与处理器，并挂载中间件和API路由
package router

import (
	"github.com/fastnote/fastnote/config"
	"github.com/fastnote/fastnote/internal/handler"
	"github.com/fastnote/fastnote/internal/middleware"
	noteservice "github.com/fastnote/fastnote/internal/service/note"
	tagservice "github.com/fastnote/fastnote/internal/service/tag"
	userservice "github.com/fastnote/fastnote/internal/service/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Router 路由配置
type Router struct {
	engine *gin.Engine
	db     *gorm.DB
}

// NewRouter 创建路由实例
func NewRouter(loggerMiddleware *middleware.LoggerMiddleware, db *gorm.DB, cfg *config.Config) *Router {
	// 设置Gin模式
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	// 初始化服务
	userService := userservice.NewUserService(db)
	noteService := noteservice.NewNoteService(db)
	tagService := tagservice.NewTagService(db)

	// 初始化处理器
	noteHandler := handler.NewNoteHandler(noteService)
	tagHandler := handler.NewTagHandler(tagService)
	healthHandler := handler.NewHealthHandler(db)

	// 初始化认证中间件
	authMiddleware := middleware.NewAuthMiddleware(cfg.Auth.JWTSecret, userService)

	// 使用中间件
	engine.Use(gin.Recovery())
	engine.Use(loggerMiddleware.RequestLogger())

	// 配置CORS
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// 健康检查（无需认证）
	engine.GET("/health", healthHandler.Check)

	// API路由组
	api := engine.Group("/api/v1")
	api.Use(authMiddleware.RequireAuth())
	{
		// 笔记管理接口
		notes := api.Group("/notes")
		{
			notes.GET("", noteHandler.ListNotes)          // 笔记列表（摘要）
			notes.POST("", noteHandler.CreateNote)        // 创建空白笔记
			notes.GET("/:id", noteHandler.GetNote)        // 笔记详情
			notes.PUT("/:id", noteHandler.UpdateNote)     // 更新标题/内容/标签
			notes.DELETE("/:id", noteHandler.DeleteNote)  // 删除笔记
		}

		// 标签管理接口
		tags := api.Group("/tags")
		{
			tags.GET("", tagHandler.ListTags) // 标签列表
		}
	}

	return &Router{
		engine: engine,
		db:     db,
	}
}

// GetEngine 获取Gin引擎
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// GetDB 获取数据库连接
func (r *Router) GetDB() *gorm.DB {
	return r.db
}
