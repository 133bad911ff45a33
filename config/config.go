// Package config 提供基于viper的应用配置管理
// 支持配置文件、环境变量覆盖和运行时热加载
package config

import (
	"fmt"
	"strings"

	"github.com/fastnote/fastnote/internal/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`   // HTTP服务器配置
	Database DatabaseConfig `mapstructure:"database"` // 数据库配置
	Log      LogConfig      `mapstructure:"log"`      // 日志配置
	Auth     AuthConfig     `mapstructure:"auth"`     // 认证配置
}

// ServerConfig HTTP服务器配置
type ServerConfig struct {
	Port         int    `mapstructure:"port"`           // HTTP监听端口
	ReadTimeout  int    `mapstructure:"read_timeout"`   // 读超时（秒）
	WriteTimeout int    `mapstructure:"write_timeout"`  // 写超时（秒）
	EnableHTTPS  bool   `mapstructure:"enable_https"`   // 是否启用HTTPS
	EnableHTTP2  bool   `mapstructure:"enable_http2"`   // 是否启用HTTP/2（仅HTTPS下生效）
	HTTPSPort    int    `mapstructure:"https_port"`     // HTTPS监听端口
	TLSCertFile  string `mapstructure:"tls_cert_file"`  // TLS证书路径
	TLSKeyFile   string `mapstructure:"tls_key_file"`   // TLS私钥路径
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`            // 数据库驱动，目前支持sqlite
	DSN             string `mapstructure:"dsn"`               // 数据源名称
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`    // 最大空闲连接数
	MaxOpenConns    int    `mapstructure:"max_open_conns"`    // 最大打开连接数
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 连接最大存活时间（秒）
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`     // 日志级别
	Format   string `mapstructure:"format"`    // 日志格式 (json, text)
	Output   string `mapstructure:"output"`    // 输出方式 (console, file, both)
	FilePath string `mapstructure:"file_path"` // 日志文件路径
}

// AuthConfig 认证配置
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"` // 会话令牌签名密钥
}

// Load 加载应用配置
// 读取顺序: config.yaml -> 环境变量（FASTNOTE_前缀）覆盖
// 返回:
//   *Config - 配置实例
//   error - 加载失败时返回错误信息
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// 环境变量覆盖，例如 FASTNOTE_AUTH_JWT_SECRET
	v.SetEnvPrefix("FASTNOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// 配置文件缺失时使用默认值，其余错误向上传播
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 配置文件变更时热加载，重新解析到同一配置实例
	// 仅对之后读取配置的路径生效，已建立的监听端口和连接不受影响
	v.OnConfigChange(func(e fsnotify.Event) {
		if err := reload(v, cfg); err != nil {
			logger.Errorf("重新加载配置失败: %v", err)
			return
		}
		logger.Infof("配置已重新加载: %s", e.Name)
	})
	v.WatchConfig()

	return cfg, nil
}

// reload 将viper的当前状态重新解析到既有配置实例
func reload(v *viper.Viper, cfg *Config) error {
	var next Config
	if err := v.Unmarshal(&next); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	*cfg = next
	return nil
}

// setDefaults 设置默认配置
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.enable_https", false)
	v.SetDefault("server.enable_http2", false)
	v.SetDefault("server.https_port", 8443)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "fastnote.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 3600)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "console")
	v.SetDefault("log.file_path", "logs/fastnote.log")

	v.SetDefault("auth.jwt_secret", "")
}
