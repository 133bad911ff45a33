package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad 测试配置加载
func TestLoad(t *testing.T) {
	t.Run("配置文件缺失时使用默认值", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("环境变量覆盖默认值", func(t *testing.T) {
		t.Setenv("FASTNOTE_SERVER_PORT", "9000")
		t.Setenv("FASTNOTE_AUTH_JWT_SECRET", "env-secret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 9000, cfg.Server.Port)
		assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	})
}

// TestReload 测试配置热加载
func TestReload(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "info", cfg.Log.Level)

	// 模拟配置文件变更后viper持有的新状态
	v.Set("server.port", 9090)
	v.Set("log.level", "debug")

	require.NoError(t, reload(v, &cfg))
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)

	// 未变更的配置段保持原值
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}
