// Package i18n 提供国际化支持
// 负责管理应用程序的语言包和翻译功能
package i18n

import (
	"sync"

	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/fastnote/fastnote/internal/logger"
)

// 支持的语言
const (
	LangJaJP = "ja-JP"
	LangEnUS = "en-US"
)

var (
	instance *I18n
	once     sync.Once

	// 语言包存储
	translations = map[string]map[string]string{
		LangJaJP: {
			"success":               "成功しました",
			"internal_server_error": "サーバー内部エラー",
			"invalid_params":        "パラメータが不正です",
			"unauthorized":          "認証されていません",
			"forbidden":             "アクセスが禁止されています",
			"not_found":             "リソースが見つかりません",
			"service_unavailable":   "サービスを利用できません",

			"user_not_found":      "ユーザーが見つかりません",
			"user_create_failed":  "ユーザーの作成に失敗しました",
			"session_invalid":     "セッションが無効です",

			"note_not_found":      "メモが見つかりません",
			"note_create_failed":  "メモの作成に失敗しました",
			"note_update_failed":  "メモの更新に失敗しました",
			"note_delete_failed":  "メモの削除に失敗しました",

			"tag_sync_failed":     "タグの同期に失敗しました",
			"tag_prune_failed":    "未使用タグの削除に失敗しました",
			"tag_list_failed":     "タグ一覧の取得に失敗しました",

			"database_connection":  "データベース接続エラー",
			"database_query":       "データベースクエリエラー",
			"database_transaction": "データベーストランザクションエラー",

			"unknown_error": "不明なエラー",
		},
		LangEnUS: {
			"success":               "Success",
			"internal_server_error": "Internal Server Error",
			"invalid_params":        "Invalid Parameters",
			"unauthorized":          "Unauthorized",
			"forbidden":             "Forbidden",
			"not_found":             "Resource Not Found",
			"service_unavailable":   "Service Unavailable",

			"user_not_found":     "User Not Found",
			"user_create_failed": "Failed to Create User",
			"session_invalid":    "Invalid Session",

			"note_not_found":     "Note Not Found",
			"note_create_failed": "Failed to Create Note",
			"note_update_failed": "Failed to Update Note",
			"note_delete_failed": "Failed to Delete Note",

			"tag_sync_failed":  "Failed to Sync Tags",
			"tag_prune_failed": "Failed to Prune Unused Tags",
			"tag_list_failed":  "Failed to List Tags",

			"database_connection":  "Database Connection Error",
			"database_query":       "Database Query Error",
			"database_transaction": "Database Transaction Error",

			"unknown_error": "Unknown Error",
		},
	}
)

// I18n 国际化管理器
type I18n struct {
	translators map[string]ut.Translator
	defaultLang string
}

// GetInstance 获取I18n单例
func GetInstance() *I18n {
	once.Do(func() {
		instance = &I18n{
			translators: make(map[string]ut.Translator),
			defaultLang: LangJaJP,
		}
		instance.initTranslators()
	})
	return instance
}

// initTranslators 初始化翻译器
func (i *I18n) initTranslators() {
	// 创建通用翻译器
	jaJP := ja.New()
	enUS := en_US.New()
	uni := ut.New(jaJP, enUS, jaJP)

	// 注册支持的语言 - 使用locale库的标识符
	langMappings := map[string]string{
		LangJaJP: "ja",    // 日文使用 "ja"
		LangEnUS: "en_US", // 英文使用 "en_US"
	}

	for ourLang, localeLang := range langMappings {
		trans, found := uni.GetTranslator(localeLang)
		if !found {
			logger.Errorf("初始化翻译器失败 for language %s (locale: %s): translator not found", ourLang, localeLang)
			continue
		}
		i.translators[ourLang] = trans
	}

	logger.Info("国际化翻译器初始化完成")
}

// Translate 根据键和语言获取翻译
func (i *I18n) Translate(key, lang string) string {
	// 检查语言是否支持，否则使用默认语言
	if _, exists := i.translators[lang]; !exists {
		lang = i.defaultLang
	}

	// 查找翻译
	if translation, found := translations[lang][key]; found {
		return translation
	}

	// 如果当前语言没有找到，尝试在默认语言中查找
	if lang != i.defaultLang {
		if translation, found := translations[i.defaultLang][key]; found {
			return translation
		}
	}

	logger.Warnf("未找到翻译: %s, 语言: %s", key, lang)
	return key
}

// SetDefaultLanguage 设置默认语言
func (i *I18n) SetDefaultLanguage(lang string) {
	i.defaultLang = lang
}

// GetDefaultLanguage 获取默认语言
func (i *I18n) GetDefaultLanguage() string {
	return i.defaultLang
}

// IsSupportedLanguage 检查语言是否支持
func (i *I18n) IsSupportedLanguage(lang string) bool {
	_, exists := i.translators[lang]
	return exists
}
