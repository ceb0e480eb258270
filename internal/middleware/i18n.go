// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// I18nMiddleware resolves the response language from Accept-Language.
func I18nMiddleware(defaultLang string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", resolveLanguage(c.GetHeader("Accept-Language"), defaultLang))
		c.Next()
	}
}

func resolveLanguage(header, defaultLang string) string {
	if header == "" {
		return defaultLang
	}

	// Handle cases like "zh-TW,zh;q=0.9,en;q=0.8"
	first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
	switch strings.ToLower(first) {
	case "zh-tw", "zh-hant", "zh_tw", "zh-hk", "zh":
		return "zh_TW"
	case "en", "en-us", "en-gb":
		return "en"
	default:
		return defaultLang
	}
}
