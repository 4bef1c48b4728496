package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// languageKey is the context key the request language is stored under.
const languageKey = "requestLanguage"

// DefaultLanguage is used when neither the query parameter nor the
// Accept-Language header selects a supported language.
const DefaultLanguage = "en"

// supportedLanguages are the catalog's two localization variants.
var supportedLanguages = map[string]bool{"ar": true, "en": true}

// LanguageMiddleware resolves the request language from the `lang` query
// parameter, falling back to the Accept-Language header. Downstream handlers
// read it via RequestLanguage; it drives which localized variant exports and
// labels use.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := strings.ToLower(c.Query("lang"))
		if !supportedLanguages[lang] {
			lang = matchAcceptLanguage(c.GetHeader("Accept-Language"))
		}
		c.Set(languageKey, lang)
		c.Next()
	}
}

// RequestLanguage returns the language resolved by LanguageMiddleware,
// defaulting to English when the middleware did not run.
func RequestLanguage(c *gin.Context) string {
	if lang, exists := c.Get(languageKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return DefaultLanguage
}

// matchAcceptLanguage picks the first supported primary subtag out of an
// Accept-Language header. Quality weights are ignored: the header is already
// ordered by preference in practice.
func matchAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		primary := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if supportedLanguages[primary] {
			return primary
		}
	}
	return DefaultLanguage
}
