package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AcceptLanguageMiddleware stores the request language in c.Locals. The header
// comes in as "pt-BR,pt;q=0.9,en;q=0.8"; only the primary tag matters here.
func AcceptLanguageMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get("Accept-Language", "en")
		lang := strings.Split(raw, ",")[0]
		lang = strings.Split(lang, "-")[0]
		c.Locals("lang", lang)
		return c.Next()
	}
}
