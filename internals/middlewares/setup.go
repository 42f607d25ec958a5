package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"masjida_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar dalam urutan yang benar:
// recovery paling luar, lalu CORS, logger, dan rate limiter global.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
