// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "masjida_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT (web publik & mobile)
	log.Println("[INFO] Setting up PUBLIC group...")
	routeDetails.PublicRoutes(app, db)

	// PORTAL → JWT (pendakwah)
	log.Println("[INFO] Setting up PORTAL group...")
	routeDetails.PortalRoutes(app, db)

	// ADMIN → JWT + grant mosque-admin (pengurus)
	log.Println("[INFO] Setting up ADMIN group...")
	routeDetails.AdminRoutes(app, db)
}
