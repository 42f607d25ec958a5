// file: internals/route/details/public_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	areaController "masjida_backend/internals/features/areas/controller"
	mosqueController "masjida_backend/internals/features/mosques/mosques/controller"
	contentController "masjida_backend/internals/features/preachers/contents/controller"
	preacherController "masjida_backend/internals/features/preachers/preachers/controller"
	scheduleController "masjida_backend/internals/features/sermons/schedules/controller"
	specializationController "masjida_backend/internals/features/specializations/controller"
	helpController "masjida_backend/internals/features/users/help_requests/controller"
)

// PublicRoutes: read-model untuk web publik & mobile — tanpa auth.
func PublicRoutes(app *fiber.App, db *gorm.DB) {
	v1 := app.Group("/api/v1")

	areaCtl := areaController.NewAreaController(db)
	v1.Get("/areas", areaCtl.GetAllAreas)

	specCtl := specializationController.NewSpecializationController(db)
	v1.Get("/specializations", specCtl.GetAllSpecializations)

	mosqueCtl := mosqueController.NewMosqueController(db)
	v1.Get("/mosques", mosqueCtl.GetPublicMosques)
	v1.Get("/mosques/:id", mosqueCtl.GetPublicMosqueDetail)

	preacherCtl := preacherController.NewPreacherPublicController(db)
	v1.Get("/preachers", preacherCtl.GetPublicPreachers)
	v1.Get("/preachers/:id", preacherCtl.GetPublicPreacherDetail)

	schedCtl := scheduleController.NewSermonSchedulePublicController(db)
	v1.Get("/sermon-schedules", schedCtl.GetPublicSchedules)

	contentCtl := contentController.NewSermonContentController(db)
	v1.Get("/sermon-contents", contentCtl.GetPublicContents)

	helpCtl := helpController.NewHelpRequestController(db)
	v1.Get("/help-types", helpCtl.GetHelpTypes)
}
