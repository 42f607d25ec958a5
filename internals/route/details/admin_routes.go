// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"masjida_backend/internals/constants"
	areaController "masjida_backend/internals/features/areas/controller"
	boardController "masjida_backend/internals/features/mosques/mosque_boards/controller"
	mosqueController "masjida_backend/internals/features/mosques/mosques/controller"
	preacherController "masjida_backend/internals/features/preachers/preachers/controller"
	proposalController "masjida_backend/internals/features/sermons/proposals/controller"
	scheduleController "masjida_backend/internals/features/sermons/schedules/controller"
	specializationController "masjida_backend/internals/features/specializations/controller"
	helpController "masjida_backend/internals/features/users/help_requests/controller"
	authMiddleware "masjida_backend/internals/middlewares/auth"
)

// AdminRoutes: pengelolaan data oleh pengurus masjid — wajib login + grant
// mosque-admin.
func AdminRoutes(app *fiber.App, db *gorm.DB) {
	a := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.GrantMiddlewareWithCustomError(
			constants.GrantMosqueAdmin,
			constants.RoleErrorMosqueAdmin("pengelolaan data"),
		),
	)

	areaCtl := areaController.NewAreaController(db)
	a.Post("/areas", areaCtl.CreateArea)
	a.Put("/areas/:id", areaCtl.UpdateArea)
	a.Delete("/areas/:id", areaCtl.DeleteArea)

	specCtl := specializationController.NewSpecializationController(db)
	a.Post("/specializations", specCtl.CreateSpecialization)
	a.Delete("/specializations/:id", specCtl.DeleteSpecialization)

	mosqueCtl := mosqueController.NewMosqueController(db)
	a.Post("/mosques", mosqueCtl.CreateMosque)
	a.Put("/mosques/:id", mosqueCtl.UpdateMosque)
	a.Delete("/mosques/:id", mosqueCtl.DeleteMosque)

	boardCtl := boardController.NewMosqueBoardController(db)
	a.Get("/mosque-boards", boardCtl.GetMosqueBoards)
	a.Post("/mosque-boards", boardCtl.CreateMosqueBoard)
	a.Put("/mosque-boards/:id", boardCtl.UpdateMosqueBoard)
	a.Delete("/mosque-boards/:id", boardCtl.DeleteMosqueBoard)

	preacherCtl := preacherController.NewPreacherAdminController(db)
	a.Get("/preachers", preacherCtl.GetAllPreachers)
	a.Post("/preachers", preacherCtl.CreatePreacher)
	a.Put("/preachers/:id", preacherCtl.UpdatePreacher)
	a.Delete("/preachers/:id", preacherCtl.DeletePreacher)
	a.Post("/preachers/:id/reset-password", preacherCtl.ResetPreacherPassword)

	schedCtl := scheduleController.NewSermonScheduleAdminController(db)
	a.Get("/sermon-schedules", schedCtl.GetSchedules)
	a.Post("/sermon-schedules", schedCtl.CreateSchedule)
	a.Put("/sermon-schedules/:id", schedCtl.UpdateSchedule)
	a.Post("/sermon-schedules/:id/send", schedCtl.SendInvitation)
	a.Post("/sermon-schedules/:id/cancel", schedCtl.CancelSchedule)

	proposalCtl := proposalController.NewSermonProposalAdminController(db)
	a.Get("/sermon-proposals", proposalCtl.GetProposals)
	a.Post("/sermon-proposals/:id/approve", proposalCtl.ApproveProposal)
	a.Post("/sermon-proposals/:id/reject", proposalCtl.RejectProposal)

	helpCtl := helpController.NewHelpRequestController(db)
	a.Post("/help-types", helpCtl.CreateHelpType)
	a.Post("/help-requests/:id/close", helpCtl.CloseHelpRequest)
}
