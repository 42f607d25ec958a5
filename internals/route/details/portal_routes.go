// file: internals/route/details/portal_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contentController "masjida_backend/internals/features/preachers/contents/controller"
	preacherController "masjida_backend/internals/features/preachers/preachers/controller"
	proposalController "masjida_backend/internals/features/sermons/proposals/controller"
	scheduleController "masjida_backend/internals/features/sermons/schedules/controller"
	helpController "masjida_backend/internals/features/users/help_requests/controller"
	authMiddleware "masjida_backend/internals/middlewares/auth"
)

// PortalRoutes: self-service pendakwah (aplikasi mobile) — wajib login.
func PortalRoutes(app *fiber.App, db *gorm.DB) {
	u := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	profileCtl := preacherController.NewPreacherPortalController(db)
	u.Get("/preachers/me", profileCtl.GetMyProfile)
	u.Put("/preachers/me", profileCtl.UpdateMyProfile)

	schedCtl := scheduleController.NewSermonSchedulePortalController(db)
	u.Get("/sermon-schedules/pending", schedCtl.GetPendingInvitations)
	u.Post("/sermon-schedules/:id/confirm", schedCtl.ConfirmSchedule)
	u.Post("/sermon-schedules/:id/reject", schedCtl.RejectSchedule)

	proposalCtl := proposalController.NewSermonProposalPortalController(db)
	u.Get("/sermon-proposals", proposalCtl.GetMyProposals)
	u.Post("/sermon-proposals", proposalCtl.CreateProposal)

	contentCtl := contentController.NewSermonContentController(db)
	u.Get("/sermon-contents", contentCtl.GetMyContents)
	u.Post("/sermon-contents", contentCtl.CreateContent)
	u.Put("/sermon-contents/:id", contentCtl.UpdateContent)
	u.Delete("/sermon-contents/:id", contentCtl.DeleteContent)
	u.Post("/sermon-contents/:id/publish", contentCtl.PublishContent)
	u.Post("/sermon-contents/:id/unpublish", contentCtl.UnpublishContent)

	helpCtl := helpController.NewHelpRequestController(db)
	u.Get("/help-requests", helpCtl.GetMyHelpRequests)
	u.Post("/help-requests", helpCtl.CreateHelpRequest)
}
