// file: internals/databases/migrate.go
package databases

import (
	"log"

	"gorm.io/gorm"

	areaModel "masjida_backend/internals/features/areas/model"
	boardModel "masjida_backend/internals/features/mosques/mosque_boards/model"
	mosqueModel "masjida_backend/internals/features/mosques/mosques/model"
	contentModel "masjida_backend/internals/features/preachers/contents/model"
	preacherModel "masjida_backend/internals/features/preachers/preachers/model"
	proposalModel "masjida_backend/internals/features/sermons/proposals/model"
	scheduleModel "masjida_backend/internals/features/sermons/schedules/model"
	specializationModel "masjida_backend/internals/features/specializations/model"
	helpModel "masjida_backend/internals/features/users/help_requests/model"
	userModel "masjida_backend/internals/features/users/user/model"
)

// AutoMigrate menjalankan migrasi skema untuk seluruh model.
// Urutan mengikuti dependensi FK.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.UserGrantModel{},
		&areaModel.AreaModel{},
		&specializationModel.SpecializationModel{},
		&mosqueModel.MosqueModel{},
		&boardModel.MosqueBoardModel{},
		&preacherModel.PreacherModel{},
		&scheduleModel.SermonScheduleModel{},
		&proposalModel.SermonProposalModel{},
		&contentModel.SermonContentModel{},
		&helpModel.HelpTypeModel{},
		&helpModel.HelpRequestModel{},
	); err != nil {
		return err
	}
	log.Println("[INFO] Migrasi skema selesai")
	return nil
}
