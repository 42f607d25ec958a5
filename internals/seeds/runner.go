package seeds

import (
	"gorm.io/gorm"

	"masjida_backend/internals/seeds/admins"
	"masjida_backend/internals/seeds/areas"
	"masjida_backend/internals/seeds/specializations"
)

// RunAllSeeds mengisi data master awal. Semua seed idempotent:
// baris yang sudah ada dilewati, jadi aman dijalankan berulang.
func RunAllSeeds(db *gorm.DB) {
	areas.SeedAreasFromJSON(db, "internals/seeds/areas/data_areas.json")
	specializations.SeedSpecializationsFromJSON(db, "internals/seeds/specializations/data_specializations.json")
	admins.SeedAdminsFromJSON(db, "internals/seeds/admins/data_admins.json")
}
