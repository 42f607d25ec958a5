package areas

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"masjida_backend/internals/features/areas/model"
)

type AreaSeed struct {
	AreaName string     `json:"area_name"`
	SubAreas []AreaSeed `json:"sub_areas,omitempty"`
}

func SeedAreasFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file area:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []AreaSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		seedArea(db, data, nil)
	}
}

func seedArea(db *gorm.DB, data AreaSeed, parentID *uuid.UUID) {
	var existing model.AreaModel
	if err := db.Where("area_name = ?", data.AreaName).First(&existing).Error; err == nil {
		log.Printf("ℹ️ Area '%s' sudah ada, dilewati.", data.AreaName)
	} else {
		existing = model.AreaModel{
			AreaName:     data.AreaName,
			AreaParentID: parentID,
		}
		if err := db.Create(&existing).Error; err != nil {
			log.Printf("❌ Gagal insert area '%s': %v", data.AreaName, err)
			return
		}
		log.Printf("✅ Berhasil insert area '%s'", data.AreaName)
	}

	for _, sub := range data.SubAreas {
		seedArea(db, sub, &existing.AreaID)
	}
}
