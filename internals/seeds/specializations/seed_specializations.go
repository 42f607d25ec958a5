package specializations

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"masjida_backend/internals/features/specializations/model"
)

type SpecializationSeed struct {
	SpecializationName string `json:"specialization_name"`
}

func SeedSpecializationsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file spesialisasi:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []SpecializationSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.SpecializationModel
		if err := db.Where("specialization_name = ?", data.SpecializationName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Spesialisasi '%s' sudah ada, dilewati.", data.SpecializationName)
			continue
		}

		newSpec := model.SpecializationModel{SpecializationName: data.SpecializationName}
		if err := db.Create(&newSpec).Error; err != nil {
			log.Printf("❌ Gagal insert spesialisasi '%s': %v", data.SpecializationName, err)
		} else {
			log.Printf("✅ Berhasil insert spesialisasi '%s'", data.SpecializationName)
		}
	}
}
