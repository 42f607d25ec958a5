package admins

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"masjida_backend/internals/constants"
	identityService "masjida_backend/internals/features/users/identity/service"
	"masjida_backend/internals/features/users/user/model"
)

type AdminSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SeedAdminsFromJSON membuat akun pengurus awal beserta grant-nya.
// Email yang sudah terdaftar hanya dipastikan grant-nya lengkap.
func SeedAdminsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file admin:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []AdminSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Admin dengan email '%s' sudah ada, dilewati.", data.Email)
			if err := identityService.EnsureGrants(db, existing.ID, constants.BoardMemberGrants...); err != nil {
				log.Printf("❌ Gagal melengkapi grant '%s': %v", data.Email, err)
			}
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		newUser := model.UserModel{
			UserName: data.UserName,
			Email:    data.Email,
			Password: string(hashed),
			IsActive: true,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal insert admin '%s': %v", data.Email, err)
			continue
		}
		if err := identityService.EnsureGrants(db, newUser.ID, constants.BoardMemberGrants...); err != nil {
			log.Printf("❌ Gagal memberi grant '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ Berhasil insert admin '%s'", data.Email)
	}
}
