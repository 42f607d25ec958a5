package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	areaModel "masjida_backend/internals/features/areas/model"
)

type MosqueModel struct {
	MosqueID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"mosque_id"`
	MosqueCode        string         `gorm:"type:varchar(50);not null" json:"mosque_code"`
	MosqueName        string         `gorm:"type:varchar(100);not null" json:"mosque_name"`
	MosqueAreaID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"mosque_area_id"`
	MosqueStreet      string         `gorm:"type:text" json:"mosque_street"`
	MosqueCity        string         `gorm:"type:varchar(100)" json:"mosque_city"`
	MosqueProvince    string         `gorm:"type:varchar(100)" json:"mosque_province"`
	MosqueZipCode     string         `gorm:"type:varchar(20)" json:"mosque_zip_code"`
	MosqueCountry     string         `gorm:"type:varchar(100)" json:"mosque_country"`
	MosquePhone       string         `gorm:"type:varchar(30)" json:"mosque_phone"`
	MosqueEmail       string         `gorm:"type:varchar(255)" json:"mosque_email"`
	MosqueWebsite     string         `gorm:"type:text" json:"mosque_website"`
	MosqueDescription string         `gorm:"type:text" json:"mosque_description"`
	MosqueLatitude    *float64       `gorm:"type:decimal(10,7)" json:"mosque_latitude,omitempty"`
	MosqueLongitude   *float64       `gorm:"type:decimal(10,7)" json:"mosque_longitude,omitempty"`
	MosqueImageURL    string         `gorm:"type:text" json:"mosque_image_url"`
	MosqueFullAddress string         `gorm:"type:text" json:"mosque_full_address"`
	MosqueDisplayName string         `gorm:"type:text" json:"mosque_display_name"`
	MosqueCreatedAt   time.Time      `gorm:"autoCreateTime" json:"mosque_created_at"`
	MosqueUpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"mosque_updated_at"`
	MosqueDeletedAt   gorm.DeletedAt `gorm:"column:mosque_deleted_at" json:"mosque_deleted_at,omitempty"`

	Area *areaModel.AreaModel `gorm:"foreignKey:MosqueAreaID;references:AreaID" json:"area,omitempty"`
}

func (MosqueModel) TableName() string {
	return "mosques"
}

func (m *MosqueModel) BeforeCreate(tx *gorm.DB) error {
	if m.MosqueID == uuid.Nil {
		m.MosqueID = uuid.New()
	}
	return nil
}

// BeforeSave menghitung ulang full_address & display_name secara sinkron
// setiap kali field sumbernya berubah, jadi nilai basi tidak pernah terbaca
// setelah write selesai.
func (m *MosqueModel) BeforeSave(tx *gorm.DB) error {
	areaName := ""
	if m.MosqueAreaID != uuid.Nil {
		if err := tx.Table("areas").
			Select("area_name").
			Where("area_id = ? AND area_deleted_at IS NULL", m.MosqueAreaID).
			Scan(&areaName).Error; err != nil {
			return err
		}
	}
	m.MosqueFullAddress = JoinAddressParts(m.MosqueStreet, areaName, m.MosqueZipCode, m.MosqueCountry)
	m.MosqueDisplayName = DisplayLabel(m.MosqueCode, m.MosqueName, areaName)
	return nil
}

// JoinAddressParts menggabungkan bagian alamat non-kosong dengan ", ".
func JoinAddressParts(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

// DisplayLabel menghasilkan format "[CODE] Nama (Area)".
func DisplayLabel(code, name, areaName string) string {
	if code == "" {
		code = "N/A"
	}
	if name == "" {
		name = "N/A"
	}
	label := fmt.Sprintf("[%s] %s", code, name)
	if areaName != "" {
		label += fmt.Sprintf(" (%s)", areaName)
	}
	return label
}
