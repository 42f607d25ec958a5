// file: internals/features/mosques/mosques/model/mosque_model_test.go
package model_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"masjida_backend/internals/databases"
	areaModel "masjida_backend/internals/features/areas/model"
	. "masjida_backend/internals/features/mosques/mosques/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, databases.AutoMigrate(db))
	return db
}

func TestJoinAddressParts(t *testing.T) {
	assert.Equal(t, "Jl. A, Tebet, 12345, Indonesia", JoinAddressParts("Jl. A", "Tebet", "12345", "Indonesia"))
	assert.Equal(t, "Jl. A, Indonesia", JoinAddressParts("Jl. A", "", "  ", "Indonesia"))
	assert.Equal(t, "", JoinAddressParts("", ""))
}

func TestDisplayLabel(t *testing.T) {
	assert.Equal(t, "[MSJ-01] Al-Falah (Tebet)", DisplayLabel("MSJ-01", "Al-Falah", "Tebet"))
	assert.Equal(t, "[MSJ-01] Al-Falah", DisplayLabel("MSJ-01", "Al-Falah", ""))
	assert.Equal(t, "[N/A] N/A", DisplayLabel("", "", ""))
}

// Field turunan dihitung ulang saat save, termasuk saat area-nya berganti.
func TestMosqueDerivedFields(t *testing.T) {
	db := openTestDB(t)

	tebet := areaModel.AreaModel{AreaName: "Tebet"}
	require.NoError(t, db.Create(&tebet).Error)
	senen := areaModel.AreaModel{AreaName: "Senen"}
	require.NoError(t, db.Create(&senen).Error)

	mosque := MosqueModel{
		MosqueCode:    "MSJ-01",
		MosqueName:    "Al-Falah",
		MosqueAreaID:  tebet.AreaID,
		MosqueStreet:  "Jl. A",
		MosqueZipCode: "12345",
		MosqueCountry: "Indonesia",
	}
	require.NoError(t, db.Create(&mosque).Error)
	assert.Equal(t, "Jl. A, Tebet, 12345, Indonesia", mosque.MosqueFullAddress)
	assert.Equal(t, "[MSJ-01] Al-Falah (Tebet)", mosque.MosqueDisplayName)

	mosque.MosqueAreaID = senen.AreaID
	require.NoError(t, db.Save(&mosque).Error)

	var reloaded MosqueModel
	require.NoError(t, db.First(&reloaded, "mosque_id = ?", mosque.MosqueID).Error)
	assert.Equal(t, "Jl. A, Senen, 12345, Indonesia", reloaded.MosqueFullAddress)
	assert.Equal(t, "[MSJ-01] Al-Falah (Senen)", reloaded.MosqueDisplayName)
}
