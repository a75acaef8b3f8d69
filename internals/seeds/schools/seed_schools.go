package schools

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"billeasy_backend/internals/features/schools/schools/model"
)

// Struktur sesuai dengan dto.CreateSchoolRequest
type SchoolSeed struct {
	SchoolName          string  `json:"school_name"`
	SchoolAddress       *string `json:"school_address"`
	SchoolContactPerson *string `json:"school_contact_person"`
	SchoolEmail         *string `json:"school_email"`
	SchoolPhone         *string `json:"school_phone"`
	SchoolStudentCount  *int    `json:"school_student_count"`
}

func SeedSchoolsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []SchoolSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, m := range seeds {
		var existing model.School
		if err := db.Scopes(model.ScopeAlive).
			Where("school_name = ?", m.SchoolName).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ School '%s' sudah ada, lewati...", m.SchoolName)
			continue
		}

		newSchool := model.School{
			SchoolName:          m.SchoolName,
			SchoolAddress:       m.SchoolAddress,
			SchoolContactPerson: m.SchoolContactPerson,
			SchoolEmail:         m.SchoolEmail,
			SchoolPhone:         m.SchoolPhone,
			SchoolStudentCount:  m.SchoolStudentCount,
		}

		if err := db.Create(&newSchool).Error; err != nil {
			log.Printf("❌ Gagal insert school '%s': %v", m.SchoolName, err)
		} else {
			log.Printf("✅ Berhasil insert school '%s' (%s)", newSchool.SchoolName, newSchool.SchoolID)
		}
	}
}
