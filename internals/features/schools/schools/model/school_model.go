// file: internals/features/schools/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: schools
   ========================= */

type School struct {
	SchoolID uuid.UUID `json:"school_id" gorm:"column:school_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	SchoolName string `json:"school_name" gorm:"column:school_name;type:text;not null"`

	SchoolAddress       *string `json:"school_address,omitempty"        gorm:"column:school_address;type:text"`
	SchoolContactPerson *string `json:"school_contact_person,omitempty" gorm:"column:school_contact_person;type:text"`
	SchoolEmail         *string `json:"school_email,omitempty"          gorm:"column:school_email;type:text"`
	SchoolPhone         *string `json:"school_phone,omitempty"          gorm:"column:school_phone;type:varchar(30)"`

	// nullable = belum diketahui (diperlakukan 0 di kalkulasi)
	SchoolStudentCount *int `json:"school_student_count,omitempty" gorm:"column:school_student_count;type:int;check:school_student_count >= 0"`

	// timestamps (soft delete manual, bukan gorm.DeletedAt)
	SchoolCreatedAt time.Time  `json:"school_created_at"           gorm:"column:school_created_at;type:timestamptz;not null;default:now()"`
	SchoolUpdatedAt time.Time  `json:"school_updated_at"           gorm:"column:school_updated_at;type:timestamptz;not null;default:now()"`
	SchoolDeletedAt *time.Time `json:"school_deleted_at,omitempty" gorm:"column:school_deleted_at;type:timestamptz"`
}

func (School) TableName() string { return "schools" }

/* =========================
   Hooks: refresh updated_at
   ========================= */

func (s *School) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if s.SchoolCreatedAt.IsZero() {
		s.SchoolCreatedAt = now
	}
	s.SchoolUpdatedAt = now
	return nil
}

func (s *School) BeforeUpdate(tx *gorm.DB) error {
	s.SchoolUpdatedAt = time.Now()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("school_deleted_at IS NULL")
}

/* =========================
   Helpers
   ========================= */

// StudentCountOrZero: nilai siswa untuk kalkulasi (nil → 0).
func (s *School) StudentCountOrZero() int {
	if s.SchoolStudentCount == nil {
		return 0
	}
	return *s.SchoolStudentCount
}
