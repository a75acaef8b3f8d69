// file: internals/features/schools/schools/dto/school_dto.go
package dto

import (
	"encoding/json"
	"strings"

	model "billeasy_backend/internals/features/schools/schools/model"
)

/* =========================================================
   PatchField tri-state (Unset / Null / Set(value))
   ========================================================= */

type PatchField[T any] struct {
	Set   bool `json:"-"`
	Null  bool `json:"-"`
	Value *T   `json:"-"`
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Set = true
	if string(b) == "null" {
		p.Null = true
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreateSchoolRequest struct {
	SchoolName string `json:"school_name" validate:"required,max=200"`

	SchoolAddress       *string `json:"school_address"        validate:"omitempty,max=500"`
	SchoolContactPerson *string `json:"school_contact_person" validate:"omitempty,max=200"`
	SchoolEmail         *string `json:"school_email"          validate:"omitempty,email"`
	SchoolPhone         *string `json:"school_phone"          validate:"omitempty,max=30"`

	SchoolStudentCount *int `json:"school_student_count" validate:"omitempty,min=0"`
}

func (r *CreateSchoolRequest) ToModel() *model.School {
	return &model.School{
		SchoolName:          strings.TrimSpace(r.SchoolName),
		SchoolAddress:       r.SchoolAddress,
		SchoolContactPerson: r.SchoolContactPerson,
		SchoolEmail:         r.SchoolEmail,
		SchoolPhone:         r.SchoolPhone,
		SchoolStudentCount:  r.SchoolStudentCount,
	}
}

/* =========================================================
   REQUEST: Patch (Partial Update)
   ========================================================= */

type PatchSchoolRequest struct {
	SchoolName          PatchField[string] `json:"school_name"`
	SchoolAddress       PatchField[string] `json:"school_address"`
	SchoolContactPerson PatchField[string] `json:"school_contact_person"`
	SchoolEmail         PatchField[string] `json:"school_email"`
	SchoolPhone         PatchField[string] `json:"school_phone"`
	SchoolStudentCount  PatchField[int]    `json:"school_student_count"`
}

func (r *PatchSchoolRequest) ApplyTo(s *model.School) error {
	if r.SchoolName.Set && !r.SchoolName.Null && r.SchoolName.Value != nil {
		if name := strings.TrimSpace(*r.SchoolName.Value); name != "" {
			s.SchoolName = name
		}
	}
	if r.SchoolAddress.Set {
		if r.SchoolAddress.Null {
			s.SchoolAddress = nil
		} else {
			s.SchoolAddress = r.SchoolAddress.Value
		}
	}
	if r.SchoolContactPerson.Set {
		if r.SchoolContactPerson.Null {
			s.SchoolContactPerson = nil
		} else {
			s.SchoolContactPerson = r.SchoolContactPerson.Value
		}
	}
	if r.SchoolEmail.Set {
		if r.SchoolEmail.Null {
			s.SchoolEmail = nil
		} else {
			s.SchoolEmail = r.SchoolEmail.Value
		}
	}
	if r.SchoolPhone.Set {
		if r.SchoolPhone.Null {
			s.SchoolPhone = nil
		} else {
			s.SchoolPhone = r.SchoolPhone.Value
		}
	}
	if r.SchoolStudentCount.Set {
		if r.SchoolStudentCount.Null {
			s.SchoolStudentCount = nil
		} else if r.SchoolStudentCount.Value != nil && *r.SchoolStudentCount.Value >= 0 {
			s.SchoolStudentCount = r.SchoolStudentCount.Value
		}
	}
	return nil
}
