package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "billeasy_backend/internals/features/schools/schools/model"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestPatchField_TriState(t *testing.T) {
	t.Run("absent key stays unset", func(t *testing.T) {
		var req PatchSchoolRequest
		require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
		assert.False(t, req.SchoolAddress.Set)
	})

	t.Run("explicit null", func(t *testing.T) {
		var req PatchSchoolRequest
		require.NoError(t, json.Unmarshal([]byte(`{"school_address": null}`), &req))
		assert.True(t, req.SchoolAddress.Set)
		assert.True(t, req.SchoolAddress.Null)
		assert.Nil(t, req.SchoolAddress.Value)
	})

	t.Run("concrete value", func(t *testing.T) {
		var req PatchSchoolRequest
		require.NoError(t, json.Unmarshal([]byte(`{"school_student_count": 120}`), &req))
		assert.True(t, req.SchoolStudentCount.Set)
		assert.False(t, req.SchoolStudentCount.Null)
		require.NotNil(t, req.SchoolStudentCount.Value)
		assert.Equal(t, 120, *req.SchoolStudentCount.Value)
	})
}

func TestPatchSchoolRequest_ApplyTo(t *testing.T) {
	base := func() *model.School {
		return &model.School{
			SchoolName:         "Old Name",
			SchoolAddress:      strPtr("Old Street 1"),
			SchoolEmail:        strPtr("old@example.com"),
			SchoolStudentCount: intPtr(50),
		}
	}

	t.Run("only provided fields change", func(t *testing.T) {
		s := base()
		var req PatchSchoolRequest
		require.NoError(t, json.Unmarshal([]byte(`{"school_name": "New Name"}`), &req))
		require.NoError(t, req.ApplyTo(s))

		assert.Equal(t, "New Name", s.SchoolName)
		assert.Equal(t, "Old Street 1", *s.SchoolAddress)
		assert.Equal(t, 50, *s.SchoolStudentCount)
	})

	t.Run("null clears nullable field", func(t *testing.T) {
		s := base()
		var req PatchSchoolRequest
		require.NoError(t, json.Unmarshal([]byte(`{"school_address": null, "school_student_count": null}`), &req))
		require.NoError(t, req.ApplyTo(s))

		assert.Nil(t, s.SchoolAddress)
		assert.Nil(t, s.SchoolStudentCount)
	})

	t.Run("empty name is ignored", func(t *testing.T) {
		s := base()
		var req PatchSchoolRequest
		require.NoError(t, json.Unmarshal([]byte(`{"school_name": "   "}`), &req))
		require.NoError(t, req.ApplyTo(s))

		assert.Equal(t, "Old Name", s.SchoolName)
	})

	t.Run("negative student count is ignored", func(t *testing.T) {
		s := base()
		var req PatchSchoolRequest
		require.NoError(t, json.Unmarshal([]byte(`{"school_student_count": -3}`), &req))
		require.NoError(t, req.ApplyTo(s))

		require.NotNil(t, s.SchoolStudentCount)
		assert.Equal(t, 50, *s.SchoolStudentCount)
	})
}

func TestCreateSchoolRequest_ToModel(t *testing.T) {
	req := CreateSchoolRequest{
		SchoolName:         "  SMA Harapan  ",
		SchoolEmail:        strPtr("a@b.c"),
		SchoolStudentCount: intPtr(200),
	}
	m := req.ToModel()
	assert.Equal(t, "SMA Harapan", m.SchoolName)
	assert.Equal(t, "a@b.c", *m.SchoolEmail)
	assert.Equal(t, 200, *m.SchoolStudentCount)
	assert.Nil(t, m.SchoolAddress)
}
