// file: internals/features/schools/schools/dto/school_response_dto.go
package dto

import (
	billingDto "billeasy_backend/internals/features/finance/billing/dto"
	model "billeasy_backend/internals/features/schools/schools/model"
)

/* =========================================================
   RESPONSE: school + derived billing state
   ========================================================= */

// SchoolWithBillingResponse: satu sekolah plus state billing turunannya.
// Status ("paid"/"overdue"/"critical") selalu dihitung ulang saat read,
// tidak pernah disimpan.
type SchoolWithBillingResponse struct {
	School  *model.School                  `json:"school"`
	Billing billingDto.BillingInfoResponse `json:"billing"`
}
