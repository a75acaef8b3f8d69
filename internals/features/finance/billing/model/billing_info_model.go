// file: internals/features/finance/billing/model/billing_info_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: billing_infos
   ========================= */

// BillingInfo: satu baris per sekolah (one-to-one by convention, diperkuat
// unique index). advance_paid bersifat kumulatif; advance_paid_date adalah
// tanggal update kumulatif terakhir.
type BillingInfo struct {
	BillingInfoID uuid.UUID `json:"billing_info_id" gorm:"column:billing_info_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	BillingInfoSchoolID uuid.UUID `json:"billing_info_school_id" gorm:"column:billing_info_school_id;type:uuid;not null;uniqueIndex:uq_billing_infos_school;constraint:OnDelete:CASCADE"`

	// harga per siswa per tahun (>= 0)
	BillingInfoQuotedPrice float64 `json:"billing_info_quoted_price" gorm:"column:billing_info_quoted_price;type:numeric(14,2);not null;check:billing_info_quoted_price >= 0"`

	// kumulatif yang sudah dikreditkan (effective amount, bukan raw)
	BillingInfoAdvancePaid     float64    `json:"billing_info_advance_paid"                gorm:"column:billing_info_advance_paid;type:numeric(14,2);not null;default:0;check:billing_info_advance_paid >= 0"`
	BillingInfoAdvancePaidDate *time.Time `json:"billing_info_advance_paid_date,omitempty" gorm:"column:billing_info_advance_paid_date;type:date"`

	// kolom optimistic-concurrency: update advance_paid selalu CAS di version
	BillingInfoVersion int `json:"billing_info_version" gorm:"column:billing_info_version;type:int;not null;default:1"`

	BillingInfoCreatedAt time.Time  `json:"billing_info_created_at"           gorm:"column:billing_info_created_at;type:timestamptz;not null;default:now()"`
	BillingInfoUpdatedAt time.Time  `json:"billing_info_updated_at"           gorm:"column:billing_info_updated_at;type:timestamptz;not null;default:now()"`
	BillingInfoDeletedAt *time.Time `json:"billing_info_deleted_at,omitempty" gorm:"column:billing_info_deleted_at;type:timestamptz"`
}

func (BillingInfo) TableName() string { return "billing_infos" }

func (b *BillingInfo) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if b.BillingInfoCreatedAt.IsZero() {
		b.BillingInfoCreatedAt = now
	}
	b.BillingInfoUpdatedAt = now
	if b.BillingInfoVersion == 0 {
		b.BillingInfoVersion = 1
	}
	return nil
}

func (b *BillingInfo) BeforeUpdate(tx *gorm.DB) error {
	b.BillingInfoUpdatedAt = time.Now()
	return nil
}

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("billing_info_deleted_at IS NULL")
}
