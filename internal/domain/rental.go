package domain

import "time"

type RentalStatus string

const (
	RentalPending   RentalStatus = "pending"
	RentalActive    RentalStatus = "active"
	RentalFinished  RentalStatus = "finished"
	RentalCancelled RentalStatus = "cancelled"
)

// Rental is one offer/agreement between an owner and a tenant for a
// listing. Per listing at most one rental may be pending or active at any
// instant; once finished or cancelled a rental is immutable history.
type Rental struct {
	ID        int64        `json:"id"`
	ListingID int64        `json:"listing_id" gorm:"index"`
	OwnerID   int64        `json:"owner_id" gorm:"index"`
	TenantID  int64        `json:"tenant_id" gorm:"index"`
	Status    RentalStatus `json:"status"`
	StartDate *time.Time   `json:"start_date,omitempty"`
	EndDate   *time.Time   `json:"end_date,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	Listing *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
	Tenant  *User    `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
}

// Open reports whether the rental still holds its listing.
func (r *Rental) Open() bool {
	return r.Status == RentalPending || r.Status == RentalActive
}
